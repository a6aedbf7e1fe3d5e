// Copyright (c) 2025, The Read Frog Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package blog

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mengxi-ream/read-frog-server/pkg/defaults"
	frogerrors "github.com/mengxi-ream/read-frog-server/pkg/errors"
	"github.com/mengxi-ream/read-frog-server/pkg/header"
	"github.com/mengxi-ream/read-frog-server/pkg/serializer"
)

// HTTPSource reads posts from a remote Index. The index is reused for the
// refresh TTL; concurrent refreshes share one fetch. When a refresh fails
// and an earlier index is held, the earlier index keeps being served.
type HTTPSource struct {
	url     string
	format  serializer.Format
	fetcher *serializer.Fetcher
	ttl     time.Duration
	now     func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	posts     map[string][]Post
	fetchedAt time.Time
}

// HTTPSourceOption configures an HTTPSource.
type HTTPSourceOption func(*HTTPSource)

// WithFetcher sets the fetcher used to download the index.
func WithFetcher(f *serializer.Fetcher) HTTPSourceOption {
	return func(s *HTTPSource) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithRefreshTTL sets how long a fetched index is reused.
func WithRefreshTTL(ttl time.Duration) HTTPSourceOption {
	return func(s *HTTPSource) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewHTTPSource returns a source for the index at rawURL, which must be an
// absolute http or https URL.
func NewHTTPSource(rawURL string, opts ...HTTPSourceOption) (*HTTPSource, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, frogerrors.NewWithContext(frogerrors.ErrCodeInvalidRequest,
			"blog index URL must be an absolute http(s) URL", map[string]any{"url": rawURL})
	}

	s := &HTTPSource{
		url:    u.String(),
		format: serializer.FormatFromPath(u.Path),
		ttl:    defaults.BlogIndexRefreshTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.format.Decodable() {
		return nil, frogerrors.NewWithContext(frogerrors.ErrCodeInvalidRequest,
			"blog index must be a json or yaml document", map[string]any{"url": rawURL})
	}
	if s.fetcher == nil {
		s.fetcher = serializer.NewFetcher(serializer.WithAccept(s.format))
	}
	return s, nil
}

// Pages implements Source.
func (s *HTTPSource) Pages(ctx context.Context, locale string) ([]Post, error) {
	if posts, fresh := s.cached(locale); fresh {
		cacheHits.WithLabelValues("http").Inc()
		return posts, nil
	}
	cacheMisses.WithLabelValues("http").Inc()

	if err := s.Refresh(ctx); err != nil {
		// serve the previous index if there is one
		if posts, held := s.stale(locale); held {
			slog.Warn("blog index refresh failed, serving previous index",
				"url", s.url, "error", err)
			return posts, nil
		}
		return nil, err
	}

	posts, _ := s.cached(locale)
	return posts, nil
}

// Refresh fetches the index now. Concurrent calls share one request.
func (s *HTTPSource) Refresh(ctx context.Context) error {
	ch := s.group.DoChan(s.url, func() (any, error) {
		// detached so one caller giving up does not fail the others
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaults.BlogSourceTimeout)
		defer cancel()
		return nil, s.fetch(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return frogerrors.Wrap(frogerrors.ErrCodeTimeout, "blog index fetch canceled", ctx.Err())
	case res := <-ch:
		return res.Err
	}
}

func (s *HTTPSource) fetch(ctx context.Context) error {
	start := time.Now()
	defer func() {
		sourceLoadDuration.WithLabelValues("http").Observe(time.Since(start).Seconds())
	}()

	data, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return frogerrors.WrapWithContext(frogerrors.ErrCodeUnavailable,
			"failed to fetch blog index", err, map[string]any{"url": s.url})
	}

	idx, err := serializer.FromBytes[Index](s.format, data)
	if err != nil {
		return frogerrors.WrapWithContext(frogerrors.ErrCodeInternal,
			"failed to decode blog index", err, map[string]any{"url": s.url})
	}

	if err := idx.Check(header.KindBlogIndex); err != nil {
		return frogerrors.WrapWithContext(frogerrors.ErrCodeInternal,
			"unsupported blog index", err, map[string]any{"url": s.url})
	}

	posts, err := indexPosts(idx)
	if err != nil {
		return frogerrors.WrapWithContext(frogerrors.ErrCodeInternal,
			"invalid blog index", err, map[string]any{"url": s.url})
	}

	s.mu.Lock()
	s.posts = posts
	s.fetchedAt = s.now()
	s.mu.Unlock()

	slog.Debug("blog index refreshed", "url", s.url, "locales", len(posts))
	return nil
}

func (s *HTTPSource) cached(locale string) ([]Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.posts == nil || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	return clonePosts(s.posts[locale]), true
}

func (s *HTTPSource) stale(locale string) ([]Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.posts == nil {
		return nil, false
	}
	return clonePosts(s.posts[locale]), true
}

// indexPosts validates the index entries and groups them by locale.
// Missing paths and slugs are derived from each other; a missing date
// falls back to the file name like on-disk content.
func indexPosts(idx *Index) (map[string][]Post, error) {
	out := make(map[string][]Post)
	for i, p := range idx.Posts {
		p.Locale = strings.TrimSpace(p.Locale)
		p.Title = strings.TrimSpace(p.Title)
		if p.Locale == "" {
			return nil, fmt.Errorf("post %d: missing locale", i)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("post %d: missing title", i)
		}

		switch {
		case len(p.Slugs) == 0 && p.Path == "":
			return nil, fmt.Errorf("post %d: missing slugs and path", i)
		case len(p.Slugs) == 0:
			p.Slugs = slugsFromPath(strings.TrimPrefix(p.Path, p.Locale+"/"))
		case p.Path == "":
			p.Path = path.Join(p.Locale, path.Join(p.Slugs...))
		}

		if p.Date.IsZero() {
			d, err := resolveDate("", p.Path)
			if err != nil {
				return nil, fmt.Errorf("post %d (%s): %w", i, p.Path, err)
			}
			p.Date = d
		}

		out[p.Locale] = append(out[p.Locale], p)
	}
	return out, nil
}

func clonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	return out
}
