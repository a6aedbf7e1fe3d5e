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
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	frogerrors "github.com/mengxi-ream/read-frog-server/pkg/errors"
)

//go:embed content
var contentFS embed.FS

// Source provides the posts of a locale.
type Source interface {
	// Pages returns every post in locale in unspecified order. An unknown
	// locale yields no posts and no error.
	Pages(ctx context.Context, locale string) ([]Post, error)
}

// FSSource reads posts from a file system laid out as
// <locale>/<path>.md or <locale>/<path>.mdx, each file carrying YAML front
// matter. The tree is read once on first use.
type FSSource struct {
	fsys  fs.FS
	label string

	once  sync.Once
	posts map[string][]Post
	err   error
}

// NewFSSource returns a source reading from fsys. label names the source in
// metrics and errors.
func NewFSSource(fsys fs.FS, label string) *FSSource {
	return &FSSource{fsys: fsys, label: label}
}

// NewEmbeddedSource returns a source over the posts compiled into the binary.
func NewEmbeddedSource() *FSSource {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		// fs.Sub only fails on an invalid path literal
		panic(err)
	}
	return NewFSSource(sub, "embedded")
}

// NewDirSource returns a source reading from a directory on disk.
func NewDirSource(dir string) (*FSSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, frogerrors.WrapWithContext(frogerrors.ErrCodeInternal,
			"content directory not accessible", err, map[string]any{"dir": dir})
	}
	if !info.IsDir() {
		return nil, frogerrors.NewWithContext(frogerrors.ErrCodeInternal,
			"content path is not a directory", map[string]any{"dir": dir})
	}
	return NewFSSource(os.DirFS(dir), "dir"), nil
}

// Pages implements Source.
func (s *FSSource) Pages(ctx context.Context, locale string) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, frogerrors.Wrap(frogerrors.ErrCodeTimeout, "content load canceled", err)
	}

	loaded := false
	s.once.Do(func() {
		loaded = true
		cacheMisses.WithLabelValues(s.label).Inc()
		start := time.Now()
		s.posts, s.err = loadTree(s.fsys)
		sourceLoadDuration.WithLabelValues(s.label).Observe(time.Since(start).Seconds())
	})
	if !loaded && s.err == nil {
		cacheHits.WithLabelValues(s.label).Inc()
	}

	if s.err != nil {
		return nil, s.err
	}

	return clonePosts(s.posts[locale]), nil
}

func loadTree(fsys fs.FS) (map[string][]Post, error) {
	posts := make(map[string][]Post)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isPostFile(d.Name()) {
			return nil
		}

		locale, rel, ok := strings.Cut(p, "/")
		if !ok {
			// files at the root belong to no locale
			return nil
		}

		data, readErr := fs.ReadFile(fsys, p)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", p, readErr)
		}

		post, postErr := newPost(locale, rel, data)
		if postErr != nil {
			return frogerrors.WrapWithContext(frogerrors.ErrCodeInternal, "invalid blog post",
				postErr, map[string]any{"path": path.Clean(p)})
		}

		posts[locale] = append(posts[locale], post)
		return nil
	})
	if err != nil {
		return nil, frogerrors.Ensure(err, frogerrors.ErrCodeInternal, "failed to load blog content", nil)
	}

	return posts, nil
}
