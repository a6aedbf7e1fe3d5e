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
	"log/slog"
	"time"

	"github.com/mengxi-ream/read-frog-server/pkg/compat"
	"github.com/mengxi-ream/read-frog-server/pkg/defaults"
	frogerrors "github.com/mengxi-ream/read-frog-server/pkg/errors"
)

// Service answers latest-post queries over a Source.
type Service struct {
	source  Source
	locales *Locales
	policy  compat.Policy
	timeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLocales sets the served locales. The default is DefaultLocales.
func WithLocales(l *Locales) Option {
	return func(s *Service) {
		if l != nil {
			s.locales = l
		}
	}
}

// WithPolicy sets how posts with a malformed extensionVersion are treated.
func WithPolicy(p compat.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithSourceTimeout bounds each call to the source.
func WithSourceTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewService returns a Service reading from src.
func NewService(src Source, opts ...Option) *Service {
	s := &Service{
		source:  src,
		locales: MustLocales(DefaultLocales...),
		policy:  compat.FailOpen,
		timeout: defaults.BlogSourceTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the configured compatibility policy.
func (s *Service) Policy() compat.Policy {
	return s.policy
}

// Locales returns the served locales.
func (s *Service) Locales() *Locales {
	return s.locales
}

// List returns the posts of locale, most recent first.
func (s *Service) List(ctx context.Context, locale string) ([]Post, error) {
	resolved, err := s.locales.Resolve(locale)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	posts, err := s.source.Pages(ctx, resolved)
	if err != nil {
		return nil, frogerrors.Ensure(err, frogerrors.ErrCodeInternal,
			"Failed to fetch latest blog post", map[string]any{"locale": resolved})
	}

	sortByRecency(posts)
	return posts, nil
}

// Latest returns the most recent post of locale that an extension running
// extensionVersion can show. An empty extensionVersion disables version
// filtering. A nil result with a nil error means there is nothing to show.
func (s *Service) Latest(ctx context.Context, locale, extensionVersion string) (*LatestPost, error) {
	posts, err := s.List(ctx, locale)
	if err != nil {
		if frogerrors.IsCode(err, frogerrors.ErrCodeInvalidRequest) {
			latestRequests.WithLabelValues(resultInvalid).Inc()
		} else {
			latestRequests.WithLabelValues(resultError).Inc()
		}
		return nil, err
	}

	if len(posts) == 0 {
		latestRequests.WithLabelValues(resultEmpty).Inc()
		return nil, nil
	}

	post, ok := s.filter(ctx).Latest(extensionVersion, posts)
	if !ok {
		latestRequests.WithLabelValues(resultNone).Inc()
		return nil, nil
	}

	latestRequests.WithLabelValues(resultFound).Inc()
	return NewLatestPost(post), nil
}

func (s *Service) filter(ctx context.Context) compat.Filter[Post] {
	return compat.Filter[Post]{
		MinVersion: func(p Post) string { return p.ExtensionVersion },
		Recency:    func(p Post) time.Time { return p.Date },
		Policy:     s.policy,
		OnError: func(p Post, err error) {
			compatErrors.WithLabelValues(s.policy.String()).Inc()
			slog.WarnContext(ctx, "version comparison failed",
				"path", p.Path,
				"extensionVersion", p.ExtensionVersion,
				"policy", s.policy.String(),
				"error", err,
			)
		},
	}
}
