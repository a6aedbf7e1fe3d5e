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
	"time"

	"github.com/mengxi-ream/read-frog-server/pkg/header"
)

// Index is the document served by a remote content index. It is JSON, or
// YAML when the URL path ends in .yaml or .yml. Indexes written before
// headers were introduced carry only posts and are still accepted.
type Index struct {
	header.Header `yaml:",inline"`

	Posts []Post `json:"posts" yaml:"posts"`
}

// NewIndex wraps posts in a BlogIndex document generated by version at now.
func NewIndex(posts []Post, version string, now time.Time) *Index {
	return &Index{
		Header: *header.New(header.KindBlogIndex, version, header.WithTimestamp(now)),
		Posts:  posts,
	}
}

// Index collects the posts of every served locale into one document, each
// locale most recent first, in locale order.
func (s *Service) Index(ctx context.Context, version string) (*Index, error) {
	var all []Post
	for _, locale := range s.locales.Names() {
		posts, err := s.List(ctx, locale)
		if err != nil {
			return nil, err
		}
		all = append(all, posts...)
	}
	if all == nil {
		all = []Post{}
	}
	return NewIndex(all, version, time.Now()), nil
}
