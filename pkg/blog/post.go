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
	"slices"
	"strings"
	"time"
)

// isoMillis matches the ISO-8601 form the extension parses: UTC with
// millisecond precision, e.g. 2024-07-01T00:00:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Post is a single blog page in one locale.
type Post struct {
	// Locale is the configured locale the post belongs to, e.g. "en".
	Locale string `json:"locale" yaml:"locale"`

	// Slugs are the URL path segments below /blog.
	Slugs []string `json:"slugs" yaml:"slugs"`

	// Path is the source path of the post, relative to the content root.
	Path string `json:"path" yaml:"path"`

	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Date        time.Time `json:"date" yaml:"date"`

	// ExtensionVersion is the minimum extension version able to show the
	// post. Empty means every version.
	ExtensionVersion string `json:"extensionVersion,omitempty" yaml:"extensionVersion,omitempty"`
}

// URL returns the site path of the post.
func (p Post) URL() string {
	return "/blog/" + strings.Join(p.Slugs, "/")
}

// LatestPost is the body of a successful /api/blog/latest response.
type LatestPost struct {
	Date             string  `json:"date" yaml:"date"`
	Title            string  `json:"title" yaml:"title"`
	Description      string  `json:"description" yaml:"description"`
	URL              string  `json:"url" yaml:"url"`
	ExtensionVersion *string `json:"extensionVersion" yaml:"extensionVersion"`
}

// NewLatestPost converts p to its response form.
func NewLatestPost(p Post) *LatestPost {
	lp := &LatestPost{
		Date:        p.Date.UTC().Format(isoMillis),
		Title:       p.Title,
		Description: p.Description,
		URL:         p.URL(),
	}
	if p.ExtensionVersion != "" {
		v := p.ExtensionVersion
		lp.ExtensionVersion = &v
	}
	return lp
}

// sortByRecency orders posts most recent first. Posts with the same date
// are ordered by path so the result does not depend on load order.
func sortByRecency(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
}
