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

// Package compat filters content by the minimum client version it needs.
//
// The site tags some posts with the lowest extension version able to render
// them. Filter keeps the posts a given extension can display and picks the
// most recent one:
//
//	f := compat.Filter[blog.Post]{
//	    MinVersion: func(p blog.Post) string { return p.ExtensionVersion },
//	    Recency:    func(p blog.Post) time.Time { return p.Date },
//	    Policy:     compat.FailOpen,
//	}
//	post, ok := f.Latest("1.4.0", posts)
//
// # Error policy
//
// A malformed version tag (or a malformed target) makes the comparison fail.
// The pkg/version comparator reports that error and never decides for the
// caller. Filter resolves it with an explicit Policy:
//
//   - FailOpen keeps the item. Bad metadata never hides content. This is the
//     zero value and matches the behaviour the website has always shipped.
//   - FailClosed drops the item. A post is only shown when compatibility is
//     proven.
//
// Set OnError to count or log these decisions.
package compat
