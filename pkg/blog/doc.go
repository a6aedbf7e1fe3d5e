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

// Package blog serves the most recent blog post a given extension version
// can display.
//
// Posts come from a Source: FSSource over markdown files with YAML front
// matter (compiled in, or a directory on disk), or HTTPSource over a remote
// JSON or YAML Index. A post file looks like:
//
//	---
//	title: Custom translation styles
//	description: Pick how translated paragraphs look.
//	date: 2025-03-18
//	extensionVersion: 1.5.0
//	---
//
// The date may be omitted when the file name starts with YYYY-MM-DD.
// extensionVersion is the lowest extension release able to show the post.
//
// Service.Latest sorts a locale's posts most recent first and returns the
// first one whose extensionVersion is satisfied by the caller's version,
// using compat.Filter. Posts with a malformed extensionVersion are kept or
// dropped according to the configured compat.Policy.
//
// Handler.HandleLatest exposes this as:
//
//	GET /api/blog/latest?locale=en&extensionVersion=1.4.0
//
//	200 {"date":"2024-11-02T00:00:00.000Z","title":"...","description":"...",
//	     "url":"/blog/introducing-read-frog","extensionVersion":null}
//	200 null                  no posts, or none compatible
//	400 INVALID_REQUEST       unsupported locale
//	500 INTERNAL              content could not be loaded
//	503 SERVICE_UNAVAILABLE   remote index unreachable and nothing cached
package blog
