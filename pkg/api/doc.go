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

// Package api wires the Read Frog content API onto pkg/server.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /api/blog/latest?locale=&extensionVersion= - latest compatible post
//   - GET /api/versions/compare?a=&b= - three-way version comparison
//
// System endpoints:
//   - GET /health, GET /ready, GET /metrics, GET /
//
// # Configuration
//
// Besides the server variables (PORT, SHUTDOWN_TIMEOUT_SECONDS,
// RATE_LIMIT_RPS) and LOG_LEVEL:
//
//	BLOG_INDEX_URL              remote JSON or YAML index (takes precedence)
//	BLOG_CONTENT_DIR            directory of <locale>/*.mdx posts
//	BLOG_LOCALES                served locales, default "en,zh"
//	BLOG_COMPAT_POLICY          fail-open (default) or fail-closed
//	BLOG_CACHE_TTL_SECONDS      Cache-Control max-age, default 300
//	BLOG_INDEX_REFRESH_SECONDS  remote index reuse window, default 60
//
// With neither BLOG_INDEX_URL nor BLOG_CONTENT_DIR set, the posts compiled
// into the binary are served.
package api
