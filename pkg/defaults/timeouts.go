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

package defaults

import "time"

// Blog endpoint and content source settings.
const (
	// BlogHandlerTimeout bounds a whole /api/blog/latest request.
	BlogHandlerTimeout = 10 * time.Second

	// BlogSourceTimeout bounds one content load or index fetch. It is below
	// BlogHandlerTimeout so the handler can still answer with an error body.
	BlogSourceTimeout = 8 * time.Second

	// BlogCacheTTL is the max-age sent with latest post responses.
	BlogCacheTTL = 5 * time.Minute

	// BlogIndexRefreshTTL is how long a fetched remote index is reused.
	BlogIndexRefreshTTL = 1 * time.Minute
)

// HTTP server settings.
const (
	ServerReadTimeout       = 10 * time.Second
	ServerReadHeaderTimeout = 5 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second
	ServerShutdownTimeout   = 30 * time.Second
)

// HTTP client settings for fetching a remote content index. The total
// timeout stays below BlogSourceTimeout so a slow index surfaces as a fetch
// error rather than a canceled context.
const (
	HTTPClientTimeout         = 6 * time.Second
	HTTPConnectTimeout        = 3 * time.Second
	HTTPTLSHandshakeTimeout   = 3 * time.Second
	HTTPResponseHeaderTimeout = 5 * time.Second
	HTTPIdleConnTimeout       = 90 * time.Second
	HTTPKeepAlive             = 30 * time.Second
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLIRequestTimeout bounds a single CLI command that reads content.
const CLIRequestTimeout = 30 * time.Second
