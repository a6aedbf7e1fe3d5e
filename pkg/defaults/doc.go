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

// Package defaults holds the timeouts and cache durations shared by the
// server, the content sources and the CLI.
//
// Related values are ordered: an index fetch ends before the content load
// that triggered it, and a content load ends before its request handler
// gives up.
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.BlogHandlerTimeout)
//	defer cancel()
package defaults
