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

// Package cli implements the frog command-line tool.
//
// # Commands
//
// version compare - Order two extension versions:
//
//	frog version compare 1.9.0 1.10.0
//
// version check - Validate a version string:
//
//	frog version check 1.2.3
//
// blog latest - Show the most recent post an extension can display:
//
//	frog blog latest --locale en --extension-version 1.4.0 [--policy fail-closed]
//
// blog list - List posts of a locale, most recent first:
//
//	frog blog list --locale zh --format table
//
// Blog commands read the compiled-in posts unless --content or --index-url
// is given. The index URL takes precedence.
//
// # Flags
//
//	--log-level    Log verbosity (debug, info, warn, error)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//
// # Environment Variables
//
//	LOG_LEVEL             Default for --log-level
//	BLOG_CONTENT_DIR      Default for --content
//	BLOG_INDEX_URL        Default for --index-url
//	BLOG_LOCALES          Default for --locales
//	BLOG_COMPAT_POLICY    Default for --policy
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
package cli
