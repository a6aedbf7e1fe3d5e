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

// Package logging sets up log/slog the same way for frogd and frog: JSON
// records on stderr, each carrying "module" and "version" attributes.
//
// The level comes from LOG_LEVEL, or from an explicit name such as the CLI
// --log-level flag. Names are debug, info, warn (or warning) and error,
// matched case-insensitively; anything else is info. Debug output also
// records the source location.
//
//	logging.SetDefaultStructuredLogger("frogd", version)
//	slog.Info("blog source ready", "locales", locales)
//
// produces
//
//	{"time":"...","level":"INFO","msg":"blog source ready","module":"frogd","version":"1.4.0","locales":["en","zh"]}
package logging
