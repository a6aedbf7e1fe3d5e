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

// Package version parses and orders three component semantic versions.
//
// The accepted grammar is strict: exactly three dot-separated non-negative
// integers ("1.10.0"). There is no "v" prefix, no pre-release or build
// metadata, and no whitespace. Components are compared as integers, so
// "1.9.0" orders before "1.10.0".
//
// # Usage
//
//	r, err := version.Compare("1.4.0", "1.5.0")
//	if err != nil {
//	    // errors.Is(err, version.ErrInvalidFormat)
//	}
//	if r == version.Less {
//	    // caller is older than the requirement
//	}
//
// Callers decide what a comparison error means for them; this package never
// swallows one. See pkg/compat for the fail-open and fail-closed policies
// used when filtering content by a minimum version.
//
// All functions are pure and safe for concurrent use.
package version
