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

// Package errors defines the structured error type shared by the content
// sources, the API handlers and the CLI.
//
// A StructuredError carries a machine readable ErrorCode that pkg/server
// maps to an HTTP status, a human readable message, the wrapped cause and
// optional context that ends up in the error response details.
//
//	err := errors.WrapWithContext(errors.ErrCodeInternal, "failed to load posts", cause,
//	    map[string]any{"locale": "en"})
//
// As finds the StructuredError in a chain. Ensure leaves a structured
// error alone and wraps anything else, so a source can guarantee its
// callers always see a code. CodeOf reports ErrCodeInternal for plain
// errors, and ErrorCode.Retryable drives the "retryable" response field.
package errors
