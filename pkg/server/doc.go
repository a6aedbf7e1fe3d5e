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

// Package server provides the HTTP server shared by the Read Frog API
// binaries: routing, middleware, health probes, metrics and the JSON error
// envelope.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("frogd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/api/blog/latest": blogHandler.ServeHTTP,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT, SIGTERM or cancellation of ctx, then drains
// in-flight requests within Config.ShutdownTimeout.
//
// # Middleware
//
// Application handlers are wrapped, outermost first, with:
//
//   - metrics: frog_http_requests_total, frog_http_request_duration_seconds
//     and frog_http_requests_in_flight, labelled by route pattern
//   - API version negotiation via Accept: application/vnd.readfrog.v1+json,
//     echoed in X-API-Version
//   - request IDs: X-Request-Id is propagated when it is a UUID and
//     generated otherwise
//   - panic recovery, answering 500
//   - token bucket rate limiting (golang.org/x/time/rate) with
//     X-RateLimit-* headers and 429 plus Retry-After when exhausted
//   - debug request logging through log/slog
//
// # System endpoints
//
// These bypass the middleware chain:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 before Start and after Shutdown begins
//	GET /metrics  Prometheus exposition
//
// A "/" handler listing the registered routes is installed unless the
// caller supplies one. It answers 404 for any unmatched path.
//
// # Errors
//
// All error bodies share one shape:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "unsupported locale",
//	  "details": {"locale": "xx"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// Handlers return a *errors.StructuredError and call WriteErrorFromErr,
// which maps the code to the HTTP status with HTTPStatusFromCode.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS and RATE_LIMIT_RPS from the
// environment. Timeouts default to the values in pkg/defaults.
package server
