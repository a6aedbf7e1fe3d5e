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

package server

import (
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	frogerrors "github.com/mengxi-ream/read-frog-server/pkg/errors"
	"github.com/mengxi-ream/read-frog-server/pkg/serializer"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse with the given status and code.
// The request ID is taken from the request context, or generated when the
// handler runs outside the middleware chain.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code frogerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	resp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, resp)
}

// WriteErrorFromErr maps err onto an ErrorResponse. A StructuredError
// anywhere in the chain supplies the code, message and context; any other
// error becomes INTERNAL with fallbackMessage. The cause text is added to
// details under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	if se, ok := frogerrors.As(err); ok {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, se.Code.Retryable(), details)
		return
	}

	details := extraDetails
	if err != nil {
		details = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, frogerrors.ErrCodeInternal, fallbackMessage,
		frogerrors.ErrCodeInternal.Retryable(), details)
}

// HTTPStatusFromCode returns the HTTP status for an error code. Unknown
// codes map to 500.
func HTTPStatusFromCode(code frogerrors.ErrorCode) int {
	switch code {
	case frogerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case frogerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case frogerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case frogerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case frogerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case frogerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case frogerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// mergeDetails returns a new map holding a overlaid by b, or nil when both
// are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
