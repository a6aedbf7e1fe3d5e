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
	"net/http"
	"time"

	frogerrors "github.com/mengxi-ream/read-frog-server/pkg/errors"
	"github.com/mengxi-ream/read-frog-server/pkg/serializer"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth is the liveness probe. It succeeds whenever the process
// can serve HTTP.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, r, http.StatusOK, "healthy", "")
}

// handleReady is the readiness probe. It fails before Start has bound the
// listener and once shutdown has begun.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.isReady() {
		writeProbe(w, r, http.StatusServiceUnavailable, "not_ready",
			"service is initializing or shutting down")
		return
	}
	writeProbe(w, r, http.StatusOK, "ready", "")
}

func writeProbe(w http.ResponseWriter, r *http.Request, code int, status, reason string) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	serializer.RespondJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	})
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// RequireMethod reports whether r uses one of the allowed methods and writes
// a 405 error response when it does not.
func RequireMethod(w http.ResponseWriter, r *http.Request, allowed ...string) bool {
	for _, m := range allowed {
		if r.Method == m {
			return true
		}
	}
	writeMethodNotAllowed(w, r, allowed...)
	return false
}

func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	WriteError(w, r, http.StatusMethodNotAllowed, frogerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
}
