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

package blog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mengxi-ream/read-frog-server/pkg/defaults"
	"github.com/mengxi-ream/read-frog-server/pkg/serializer"
	"github.com/mengxi-ream/read-frog-server/pkg/server"
)

// Query parameters of the latest post endpoint.
const (
	QueryLocale           = "locale"
	QueryExtensionVersion = "extensionVersion"
)

// Handler serves GET /api/blog/latest.
type Handler struct {
	service  *Service
	cacheTTL time.Duration
	timeout  time.Duration
}

// NewHandler returns a handler over svc. A cacheTTL of zero uses
// defaults.BlogCacheTTL.
func NewHandler(svc *Service, cacheTTL time.Duration) *Handler {
	if cacheTTL <= 0 {
		cacheTTL = defaults.BlogCacheTTL
	}
	return &Handler{
		service:  svc,
		cacheTTL: cacheTTL,
		timeout:  defaults.BlogHandlerTimeout,
	}
}

// HandleLatest responds with the latest compatible post, or JSON null when
// there is none.
func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	latest, err := h.service.Latest(ctx, q.Get(QueryLocale), q.Get(QueryExtensionVersion))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to fetch latest blog post", nil)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheTTL.Seconds())))
	w.Header().Add("Vary", "Accept")
	serializer.RespondJSON(w, http.StatusOK, latest)
}
