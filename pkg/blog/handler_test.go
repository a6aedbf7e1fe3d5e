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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mengxi-ream/read-frog-server/pkg/server"
)

func newTestHandler(src Source) *Handler {
	return NewHandler(NewService(src), 90*time.Second)
}

func TestHandler_HandleLatest(t *testing.T) {
	tests := []struct {
		name       string
		src        Source
		method     string
		query      string
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name:       "latest compatible post",
			src:        &stubSource{posts: samplePosts()},
			query:      "?locale=en&extensionVersion=1.4.0",
			wantStatus: http.StatusOK,
			wantBody:   `{"date":"2024-07-01T00:00:00.000Z","title":"C","description":"","url":"/blog/c","extensionVersion":null}`,
		},
		{
			name:       "default locale",
			src:        &stubSource{posts: samplePosts()},
			wantStatus: http.StatusOK,
			wantBody:   `{"date":"2024-07-01T00:00:00.000Z","title":"C","description":"","url":"/blog/c","extensionVersion":null}`,
		},
		{
			name:       "no posts is null",
			src:        &stubSource{posts: map[string][]Post{}},
			query:      "?locale=zh",
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name: "none compatible is null",
			src: &stubSource{posts: map[string][]Post{"en": {
				{Path: "en/x.mdx", Slugs: []string{"x"}, Title: "X", Date: day("2024-01-01"), ExtensionVersion: "3.0.0"},
			}}},
			query:      "?extensionVersion=1.4.0",
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "invalid locale",
			src:        &stubSource{posts: samplePosts()},
			query:      "?locale=xx-invalid-",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "unsupported locale",
			src:        &stubSource{posts: samplePosts()},
			query:      "?locale=fr",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "source failure",
			src:        &stubSource{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
		},
		{
			name:       "method not allowed",
			src:        &stubSource{posts: samplePosts()},
			method:     http.MethodPost,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, "/api/blog/latest"+tt.query, nil)
			w := httptest.NewRecorder()

			newTestHandler(tt.src).HandleLatest(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
				assert.Equal(t, "public, max-age=90", w.Header().Get("Cache-Control"))
			}
			if tt.wantCode != "" {
				var resp server.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
				assert.NotEmpty(t, resp.RequestID)
				assert.Empty(t, w.Header().Get("Cache-Control"), "errors must not be cached")
			}
		})
	}
}

func TestHandler_DefaultCacheTTL(t *testing.T) {
	h := NewHandler(NewService(&stubSource{posts: samplePosts()}), 0)

	w := httptest.NewRecorder()
	h.HandleLatest(w, httptest.NewRequest(http.MethodGet, "/api/blog/latest", nil))

	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
}

func TestHandler_ThroughServer(t *testing.T) {
	h := newTestHandler(NewEmbeddedSource())
	s := server.New(server.WithHandler(map[string]http.HandlerFunc{
		"/api/blog/latest": h.HandleLatest,
	}))

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/blog/latest?locale=zh&extensionVersion=1.4.0")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	assert.Equal(t, server.DefaultAPIVersion, resp.Header.Get("X-API-Version"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var latest LatestPost
	require.NoError(t, json.Unmarshal(body, &latest))
	assert.Equal(t, "/blog/introducing-read-frog", latest.URL)
	assert.True(t, strings.HasSuffix(latest.Date, ".000Z"), latest.Date)
	assert.Nil(t, latest.ExtensionVersion)
}
