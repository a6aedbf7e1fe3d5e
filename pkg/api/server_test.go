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

package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mengxi-ream/read-frog-server/pkg/blog"
	"github.com/mengxi-ream/read-frog-server/pkg/server"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "frogd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func newTestServer(t *testing.T, cfg *Config) *httptest.Server {
	t.Helper()
	routes, svc, err := Routes(cfg)
	require.NoError(t, err)
	warm(t.Context(), svc)

	s := server.New(server.WithName(name), server.WithHandler(routes))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if v != nil {
		require.NoError(t, json.Unmarshal(body, v), string(body))
	}
	return resp.StatusCode
}

func TestRoutes_EndToEnd(t *testing.T) {
	cfg, err := parseConfig(envMap(nil))
	require.NoError(t, err)
	ts := newTestServer(t, cfg)

	t.Run("latest for old extension", func(t *testing.T) {
		var got *blog.LatestPost
		status := getJSON(t, ts.URL+"/api/blog/latest?locale=en&extensionVersion=1.4.0", &got)
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, got)
		assert.Equal(t, "/blog/introducing-read-frog", got.URL)
	})

	t.Run("latest without version", func(t *testing.T) {
		var got *blog.LatestPost
		status := getJSON(t, ts.URL+"/api/blog/latest", &got)
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, got)
		require.NotNil(t, got.ExtensionVersion)
		assert.Equal(t, "1.10.0", *got.ExtensionVersion)
	})

	t.Run("unsupported locale", func(t *testing.T) {
		var got server.ErrorResponse
		status := getJSON(t, ts.URL+"/api/blog/latest?locale=de", &got)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_REQUEST", got.Code)
	})

	t.Run("compare", func(t *testing.T) {
		var got CompareResponse
		status := getJSON(t, ts.URL+"/api/versions/compare?a=1.10.0&b=1.9.0", &got)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "greater", got.Ordering)
	})

	t.Run("root lists routes", func(t *testing.T) {
		var got server.RootResponse
		status := getJSON(t, ts.URL+"/", &got)
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, got.Routes, "/api/blog/latest")
		assert.Contains(t, got.Routes, "/api/versions/compare")
	})
}

func TestRoutes_SingleLocale(t *testing.T) {
	cfg, err := parseConfig(envMap(map[string]string{EnvLocales: "zh"}))
	require.NoError(t, err)
	ts := newTestServer(t, cfg)

	var got *blog.LatestPost
	status := getJSON(t, ts.URL+"/api/blog/latest", &got)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, got, "default locale follows configuration")

	status = getJSON(t, ts.URL+"/api/blog/latest?locale=en", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRoutes_InvalidSource(t *testing.T) {
	_, _, err := Routes(&Config{ContentDir: "/does/not/exist"})
	assert.Error(t, err)
}
