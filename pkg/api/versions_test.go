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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mengxi-ream/read-frog-server/pkg/server"
)

func TestHandleCompare(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		query        string
		wantStatus   int
		wantResult   int
		wantOrdering string
		wantInvalid  []string
	}{
		{name: "less", query: "?a=1.9.0&b=1.10.0", wantStatus: http.StatusOK, wantResult: -1, wantOrdering: "less"},
		{name: "equal", query: "?a=1.2.3&b=1.2.3", wantStatus: http.StatusOK, wantResult: 0, wantOrdering: "equal"},
		{name: "greater", query: "?a=2.0.0&b=1.99.99", wantStatus: http.StatusOK, wantResult: 1, wantOrdering: "greater"},
		{name: "invalid a", query: "?a=v1.0.0&b=1.0.0", wantStatus: http.StatusBadRequest, wantInvalid: []string{"a"}},
		{name: "invalid both", query: "?a=1.0&b=1.0.0-beta", wantStatus: http.StatusBadRequest, wantInvalid: []string{"a", "b"}},
		{name: "missing", query: "", wantStatus: http.StatusBadRequest, wantInvalid: []string{"a", "b"}},
		{name: "post", method: http.MethodPost, query: "?a=1.0.0&b=1.0.0", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			w := httptest.NewRecorder()
			HandleCompare(w, httptest.NewRequest(method, "/api/versions/compare"+tt.query, nil))

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus == http.StatusOK {
				var resp CompareResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantResult, resp.Result)
				assert.Equal(t, tt.wantOrdering, resp.Ordering)
				return
			}

			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			for _, key := range tt.wantInvalid {
				assert.Contains(t, resp.Details, key)
			}
			if len(tt.wantInvalid) > 0 {
				assert.Len(t, resp.Details, len(tt.wantInvalid))
			}
		})
	}
}

func TestNewCompareResponse(t *testing.T) {
	resp, err := NewCompareResponse("1.4.0", "1.5.0")
	require.NoError(t, err)
	assert.Equal(t, &CompareResponse{A: "1.4.0", B: "1.5.0", Result: -1, Ordering: "less"}, resp)

	_, err = NewCompareResponse("1.4", "1.5.0")
	assert.Error(t, err)
}
