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
	"net/http"

	frogerrors "github.com/mengxi-ream/read-frog-server/pkg/errors"
	"github.com/mengxi-ream/read-frog-server/pkg/serializer"
	"github.com/mengxi-ream/read-frog-server/pkg/server"
	ver "github.com/mengxi-ream/read-frog-server/pkg/version"
)

// CompareResponse is the body of GET /api/versions/compare.
type CompareResponse struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Result   int    `json:"result" yaml:"result"`
	Ordering string `json:"ordering" yaml:"ordering"`
}

// NewCompareResponse compares a with b.
func NewCompareResponse(a, b string) (*CompareResponse, error) {
	r, err := ver.Compare(a, b)
	if err != nil {
		return nil, err
	}
	return &CompareResponse{A: a, B: b, Result: r.Int(), Ordering: r.String()}, nil
}

// HandleCompare serves GET /api/versions/compare?a=<version>&b=<version>.
func HandleCompare(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")

	invalid := map[string]any{}
	for name, v := range map[string]string{"a": a, "b": b} {
		if !ver.IsValid(v) {
			invalid[name] = v
		}
	}
	if len(invalid) > 0 {
		server.WriteError(w, r, http.StatusBadRequest, frogerrors.ErrCodeInvalidRequest,
			"Invalid version format, expected MAJOR.MINOR.PATCH", false, invalid)
		return
	}

	resp, err := NewCompareResponse(a, b)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compare versions", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
