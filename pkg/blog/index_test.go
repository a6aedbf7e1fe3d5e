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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mengxi-ream/read-frog-server/pkg/header"
	"github.com/mengxi-ream/read-frog-server/pkg/serializer"
)

func TestService_Index(t *testing.T) {
	src := &stubSource{posts: samplePosts()}
	svc := NewService(src)

	idx, err := svc.Index(context.Background(), "1.2.0")
	require.NoError(t, err)
	assert.Equal(t, header.KindBlogIndex, idx.Kind)
	assert.Equal(t, header.APIVersion, idx.APIVersion)
	assert.Equal(t, "1.2.0", idx.Metadata["version"])
	assert.NotEmpty(t, idx.Metadata["timestamp"])

	titles := make([]string, 0, len(idx.Posts))
	for _, p := range idx.Posts {
		titles = append(titles, p.Title)
	}
	if diff := cmp.Diff([]string{"C", "B", "A"}, titles); diff != "" {
		t.Errorf("index order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, src.calls, "one load per served locale")
}

func TestService_IndexEmpty(t *testing.T) {
	idx, err := NewService(&stubSource{}).Index(context.Background(), "")
	require.NoError(t, err)

	data, err := json.Marshal(idx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"posts":[]`)
}

// An index written by Service.Index is readable by HTTPSource and yields the
// same posts for every locale.
func TestIndex_RoundTrip(t *testing.T) {
	svc := NewService(NewEmbeddedSource())
	idx, err := svc.Index(context.Background(), "dev")
	require.NoError(t, err)

	for _, format := range []serializer.Format{serializer.FormatJSON, serializer.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := serializer.NewWriter(format, rec)
			require.NoError(t, w.Serialize(context.Background(), idx))
			body := rec.Body.String()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(body))
			}))
			defer ts.Close()

			remote, err := NewHTTPSource(ts.URL + "/index." + string(format))
			require.NoError(t, err)
			remoteSvc := NewService(remote)

			for _, locale := range svc.Locales().Names() {
				want, err := svc.List(context.Background(), locale)
				require.NoError(t, err)
				got, err := remoteSvc.List(context.Background(), locale)
				require.NoError(t, err)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("%s posts mismatch (-want +got):\n%s", locale, diff)
				}
			}
		})
	}
}
