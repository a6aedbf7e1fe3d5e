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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frogerrors "github.com/mengxi-ream/read-frog-server/pkg/errors"
)

func TestParseLocales(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "default set", input: "en,zh", want: []string{"en", "zh"}},
		{name: "whitespace and duplicates", input: " en , zh,EN ", want: []string{"en", "zh"}},
		{name: "region canonicalized", input: "en,zh-cn", want: []string{"en", "zh-CN"}},
		{name: "empty", input: "", wantErr: true},
		{name: "only commas", input: ",,", wantErr: true},
		{name: "malformed", input: "en,not_a_tag", wantErr: true},
		{name: "underscore separator", input: "en,zh_CN", wantErr: true},
		{name: "not a language", input: "en,../../etc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocales(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Names())
			assert.Equal(t, tt.want[0], got.Default())
		})
	}
}

func TestLocales_Resolve(t *testing.T) {
	l := MustLocales("en", "zh")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty uses default", input: "", want: "en"},
		{name: "exact", input: "zh", want: "zh"},
		{name: "case insensitive", input: "ZH", want: "zh"},
		{name: "unsupported", input: "fr", wantErr: true},
		{name: "regional variant not matched", input: "zh-TW", wantErr: true},
		{name: "malformed", input: "../../etc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Resolve(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, frogerrors.IsCode(err, frogerrors.ErrCodeInvalidRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocales_NamesIsCopy(t *testing.T) {
	l := MustLocales("en", "zh")
	names := l.Names()
	names[0] = "fr"
	assert.Equal(t, "en", l.Default())
}

func TestMustLocales_Panics(t *testing.T) {
	assert.Panics(t, func() { MustLocales() })
}
