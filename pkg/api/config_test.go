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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mengxi-ream/read-frog-server/pkg/blog"
	"github.com/mengxi-ream/read-frog-server/pkg/compat"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := parseConfig(envMap(nil))
		require.NoError(t, err)

		assert.Equal(t, []string{"en", "zh"}, cfg.Locales.Names())
		assert.Equal(t, compat.FailOpen, cfg.Policy)
		assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
		assert.Equal(t, time.Minute, cfg.IndexRefresh)
		assert.Equal(t, "embedded", cfg.SourceName())
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := parseConfig(envMap(map[string]string{
			EnvLocales:      "zh, en",
			EnvCompatPolicy: "fail-closed",
			EnvCacheTTL:     "60",
			EnvIndexTTL:     "10",
			EnvIndexURL:     " https://example.com/index.json ",
			EnvContentDir:   "/srv/content",
			"LOG_LEVEL":     "debug",
		}))
		require.NoError(t, err)

		assert.Equal(t, "zh", cfg.Locales.Default())
		assert.Equal(t, compat.FailClosed, cfg.Policy)
		assert.Equal(t, time.Minute, cfg.CacheTTL)
		assert.Equal(t, 10*time.Second, cfg.IndexRefresh)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "index:https://example.com/index.json", cfg.SourceName())
	})

	errorCases := map[string]map[string]string{
		"bad locale":    {EnvLocales: "en,??"},
		"bad policy":    {EnvCompatPolicy: "sometimes"},
		"bad cache ttl": {EnvCacheTTL: "five"},
		"negative ttl":  {EnvIndexTTL: "-1"},
	}
	for name, env := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := parseConfig(envMap(env))
			assert.Error(t, err)
		})
	}
}

func TestConfig_NewSource(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		src, err := (&Config{}).NewSource()
		require.NoError(t, err)
		assert.IsType(t, &blog.FSSource{}, src)
	})

	t.Run("directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))

		src, err := (&Config{ContentDir: dir}).NewSource()
		require.NoError(t, err)
		assert.IsType(t, &blog.FSSource{}, src)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := (&Config{ContentDir: filepath.Join(t.TempDir(), "nope")}).NewSource()
		assert.Error(t, err)
	})

	t.Run("index url wins", func(t *testing.T) {
		src, err := (&Config{IndexURL: "https://example.com/index.json", ContentDir: "/nope"}).NewSource()
		require.NoError(t, err)
		assert.IsType(t, &blog.HTTPSource{}, src)
	})

	t.Run("invalid index url", func(t *testing.T) {
		_, err := (&Config{IndexURL: "example.com"}).NewSource()
		assert.Error(t, err)
	})
}
