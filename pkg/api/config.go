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
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mengxi-ream/read-frog-server/pkg/blog"
	"github.com/mengxi-ream/read-frog-server/pkg/compat"
	"github.com/mengxi-ream/read-frog-server/pkg/defaults"
	"github.com/mengxi-ream/read-frog-server/pkg/logging"
)

// Environment variables read by LoadConfig.
const (
	EnvContentDir    = "BLOG_CONTENT_DIR"
	EnvIndexURL      = "BLOG_INDEX_URL"
	EnvLocales       = "BLOG_LOCALES"
	EnvCompatPolicy  = "BLOG_COMPAT_POLICY"
	EnvCacheTTL      = "BLOG_CACHE_TTL_SECONDS"
	EnvIndexTTL      = "BLOG_INDEX_REFRESH_SECONDS"
	defaultLocaleSet = "en,zh"
)

// Config is the application configuration of the API server. Listener,
// rate limit and timeout settings belong to server.Config.
type Config struct {
	// ContentDir serves posts from a directory instead of the compiled-in set.
	ContentDir string

	// IndexURL serves posts from a remote index. Takes precedence over
	// ContentDir.
	IndexURL string

	// IndexRefresh is how long a fetched remote index is reused.
	IndexRefresh time.Duration

	Locales  *blog.Locales
	Policy   compat.Policy
	CacheTTL time.Duration
	LogLevel string
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	return parseConfig(os.Getenv)
}

func parseConfig(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ContentDir:   strings.TrimSpace(getenv(EnvContentDir)),
		IndexURL:     strings.TrimSpace(getenv(EnvIndexURL)),
		IndexRefresh: defaults.BlogIndexRefreshTTL,
		CacheTTL:     defaults.BlogCacheTTL,
		LogLevel:     getenv(logging.EnvLogLevel),
	}

	localeList := getenv(EnvLocales)
	if strings.TrimSpace(localeList) == "" {
		localeList = defaultLocaleSet
	}
	locales, err := blog.ParseLocales(localeList)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLocales, err)
	}
	cfg.Locales = locales

	policy, err := compat.ParsePolicy(getenv(EnvCompatPolicy))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvCompatPolicy, err)
	}
	cfg.Policy = policy

	if cfg.CacheTTL, err = parseSeconds(getenv, EnvCacheTTL, cfg.CacheTTL); err != nil {
		return nil, err
	}
	if cfg.IndexRefresh, err = parseSeconds(getenv, EnvIndexTTL, cfg.IndexRefresh); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseSeconds(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: expected a non-negative number of seconds, got %q", key, raw)
	}
	return time.Duration(n) * time.Second, nil
}

// SourceName describes where posts are read from, for logs.
func (c *Config) SourceName() string {
	switch {
	case c.IndexURL != "":
		return "index:" + c.IndexURL
	case c.ContentDir != "":
		return "dir:" + c.ContentDir
	default:
		return "embedded"
	}
}

// NewSource builds the content source selected by the configuration.
func (c *Config) NewSource() (blog.Source, error) {
	switch {
	case c.IndexURL != "":
		return blog.NewHTTPSource(c.IndexURL, blog.WithRefreshTTL(c.IndexRefresh))
	case c.ContentDir != "":
		return blog.NewDirSource(c.ContentDir)
	default:
		return blog.NewEmbeddedSource(), nil
	}
}
