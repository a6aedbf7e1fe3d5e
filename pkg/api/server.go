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
	"context"
	"log/slog"
	"net/http"

	"github.com/mengxi-ream/read-frog-server/pkg/blog"
	"github.com/mengxi-ream/read-frog-server/pkg/logging"
	"github.com/mengxi-ream/read-frog-server/pkg/server"
)

const (
	name           = "frogd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/mengxi-ream/read-frog-server/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the application handlers for cfg.
func Routes(cfg *Config) (map[string]http.HandlerFunc, *blog.Service, error) {
	src, err := cfg.NewSource()
	if err != nil {
		return nil, nil, err
	}

	svc := blog.NewService(src,
		blog.WithLocales(cfg.Locales),
		blog.WithPolicy(cfg.Policy),
	)
	h := blog.NewHandler(svc, cfg.CacheTTL)

	return map[string]http.HandlerFunc{
		"/api/blog/latest":      h.HandleLatest,
		"/api/versions/compare": HandleCompare,
	}, svc, nil
}

// warm loads every locale once so content errors surface at startup.
func warm(ctx context.Context, svc *blog.Service) {
	for _, locale := range svc.Locales().Names() {
		posts, err := svc.List(ctx, locale)
		if err != nil {
			slog.Warn("failed to preload blog posts", "locale", locale, "error", err)
			continue
		}
		slog.Debug("blog posts loaded", "locale", locale, "count", len(posts))
	}
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	cfg, err := LoadConfig()
	if err != nil {
		logging.SetDefaultStructuredLogger(name, version)
		slog.Error("invalid configuration", "error", err)
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"source", cfg.SourceName(),
		"locales", cfg.Locales.Names(),
		"policy", cfg.Policy.String(),
	)

	routes, svc, err := Routes(cfg)
	if err != nil {
		slog.Error("failed to configure content source", "error", err)
		return err
	}
	warm(ctx, svc)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
