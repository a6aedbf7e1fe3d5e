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

package server

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/mengxi-ream/read-frog-server/pkg/defaults"
)

const (
	// EnvPort overrides Config.Port.
	EnvPort = "PORT"
	// EnvShutdownTimeout overrides Config.ShutdownTimeout, in whole seconds.
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	// EnvRateLimit overrides Config.RateLimit, in requests per second.
	EnvRateLimit = "RATE_LIMIT_RPS"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers to be added to the server, keyed by path
	Handlers map[string]http.HandlerFunc

	// Listen address
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns the default configuration with PORT,
// SHUTDOWN_TIMEOUT_SECONDS and RATE_LIMIT_RPS applied. Values that are
// not positive integers are ignored.
func NewConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Port:              8080,
		RateLimit:         100,
		RateLimitBurst:    200,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if v, ok := envPositiveInt(EnvPort); ok {
		cfg.Port = v
	}
	// should match the platform termination grace period
	if v, ok := envPositiveInt(EnvShutdownTimeout); ok {
		cfg.ShutdownTimeout = time.Duration(v) * time.Second
	}
	if v, ok := envPositiveInt(EnvRateLimit); ok {
		cfg.RateLimit = rate.Limit(v)
		cfg.RateLimitBurst = max(cfg.RateLimitBurst, 2*v)
	}
	return cfg
}

func envPositiveInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
