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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for latestRequests.
const (
	resultFound   = "found"
	resultNone    = "none"
	resultEmpty   = "empty"
	resultInvalid = "invalid"
	resultError   = "error"
)

var (
	sourceLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "frog_blog_source_load_duration_seconds",
			Help:    "Duration of loading blog posts from a content source in seconds",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 2, 5},
		},
		[]string{"source"},
	)

	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frog_blog_cache_hits_total",
			Help: "Total number of blog post lookups served from cache",
		},
		[]string{"source"},
	)
	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frog_blog_cache_misses_total",
			Help: "Total number of blog post lookups that loaded the source",
		},
		[]string{"source"},
	)

	compatErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frog_blog_compat_errors_total",
			Help: "Total number of version comparisons that failed while filtering posts",
		},
		[]string{"policy"},
	)

	latestRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frog_blog_latest_requests_total",
			Help: "Total number of latest post lookups by result",
		},
		[]string{"result"},
	)
)
