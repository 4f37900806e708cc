// Copyright (c) 2026 Threadline Labs
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

// Package metrics exposes Prometheus instrumentation for the
// enrichment service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsTotal counts inbound push events by terminal outcome
	// (noop, skipped, enriched, rejected, failed).
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_events_total",
			Help: "Total number of push events received, by outcome",
		},
		[]string{"outcome"},
	)

	// StageDuration tracks how long each pipeline stage takes
	// (analyze, generate, persist).
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enrichment_stage_duration_seconds",
			Help:    "Duration of enrichment pipeline stages in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	// StageErrors counts pipeline stage failures by stage.
	StageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_stage_errors_total",
			Help: "Total number of pipeline stage failures",
		},
		[]string{"stage"},
	)
)
