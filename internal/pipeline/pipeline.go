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

// Package pipeline gates and runs the three-stage enrichment chain:
// image analysis, description generation, catalog persistence. Each
// stage consumes the previous stage's output, and the first failure
// aborts the remaining stages. There is no retry anywhere in the chain.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/threadline/catalog-enrichment/internal/event"
	"github.com/threadline/catalog-enrichment/internal/metrics"
	"github.com/threadline/catalog-enrichment/internal/models"
)

// flagEnabled is the only attribute value that turns enrichment on.
// Anything else — absent, "false", boolean true — disables it.
const flagEnabled = "true"

// Status classifies the terminal outcome of a gated pipeline run.
type Status string

const (
	// StatusNoOp means the event lacked a product ID or image URL, so
	// enrichment was never attempted. The event is still accepted.
	StatusNoOp Status = "noop"

	// StatusSkipped means the enrichment flag was not set to "true".
	StatusSkipped Status = "skipped"

	// StatusEnriched means all three stages completed.
	StatusEnriched Status = "enriched"
)

// Outcome is the result of a successful (non-failing) pipeline run.
// Which fields are populated depends on Status: NoOp carries nothing,
// Skipped carries the product identity, Enriched carries everything.
type Outcome struct {
	Status      Status
	ProductID   string
	ImageURL    string
	Analysis    *models.ImageAnalysis
	Description string
	Update      *models.ProductUpdate
}

// Pipeline holds the three collaborator dependencies and the
// configured flag attribute key. Collaborators are injected once at
// startup; the pipeline itself is stateless and safe for concurrent
// use across requests.
type Pipeline struct {
	analyzer  Analyzer
	generator Generator
	persister Persister
	flagKey   string
}

// New creates an enrichment pipeline with the given collaborators.
// flagKey names the product attribute that gates enrichment.
func New(analyzer Analyzer, generator Generator, persister Persister, flagKey string) *Pipeline {
	return &Pipeline{
		analyzer:  analyzer,
		generator: generator,
		persister: persister,
		flagKey:   flagKey,
	}
}

// Run gates the event and, when enabled, executes the stages in order.
//
// Stage errors are returned as-is, without wrapping, so the caller can
// report the collaborator's own message verbatim. A non-nil Outcome and
// a non-nil error are mutually exclusive.
func (p *Pipeline) Run(ctx context.Context, ev *event.ProductEvent) (*Outcome, error) {
	if ev.ProductID == "" || ev.ImageURL == "" {
		slog.Info("event missing product id or image url, nothing to enrich",
			"resource_type", ev.ResourceType,
		)
		metrics.EventsTotal.WithLabelValues(string(StatusNoOp)).Inc()
		return &Outcome{Status: StatusNoOp}, nil
	}

	if v, ok := ev.FlagValue(p.flagKey).(string); !ok || v != flagEnabled {
		slog.Info("enrichment disabled for product",
			"product_id", ev.ProductID,
			"flag_key", p.flagKey,
		)
		metrics.EventsTotal.WithLabelValues(string(StatusSkipped)).Inc()
		return &Outcome{
			Status:    StatusSkipped,
			ProductID: ev.ProductID,
			ImageURL:  ev.ImageURL,
		}, nil
	}

	slog.Info("starting enrichment",
		"product_id", ev.ProductID,
		"image_url", ev.ImageURL,
	)

	analysis, err := p.runAnalyze(ctx, ev.ImageURL)
	if err != nil {
		return nil, err
	}

	description, err := p.runGenerate(ctx, analysis)
	if err != nil {
		return nil, err
	}

	update, err := p.runPersist(ctx, ev.ProductID, description)
	if err != nil {
		return nil, err
	}

	slog.Info("enrichment complete",
		"product_id", ev.ProductID,
		"version", update.Version,
	)
	metrics.EventsTotal.WithLabelValues(string(StatusEnriched)).Inc()

	return &Outcome{
		Status:      StatusEnriched,
		ProductID:   ev.ProductID,
		ImageURL:    ev.ImageURL,
		Analysis:    analysis,
		Description: description,
		Update:      update,
	}, nil
}

func (p *Pipeline) runAnalyze(ctx context.Context, imageURL string) (*models.ImageAnalysis, error) {
	start := time.Now()
	analysis, err := p.analyzer.AnalyzeImage(ctx, imageURL)
	metrics.StageDuration.WithLabelValues("analyze").Observe(time.Since(start).Seconds())
	if err != nil {
		p.failStage("analyze", err)
		return nil, err
	}
	return analysis, nil
}

func (p *Pipeline) runGenerate(ctx context.Context, analysis *models.ImageAnalysis) (string, error) {
	start := time.Now()
	description, err := p.generator.GenerateDescription(ctx, analysis)
	metrics.StageDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	if err != nil {
		p.failStage("generate", err)
		return "", err
	}
	return description, nil
}

func (p *Pipeline) runPersist(ctx context.Context, productID, description string) (*models.ProductUpdate, error) {
	start := time.Now()
	update, err := p.persister.Persist(ctx, productID, description)
	metrics.StageDuration.WithLabelValues("persist").Observe(time.Since(start).Seconds())
	if err != nil {
		p.failStage("persist", err)
		return nil, err
	}
	return update, nil
}

func (p *Pipeline) failStage(stage string, err error) {
	slog.Error("enrichment stage failed", "stage", stage, "error", err)
	metrics.StageErrors.WithLabelValues(stage).Inc()
	metrics.EventsTotal.WithLabelValues("failed").Inc()
}
