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

// Package webhook handles incoming Pub/Sub push deliveries for product
// change events. When a catalog product changes, the message-delivery
// system POSTs a push envelope to this endpoint. The handler decodes
// the event, runs it through the enrichment pipeline, and maps the
// outcome to a JSON response.
package webhook

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/threadline/catalog-enrichment/internal/event"
	"github.com/threadline/catalog-enrichment/internal/pipeline"
)

// Handler processes product change push deliveries.
type Handler struct {
	pipeline *pipeline.Pipeline
}

// NewHandler creates a push delivery handler around an enrichment
// pipeline.
func NewHandler(p *pipeline.Pipeline) *Handler {
	return &Handler{pipeline: p}
}

// ServeEnrich handles a single push delivery.
//
// Status mapping:
//   - 200 — event accepted (no-op, skipped, or fully enriched)
//   - 400 — no decodable payload in the envelope
//   - 500 — payload parse failure or any pipeline stage failure
func (h *Handler) ServeEnrich(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read push request body", "error", err)
		respondError(w, event.ErrMissingPayload)
		return
	}

	var env event.PushEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		slog.Warn("push request body is not a valid envelope", "body_len", len(body))
		respondError(w, event.ErrMissingPayload)
		return
	}

	payload, err := event.DecodeData(&env)
	if err != nil {
		respondError(w, err)
		return
	}

	ev, err := event.ParseEvent(payload)
	if err != nil {
		respondError(w, err)
		return
	}

	outcome, err := h.pipeline.Run(r.Context(), ev)
	if err != nil {
		respondError(w, err)
		return
	}

	respondOutcome(w, outcome)
}
