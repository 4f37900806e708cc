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

package webhook

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/threadline/catalog-enrichment/internal/event"
	"github.com/threadline/catalog-enrichment/internal/metrics"
	"github.com/threadline/catalog-enrichment/internal/models"
	"github.com/threadline/catalog-enrichment/internal/pipeline"
)

// Fixed user-visible messages. Failure details are carried separately
// in the `details` field.
const (
	msgMissingPayload = "Bad Request: no message payload received"
	msgInternalError  = "Failed to process product event"
	msgEventAccepted  = "Event received, no product to enrich"
	msgSkipped        = "Description generation is not enabled for this product"
)

// enrichResponse is the single response shape for accepted events.
// Fields beyond Message are populated per outcome: skip carries the
// product identity, full enrichment carries everything.
type enrichResponse struct {
	Message     string                `json:"message,omitempty"`
	ProductID   string                `json:"productId,omitempty"`
	ImageURL    string                `json:"imageUrl,omitempty"`
	Description string                `json:"description,omitempty"`
	Analysis    *models.ImageAnalysis `json:"productAnalysis,omitempty"`
	Update      *models.ProductUpdate `json:"commerceToolsUpdate,omitempty"`
}

// errorResponse is the generic failure shape.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// respondOutcome maps a pipeline outcome to its 200 response body.
func respondOutcome(w http.ResponseWriter, out *pipeline.Outcome) {
	resp := enrichResponse{}

	switch out.Status {
	case pipeline.StatusNoOp:
		resp.Message = msgEventAccepted
	case pipeline.StatusSkipped:
		resp.Message = msgSkipped
		resp.ProductID = out.ProductID
		resp.ImageURL = out.ImageURL
	case pipeline.StatusEnriched:
		resp.ProductID = out.ProductID
		resp.ImageURL = out.ImageURL
		resp.Description = out.Description
		resp.Analysis = out.Analysis
		resp.Update = out.Update
	}

	writeJSON(w, http.StatusOK, resp)
}

// respondError maps a failure to its status code and body. A missing
// payload is the only structural (400) failure; everything else —
// malformed payload, any collaborator failure — is a 500 carrying the
// underlying error's message as details.
func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, event.ErrMissingPayload) {
		metrics.EventsTotal.WithLabelValues("rejected").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgMissingPayload})
		return
	}

	if errors.Is(err, event.ErrMalformedPayload) {
		metrics.EventsTotal.WithLabelValues("failed").Inc()
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   msgInternalError,
		Details: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response body", "error", err)
	}
}
