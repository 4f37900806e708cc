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

// Package describe generates natural-language product descriptions
// from image analyses using a Vertex AI generative model.
package describe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/threadline/catalog-enrichment/internal/models"
)

// ErrNoText is returned when the model produces no usable output.
var ErrNoText = errors.New("model returned no usable description text")

// Generator produces product descriptions with a Vertex AI model.
type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGenerator creates a Vertex AI client for the given project,
// location, and model name, using ambient Google credentials.
func NewGenerator(ctx context.Context, projectID, location, modelName string) (*Generator, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("create vertex ai client: %w", err)
	}
	return &Generator{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close releases the underlying connection.
func (g *Generator) Close() error {
	return g.client.Close()
}

// GenerateDescription prompts the model with the image analysis and
// returns the generated description text.
func (g *Generator) GenerateDescription(ctx context.Context, analysis *models.ImageAnalysis) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(analysis)))
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}
