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

// Package vision analyses product images with the Cloud Vision API and
// summarises the annotations into the fixed five-field shape the
// description generator consumes.
package vision

import (
	"context"
	"fmt"

	apiv1 "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/threadline/catalog-enrichment/internal/models"
)

// Client wraps the Cloud Vision image annotator.
type Client struct {
	annotator *apiv1.ImageAnnotatorClient
}

// NewClient creates a Vision client using ambient Google credentials.
func NewClient(ctx context.Context) (*Client, error) {
	annotator, err := apiv1.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create vision client: %w", err)
	}
	return &Client{annotator: annotator}, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.annotator.Close()
}

// AnalyzeImage runs label, object, colour, text, and web detection on
// the image at the given URL and returns the summarised analysis.
func (c *Client) AnalyzeImage(ctx context.Context, imageURL string) (*models.ImageAnalysis, error) {
	req := &visionpb.AnnotateImageRequest{
		Image: &visionpb.Image{
			Source: &visionpb.ImageSource{ImageUri: imageURL},
		},
		Features: []*visionpb.Feature{
			{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: 10},
			{Type: visionpb.Feature_OBJECT_LOCALIZATION, MaxResults: 10},
			{Type: visionpb.Feature_IMAGE_PROPERTIES},
			{Type: visionpb.Feature_TEXT_DETECTION},
			{Type: visionpb.Feature_WEB_DETECTION, MaxResults: 10},
		},
	}

	batch, err := c.annotator.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{req},
	})
	if err != nil {
		return nil, fmt.Errorf("annotate image: %w", err)
	}
	resp := batch.GetResponses()[0]
	if resp.GetError() != nil {
		return nil, fmt.Errorf("annotate image: %s", resp.GetError().GetMessage())
	}

	return summarize(resp), nil
}
