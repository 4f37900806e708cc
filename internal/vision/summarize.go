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

package vision

import (
	"fmt"
	"strings"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/threadline/catalog-enrichment/internal/models"
)

const (
	// maxColors caps the dominant colours reported per image.
	maxColors = 3

	// maxWebEntities caps the web entities reported per image.
	maxWebEntities = 5
)

// summarize flattens an annotation response into the five analysis
// fields, substituting the fallback value wherever a detector found
// nothing.
func summarize(resp *visionpb.AnnotateImageResponse) *models.ImageAnalysis {
	return &models.ImageAnalysis{
		Labels:      summarizeLabels(resp.GetLabelAnnotations()),
		Objects:     summarizeObjects(resp.GetLocalizedObjectAnnotations()),
		Colors:      summarizeColors(resp.GetImagePropertiesAnnotation()),
		Text:        summarizeText(resp.GetTextAnnotations()),
		WebEntities: summarizeWebEntities(resp.GetWebDetection()),
	}
}

func summarizeLabels(labels []*visionpb.EntityAnnotation) string {
	if len(labels) == 0 {
		return models.NoLabels
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.GetDescription())
	}
	return strings.Join(parts, ", ")
}

func summarizeObjects(objects []*visionpb.LocalizedObjectAnnotation) string {
	if len(objects) == 0 {
		return models.NoObjects
	}
	parts := make([]string, 0, len(objects))
	for _, o := range objects {
		parts = append(parts, o.GetName())
	}
	return strings.Join(parts, ", ")
}

func summarizeColors(props *visionpb.ImageProperties) []string {
	colors := props.GetDominantColors().GetColors()
	if len(colors) == 0 {
		return []string{models.NoColors}
	}
	if len(colors) > maxColors {
		colors = colors[:maxColors]
	}
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		rgb := c.GetColor()
		out = append(out, fmt.Sprintf("rgb(%d, %d, %d)",
			int(rgb.GetRed()), int(rgb.GetGreen()), int(rgb.GetBlue())))
	}
	return out
}

func summarizeText(annotations []*visionpb.EntityAnnotation) string {
	// The first text annotation holds the full detected text block.
	if len(annotations) == 0 || strings.TrimSpace(annotations[0].GetDescription()) == "" {
		return models.NoText
	}
	return strings.TrimSpace(annotations[0].GetDescription())
}

func summarizeWebEntities(web *visionpb.WebDetection) string {
	entities := web.GetWebEntities()
	parts := make([]string, 0, maxWebEntities)
	for _, e := range entities {
		if e.GetDescription() == "" {
			continue
		}
		parts = append(parts, e.GetDescription())
		if len(parts) == maxWebEntities {
			break
		}
	}
	if len(parts) == 0 {
		return models.NoWebEntities
	}
	return strings.Join(parts, ", ")
}
