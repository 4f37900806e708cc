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

// Package models defines the data structures shared across the enrichment service.
package models

// Fallback values used when a Vision detector returns nothing for an image.
const (
	NoLabels      = "No labels detected"
	NoObjects     = "No objects detected"
	NoColors      = "No colors detected"
	NoText        = "No text detected"
	NoWebEntities = "No web entities detected"
)

// ImageAnalysis is the summarised output of the Cloud Vision annotation
// for a product image. Every field is guaranteed non-empty: detectors
// that find nothing are replaced by the fallback constants above.
//
// This struct's JSON serialisation is returned verbatim to the caller
// as the `productAnalysis` field of a successful enrichment response.
type ImageAnalysis struct {
	Labels      string   `json:"labels"`
	Objects     string   `json:"objects"`
	Colors      []string `json:"colors"`
	Text        string   `json:"text"`
	WebEntities string   `json:"webEntities"`
}

// ProductUpdate is the commercetools acknowledgement that a description
// write succeeded, carrying the product's new version.
type ProductUpdate struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}
