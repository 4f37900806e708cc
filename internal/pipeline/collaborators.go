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

package pipeline

import (
	"context"

	"github.com/threadline/catalog-enrichment/internal/models"
)

// Analyzer produces a structured analysis of a product image.
type Analyzer interface {
	AnalyzeImage(ctx context.Context, imageURL string) (*models.ImageAnalysis, error)
}

// Generator turns an image analysis into a natural-language product
// description.
type Generator interface {
	GenerateDescription(ctx context.Context, analysis *models.ImageAnalysis) (string, error)
}

// Persister writes a generated description back to the catalog and
// acknowledges with the product's new state.
type Persister interface {
	Persist(ctx context.Context, productID, description string) (*models.ProductUpdate, error)
}
