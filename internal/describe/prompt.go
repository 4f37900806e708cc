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

package describe

import (
	"fmt"
	"strings"

	"github.com/threadline/catalog-enrichment/internal/models"
)

// promptTemplate embeds all five image analysis fields and the fixed
// instruction set for apparel copy.
const promptTemplate = `You are a product copywriter for an online apparel store.
Write a product description based on the following image analysis:

Labels: %s
Objects: %s
Dominant colors: %s
Detected text: %s
Web entities: %s

Instructions:
- Identify the apparel category the product belongs to.
- Describe the fabric and material qualities suggested by the image.
- Suggest occasions the product is suitable for.
- Give brief styling advice on what to pair it with.
- Include care instructions.
- Keep the description between 100 and 150 words.
- End with a "Key Features" sub-section listing the main selling points.
- Do not use markdown emphasis characters such as * or _ anywhere.`

// buildPrompt renders the prompt template for an image analysis.
func buildPrompt(analysis *models.ImageAnalysis) string {
	return fmt.Sprintf(promptTemplate,
		analysis.Labels,
		analysis.Objects,
		strings.Join(analysis.Colors, ", "),
		analysis.Text,
		analysis.WebEntities,
	)
}
