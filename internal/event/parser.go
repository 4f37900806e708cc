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

package event

import (
	"encoding/json"
	"fmt"
)

// Attribute is a single product attribute. Names are not guaranteed
// unique across the sequence; lookups take the first match.
type Attribute struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ProductEvent is the flat view of a product change message that the
// enrichment pipeline consumes. ProductID and ImageURL may be empty
// when the message omits the corresponding nested fields — that is not
// an error at this layer, the gate decides what to do with it.
type ProductEvent struct {
	ResourceType string
	ProductID    string
	ImageURL     string
	Attributes   []Attribute
}

// productMessage mirrors the relevant fields of a commercetools
// subscription message. Everything is optional; the extractor copes
// with any field being absent.
type productMessage struct {
	ResourceType      string `json:"resourceType"`
	NotificationType  string `json:"notificationType"`
	ProductProjection *struct {
		ID            string `json:"id"`
		MasterVariant *struct {
			Images []struct {
				URL string `json:"url"`
			} `json:"images"`
			Attributes []Attribute `json:"attributes"`
		} `json:"masterVariant"`
	} `json:"productProjection"`
}

// ParseEvent parses a decoded message payload into a ProductEvent.
//
// A JSON parse failure yields ErrMalformedPayload and aborts the whole
// request. Missing nested fields never fail: the corresponding
// ProductEvent fields are simply left empty.
func ParseEvent(payload string) (*ProductEvent, error) {
	var msg productMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return nil, fmt.Errorf("%w: parse product message: %v", ErrMalformedPayload, err)
	}

	ev := &ProductEvent{ResourceType: msg.ResourceType}
	if ev.ResourceType == "" {
		ev.ResourceType = msg.NotificationType
	}

	if proj := msg.ProductProjection; proj != nil {
		ev.ProductID = proj.ID
		if mv := proj.MasterVariant; mv != nil {
			if len(mv.Images) > 0 {
				ev.ImageURL = mv.Images[0].URL
			}
			ev.Attributes = mv.Attributes
		}
	}

	return ev, nil
}

// FlagValue returns the value of the first attribute whose name matches
// key, or nil if no attribute matches.
func (e *ProductEvent) FlagValue(key string) any {
	for _, a := range e.Attributes {
		if a.Name == key {
			return a.Value
		}
	}
	return nil
}
