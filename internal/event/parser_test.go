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
	"errors"
	"testing"
)

// TestParseEvent verifies defensive extraction from product messages.
func TestParseEvent(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantID    string
		wantURL   string
		wantAttrs int
		wantErr   bool
	}{
		{
			name: "full message",
			payload: `{
				"resourceType": "ProductCreated",
				"productProjection": {
					"id": "prod-1",
					"masterVariant": {
						"images": [{"url": "https://x/img.jpg"}, {"url": "https://x/alt.jpg"}],
						"attributes": [{"name": "generateDescription", "value": "true"}]
					}
				}
			}`,
			wantID:    "prod-1",
			wantURL:   "https://x/img.jpg",
			wantAttrs: 1,
		},
		{
			name:    "missing product projection",
			payload: `{"resourceType": "ProductCreated"}`,
		},
		{
			name:    "missing master variant",
			payload: `{"productProjection": {"id": "prod-2"}}`,
			wantID:  "prod-2",
		},
		{
			name:    "empty images list",
			payload: `{"productProjection": {"id": "prod-3", "masterVariant": {"images": []}}}`,
			wantID:  "prod-3",
		},
		{
			name:    "not JSON",
			payload: "definitely not json",
			wantErr: true,
		},
		{
			name:    "truncated JSON",
			payload: `{"productProjection": {"id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := ParseEvent(tt.payload)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedPayload) {
					t.Fatalf("error = %v, want ErrMalformedPayload", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ev.ProductID != tt.wantID {
				t.Errorf("ProductID = %q, want %q", ev.ProductID, tt.wantID)
			}
			if ev.ImageURL != tt.wantURL {
				t.Errorf("ImageURL = %q, want %q", ev.ImageURL, tt.wantURL)
			}
			if len(ev.Attributes) != tt.wantAttrs {
				t.Errorf("len(Attributes) = %d, want %d", len(ev.Attributes), tt.wantAttrs)
			}
		})
	}
}

// TestParseEvent_NotificationTypeFallback verifies that messages using
// notificationType instead of resourceType still report a resource type.
func TestParseEvent_NotificationTypeFallback(t *testing.T) {
	ev, err := ParseEvent(`{"notificationType": "ProductPublished"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.ResourceType != "ProductPublished" {
		t.Errorf("ResourceType = %q, want %q", ev.ResourceType, "ProductPublished")
	}
}

// TestFlagValue verifies first-match-wins attribute lookup.
func TestFlagValue(t *testing.T) {
	ev := &ProductEvent{
		Attributes: []Attribute{
			{Name: "color", Value: "red"},
			{Name: "generateDescription", Value: "true"},
			{Name: "generateDescription", Value: "false"},
		},
	}

	if v := ev.FlagValue("generateDescription"); v != "true" {
		t.Errorf("FlagValue = %v, want %q (first match wins)", v, "true")
	}
	if v := ev.FlagValue("missing"); v != nil {
		t.Errorf("FlagValue for missing attribute = %v, want nil", v)
	}
}

// TestFlagValue_NonStringValues verifies that non-string attribute
// values are returned as-is, leaving the gate to reject them.
func TestFlagValue_NonStringValues(t *testing.T) {
	ev, err := ParseEvent(`{
		"productProjection": {
			"id": "p",
			"masterVariant": {
				"attributes": [{"name": "generateDescription", "value": true}]
			}
		}
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := ev.FlagValue("generateDescription")
	if _, isString := v.(string); isString {
		t.Errorf("FlagValue = %v (%T), want non-string boolean", v, v)
	}
	if v != true {
		t.Errorf("FlagValue = %v, want boolean true", v)
	}
}
