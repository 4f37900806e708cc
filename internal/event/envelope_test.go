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
	"encoding/base64"
	"errors"
	"testing"
)

// TestDecodeData verifies payload extraction from push envelopes.
func TestDecodeData(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr error
	}{
		{
			name: "valid payload",
			data: base64.StdEncoding.EncodeToString([]byte(`{"productId":"p1"}`)),
			want: `{"productId":"p1"}`,
		},
		{
			name: "surrounding whitespace trimmed",
			data: base64.StdEncoding.EncodeToString([]byte("  {\"a\":1}\n")),
			want: `{"a":1}`,
		},
		{
			name:    "absent data",
			data:    "",
			wantErr: ErrMissingPayload,
		},
		{
			name:    "data decodes to empty string",
			data:    base64.StdEncoding.EncodeToString([]byte("")),
			wantErr: ErrMissingPayload,
		},
		{
			name:    "data decodes to whitespace only",
			data:    base64.StdEncoding.EncodeToString([]byte("  \n\t")),
			wantErr: ErrMissingPayload,
		},
		{
			name:    "invalid base64 is a parse failure",
			data:    "!!!not-base64!!!",
			wantErr: ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &PushEnvelope{Message: PushMessage{Data: tt.data}}
			got, err := DecodeData(env)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("payload = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDecodeData_NilEnvelope verifies that a nil envelope reports a
// missing payload rather than panicking.
func TestDecodeData_NilEnvelope(t *testing.T) {
	if _, err := DecodeData(nil); !errors.Is(err, ErrMissingPayload) {
		t.Errorf("error = %v, want %v", err, ErrMissingPayload)
	}
}
