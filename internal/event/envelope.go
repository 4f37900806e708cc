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

// Package event decodes Pub/Sub push envelopes and extracts product
// change events from them. The push body wraps the actual product
// message in a base64-encoded `message.data` field:
//
//	{
//	  "subscription": "projects/my-project/subscriptions/my-sub",
//	  "message": {
//	    "attributes": {"attr1": "attr1-value"},
//	    "data": "aGVsbG8gd29ybGQ=",
//	    "messageId": "2070443601311540",
//	    "publishTime": "2021-02-26T19:13:55.749Z"
//	  }
//	}
package event

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingPayload means the push envelope carried no message data.
// An envelope whose data decodes to an empty string is treated the
// same way. Mapped to HTTP 400.
var ErrMissingPayload = errors.New("no message payload in push envelope")

// ErrMalformedPayload means the message data was present but could not
// be decoded into a product event. Mapped to HTTP 500.
var ErrMalformedPayload = errors.New("malformed message payload")

// PushMessage is the inner Pub/Sub message of a push delivery.
type PushMessage struct {
	Attributes  map[string]string `json:"attributes,omitempty"`
	Data        string            `json:"data"`
	MessageID   string            `json:"messageId,omitempty"`
	PublishTime string            `json:"publishTime,omitempty"`
}

// PushEnvelope is the HTTP body Pub/Sub POSTs to the push endpoint.
type PushEnvelope struct {
	Subscription string      `json:"subscription,omitempty"`
	Message      PushMessage `json:"message"`
}

// DecodeData extracts and base64-decodes the message payload from a
// push envelope, trimming surrounding whitespace.
//
// An absent or empty data field yields ErrMissingPayload. Data that is
// present but not valid base64 yields ErrMalformedPayload — it is a
// parse-stage failure, not a structural one.
func DecodeData(env *PushEnvelope) (string, error) {
	if env == nil || env.Message.Data == "" {
		return "", ErrMissingPayload
	}

	raw, err := base64.StdEncoding.DecodeString(env.Message.Data)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64 data: %v", ErrMalformedPayload, err)
	}

	decoded := strings.TrimSpace(string(raw))
	if decoded == "" {
		return "", ErrMissingPayload
	}

	return decoded, nil
}
