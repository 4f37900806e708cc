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

// Package commercetools writes generated descriptions back to the
// commercetools catalog. The write is optimistic: the client reads the
// product's current version and submits the update at that version.
// A version conflict is not retried — it surfaces as an ordinary
// failure.
package commercetools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/threadline/catalog-enrichment/internal/models"
)

// descriptionLocale is the locale the generated description is written
// under.
const descriptionLocale = "en"

// Client talks to the commercetools HTTP API for a single project.
type Client struct {
	httpClient *http.Client
	apiURL     string
	projectKey string
}

// NewClient creates a commercetools client around an HTTP client that
// already carries authentication (see NewHTTPClient).
func NewClient(httpClient *http.Client, apiURL, projectKey string) *Client {
	return &Client{
		httpClient: httpClient,
		apiURL:     apiURL,
		projectKey: projectKey,
	}
}

// NewHTTPClient builds an OAuth2 client-credentials HTTP client for
// the commercetools auth endpoint. Tokens are fetched and refreshed
// automatically.
func NewHTTPClient(ctx context.Context, authURL, clientID, clientSecret, projectKey string) *http.Client {
	creds := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf("%s/oauth/token", authURL),
		Scopes:       []string{fmt.Sprintf("manage_products:%s", projectKey)},
	}
	return creds.Client(ctx)
}

// product holds the fields we read back from a product resource.
type product struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

// updateAction is a single commercetools update action.
type updateAction struct {
	Action      string            `json:"action"`
	Description map[string]string `json:"description"`
}

// updateRequest is the body of a product update POST.
type updateRequest struct {
	Version int64          `json:"version"`
	Actions []updateAction `json:"actions"`
}

// Persist writes the description onto the product using a
// setDescription update action at the product's current version.
func (c *Client) Persist(ctx context.Context, productID, description string) (*models.ProductUpdate, error) {
	current, err := c.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(updateRequest{
		Version: current.Version,
		Actions: []updateAction{{
			Action:      "setDescription",
			Description: map[string]string{descriptionLocale: description},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal update request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/products/%s", c.apiURL, c.projectKey, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("commercetools rejected update for product %s: HTTP %d", productID, resp.StatusCode)
	}

	var updated product
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, fmt.Errorf("decode update response: %w", err)
	}

	return &models.ProductUpdate{ID: updated.ID, Version: updated.Version}, nil
}

// getProduct fetches the product to learn its current version.
func (c *Client) getProduct(ctx context.Context, productID string) (*product, error) {
	url := fmt.Sprintf("%s/%s/products/%s", c.apiURL, c.projectKey, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build product request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("product %s not found", productID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("commercetools returned HTTP %d for product %s", resp.StatusCode, productID)
	}

	var p product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}

	return &p, nil
}
