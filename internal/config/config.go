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

// Package config loads configuration from config.yaml and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFlagAttribute is the product attribute that gates enrichment
// when no other key is configured.
const DefaultFlagAttribute = "generateDescription"

// GoogleConfig identifies the GCP project hosting the Vision and
// Vertex AI collaborators.
type GoogleConfig struct {
	ProjectID string
	Location  string
	Model     string
}

// CommercetoolsConfig holds credentials for the catalog project.
type CommercetoolsConfig struct {
	ProjectKey   string
	ClientID     string
	ClientSecret string
	AuthURL      string
	APIURL       string
}

// Config holds all configuration for the enrichment service.
type Config struct {
	Google        GoogleConfig
	Commercetools CommercetoolsConfig

	// FlagAttribute is the name of the product attribute that gates
	// description generation.
	FlagAttribute string

	// Server
	Port int
}

// rawConfig mirrors the YAML structure for unmarshalling.
type rawConfig struct {
	Google struct {
		ProjectID string `yaml:"project_id"`
		Location  string `yaml:"location"`
		Model     string `yaml:"model"`
	} `yaml:"google"`
	Commercetools struct {
		ProjectKey   string `yaml:"project_key"`
		ClientID     string `yaml:"client_id"`
		ClientSecret string `yaml:"client_secret"`
		AuthURL      string `yaml:"auth_url"`
		APIURL       string `yaml:"api_url"`
	} `yaml:"commercetools"`
	Enrichment struct {
		FlagAttribute string `yaml:"flag_attribute"`
	} `yaml:"enrichment"`
}

// Load reads configuration from config.yaml (with env var expansion)
// and environment variables. The YAML file is optional; environment
// variables alone are enough.
func Load() (*Config, error) {
	configPath := envOrDefault("CONFIG_PATH", "/app/config/config.yaml")

	var raw rawConfig
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		// Expand ${VAR} references in the YAML
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
			return nil, fmt.Errorf("parse config YAML: %w", err)
		}
	case os.IsNotExist(err):
		// Env-only configuration
	default:
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	cfg := &Config{
		Google: GoogleConfig{
			ProjectID: firstNonEmpty(raw.Google.ProjectID, os.Getenv("GOOGLE_PROJECT_ID")),
			Location:  firstNonEmpty(raw.Google.Location, envOrDefault("GOOGLE_LOCATION", "us-central1")),
			Model:     firstNonEmpty(raw.Google.Model, envOrDefault("GOOGLE_MODEL", "gemini-1.5-flash")),
		},
		Commercetools: CommercetoolsConfig{
			ProjectKey:   firstNonEmpty(raw.Commercetools.ProjectKey, os.Getenv("CTP_PROJECT_KEY")),
			ClientID:     firstNonEmpty(raw.Commercetools.ClientID, os.Getenv("CTP_CLIENT_ID")),
			ClientSecret: firstNonEmpty(raw.Commercetools.ClientSecret, os.Getenv("CTP_CLIENT_SECRET")),
			AuthURL:      firstNonEmpty(raw.Commercetools.AuthURL, envOrDefault("CTP_AUTH_URL", "https://auth.europe-west1.gcp.commercetools.com")),
			APIURL:       firstNonEmpty(raw.Commercetools.APIURL, envOrDefault("CTP_API_URL", "https://api.europe-west1.gcp.commercetools.com")),
		},
		FlagAttribute: firstNonEmpty(raw.Enrichment.FlagAttribute, envOrDefault("FLAG_ATTRIBUTE", DefaultFlagAttribute)),
		Port:          envOrDefaultInt("PORT", 8080),
	}

	if cfg.Google.ProjectID == "" {
		return nil, fmt.Errorf("google project id is required — set google.project_id or GOOGLE_PROJECT_ID")
	}

	ct := cfg.Commercetools
	if ct.ProjectKey == "" || ct.ClientID == "" || ct.ClientSecret == "" {
		return nil, fmt.Errorf("commercetools credentials are required — set project key, client id, and client secret")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
