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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GOOGLE_PROJECT_ID", "test-gcp-project")
	t.Setenv("CTP_PROJECT_KEY", "test-project")
	t.Setenv("CTP_CLIENT_ID", "client-id")
	t.Setenv("CTP_CLIENT_SECRET", "client-secret")
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test-gcp-project", cfg.Google.ProjectID)
	assert.Equal(t, "us-central1", cfg.Google.Location)
	assert.Equal(t, "gemini-1.5-flash", cfg.Google.Model)
	assert.Equal(t, "test-project", cfg.Commercetools.ProjectKey)
	assert.Equal(t, DefaultFlagAttribute, cfg.FlagAttribute)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_YAMLWithEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
google:
  project_id: yaml-project
  location: europe-west4
  model: gemini-1.5-pro
commercetools:
  project_key: shop
  client_id: ${TEST_CT_CLIENT_ID}
  client_secret: secret-from-yaml
enrichment:
  flag_attribute: gen-description
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TEST_CT_CLIENT_ID", "expanded-client-id")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "yaml-project", cfg.Google.ProjectID)
	assert.Equal(t, "europe-west4", cfg.Google.Location)
	assert.Equal(t, "gemini-1.5-pro", cfg.Google.Model)
	assert.Equal(t, "expanded-client-id", cfg.Commercetools.ClientID)
	assert.Equal(t, "gen-description", cfg.FlagAttribute)
}

func TestLoad_EnvOverridesPort(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_MissingGoogleProject(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	setRequiredEnv(t)
	t.Setenv("GOOGLE_PROJECT_ID", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "google project id")
}

func TestLoad_MissingCommercetoolsCredentials(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	setRequiredEnv(t)
	t.Setenv("CTP_CLIENT_SECRET", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "commercetools credentials")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("google: [not: valid"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config YAML")
}
