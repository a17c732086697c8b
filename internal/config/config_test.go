package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atcmoney/internal/errors"
	"atcmoney/internal/provider"
	"atcmoney/internal/store"
)

func TestLoadCreatesConfigDirAndFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "atcmoney")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir())
	assert.FileExists(t, filepath.Join(dir, ".env"))
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	// Defaults apply on a fresh directory.
	assert.Equal(t, string(provider.TypeMock), cfg.Provider.Type)
	assert.Equal(t, store.BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "positions.json"), cfg.Storage.Path)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[provider]
type = "VANTAGE"
api_key = "key"
base_url = "https://example.com"

[storage]
backend = "sqlite"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, string(provider.TypeVantage), cfg.Provider.Type)
	assert.Equal(t, "key", cfg.Provider.APIKey)
	assert.Equal(t, store.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "positions.db"), cfg.Storage.Path)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv(EnvProvider, "VANTAGE")
	t.Setenv(EnvVantageAPIKey, "env-key")
	t.Setenv(EnvVantageBaseURL, "https://env.example.com")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	settings := cfg.ProviderSettings()
	assert.Equal(t, provider.TypeVantage, settings.Type)
	assert.Equal(t, "env-key", settings.APIKey)
	assert.Equal(t, "https://env.example.com", settings.BaseURL)
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("ATCMONEY_PROVIDER=VANTAGE\nALPHA_VANTAGE_API_KEY=file-key\nALPHA_VANTAGE_URL=https://file.example.com\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvProvider)
		os.Unsetenv(EnvVantageAPIKey)
		os.Unsetenv(EnvVantageBaseURL)
	})

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "VANTAGE", cfg.Provider.Type)
	assert.Equal(t, "file-key", cfg.Provider.APIKey)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[provider]\ntype = \"BLOOMBERG\"\n"), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Backend: "bolt"}}
	assert.ErrorIs(t, cfg.Validate(), errors.ErrConfigInvalid)
}
