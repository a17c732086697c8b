// Package config provides configuration management for the portfolio application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"atcmoney/internal/errors"
	"atcmoney/internal/provider"
	"atcmoney/internal/store"
)

// Environment variable keys.
const (
	EnvConfigDir       = "ATCMONEY_CONFIG_DIR"
	EnvProvider        = "ATCMONEY_PROVIDER"
	EnvVantageAPIKey   = "ALPHA_VANTAGE_API_KEY"
	EnvVantageBaseURL  = "ALPHA_VANTAGE_URL"
	EnvStorageBackend  = "ATCMONEY_STORAGE_BACKEND"
)

// Config holds all application configuration.
type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"`

	configDir string
}

// ProviderConfig holds market data provider configuration.
type ProviderConfig struct {
	Type    string `mapstructure:"type"` // MOCK, VANTAGE
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// StorageConfig holds position store configuration.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // json, sqlite, memory
	Path    string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".atcmoney"
	}
	return filepath.Join(home, ".atcmoney")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
//
// The directory, its .env file and its config.toml are created when
// missing, so a first run works without any manual setup.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}

	if err := loadEnvFile(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{configDir: configDir}
	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg, configDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// loadEnvFile loads configDir/.env into the process environment,
// creating the file empty when it does not exist.
func loadEnvFile(configDir string) error {
	envPath := filepath.Join(configDir, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		if writeErr := os.WriteFile(envPath, nil, 0o600); writeErr != nil {
			return fmt.Errorf("creating env file: %w", writeErr)
		}
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return errors.Wrap(err, "loading env file")
	}
	return nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("provider.type", string(provider.TypeMock))
	v.SetDefault("storage.backend", store.BackendJSON)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if tplErr := createTemplateConfig(configDir); tplErr != nil {
				return tplErr
			}
			return v.Unmarshal(target)
		}
		return err
	}
	return v.Unmarshal(target)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvProvider); v != "" {
		cfg.Provider.Type = v
	}
	if v := os.Getenv(EnvVantageAPIKey); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv(EnvVantageBaseURL); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvStorageBackend); v != "" {
		cfg.Storage.Backend = v
	}
}

func applyDefaults(cfg *Config, configDir string) {
	if cfg.Storage.Path == "" {
		switch cfg.Storage.Backend {
		case store.BackendSQLite:
			cfg.Storage.Path = filepath.Join(configDir, "positions.db")
		default:
			cfg.Storage.Path = filepath.Join(configDir, "positions.json")
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Provider.Type {
	case string(provider.TypeMock), string(provider.TypeVantage), "":
	default:
		return errors.Wrapf(errors.ErrConfigInvalid,
			"provider type %q (must be MOCK or VANTAGE)", c.Provider.Type)
	}

	switch c.Storage.Backend {
	case store.BackendJSON, store.BackendSQLite, store.BackendMemory, "":
	default:
		return errors.Wrapf(errors.ErrConfigInvalid,
			"storage backend %q (must be json, sqlite or memory)", c.Storage.Backend)
	}
	return nil
}

// Dir returns the configuration directory this config was loaded from.
func (c *Config) Dir() string {
	return c.configDir
}

// ProviderSettings returns the provider construction settings.
func (c *Config) ProviderSettings() provider.Config {
	return provider.Config{
		Type:    provider.Type(c.Provider.Type),
		APIKey:  c.Provider.APIKey,
		BaseURL: c.Provider.BaseURL,
	}
}

// StoreSettings returns the position store construction settings.
func (c *Config) StoreSettings() store.Config {
	return store.Config{
		Backend: c.Storage.Backend,
		Path:    c.Storage.Path,
	}
}
