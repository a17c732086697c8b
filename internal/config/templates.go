package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# atcmoney Configuration

[provider]
# Market data provider: "MOCK" or "VANTAGE"
type = "MOCK"
# Alpha Vantage credentials; can also be set via ALPHA_VANTAGE_API_KEY
# and ALPHA_VANTAGE_URL in the .env file next to this one.
api_key = ""
base_url = ""

[storage]
# Position store backend: "json", "sqlite" or "memory"
backend = "json"
# Backing file path; defaults to positions.json / positions.db in this directory
path = ""

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the terminal
console = true
# Log to a rotating file under logs/
file = true
`

// createTemplateConfig writes a commented config.toml into configDir.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0o644)
}
