package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"tableside/internal/config"
)

// LoadConfig reads the yaml config file at path. When the file does not
// exist the caller is expected to fall back to config.Load (environment).
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
