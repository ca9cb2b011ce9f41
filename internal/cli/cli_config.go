package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSchemaPath is used when neither a flag, the environment nor the
// user config names a schema file.
const DefaultSchemaPath = "./params.schema.yaml"

// CLIConfig holds user-level defaults for paramctl
type CLIConfig struct {
	Schema   string `yaml:"schema"`
	LogLevel string `yaml:"logLevel"`
}

// LoadCLIConfig loads configuration from multiple sources in order of precedence:
// 1. Flags (handled by caller)
// 2. Environment variables
// 3. Config file (~/.paramctl/config.yaml)
func LoadCLIConfig() (*CLIConfig, error) {
	homeDir, _ := os.UserHomeDir()
	return loadCLIConfigFrom(homeDir)
}

func loadCLIConfigFrom(homeDir string) (*CLIConfig, error) {
	config := &CLIConfig{}

	if homeDir != "" {
		configPath := filepath.Join(homeDir, ".paramctl", "config.yaml")
		data, err := os.ReadFile(configPath)
		if err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	if env := os.Getenv("PARAMCTL_SCHEMA"); env != "" {
		config.Schema = env
	}
	if env := os.Getenv("PARAMCTL_LOG_LEVEL"); env != "" {
		config.LogLevel = env
	}

	if config.Schema == "" {
		config.Schema = DefaultSchemaPath
	}
	return config, nil
}
