// Package config loads the application configuration from a YAML file
// with environment overrides and sensible defaults.
package config

import (
	"fmt"
	"os"

	"api-doc-parser/internal/llm"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	LLM    llm.Config   `yaml:"llm"`
	Output OutputConfig `yaml:"output"`
}

// OutputConfig holds output locations
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	LogDir string `yaml:"log_dir"`
}

// LoadConfig loads configuration from path. An empty path means
// defaults only. The API key is taken from the OPENAI_API_KEY or
// LLM_API_KEY environment variable when not set in the file.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		LLM: *llm.NewDefaultConfig(),
		Output: OutputConfig{
			Dir:    "output",
			LogDir: "logs",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if config.LLM.APIKey == "" {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			config.LLM.APIKey = key
		} else if key := os.Getenv("LLM_API_KEY"); key != "" {
			config.LLM.APIKey = key
		}
	}

	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	defaults := llm.NewDefaultConfig()
	if config.LLM.Provider == "" {
		config.LLM.Provider = defaults.Provider
	}
	if config.LLM.Model == "" {
		config.LLM.Model = defaults.Model
	}
	if config.LLM.MaxTokens == 0 {
		config.LLM.MaxTokens = defaults.MaxTokens
	}
	if config.LLM.Temperature == 0 {
		config.LLM.Temperature = defaults.Temperature
	}
	if config.Output.Dir == "" {
		config.Output.Dir = "output"
	}
	if config.Output.LogDir == "" {
		config.Output.LogDir = "logs"
	}
}
