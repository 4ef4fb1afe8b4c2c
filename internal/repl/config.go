package repl

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds REPL presentation settings, optionally overridden by a
// .lambdapirc.yaml file in the user's home directory.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	HistoryPath        string `yaml:"history_path"`
}

// DefaultConfig returns the REPL's built-in defaults: a `>>> ` prompt.
func DefaultConfig() *Config {
	return &Config{
		Prompt:             ">>> ",
		ContinuationPrompt: "... ",
		HistoryPath:        filepath.Join(os.TempDir(), ".lambdapi_history"),
	}
}

// LoadConfig reads a YAML config file at path, overlaying any set fields on
// top of DefaultConfig. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, err
	}
	if override.Prompt != "" {
		cfg.Prompt = override.Prompt
	}
	if override.ContinuationPrompt != "" {
		cfg.ContinuationPrompt = override.ContinuationPrompt
	}
	if override.HistoryPath != "" {
		cfg.HistoryPath = override.HistoryPath
	}
	return cfg, nil
}
