package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type PathsConfig struct {
	Audio          string `yaml:"audio"`
	Prompts        string `yaml:"prompts"`
	Transcriptions string `yaml:"transcriptions"`
}

type GeminiConfig struct {
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the config file at path. A missing file is not an error:
// the tool runs on its conventional defaults (Audio/, prompts/,
// Transcriptions/) without any configuration present.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Audio == "" {
		c.Paths.Audio = "Audio"
	}
	if c.Paths.Prompts == "" {
		c.Paths.Prompts = "prompts"
	}
	if c.Paths.Transcriptions == "" {
		c.Paths.Transcriptions = "Transcriptions"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-pro"
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.1
	}
	if c.Gemini.MaxOutputTokens == 0 {
		c.Gemini.MaxOutputTokens = 4096
	}
	if c.Output.Format == "" {
		c.Output.Format = "txt"
	}
	if c.Output.Format != "txt" && c.Output.Format != "docx" {
		return fmt.Errorf("output.format must be txt or docx, got %q", c.Output.Format)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.MaxConcurrent <= 0 {
		c.Watch.MaxConcurrent = 1
	}

	return nil
}
