package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all analyzer configuration
type Config struct {
	Channel      string   `yaml:"channel"`
	Format       string   `yaml:"format"`
	LogFiles     []string `yaml:"log_files"`
	Report       string   `yaml:"report"`
	TopN         int      `yaml:"top_n"`
	IgnoreNicks  []string `yaml:"ignore_nicks"`
	TrackRenames bool     `yaml:"track_renames"`
	Debug        bool     `yaml:"debug"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	return &Config{
		Format: "weechat",
		Report: "text",
		TopN:   10,
	}
}

// Load reads and parses a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults
	if cfg.Format == "" {
		cfg.Format = "weechat"
	}
	if cfg.Report == "" {
		cfg.Report = "text"
	}
	if cfg.TopN == 0 {
		cfg.TopN = 10
	}

	return &cfg, nil
}
