package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside a portfolio directory.
const FileName = "folio.yaml"

// Config represents the top-level folio.yaml configuration.
type Config struct {
	Portfolio PortfolioConfig `yaml:"portfolio"`
	Log       LogConfig       `yaml:"log"`
	Git       GitConfig       `yaml:"git"`
}

// PortfolioConfig identifies the portfolio and its ledger sheet.
type PortfolioConfig struct {
	Name   string `yaml:"name"`
	Ledger string `yaml:"ledger"` // sheet filename, relative to the portfolio dir
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a folio.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Portfolio.Ledger == "" {
		cfg.Portfolio.Ledger = "portfolio.csv"
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new portfolio.
func Default(name string) *Config {
	return &Config{
		Portfolio: PortfolioConfig{
			Name:   name,
			Ledger: "portfolio.csv",
		},
		Log: LogConfig{
			Level: "info",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Folio",
			AuthorEmail: "folio@localhost",
		},
	}
}
