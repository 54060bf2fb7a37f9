// Package config loads the sweep configuration from YAML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/ticklab/strategies"
	"gopkg.in/yaml.v3"
)

// Config is the complete sweep configuration.
type Config struct {
	Data    DataConfig    `json:"data" yaml:"data"`
	Sweep   SweepConfig   `json:"sweep" yaml:"sweep"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// DataConfig locates the tick file to replay.
type DataConfig struct {
	Path string `json:"path" yaml:"path"`
}

// SweepConfig controls which families run and how.
type SweepConfig struct {
	Workers    int      `json:"workers" yaml:"workers"`
	Strategies []string `json:"strategies,omitempty" yaml:"strategies,omitempty"` // empty = all
	Top        int      `json:"top" yaml:"top"`                                   // report size
}

// JournalConfig selects persistence: "none", "csv", or "sqlite".
type JournalConfig struct {
	Type        string `json:"type" yaml:"type"`
	ResultsFile string `json:"results_file,omitempty" yaml:"results_file,omitempty"`
	TradesFile  string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns a runnable configuration lacking only the data path.
func Default() *Config {
	return &Config{
		Sweep:   SweepConfig{Workers: 1, Top: 10},
		Journal: JournalConfig{Type: "none"},
		Log:     LogConfig{Level: "info"},
	}
}

// LoadFromFile loads a configuration from path, trying YAML first and
// falling back to JSON, then validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep.workers must not be negative")
	}
	if c.Sweep.Top < 0 {
		return fmt.Errorf("sweep.top must not be negative")
	}

	known := make(map[string]bool)
	for _, f := range strategies.Families() {
		known[f] = true
	}
	for _, s := range c.Sweep.Strategies {
		if !known[strings.ToLower(s)] {
			return fmt.Errorf("unknown strategy family %q", s)
		}
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.ResultsFile == "" || c.Journal.TradesFile == "" {
			return fmt.Errorf("journal.results_file and journal.trades_file are required for csv journaling")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path is required for sqlite journaling")
		}
	default:
		return fmt.Errorf("journal.type must be none, csv, or sqlite")
	}

	return nil
}
