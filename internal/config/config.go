// Package config provides configuration loading and validation for the
// jobseeker engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default reference-data locations, relative to the working directory.
const (
	DefaultTaxonomyPath = "data/skills.json"
	DefaultCatalogPath  = "data/jobs.csv"
)

// Config is the engine configuration. It can be loaded from a JSON file; all
// fields are optional and missing values use defaults or CLI flags.
type Config struct {
	// Reference data
	TaxonomyPath string `json:"taxonomy_path,omitempty"` // Path to skills.json
	CatalogPath  string `json:"catalog_path,omitempty"`  // Path to jobs.csv

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for the user store (optional)

	// Logging
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON logs instead of console
	Verbose  bool `json:"verbose,omitempty"`   // Debug-level logging
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields, consulting DATABASE_URL from the
// environment for the optional user store.
func (c *Config) ApplyDefaults() {
	if c.TaxonomyPath == "" {
		c.TaxonomyPath = DefaultTaxonomyPath
	}
	if c.CatalogPath == "" {
		c.CatalogPath = DefaultCatalogPath
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has usable values. The reference
// files must exist: the engine cannot serve recommendations or gap analyses
// without them.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
		return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
	}
	if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
		return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
	}
	return nil
}
