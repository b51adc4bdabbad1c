// =============================================================================
// Bill Converter - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a single YAML file.
// Every setting has a default matching the original tool's fixed behavior,
// so running without a config file is fully supported.
//
// CONFIGURATION FILE (config.yaml):
//   default_title: PRODUCTS
//   report_author: Sophia
//   sheet_font: Times New Roman
//   write_error_log: true
//   write_summary_log: false
//   log_level: info
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// DefaultTitle is the document title used when the caller provides none.
	// Default: "PRODUCTS"
	DefaultTitle string `yaml:"default_title"`

	// ReportAuthor is the name printed in the report and invoice footers.
	// Default: "Sophia"
	ReportAuthor string `yaml:"report_author"`

	// SheetFont is the font applied to every spreadsheet cell.
	// Default: "Times New Roman"
	SheetFont string `yaml:"sheet_font"`

	// WriteErrorLog controls whether diagnostics are also written to a
	// .errors.log file next to the generated documents.
	// Default: true
	WriteErrorLog *bool `yaml:"write_error_log"`

	// WriteSummaryLog controls whether a per-run summary log is written
	// next to the generated documents.
	// Default: false
	WriteSummaryLog bool `yaml:"write_summary_log"`

	// LogLevel controls console verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// ErrorLogEnabled reports whether an error log should be written.
func (c *Config) ErrorLogEnabled() bool {
	return c.WriteErrorLog == nil || *c.WriteErrorLog
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the given path. A missing file is not an
// error: the defaults apply, matching the original tool which had no
// configuration at all. A file that exists but cannot be parsed is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.DefaultTitle == "" {
		cfg.DefaultTitle = "PRODUCTS"
	}
	if cfg.ReportAuthor == "" {
		cfg.ReportAuthor = "Sophia"
	}
	if cfg.SheetFont == "" {
		cfg.SheetFont = "Times New Roman"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate rejects values the rest of the pipeline cannot work with.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
