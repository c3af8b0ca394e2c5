package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputDir sets the directory holding expression-result files.
func OptInputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Dir", s) {
			c.Extract.InputDir = s
		}
	}
}

// OptOutputDir sets the directory receiving per-file report folders.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Dir", s) {
			c.Extract.OutputDir = s
		}
	}
}

// OptCatalogFile sets the spreadsheet listing GO terms to process.
func OptCatalogFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Catalog File", s) {
			c.Extract.CatalogFile = s
		}
	}
}

// OptGroupRows sets the fixed height of grouped-report columns.
func OptGroupRows(i int) Option {
	return func(c *Config) {
		if isValidInt("Group Rows", i) {
			c.Extract.GroupRows = i
		}
	}
}

// OptSpecies sets the species profile code for this run.
// Runtime-only field - not in ToOptions().
func OptSpecies(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if s != "" {
			c.Species = s
		}
	}
}

// OptHomeDir sets the home directory for config and log files.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}

// OptLogFormat sets the log output format ('json' or 'text').
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the log level ('debug', 'info', 'warn', 'error').
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where logs are written
// ('file', 'stdout' or 'stderr').
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}
