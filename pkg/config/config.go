// Package config provides configuration management for gngenes.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Extract: input_dir, output_dir, catalog_file, group_rows
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Species (per-run selector, prompted when absent)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNGENES_ prefix with underscores for nesting:
//
//	GNGENES_EXTRACT_INPUT_DIR=input
//	GNGENES_EXTRACT_OUTPUT_DIR=output
//	GNGENES_LOG_LEVEL=info
package config

// Config represents the complete gngenes configuration.
type Config struct {
	// Extract contains settings for the extraction pipeline.
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Species is the species profile code for this run (S, SW, A).
	// It is runtime-only: provided by flag or interactive prompt.
	Species string

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ExtractConfig contains settings for the extraction pipeline.
type ExtractConfig struct {
	// InputDir is the directory holding expression-result files.
	InputDir string `mapstructure:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory receiving per-file report folders.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// CatalogFile is the spreadsheet listing GO terms to process in
	// its "names" column.
	CatalogFile string `mapstructure:"catalog_file" yaml:"catalog_file"`

	// GroupRows is the fixed height of grouped-report columns.
	// Columns are padded with empty values or truncated to this many
	// rows, regardless of the number of matched genes.
	GroupRows int `mapstructure:"group_rows" yaml:"group_rows"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Extract: ExtractConfig{
			InputDir:    "input",
			OutputDir:   "output",
			CatalogFile: "Go_termnIDs_and_file_names.xlsx",
			GroupRows:   10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
