// Package config provides configuration management for prevexport.
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
//   - Data: dir
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Export.Species, Export.CatalogFile (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PREVEXPORT_ prefix with underscores for nesting:
//
//	PREVEXPORT_DATA_DIR=/data
//	PREVEXPORT_LOG_LEVEL=info
package config

// Config represents the complete prevexport configuration.
type Config struct {
	// Data describes where warehouse export files live.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// Export contains settings specific to the run command.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DataConfig describes the data exchange directory shared with the
// warehouse orchestrator.
type DataConfig struct {
	// Dir is the directory holding params.json, sample.ndjson and
	// sub_administrative_area.ndjson, and receiving the outputs.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// ExportConfig contains settings specific to the run command.
type ExportConfig struct {
	// Species overrides the species selected in params.json.
	// Runtime-only; used mostly for debugging a warehouse export.
	Species string `mapstructure:"species" yaml:"species"`

	// CatalogFile points to an alternative prior catalog file.
	// Empty means the catalog.yaml from the config directory.
	CatalogFile string `mapstructure:"catalog_file" yaml:"catalog_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is the log output format: json or text.
	Format string `mapstructure:"format" yaml:"format"`

	// Destination is where logs go: file, stdout, stderr.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with default values. The result is always
// valid; mutate it only through Update with Option functions.
func New() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "/data",
		},
		Log: LogConfig{
			Level:       "info",
			Format:      "json",
			Destination: "file",
		},
	}
}
