package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "prevexport"

// File names of the warehouse export exchange, fixed by the upstream
// orchestrator contract.
const (
	ParamsFileName      = "params.json"
	SamplesFileName     = "sample.ndjson"
	AreasFileName       = "sub_administrative_area.ndjson"
	OutputFileName      = "SpeedGoatOutputMatrix.csv"
	AttachmentsDirName  = "attachments"
	InfoFileName        = "info.html"
	AttachmentsJSONName = "attachments.json"
	ExecLogFileName     = "execution_log.log"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/prevexport by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/prevexport/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CatalogFilePath returns the full path to the catalog.yaml file with
// per-species prior definitions.
func CatalogFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "catalog.yaml")
}

// ParamsFile returns the path of the warehouse parameters file.
func ParamsFile(dataDir string) string {
	return filepath.Join(dataDir, ParamsFileName)
}

// SamplesFile returns the path of the warehouse samples file.
func SamplesFile(dataDir string) string {
	return filepath.Join(dataDir, SamplesFileName)
}

// AreasFile returns the path of the sub-administrative areas file.
func AreasFile(dataDir string) string {
	return filepath.Join(dataDir, AreasFileName)
}

// OutputFile returns the path of the output matrix CSV.
func OutputFile(dataDir string) string {
	return filepath.Join(dataDir, OutputFileName)
}

// AttachmentsDir returns the directory receiving user-visible run
// artifacts (info.html, execution log).
func AttachmentsDir(dataDir string) string {
	return filepath.Join(dataDir, AttachmentsDirName)
}

// InfoFile returns the path of the HTML run report.
func InfoFile(dataDir string) string {
	return filepath.Join(AttachmentsDir(dataDir), InfoFileName)
}

// AttachmentsJSONFile returns the path of the attachments manifest.
func AttachmentsJSONFile(dataDir string) string {
	return filepath.Join(dataDir, AttachmentsJSONName)
}

// ExecLogFile returns the path of the execution log inside the
// attachments directory.
func ExecLogFile(dataDir string) string {
	return filepath.Join(AttachmentsDir(dataDir), ExecLogFileName)
}
