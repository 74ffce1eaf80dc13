package config_test

import (
	"path/filepath"
	"testing"

	"github.com/cwdwatch/prevexport/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "/data", cfg.Data.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "file", cfg.Log.Destination)
	assert.Empty(t, cfg.Export.Species)
	assert.Empty(t, cfg.Export.CatalogFile)
	assert.Empty(t, cfg.HomeDir)
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDataDir("/tmp/export"),
		config.OptSpecies("Elk"),
		config.OptCatalogFile("/tmp/catalog.yaml"),
		config.OptLogLevel("DEBUG"),
		config.OptLogFormat("text"),
		config.OptLogDestination("stderr"),
		config.OptHomeDir("/home/user"),
	})

	assert.Equal(t, "/tmp/export", cfg.Data.Dir)
	assert.Equal(t, "Elk", cfg.Export.Species)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.Export.CatalogFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)
	assert.Equal(t, "/home/user", cfg.HomeDir)
}

// Invalid values are rejected with a warning; the config keeps its
// previous valid state.
func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDataDir("  "),
		config.OptLogLevel("verbose"),
		config.OptLogFormat("xml"),
		config.OptLogDestination("syslog"),
		config.OptHomeDir(""),
	})

	assert.Equal(t, "/data", cfg.Data.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "file", cfg.Log.Destination)
	assert.Empty(t, cfg.HomeDir)
}

// ToOptions round-trips persistent fields and skips runtime-only
// ones.
func TestToOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDataDir("/tmp/export"),
		config.OptSpecies("Elk"),
		config.OptLogLevel("warn"),
		config.OptHomeDir("/home/user"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, "/tmp/export", clone.Data.Dir)
	assert.Equal(t, "warn", clone.Log.Level)
	assert.Empty(t, clone.Export.Species)
	assert.Empty(t, clone.HomeDir)
}

func TestPaths(t *testing.T) {
	home := "/home/user"
	assert.Equal(t,
		filepath.Join(home, ".config", "prevexport", "config.yaml"),
		config.ConfigFilePath(home))
	assert.Equal(t,
		filepath.Join(home, ".config", "prevexport", "catalog.yaml"),
		config.CatalogFilePath(home))
	assert.Equal(t,
		filepath.Join(home, ".local", "share", "prevexport", "logs"),
		config.LogDir(home))

	data := "/data"
	assert.Equal(t, "/data/params.json", config.ParamsFile(data))
	assert.Equal(t, "/data/sample.ndjson", config.SamplesFile(data))
	assert.Equal(t,
		"/data/sub_administrative_area.ndjson", config.AreasFile(data))
	assert.Equal(t,
		"/data/SpeedGoatOutputMatrix.csv", config.OutputFile(data))
	assert.Equal(t,
		"/data/attachments/info.html", config.InfoFile(data))
	assert.Equal(t,
		"/data/attachments/execution_log.log", config.ExecLogFile(data))
	assert.Equal(t,
		"/data/attachments.json", config.AttachmentsJSONFile(data))
}
