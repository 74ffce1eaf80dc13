// Package iocatalog loads the prior catalog from the file system.
package iocatalog

import (
	"log/slog"
	"os"

	"github.com/cwdwatch/prevexport/pkg/config"
	"github.com/cwdwatch/prevexport/pkg/prior"
)

// Load reads and validates the prior catalog. An explicit
// Export.CatalogFile takes precedence over the catalog.yaml in the
// config directory.
func Load(cfg *config.Config) (*prior.Catalog, error) {
	path := cfg.Export.CatalogFile
	if path == "" {
		path = config.CatalogFilePath(cfg.HomeDir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CatalogConfigError(path, err)
	}

	cat, err := prior.Parse(data)
	if err != nil {
		return nil, CatalogConfigError(path, err)
	}

	slog.Info("Prior catalog loaded",
		"path", path,
		"schema_version", cat.SchemaVersion,
		"species", len(cat.Species))
	return cat, nil
}
