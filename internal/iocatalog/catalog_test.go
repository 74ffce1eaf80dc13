package iocatalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwdwatch/prevexport/internal/iocatalog"
	"github.com/cwdwatch/prevexport/pkg/config"
	"github.com/cwdwatch/prevexport/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
schema_version: wtsurv-test
species:
  - name: Elk
    priors:
      - {source: Other, age: All Ages, sex: All Sexes}
`

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{config.OptCatalogFile(path)})

	cat, err := iocatalog.Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, "wtsurv-test", cat.SchemaVersion)
}

func TestLoadFromConfigDir(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(config.ConfigDir(home), 0755))
	require.NoError(t, os.WriteFile(
		config.CatalogFilePath(home), []byte(catalogYAML), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})

	cat, err := iocatalog.Load(cfg)
	require.NoError(t, err)
	assert.Len(t, cat.Species, 1)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCatalogFile(filepath.Join(dir, "missing.yaml")),
	})
	_, err := iocatalog.Load(cfg)
	require.Error(t, err)

	var gerr *gn.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, errcode.CatalogConfigError, gerr.Code)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("species: Elk"), 0644))
	cfg.Update([]config.Option{config.OptCatalogFile(bad)})
	_, err = iocatalog.Load(cfg)
	assert.Error(t, err)
}
