package iofs

import (
	_ "embed"
	"os"

	"github.com/cwdwatch/prevexport/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed catalog.yaml
var CatalogYAML string

// EnsureDirs creates the config and log directories if needed.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureAttachmentsDir creates the attachments directory inside the
// data exchange directory.
func EnsureAttachmentsDir(dataDir string) error {
	return touchDir(config.AttachmentsDir(dataDir))
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml template to the
// config directory on first run.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureCatalogFile writes the embedded prior catalog template to the
// config directory on first run.
func EnsureCatalogFile(homeDir string) error {
	catalogPath := config.CatalogFilePath(homeDir)

	if _, err := os.Stat(catalogPath); err == nil {
		return nil
	}

	if err := os.WriteFile(catalogPath, []byte(CatalogYAML), 0644); err != nil {
		return CopyFileError(catalogPath, err)
	}

	return nil
}
