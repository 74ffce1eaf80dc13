package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwdwatch/prevexport/internal/iofs"
	"github.com/cwdwatch/prevexport/internal/iologger"
	app "github.com/cwdwatch/prevexport/pkg"
	"github.com/cwdwatch/prevexport/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "prevexport",
	Short:   "Exports CWD surveillance priors for prevalence estimation",
	Long: `Prevexport converts CWD Data Warehouse surveillance records into the
prior sample-count matrix consumed by the weighted surveillance
prevalence estimation tool.

The export reads the warehouse exchange files (params.json,
sample.ndjson, sub_administrative_area.ndjson) from the data
directory, standardizes and filters the records, evaluates the
per-species prior catalogs and writes SpeedGoatOutputMatrix.csv
together with an HTML run report.

Configuration precedence (highest to lowest):
  1. CLI flags (--data-dir, --species, ...)
  2. Environment variables (PREVEXPORT_*)
  3. Config file (~/.config/prevexport/config.yaml)
  4. Built-in defaults`,
	PersistentPreRunE: bootstrap,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// The run command reconfigures it into the data directory later.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	logPath := filepath.Join(config.LogDir(homeDir), config.AppName+".log")
	if err = iologger.Init(logPath, defaultLog, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureCatalogFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Remove the automatic "prevexport version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for prevexport")

	rootCmd.AddCommand(getRunCmd())
	rootCmd.AddCommand(getCatalogCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions() - i.e., persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("PREVEXPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("data.dir", "DATA_DIR")

	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	v.AutomaticEnv()
}
