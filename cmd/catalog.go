package cmd

import (
	"fmt"

	"github.com/cwdwatch/prevexport/internal/iocatalog"
	"github.com/cwdwatch/prevexport/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getCatalogCmd() *cobra.Command {
	var catalogFile string

	catalogCmd := &cobra.Command{
		Use:   "catalog [species]",
		Short: "Shows the prior catalog",
		Long: `Shows the priors the estimation tool accepts, for one species or
for all supported species. Useful for auditing which (source, age,
sex) combinations a run will evaluate.

Examples:
  prevexport catalog
  prevexport catalog Elk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := showCatalog(catalogFile, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	catalogCmd.Flags().StringVarP(
		&catalogFile, "catalog", "c", "",
		"alternative prior catalog file",
	)

	return catalogCmd
}

func showCatalog(catalogFile string, args []string) error {
	if catalogFile != "" {
		cfg.Update([]config.Option{config.OptCatalogFile(catalogFile)})
	}

	cat, err := iocatalog.Load(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Schema version: %s\n", cat.SchemaVersion)
	for _, sp := range cat.Species {
		if len(args) == 1 && sp.Name != args[0] {
			continue
		}
		fmt.Printf("\n%s:\n", sp.Name)
		for _, key := range sp.Keys() {
			fmt.Printf("  %s / %s / %s\n", key.Source, key.Age, key.Sex)
		}
	}
	return nil
}
