// Package main provides the prevexport CLI application.
// prevexport converts CWD Data Warehouse surveillance records into
// prior sample counts for the weighted surveillance prevalence
// estimation tool.
package main

import (
	"os"

	"github.com/cwdwatch/prevexport/cmd"
	"github.com/cwdwatch/prevexport/pkg/errcode"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errcode.ExitStatus(err))
	}
}
