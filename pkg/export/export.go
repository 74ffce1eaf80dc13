// Package export defines the contract of the prior fulfillment run:
// the Exporter interface implemented by internal/ioexport and the
// summary value it returns to the CLI.
package export

import (
	"context"

	"github.com/cwdwatch/prevexport/pkg/filter"
	"github.com/cwdwatch/prevexport/pkg/router"
)

// RunSummary describes a completed run for the CLI and tests. The
// HTML report and the output CSV are written by the Exporter itself;
// the summary only mirrors what happened.
type RunSummary struct {
	// RunID identifies the run in logs and the report.
	RunID string

	// Species is the selected species parameter after normalization.
	Species string

	// ProviderArea is the administrative area of the data provider.
	ProviderArea string

	// Samples is the number of records read from the warehouse export.
	Samples int

	// Stages is the eligibility pipeline audit trail.
	Stages []filter.StageCount

	// Statuses lists per-prior outcomes in catalog order.
	Statuses []router.Status

	// Rows is the number of output rows written. Zero means no CSV
	// file was produced; that is a normal completion, not an error.
	Rows int

	// OutputPath is the written CSV path, empty when Rows is zero.
	OutputPath string
}

// Exporter runs the complete prior fulfillment pipeline: load the
// warehouse export, filter and standardize records, evaluate the
// prior catalogs and write the outputs. Data-insufficiency conditions
// come back as *gn.Error values with distinct codes.
type Exporter interface {
	Export(ctx context.Context) (*RunSummary, error)
}
