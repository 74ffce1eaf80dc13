// Package errcode enumerates error codes for all prevexport failure
// conditions and maps them to process exit statuses.
package errcode

import (
	"errors"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	ParamsFileError
	SamplesFileError
	AreasFileError

	// Catalog errors
	CatalogConfigError
	CatalogValidationError

	// Data absence errors
	NoDefinitiveResultsError
	OnlyDetectedResultsError
	NoKnownAreaError
	NoKnownSpeciesError
	AllSourcesExcludedError
	SpeciesUnsupportedError
	SpeciesNoRecordsError

	// Output errors
	WriteOutputError
	WriteReportError
)

// exitStatuses assigns a distinct process exit status to each
// data-insufficiency condition. The original pipeline used a single
// sentinel status for all of them; distinct statuses let the
// orchestrator tell the conditions apart without parsing messages.
var exitStatuses = map[gn.ErrorCode]int{
	NoDefinitiveResultsError: 10,
	OnlyDetectedResultsError: 11,
	NoKnownAreaError:         12,
	NoKnownSpeciesError:      13,
	AllSourcesExcludedError:  14,
	SpeciesUnsupportedError:  15,
	SpeciesNoRecordsError:    16,
}

// ExitStatus returns the process exit status for an error. Data
// absence conditions get their own statuses, everything else exits
// with 1. A nil error returns 0.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		if status, ok := exitStatuses[gnErr.Code]; ok {
			return status
		}
	}
	return 1
}
