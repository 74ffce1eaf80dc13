package filter

import (
	"fmt"

	"github.com/cwdwatch/prevexport/pkg/errcode"
	"github.com/gnames/gn"
)

// NoDefinitiveResultsError is returned when no record carries a
// Detected or Not Detected result.
func NoDefinitiveResultsError(total int) error {
	msg := `<title>No Definitive Test Results</title>
<warn>None of the %d provided samples has a definitive (Detected or
Not Detected) test result.</warn>

The prevalence estimation tool requires definitive results. Samples
with Pending, Inconclusive or Not tested results cannot be used.`
	vars := []any{total}
	return &gn.Error{
		Code: errcode.NoDefinitiveResultsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no definitive results among %d records", total),
	}
}

// OnlyDetectedResultsError is returned when all definitive results
// are positive.
func OnlyDetectedResultsError(total int) error {
	msg := `<title>Only Positive Test Results</title>
<warn>All %d definitive samples are Detected.</warn>

The estimation tool ingests sample sizes from all-negative surveys, so
at least one Not Detected sample is required to fulfill any prior.`
	vars := []any{total}
	return &gn.Error{
		Code: errcode.OnlyDetectedResultsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all %d definitive results are Detected", total),
	}
}

// NoKnownAreaError is returned when no record carries both a
// sub-administrative area identifier and a resolved display name.
func NoKnownAreaError() error {
	msg := `<title>No Samples With Known Geography</title>
<warn>None of the definitive samples has a known sub-administrative
area.</warn>

Priors are per-area sample counts; samples without a resolvable area
cannot contribute.`
	return &gn.Error{
		Code: errcode.NoKnownAreaError,
		Msg:  msg,
		Err:  fmt.Errorf("no records with known sub-administrative area"),
	}
}

// NoKnownSpeciesError is returned when no surviving record carries a
// species value.
func NoKnownSpeciesError() error {
	msg := `<title>No Samples With Known Species</title>
<warn>None of the eligible samples has a known species.</warn>`
	return &gn.Error{
		Code: errcode.NoKnownSpeciesError,
		Msg:  msg,
		Err:  fmt.Errorf("no records with known species"),
	}
}

// AllSourcesExcludedError is returned when standardization dropped
// every surviving record because its sample source has no equivalent
// in the estimation tool.
func AllSourcesExcludedError() error {
	msg := `<title>All Sample Sources Excluded</title>
<warn>Every eligible sample comes from a source the estimation tool
cannot represent (captive cervid facilities, illegal imports).</warn>`
	return &gn.Error{
		Code: errcode.AllSourcesExcludedError,
		Msg:  msg,
		Err:  fmt.Errorf("all records dropped by source exclusion"),
	}
}
