package router

import (
	"fmt"
	"strings"

	"github.com/cwdwatch/prevexport/pkg/errcode"
	"github.com/gnames/gn"
)

// unsupportedSpecies holds the known-unsupported species with their
// user-facing rejection sentences. The list is closed: anything not
// listed here and not supported gets the generic unknown-species
// message.
var unsupportedSpecies = map[string]string{
	"moose":                           "Moose are susceptible to CWD, but the estimation tool does not yet publish moose priors.",
	"caribou":                         "Caribou surveillance data cannot be exported; the estimation tool has no caribou priors.",
	"reindeer":                        "Reindeer surveillance data cannot be exported; the estimation tool has no reindeer priors.",
	"red deer":                        "Red deer are outside the scope of the estimation tool's prior catalog.",
	"sika deer":                       "Sika deer are outside the scope of the estimation tool's prior catalog.",
	"fallow deer":                     "Fallow deer are outside the scope of the estimation tool's prior catalog.",
	"axis deer":                       "Axis deer are outside the scope of the estimation tool's prior catalog.",
	"roe deer":                        "Roe deer are outside the scope of the estimation tool's prior catalog.",
	"muntjac":                         "Muntjac are outside the scope of the estimation tool's prior catalog.",
	"water deer":                      "Water deer are outside the scope of the estimation tool's prior catalog.",
	"pronghorn":                       "Pronghorn are not cervids and have no CWD priors in the estimation tool.",
	"bighorn sheep":                   "Bighorn sheep are not cervids and have no CWD priors in the estimation tool.",
	"mountain goat":                   "Mountain goats are not cervids and have no CWD priors in the estimation tool.",
	"bison":                           "Bison are not cervids and have no CWD priors in the estimation tool.",
	"white-tailed x mule deer hybrid": "Hybrid deer cannot be assigned to a single-species prior catalog.",
	"unknown":                         "Samples with an unknown selected species cannot be routed to a prior catalog.",
}

// SpeciesUnsupportedError is returned when the selected species has
// no prior catalog. Known-unsupported species carry their specific
// explanation.
func SpeciesUnsupportedError(species string) error {
	reason, known := unsupportedSpecies[strings.ToLower(species)]
	if !known {
		reason = "The species is not recognized by the prevalence estimator export."
	}
	msg := `<title>Species Not Supported</title>
<warn>Cannot export priors for species <em>%s</em>.</warn>

%s

Supported species: Elk, Mule Deer, White-tailed Deer, and the combined
Elk and Mule Deer mode.`
	vars := []any{species, reason}
	return &gn.Error{
		Code: errcode.SpeciesUnsupportedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported species: %s", species),
	}
}

// SpeciesNoRecordsError is returned when a supported species (or, in
// the dual mode, both species) has zero eligible records.
func SpeciesNoRecordsError(species string) error {
	msg := `<title>No Records For Selected Species</title>
<warn>No eligible samples of <em>%s</em> exist in the requested
period.</warn>

Nothing can be exported without samples of the selected species.`
	vars := []any{species}
	return &gn.Error{
		Code: errcode.SpeciesNoRecordsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no eligible records for species %s", species),
	}
}

// CatalogMissingError is returned when the loaded catalog file lacks
// an entry for a supported species; it points at a broken or outdated
// catalog.yaml rather than at the data.
func CatalogMissingError(species, schemaVersion string) error {
	msg := `<title>Prior Catalog Incomplete</title>
<warn>The prior catalog (schema <em>%s</em>) has no entry for
<em>%s</em>.</warn>

<em>How to fix:</em>
  1. Remove the stale catalog file and re-run to regenerate it
  2. Or restore the species section in catalog.yaml`
	vars := []any{schemaVersion, species}
	return &gn.Error{
		Code: errcode.CatalogValidationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("catalog %s has no species %s",
			schemaVersion, species),
	}
}

// UnsupportedList returns the known-unsupported species names, for
// documentation and tests.
func UnsupportedList() []string {
	res := make([]string, 0, len(unsupportedSpecies))
	for sp := range unsupportedSpecies {
		res = append(res, sp)
	}
	return res
}
