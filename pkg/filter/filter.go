// Package filter implements the record eligibility pipeline: a
// strictly ordered sequence of filters between the raw warehouse
// records and prior aggregation. Each stage reports its surviving
// count; a stage left with nothing to pass on terminates the run with
// its own user-facing error.
package filter

import (
	"log/slog"

	"github.com/cwdwatch/prevexport/pkg/record"
)

// Stage names, in pipeline order.
const (
	StageDefinitive   = "definitive results"
	StageKnownArea    = "known geography"
	StageKnownSpecies = "known species"
	StageStandardize  = "standardized vocabulary"
)

// StageCount reports how many records survived one stage.
type StageCount struct {
	Stage string
	Kept  int
}

// Result carries the surviving records and the per-stage audit trail.
type Result struct {
	Records []record.Record
	Stages  []StageCount
}

// Run passes records through the eligibility stages:
//
//  1. keep definitive results only; all-positive input is as fatal as
//     empty input, since the estimation tool cannot fulfill any prior
//     without at least one negative
//  2. keep records with a known sub-administrative area
//  3. keep records with a known species
//  4. standardize vocabulary and drop records whose source has no
//     downstream equivalent
//
// The first stage left empty aborts with a data-absence error; stage
// order is part of the contract, e.g. Scenario "all results Pending"
// must fail on stage 1 before species routing is ever consulted.
func Run(recs []record.Record) (*Result, error) {
	res := &Result{}

	definitive, negatives := keepDefinitive(recs)
	if len(definitive) == 0 {
		return nil, NoDefinitiveResultsError(len(recs))
	}
	if negatives == 0 {
		return nil, OnlyDetectedResultsError(len(definitive))
	}
	res.record(StageDefinitive, len(definitive))

	withArea := keep(definitive, record.Record.HasKnownArea)
	if len(withArea) == 0 {
		return nil, NoKnownAreaError()
	}
	res.record(StageKnownArea, len(withArea))

	withSpecies := keep(withArea, record.Record.HasKnownSpecies)
	if len(withSpecies) == 0 {
		return nil, NoKnownSpeciesError()
	}
	res.record(StageKnownSpecies, len(withSpecies))

	standardized := standardize(withSpecies)
	if len(standardized) == 0 {
		return nil, AllSourcesExcludedError()
	}
	res.record(StageStandardize, len(standardized))

	res.Records = standardized
	return res, nil
}

func (r *Result) record(stage string, kept int) {
	r.Stages = append(r.Stages, StageCount{Stage: stage, Kept: kept})
	slog.Info("Eligibility stage complete", "stage", stage, "kept", kept)
}

// keepDefinitive also counts surviving negatives, which decides the
// only-positives termination.
func keepDefinitive(recs []record.Record) ([]record.Record, int) {
	var res []record.Record
	var negatives int
	for _, r := range recs {
		if !r.IsDefinitive() {
			continue
		}
		if r.Result == record.ResultNotDetected {
			negatives++
		}
		res = append(res, r)
	}
	return res, negatives
}

func keep(recs []record.Record, pred func(record.Record) bool) []record.Record {
	var res []record.Record
	for _, r := range recs {
		if pred(r) {
			res = append(res, r)
		}
	}
	return res
}

func standardize(recs []record.Record) []record.Record {
	var res []record.Record
	for _, r := range recs {
		std := record.Standardize(r)
		if std.Source == record.SourceExcluded {
			continue
		}
		res = append(res, std)
	}
	return res
}
