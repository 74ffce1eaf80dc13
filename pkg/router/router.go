// Package router dispatches the eligible record set to per-species
// prior evaluations. The selected species decides which catalogs run;
// the dual-species mode runs two catalogs independently and unions
// their rows.
package router

import (
	"log/slog"

	"github.com/cwdwatch/prevexport/pkg/aggregate"
	"github.com/cwdwatch/prevexport/pkg/prior"
	"github.com/cwdwatch/prevexport/pkg/record"
)

// Status is the per-prior outcome surfaced to the run report.
type Status struct {
	Key       prior.Key
	Fulfilled bool
	Rows      int
	Conflicts []string
}

// Result is the outcome of routing one run.
type Result struct {
	// Species lists the species actually evaluated (one, or two in
	// the dual mode when both have records).
	Species []string

	Table    prior.OutputTable
	Statuses []Status
}

// Route resolves the selected species and evaluates the matching
// catalogs against the eligible records.
//
// An unsupported species terminates with its species-specific
// message. A supported species with zero eligible records terminates
// too, except in the dual Elk/Mule-Deer mode where only the absence
// of both species ends the run. Each catalog entry is evaluated
// independently; an unfulfilled prior or a geography conflict in one
// entry never affects another.
func Route(selected string, recs []record.Record, cat *prior.Catalog) (*Result, error) {
	species := record.StandardizeSpecies(selected)

	var wanted []string
	switch species {
	case record.SpeciesElkAndMuleDeer:
		wanted = []string{record.SpeciesElk, record.SpeciesMuleDeer}
	case record.SpeciesElk, record.SpeciesMuleDeer, record.SpeciesWhiteTailedDeer:
		wanted = []string{species}
	default:
		return nil, SpeciesUnsupportedError(species)
	}

	subsets := make(map[string][]record.Record, len(wanted))
	var present []string
	for _, sp := range wanted {
		subset := bySpecies(recs, sp)
		subsets[sp] = subset
		if len(subset) > 0 {
			present = append(present, sp)
		} else {
			slog.Warn("No eligible records for species", "species", sp)
		}
	}
	if len(present) == 0 {
		return nil, SpeciesNoRecordsError(species)
	}

	res := &Result{Species: present}
	for _, sp := range present {
		spCat := cat.ForSpecies(sp)
		if spCat == nil {
			return nil, CatalogMissingError(sp, cat.SchemaVersion)
		}
		res.evaluate(spCat, subsets[sp])
	}
	return res, nil
}

func (res *Result) evaluate(spCat *prior.SpeciesCatalog, recs []record.Record) {
	for _, key := range spCat.Keys() {
		subset := spCat.Subset(key, recs)
		ev := aggregate.EvaluatePrior(key, subset)
		res.Table.Append(ev.Summaries)
		res.Statuses = append(res.Statuses, Status{
			Key:       key,
			Fulfilled: ev.Fulfilled(),
			Rows:      len(ev.Summaries),
			Conflicts: ev.Conflicts,
		})
		if ev.Fulfilled() {
			slog.Info("Prior fulfilled",
				"prior", key.String(),
				"areas", len(ev.Summaries),
				"conflicts", len(ev.Conflicts))
		} else {
			slog.Info("Prior unfulfilled",
				"prior", key.String(),
				"records", len(subset),
				"conflicts", len(ev.Conflicts))
		}
	}
}

func bySpecies(recs []record.Record, species string) []record.Record {
	var res []record.Record
	for _, r := range recs {
		if r.Species == species {
			res = append(res, r)
		}
	}
	return res
}
