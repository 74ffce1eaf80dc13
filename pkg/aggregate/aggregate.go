// Package aggregate implements the duality-resolving aggregator: for
// one prior's record subset it produces per-geography sample counts,
// excluding any geography with mixed positive and negative results.
package aggregate

import (
	"sort"

	"github.com/cwdwatch/prevexport/pkg/prior"
	"github.com/cwdwatch/prevexport/pkg/record"
)

// Evaluation is the outcome of one prior evaluation.
type Evaluation struct {
	// Summaries holds one row per unanimous-negative geography.
	// Empty means the prior is unfulfilled.
	Summaries []prior.GeographySummary

	// Conflicts lists geographies dropped for carrying both Detected
	// and Not Detected results under this prior.
	Conflicts []string
}

// Fulfilled reports whether at least one geography produced a valid
// sample count.
func (e Evaluation) Fulfilled() bool { return len(e.Summaries) > 0 }

// resultCounts tallies definitive results for one geography.
type resultCounts struct {
	detected    int
	notDetected int
}

// EvaluatePrior aggregates one prior's record subset into
// per-geography sample counts.
//
// For aggregate buckets the differing sub-field values are irrelevant,
// so conceptually every record is first rewritten to the bucket's
// canonical label; since the subset already matches the key, this
// collapses the grouping key to (geography, result). Geography
// identity is by display name only, mirroring the upstream warehouse
// join (a known conflation, see DESIGN.md).
//
// A geography with both results is a duality conflict and is excluded
// entirely: mixed results break the estimation tool's assumption of a
// clean negative survey. Geographies with only positives contribute
// nothing either - the tool ingests negative-survey sample sizes only.
func EvaluatePrior(key prior.Key, recs []record.Record) Evaluation {
	var ev Evaluation
	if len(recs) == 0 {
		return ev
	}

	counts := make(map[string]*resultCounts)
	for _, r := range recs {
		c := counts[r.AreaName]
		if c == nil {
			c = &resultCounts{}
			counts[r.AreaName] = c
		}
		switch r.Result {
		case record.ResultDetected:
			c.detected++
		case record.ResultNotDetected:
			c.notDetected++
		}
	}

	areas := make([]string, 0, len(counts))
	for area := range counts {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	for _, area := range areas {
		c := counts[area]
		if c.detected > 0 && c.notDetected > 0 {
			ev.Conflicts = append(ev.Conflicts, area)
			continue
		}
		if c.notDetected == 0 {
			// positives only, nothing to report
			continue
		}
		ev.Summaries = append(ev.Summaries, prior.GeographySummary{
			AreaName: area,
			Key:      key,
			Samples:  c.notDetected,
		})
	}
	return ev
}
