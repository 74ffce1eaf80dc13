// Package prior models the fixed catalog of priors the weighted
// surveillance estimation tool accepts, and the per-geography sample
// summaries that fulfill them.
package prior

import (
	"fmt"

	"github.com/cwdwatch/prevexport/pkg/record"
)

// Key identifies one prior the estimation tool can accept a
// sample-size observation for: a (species, source, age, sex)
// combination from the catalog.
type Key struct {
	Species string
	Source  string
	Age     string
	Sex     string
}

// String renders the key for logs and the run report.
func (k Key) String() string {
	return fmt.Sprintf("%s / %s / %s / %s", k.Species, k.Source, k.Age, k.Sex)
}

// AggregateAge reports whether the key's age bucket covers all age
// classes.
func (k Key) AggregateAge() bool { return k.Age == record.AllAges }

// AggregateSex reports whether the key's sex bucket covers both sexes.
func (k Key) AggregateSex() bool { return k.Sex == record.AllSexes }

// GeographySummary is one output row: the number of samples for one
// sub-administrative area under one prior. Produced only for areas
// whose records are unanimously negative.
type GeographySummary struct {
	AreaName string
	Key      Key
	Samples  int
}

// OutputTable accumulates fulfilled-prior rows across the whole run.
// It is append-only: rows are added per evaluated key and serialized
// once at the end.
type OutputTable struct {
	rows []GeographySummary
}

// Append adds summaries for one evaluated prior.
func (t *OutputTable) Append(rows []GeographySummary) {
	t.rows = append(t.rows, rows...)
}

// Rows returns the accumulated summaries in catalog order.
func (t *OutputTable) Rows() []GeographySummary {
	return t.rows
}

// Len returns the number of accumulated rows.
func (t *OutputTable) Len() int { return len(t.rows) }
