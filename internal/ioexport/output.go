package ioexport

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/cwdwatch/prevexport/pkg/prior"
	"github.com/cwdwatch/prevexport/pkg/record"
)

// outputHeader is the fixed column set of the estimation tool's
// import schema.
var outputHeader = []string{
	"Batch", "Species", "Collection Method", "Age", "Sex",
	"Samples", "Test Name",
}

// writeOutput serializes the fulfilled-prior rows into the output
// matrix CSV. Callers must not invoke it with zero rows: an empty
// run produces no file at all.
func writeOutput(path string, rows []prior.GeographySummary) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteOutputError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(outputHeader); err != nil {
		return WriteOutputError(path, err)
	}
	for _, row := range rows {
		fields := []string{
			row.AreaName,
			row.Key.Species,
			row.Key.Source,
			row.Key.Age,
			row.Key.Sex,
			strconv.Itoa(row.Samples),
			record.TestName,
		}
		if err = w.Write(fields); err != nil {
			return WriteOutputError(path, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return WriteOutputError(path, err)
	}
	return nil
}
