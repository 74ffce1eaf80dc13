// Package ioinput reads the warehouse export exchange files: the
// parameter table, the sub-administrative area lookup and the sample
// records (ndjson, one JSON document per line).
package ioinput

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/cwdwatch/prevexport/pkg/record"
)

// progressThreshold is the sample count below which no progress bar
// is shown; tiny exports finish before a bar is worth drawing.
const progressThreshold = 10_000

// Params holds the model parameters selected by the user upstream.
type Params struct {
	// Species is the selected species string, verbatim.
	Species string

	// ProviderArea is the administrative area of the data provider.
	ProviderArea string

	// Fields keeps the flat user-visible parameters for the run
	// report, with the nested provider block already removed.
	Fields map[string]any
}

// rawParams mirrors the params.json structure. Only species and the
// nested provider block are extracted by name; everything else goes
// verbatim into the report listing.
type rawParams struct {
	Species  string `json:"species"`
	Provider *struct {
		AdministrativeArea *struct {
			AdministrativeArea string `json:"administrative_area"`
		} `json:"_administrative_area"`
	} `json:"_provider"`
}

// LoadParams reads and parses params.json.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ParamsFileError(path, err)
	}

	var raw rawParams
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, ParamsFileError(path, err)
	}

	var fields map[string]any
	if err = json.Unmarshal(data, &fields); err != nil {
		return nil, ParamsFileError(path, err)
	}
	delete(fields, "_provider")

	res := &Params{
		Species: raw.Species,
		Fields:  fields,
	}
	if raw.Provider != nil && raw.Provider.AdministrativeArea != nil {
		res.ProviderArea = raw.Provider.AdministrativeArea.AdministrativeArea
	}

	slog.Info("Parameter file loaded", "path", path, "species", res.Species)
	return res, nil
}

// areaLine mirrors one sub_administrative_area.ndjson document.
type areaLine struct {
	ID       string `json:"_id"`
	FullName string `json:"full_name"`
}

// LoadAreas reads the sub-administrative area lookup and returns a
// map from area identifier to display name.
func LoadAreas(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, AreasFileError(path, err)
	}

	res := make(map[string]string)
	for _, line := range splitLines(data) {
		var area areaLine
		if err = json.Unmarshal(line, &area); err != nil {
			return nil, AreasFileError(path, err)
		}
		if area.ID != "" {
			res[area.ID] = area.FullName
		}
	}

	slog.Info("Sub-administrative area file loaded",
		"path", path, "areas", len(res))
	return res, nil
}

// sampleLine mirrors one sample.ndjson document.
type sampleLine struct {
	ID       string `json:"_id"`
	SubAdmin *struct {
		ID string `json:"_id"`
	} `json:"_sub_administrative_area"`
	Species      string `json:"species"`
	AgeGroup     string `json:"age_group"`
	Sex          string `json:"sex"`
	SampleSource string `json:"sample_source"`
	Tests        []struct {
		Result             string `json:"result"`
		SelectedDefinitive bool   `json:"selected_definitive"`
	} `json:"tests"`
}

// LoadSamples reads the sample file and converts each line into a
// Record, resolving area display names through the lookup. The result
// field comes from the single test flagged selected_definitive;
// anything else (no tests, zero or several flagged tests, missing
// result value) leaves the result empty.
func LoadSamples(path string, areas map[string]string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, SamplesFileError(path, err)
	}

	lines := splitLines(data)

	var bar *pb.ProgressBar
	if len(lines) >= progressThreshold {
		bar = newProgressBar(len(lines), "Reading samples: ")
	}

	res := make([]record.Record, 0, len(lines))
	for _, line := range lines {
		if bar != nil {
			bar.Increment()
		}
		var sample sampleLine
		if err = json.Unmarshal(line, &sample); err != nil {
			if bar != nil {
				bar.Finish()
			}
			return nil, SamplesFileError(path, err)
		}
		res = append(res, toRecord(sample, areas))
	}
	if bar != nil {
		bar.Finish()
	}

	slog.Info("Sample file loaded", "path", path, "samples", len(res))
	return res, nil
}

func toRecord(sample sampleLine, areas map[string]string) record.Record {
	rec := record.Record{
		SampleID: sample.ID,
		Species:  sample.Species,
		Source:   sample.SampleSource,
		Age:      sample.AgeGroup,
		Sex:      sample.Sex,
	}
	if sample.SubAdmin != nil {
		rec.AreaID = sample.SubAdmin.ID
		rec.AreaName = areas[rec.AreaID]
	}

	var result string
	var flagged int
	for _, test := range sample.Tests {
		if test.SelectedDefinitive {
			flagged++
			result = test.Result
		}
	}
	// the warehouse guarantees at most one selected-definitive test;
	// anything else means the result cannot be trusted
	if flagged == 1 {
		rec.Result = result
	}
	return rec
}

func splitLines(data []byte) [][]byte {
	var res [][]byte
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		buf := make([]byte, len(line))
		copy(buf, line)
		res = append(res, buf)
	}
	return res
}

// newProgressBar creates a new progress bar with consistent settings.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
