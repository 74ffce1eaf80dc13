// Package record defines the sample record type and the controlled
// vocabulary of the weighted surveillance estimation tool, together
// with the standardization rules that translate raw warehouse values
// into that vocabulary.
package record

// Test result vocabulary. Only the two definitive values survive the
// eligibility pipeline; everything else (Pending, Inconclusive, Not
// tested...) is dropped before aggregation.
const (
	ResultDetected    = "Detected"
	ResultNotDetected = "Not Detected"
)

// Unknown is the placeholder for any categorical field the warehouse
// left empty. It is set before per-field mapping runs, so the mappers
// treat it like any other raw value.
const Unknown = "Unknown"

// Age class vocabulary.
const (
	AgeAdult    = "Adult"
	AgeYearling = "Yearling"
	AgeFawn     = "Fawn"
	AllAges     = "All Ages"
)

// Sex vocabulary.
const (
	SexFemale = "Female"
	SexMale   = "Male"
	AllSexes  = "All Sexes"
)

// Sample source vocabulary of the estimation tool.
const (
	SourceClinicalSuspect  = "Clinical suspect"
	SourceHunterHarvested  = "Hunter-harvested"
	SourceVehicleCollision = "Vehicle collision (direct or indirect)"
	SourceFoundDead        = "Found dead"
	SourceSharpShot        = "Sharp shot"
	SourceOther            = "Other"

	// SourceExcluded marks raw sources with no downstream equivalent;
	// records carrying it must be dropped before aggregation.
	SourceExcluded = "EXCLUDED"
)

// Species display names of the supported cervids, plus the
// dual-species mode accepted as a selected-species parameter.
const (
	SpeciesElk             = "Elk"
	SpeciesMuleDeer        = "Mule Deer"
	SpeciesWhiteTailedDeer = "White-tailed Deer"
	SpeciesElkAndMuleDeer  = "Elk and Mule Deer"
)

// TestName is the constant test-name field the estimation tool
// requires on every output row.
const TestName = "Default"

// Record is one animal test observation after extraction from the
// warehouse export. Empty string means the warehouse did not provide
// the value; Standardize replaces empties in categorical fields.
type Record struct {
	// SampleID is the warehouse identifier of the sample.
	SampleID string

	// AreaID identifies the sub-administrative area the animal came from.
	AreaID string

	// AreaName is the resolved display name of the area.
	AreaName string

	Species string
	Source  string
	Age     string
	Sex     string

	// Result is the selected definitive test result.
	Result string
}

// IsDefinitive reports whether the record's result is one of the two
// values the estimation tool understands.
func (r Record) IsDefinitive() bool {
	return r.Result == ResultDetected || r.Result == ResultNotDetected
}

// HasKnownArea reports whether both the area identifier and its
// display name are present.
func (r Record) HasKnownArea() bool {
	return r.AreaID != "" && r.AreaID != Unknown &&
		r.AreaName != "" && r.AreaName != Unknown
}

// HasKnownSpecies reports whether the species field carries a value.
func (r Record) HasKnownSpecies() bool {
	return r.Species != "" && r.Species != Unknown
}
