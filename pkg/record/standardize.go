package record

import "strings"

// speciesNames translates raw warehouse species strings into display
// names. Species outside this set pass through unmapped; the species
// router rejects them later.
var speciesNames = map[string]string{
	"elk":               SpeciesElk,
	"mule deer":         SpeciesMuleDeer,
	"white-tailed deer": SpeciesWhiteTailedDeer,
	"whitetailed deer":  SpeciesWhiteTailedDeer,
	"elk and mule deer": SpeciesElkAndMuleDeer,
}

// sourceNames translates raw warehouse sample sources into the
// estimation tool vocabulary. Hunter harvest, illegal take and agency
// removals all collapse onto Hunter-harvested: for CWD exposure only
// the take method matters, not its legality or administrative purpose.
// The three captive-facility values have no downstream equivalent and
// map to the EXCLUDED sentinel.
var sourceNames = map[string]string{
	"Hunter harvest":                       SourceHunterHarvested,
	"Illegal take":                         SourceHunterHarvested,
	"Removal for crop damage":              SourceHunterHarvested,
	"Removal for population management":    SourceHunterHarvested,
	"Road kill":                            SourceVehicleCollision,
	"Targeted removal":                     SourceSharpShot,
	"Clinical suspect":                     SourceClinicalSuspect,
	"Found dead":                           SourceFoundDead,
	"Captive cervid facility":              SourceExcluded,
	"Escaped from captive cervid facility": SourceExcluded,
	"Illegal import":                       SourceExcluded,
}

// StandardizeSpecies maps a raw species string to its display name.
// Unmapped values are returned unchanged.
func StandardizeSpecies(s string) string {
	if mapped, ok := speciesNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return mapped
	}
	return strings.TrimSpace(s)
}

// StandardizeSource maps a raw sample source to the estimation tool
// vocabulary. Research and anything unmapped (including Unknown)
// collapse to Other.
func StandardizeSource(s string) string {
	if mapped, ok := sourceNames[s]; ok {
		return mapped
	}
	switch s {
	case SourceHunterHarvested, SourceVehicleCollision,
		SourceSharpShot, SourceOther:
		// already standardized
		return s
	}
	return SourceOther
}

// StandardizeAge keeps the specific age classes and folds everything
// else ("No age", Unknown, empty after the Unknown fill) into the
// All Ages bucket.
func StandardizeAge(s string) string {
	switch s {
	case AgeAdult, AgeYearling, AgeFawn:
		return s
	}
	return AllAges
}

// StandardizeSex keeps Female and Male and folds everything else into
// the All Sexes bucket.
func StandardizeSex(s string) string {
	switch s {
	case SexFemale, SexMale:
		return s
	}
	return AllSexes
}

// Standardize translates one record into the estimation tool
// vocabulary. It is a total function: it never fails, and after it
// runs no categorical field is empty. Empty fields become Unknown
// first, then each per-field mapper folds Unknown into its aggregate
// bucket. Ordering matters: the Unknown fill must precede the
// per-field mapping.
func Standardize(r Record) Record {
	for _, field := range []*string{&r.Species, &r.Source, &r.Age, &r.Sex} {
		if *field == "" {
			*field = Unknown
		}
	}

	r.Species = StandardizeSpecies(r.Species)
	r.Source = StandardizeSource(r.Source)
	r.Age = StandardizeAge(r.Age)
	r.Sex = StandardizeSex(r.Sex)
	return r
}
