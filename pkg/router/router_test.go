package router_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwdwatch/prevexport/pkg/errcode"
	"github.com/cwdwatch/prevexport/pkg/prior"
	"github.com/cwdwatch/prevexport/pkg/record"
	"github.com/cwdwatch/prevexport/pkg/router"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalogYAML = []byte(`
schema_version: wtsurv-test
species:
  - name: Elk
    priors:
      - {source: Clinical suspect, age: All Ages, sex: Female}
      - {source: Hunter-harvested, age: Adult, sex: Female}
      - {source: Other, age: All Ages, sex: All Sexes}
  - name: Mule Deer
    priors:
      - {source: Hunter-harvested, age: Adult, sex: Male}
`)

func testCatalog(t *testing.T) *prior.Catalog {
	t.Helper()
	cat, err := prior.Parse(testCatalogYAML)
	require.NoError(t, err)
	return cat
}

func elkRec(area, source, age, sex string) record.Record {
	return record.Record{
		AreaID:   "id-" + area,
		AreaName: area,
		Species:  record.SpeciesElk,
		Source:   source,
		Age:      age,
		Sex:      sex,
		Result:   record.ResultNotDetected,
	}
}

func TestRouteSingleSpecies(t *testing.T) {
	recs := []record.Record{
		elkRec("G1", record.SourceClinicalSuspect, record.AgeAdult, record.SexFemale),
		elkRec("G1", record.SourceClinicalSuspect, record.AgeYearling, record.SexFemale),
		elkRec("G2", record.SourceHunterHarvested, record.AgeAdult, record.SexFemale),
		// Found dead is not enumerated for Elk, so it lands in Other.
		elkRec("G2", record.SourceFoundDead, record.AllAges, record.AllSexes),
	}

	res, err := router.Route("elk", recs, testCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, []string{record.SpeciesElk}, res.Species)
	require.Len(t, res.Statuses, 3)

	for _, st := range res.Statuses {
		assert.True(t, st.Fulfilled, st.Key.String())
		assert.Equal(t, 1, st.Rows, st.Key.String())
	}
	assert.Equal(t, 3, res.Table.Len())
}

// Priors are independent: a conflict in one geography for one prior
// leaves the other priors untouched.
func TestRoutePriorsIndependent(t *testing.T) {
	conflicted := elkRec("G1", record.SourceClinicalSuspect, record.AgeAdult, record.SexFemale)
	conflicted.Result = record.ResultDetected

	recs := []record.Record{
		conflicted,
		elkRec("G1", record.SourceClinicalSuspect, record.AgeAdult, record.SexFemale),
		elkRec("G1", record.SourceHunterHarvested, record.AgeAdult, record.SexFemale),
	}

	res, err := router.Route(record.SpeciesElk, recs, testCatalog(t))
	require.NoError(t, err)
	require.Len(t, res.Statuses, 3)

	byKey := make(map[string]router.Status)
	for _, st := range res.Statuses {
		byKey[st.Key.String()] = st
	}

	clinical := byKey[prior.Key{
		Species: record.SpeciesElk,
		Source:  record.SourceClinicalSuspect,
		Age:     record.AllAges,
		Sex:     record.SexFemale,
	}.String()]
	assert.False(t, clinical.Fulfilled)
	assert.Equal(t, []string{"G1"}, clinical.Conflicts)

	hunter := byKey[prior.Key{
		Species: record.SpeciesElk,
		Source:  record.SourceHunterHarvested,
		Age:     record.AgeAdult,
		Sex:     record.SexFemale,
	}.String()]
	assert.True(t, hunter.Fulfilled)
	assert.Equal(t, 1, hunter.Rows)
}

func TestRouteUnsupportedSpecies(t *testing.T) {
	recs := []record.Record{
		elkRec("G1", record.SourceHunterHarvested, record.AgeAdult, record.SexFemale),
	}

	_, err := router.Route("Moose", recs, testCatalog(t))
	require.Error(t, err)

	var gerr *gn.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, errcode.SpeciesUnsupportedError, gerr.Code)
	assert.Equal(t, 15, errcode.ExitStatus(err))
	assert.Contains(t, fmt.Sprintf(gerr.Msg, gerr.Vars...), "Moose")
}

func TestRouteNoRecordsForSpecies(t *testing.T) {
	recs := []record.Record{
		elkRec("G1", record.SourceHunterHarvested, record.AgeAdult, record.SexFemale),
	}

	_, err := router.Route(record.SpeciesMuleDeer, recs, testCatalog(t))
	require.Error(t, err)

	var gerr *gn.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, errcode.SpeciesNoRecordsError, gerr.Code)
	assert.Equal(t, 16, errcode.ExitStatus(err))
}

// In the dual mode a species without records is skipped with a
// warning; only the absence of both ends the run.
func TestRouteDualMode(t *testing.T) {
	recs := []record.Record{
		elkRec("G1", record.SourceClinicalSuspect, record.AgeAdult, record.SexFemale),
	}
	cat := testCatalog(t)

	res, err := router.Route(record.SpeciesElkAndMuleDeer, recs, cat)
	require.NoError(t, err)
	assert.Equal(t, []string{record.SpeciesElk}, res.Species)

	muleRec := record.Record{
		AreaID: "id-G2", AreaName: "G2",
		Species: record.SpeciesMuleDeer,
		Source:  record.SourceHunterHarvested,
		Age:     record.AgeAdult, Sex: record.SexMale,
		Result: record.ResultNotDetected,
	}
	res, err = router.Route("Elk and mule deer", append(recs, muleRec), cat)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{record.SpeciesElk, record.SpeciesMuleDeer}, res.Species)
	assert.Equal(t, 2, res.Table.Len())

	wtd := muleRec
	wtd.Species = record.SpeciesWhiteTailedDeer
	_, err = router.Route(record.SpeciesElkAndMuleDeer, []record.Record{wtd}, cat)
	require.Error(t, err)
	var gerr *gn.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, errcode.SpeciesNoRecordsError, gerr.Code)
}

func TestRouteCatalogMissingSpecies(t *testing.T) {
	cat := testCatalog(t)
	wtd := record.Record{
		AreaID: "id-G1", AreaName: "G1",
		Species: record.SpeciesWhiteTailedDeer,
		Source:  record.SourceHunterHarvested,
		Age:     record.AgeAdult, Sex: record.SexFemale,
		Result: record.ResultNotDetected,
	}

	_, err := router.Route(record.SpeciesWhiteTailedDeer, []record.Record{wtd}, cat)
	require.Error(t, err)

	var gerr *gn.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, errcode.CatalogValidationError, gerr.Code)
}

func TestUnsupportedList(t *testing.T) {
	list := router.UnsupportedList()
	assert.Contains(t, list, "moose")
	assert.Contains(t, list, "pronghorn")
}
