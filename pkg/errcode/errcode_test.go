package errcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwdwatch/prevexport/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
)

func TestExitStatus(t *testing.T) {
	tests := []struct {
		msg  string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{
			"file system error",
			&gn.Error{Code: errcode.ReadFileError},
			1,
		},
		{
			"no definitive results",
			&gn.Error{Code: errcode.NoDefinitiveResultsError},
			10,
		},
		{
			"only detected results",
			&gn.Error{Code: errcode.OnlyDetectedResultsError},
			11,
		},
		{
			"no known area",
			&gn.Error{Code: errcode.NoKnownAreaError},
			12,
		},
		{
			"no known species",
			&gn.Error{Code: errcode.NoKnownSpeciesError},
			13,
		},
		{
			"all sources excluded",
			&gn.Error{Code: errcode.AllSourcesExcludedError},
			14,
		},
		{
			"unsupported species",
			&gn.Error{Code: errcode.SpeciesUnsupportedError},
			15,
		},
		{
			"no records for species",
			&gn.Error{Code: errcode.SpeciesNoRecordsError},
			16,
		},
		{
			"wrapped data absence error",
			fmt.Errorf("context: %w",
				&gn.Error{Code: errcode.NoDefinitiveResultsError}),
			10,
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, errcode.ExitStatus(v.err), v.msg)
	}
}
