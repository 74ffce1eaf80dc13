package ioinput

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// ParamsError is returned when params.json is missing or malformed.
// The model cannot run without parameters.
type ParamsError struct {
	error
	gnlib.MessageBase
}

// ParamsFileError creates a new params file error.
func ParamsFileError(path string, err error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Cannot Load Model Parameters</title>
<warn>Parameters (params.json) file not found or unreadable.</warn>

The export cannot run without the parameter table produced by the
warehouse orchestrator.`,
		Vars: nil,
	}

	return ParamsError{
		error:       fmt.Errorf("cannot load params from %s: %w", path, err),
		MessageBase: msgBase,
	}
}

// SamplesError is returned when sample.ndjson is missing or
// malformed.
type SamplesError struct {
	error
	gnlib.MessageBase
}

// SamplesFileError creates a new samples file error.
func SamplesFileError(path string, err error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Cannot Load Samples</title>
<warn>Samples (sample.ndjson) file not found or unreadable.</warn>

Sample data are required to run this export.`,
		Vars: nil,
	}

	return SamplesError{
		error:       fmt.Errorf("cannot load samples from %s: %w", path, err),
		MessageBase: msgBase,
	}
}

// AreasError is returned when sub_administrative_area.ndjson is
// missing or malformed.
type AreasError struct {
	error
	gnlib.MessageBase
}

// AreasFileError creates a new areas file error.
func AreasFileError(path string, err error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Cannot Load Sub-Administrative Areas</title>
<warn>Area lookup (sub_administrative_area.ndjson) file not found or
unreadable.</warn>

Sample geographies cannot be resolved without the area lookup.`,
		Vars: nil,
	}

	return AreasError{
		error:       fmt.Errorf("cannot load areas from %s: %w", path, err),
		MessageBase: msgBase,
	}
}

// Message returns the user-facing message of an input error, or the
// empty string for errors that did not originate here.
func Message(err error) string {
	switch e := err.(type) {
	case ParamsError:
		return e.Msg
	case SamplesError:
		return e.Msg
	case AreasError:
		return e.Msg
	}
	return ""
}
