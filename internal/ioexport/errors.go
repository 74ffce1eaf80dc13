package ioexport

import (
	"fmt"

	"github.com/cwdwatch/prevexport/pkg/errcode"
	"github.com/gnames/gn"
)

// WriteOutputError creates an error for a failed output matrix write.
func WriteOutputError(path string, err error) error {
	msg := `<title>Cannot Write Output Matrix</title>
<warn>Failed to write <em>%s</em>.</warn>

<em>Possible causes:</em>
  - Data directory is not writable
  - Disk is full`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.WriteOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write output matrix %s: %w", path, err),
	}
}
