package ioreport

import (
	"fmt"

	"github.com/cwdwatch/prevexport/pkg/errcode"
	"github.com/gnames/gn"
)

// WriteReportError creates an error for a failed report or manifest
// write.
func WriteReportError(path string, err error) error {
	msg := "Cannot write run report artifact <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.WriteReportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write report artifact %s: %w", path, err),
	}
}
