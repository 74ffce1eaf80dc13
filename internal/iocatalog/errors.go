package iocatalog

import (
	"fmt"

	"github.com/cwdwatch/prevexport/pkg/errcode"
	"github.com/gnames/gn"
)

// CatalogConfigError creates an error for when catalog.yaml cannot be
// loaded or does not validate.
func CatalogConfigError(path string, err error) error {
	msg := `Cannot load the prior catalog

<em>Catalog file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Values outside the estimation tool vocabulary

<em>How to fix:</em>
  1. Check if the file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to regenerate the built-in catalog on next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.CatalogConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load prior catalog: %w", err),
	}
}
