package iocatalog

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gngenes/pkg/errcode"
)

// CatalogNotFoundError creates an error for when the GO-term catalog
// file cannot be read.
func CatalogNotFoundError(path string, err error) error {
	msg := `Cannot read GO-term catalog

<em>Catalog file:</em> %s

<em>How to fix:</em>
  1. Create the catalog spreadsheet next to the binary
  2. Put the GO terms to process in its '%s' column (e.g. GO:0009535)`

	vars := []any{path, termsCol}

	return &gn.Error{
		Code: errcode.CatalogNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read catalog %s: %w", path, err),
	}
}

// CatalogColumnError creates an error for a catalog missing its
// required GO-term column.
func CatalogColumnError(path, column string) error {
	msg := `Expected a column named '%s' in <em>%s</em>

<em>How to fix:</em>
  1. Add a '%s' header to the first row of the catalog
  2. List one GO term identifier per row below it`

	vars := []any{column, path, column}

	return &gn.Error{
		Code: errcode.CatalogColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("catalog %s has no %q column", path, column),
	}
}
