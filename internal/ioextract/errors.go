package ioextract

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gngenes/pkg/errcode"
)

// LegendNotFoundError creates an error for when the GO legend file
// cannot be read.
func LegendNotFoundError(path string, err error) error {
	msg := `GO legend file not found: <em>%s</em>

<em>How to fix:</em>
  1. Place the legend TSV at the path above
  2. Or point the species profile to its location in species.yaml`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExtractLegendNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read GO legend %s: %w", path, err),
	}
}

// LegendColumnError creates an error for a GO legend missing one of
// its required columns.
func LegendColumnError(path, column string) error {
	msg := `GO legend <em>%s</em> has no '%s' column

<em>Expected legend columns:</em>
  * accession
  * Gene stable ID
  * GO term name
  * GO term definition`

	vars := []any{path, column}

	return &gn.Error{
		Code: errcode.ExtractLegendColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("legend %s has no %q column", path, column),
	}
}

// AnnotationNotFoundError creates an error for when the annotation
// spreadsheet cannot be read.
func AnnotationNotFoundError(path string, err error) error {
	msg := `Annotation file not found: <em>%s</em>

<em>How to fix:</em>
  1. Place the annotation spreadsheet at the path above
  2. Or point the species profile to its location in species.yaml`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExtractAnnotationNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read annotations %s: %w", path, err),
	}
}

// AnnotationColumnError creates an error for an annotation table
// missing its locus join column.
func AnnotationColumnError(path, column string) error {
	msg := `Annotation table <em>%s</em> has no '%s' column

The annotation table is joined with expression results by locus;
without that column no annotation can be attached.`

	vars := []any{path, column}

	return &gn.Error{
		Code: errcode.ExtractAnnotationColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("annotations %s have no %q column", path, column),
	}
}

// InputDirError creates an error for an input directory that cannot
// be listed.
func InputDirError(dir string, err error) error {
	msg := `Cannot read input directory <em>%s</em>

<em>How to fix:</em>
  1. Create the directory: <em>mkdir %s</em>
  2. Place expression-result files (.tab, .xlsx, .xls) inside`

	vars := []any{dir, dir}

	return &gn.Error{
		Code: errcode.ExtractInputDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read input directory %s: %w", dir, err),
	}
}

// OutputDirError creates an error for an output directory that
// cannot be created.
func OutputDirError(dir string, err error) error {
	msg := "Cannot create output directory <em>%s</em>"
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.ExtractOutputDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create output directory %s: %w", dir, err),
	}
}
