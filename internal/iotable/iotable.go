// Package iotable reads and writes the pipeline's tabular files.
//
// Two physical formats are supported: tab-separated text (.tab) and
// spreadsheets (.xlsx, .xls). The first row of every file is the
// header. Writing is deterministic: identical tables produce
// byte-identical files.
package iotable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gngenes/pkg/table"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat marks a file whose extension is not a
// recognized table format. Callers skip such files and continue.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadAuto loads a table, dispatching on the file extension:
// .tab for TSV, .xlsx/.xls for spreadsheets. Any other extension
// returns ErrUnsupportedFormat.
func ReadAuto(path string) (table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tab":
		return ReadTSV(path)
	case ".xlsx", ".xls":
		return ReadSpreadsheet(path)
	default:
		return table.Table{}, fmt.Errorf(
			"%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// ReadTSV loads a tab-separated file. Ragged rows are tolerated:
// short rows are padded with empty cells, long ones truncated to the
// header width.
func ReadTSV(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, TableReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return table.Table{}, TableReadError(path, err)
	}
	if len(records) == 0 {
		return table.Table{}, nil
	}
	return table.New(records[0], records[1:]), nil
}

// ReadSpreadsheet loads the first sheet of a spreadsheet file.
func ReadSpreadsheet(path string) (table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table.Table{}, TableReadError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.Table{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table.Table{}, TableReadError(path, err)
	}
	if len(rows) == 0 {
		return table.Table{}, nil
	}
	return table.New(rows[0], rows[1:]), nil
}

// WriteTSV writes a table as a tab-separated file. With decimalComma
// set, values of numeric columns get their decimal point replaced by
// a comma and missing-data tokens (NA, NaN) come out blank;
// identifier columns are left untouched.
func WriteTSV(path string, t table.Table, decimalComma bool) error {
	f, err := os.Create(path)
	if err != nil {
		return TableWriteError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err = w.Write(t.Cols); err != nil {
		return TableWriteError(path, err)
	}

	var numeric []bool
	if decimalComma {
		numeric = t.NumericCols()
	}

	row := make([]string, len(t.Cols))
	for _, src := range t.Rows {
		copy(row, src)
		if decimalComma {
			for j, v := range row {
				if !numeric[j] {
					continue
				}
				if table.IsMissing(v) {
					row[j] = ""
					continue
				}
				row[j] = strings.Replace(v, ".", ",", 1)
			}
		}
		if err = w.Write(row); err != nil {
			return TableWriteError(path, err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return TableWriteError(path, err)
	}
	return nil
}
