// Package table provides a small in-memory model for tabular data
// with the relational operations the extraction pipeline needs:
// column selection, equality filtering, inner and left joins on a
// named key column, and first-occurrence deduplication.
//
// Cells are kept as strings, as they arrive from TSV and spreadsheet
// readers. Column order is significant and preserved by every
// operation unless documented otherwise. Operations return new
// tables; receivers are never mutated.
package table

import (
	"strconv"
	"strings"
)

// Table is a column-ordered table of string cells. Every row has
// exactly len(Cols) cells.
type Table struct {
	Cols []string
	Rows [][]string
}

// New creates a Table from a header and rows. Rows shorter than the
// header are padded with empty cells, longer rows are truncated.
func New(cols []string, rows [][]string) Table {
	res := Table{Cols: cols, Rows: make([][]string, len(rows))}
	for i, row := range rows {
		r := make([]string, len(cols))
		copy(r, row)
		res.Rows[i] = r
	}
	return res
}

// NCols returns the number of columns.
func (t Table) NCols() int { return len(t.Cols) }

// NRows returns the number of rows.
func (t Table) NRows() int { return len(t.Rows) }

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool { return len(t.Rows) == 0 }

// ColIndex returns the position of a column, or -1 when absent.
func (t Table) ColIndex(name string) int {
	for i, c := range t.Cols {
		if c == name {
			return i
		}
	}
	return -1
}

// HasCol reports whether a column exists.
func (t Table) HasCol(name string) bool {
	return t.ColIndex(name) >= 0
}

// Col returns the values of a column in row order. An absent column
// yields an empty slice.
func (t Table) Col(name string) []string {
	idx := t.ColIndex(name)
	if idx < 0 {
		return nil
	}
	res := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		res[i] = row[idx]
	}
	return res
}

// Select returns a table with only the named columns, in the given
// order. Names absent from the table are skipped.
func (t Table) Select(names ...string) Table {
	var cols []string
	var idxs []int
	for _, name := range names {
		if idx := t.ColIndex(name); idx >= 0 {
			cols = append(cols, name)
			idxs = append(idxs, idx)
		}
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		r := make([]string, len(idxs))
		for j, idx := range idxs {
			r[j] = row[idx]
		}
		rows[i] = r
	}
	return Table{Cols: cols, Rows: rows}
}

// FilterEq returns the rows whose value in the named column equals
// val. The comparison is case-sensitive and exact. An absent column
// yields an empty table with the same header.
func (t Table) FilterEq(name, val string) Table {
	res := Table{Cols: t.Cols}
	idx := t.ColIndex(name)
	if idx < 0 {
		return res
	}
	for _, row := range t.Rows {
		if row[idx] == val {
			res.Rows = append(res.Rows, row)
		}
	}
	return res
}

// WithCol returns a table with an extra column appended. Values are
// padded with empty cells or truncated to the row count. If the
// column already exists its values are replaced in place.
func (t Table) WithCol(name string, vals []string) Table {
	if idx := t.ColIndex(name); idx >= 0 {
		res := Table{Cols: t.Cols, Rows: make([][]string, len(t.Rows))}
		for i, row := range t.Rows {
			r := make([]string, len(row))
			copy(r, row)
			if i < len(vals) {
				r[idx] = vals[i]
			} else {
				r[idx] = ""
			}
			res.Rows[i] = r
		}
		return res
	}

	cols := make([]string, len(t.Cols)+1)
	copy(cols, t.Cols)
	cols[len(t.Cols)] = name

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		r := make([]string, len(row)+1)
		copy(r, row)
		if i < len(vals) {
			r[len(row)] = vals[i]
		}
		rows[i] = r
	}
	return Table{Cols: cols, Rows: rows}
}

// DropCols returns a table without the named columns. Absent names
// are ignored.
func (t Table) DropCols(names ...string) Table {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}
	var keep []string
	for _, c := range t.Cols {
		if _, ok := drop[c]; !ok {
			keep = append(keep, c)
		}
	}
	return t.Select(keep...)
}

// MoveToFront returns a table with the named column first and the
// remaining columns in their original order. A table without the
// column is returned unchanged.
func (t Table) MoveToFront(name string) Table {
	if !t.HasCol(name) {
		return t
	}
	cols := []string{name}
	for _, c := range t.Cols {
		if c != name {
			cols = append(cols, c)
		}
	}
	return t.Select(cols...)
}

// DedupeBy returns a table with only the first row kept for every
// distinct value of the named column. A table without the column is
// returned unchanged.
func (t Table) DedupeBy(name string) Table {
	idx := t.ColIndex(name)
	if idx < 0 {
		return t
	}
	seen := make(map[string]struct{}, len(t.Rows))
	res := Table{Cols: t.Cols}
	for _, row := range t.Rows {
		if _, ok := seen[row[idx]]; ok {
			continue
		}
		seen[row[idx]] = struct{}{}
		res.Rows = append(res.Rows, row)
	}
	return res
}

// missingTokens are the cell values treated as absent data. DESeq2
// tables mark unusable p-values with NA; the other spellings cover
// what R and spreadsheet exports produce.
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"NULL": {},
	"null": {},
	"None": {},
}

// IsMissing reports whether a cell value marks absent data.
func IsMissing(v string) bool {
	_, ok := missingTokens[strings.TrimSpace(v)]
	return ok
}

// NumericCols reports, per column, whether every cell that is not a
// missing-data token parses as a float, with at least one such cell
// present. Such columns carry measurements and are subject to
// decimal-separator conversion on output; identifier columns like
// "LOC001.1" never qualify. NA cells do not break a numeric column:
// a padj column of floats and NA stays numeric.
func (t Table) NumericCols() []bool {
	res := make([]bool, len(t.Cols))
	for j := range t.Cols {
		var values int
		numeric := true
		for _, row := range t.Rows {
			v := strings.TrimSpace(row[j])
			if IsMissing(v) {
				continue
			}
			values++
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				numeric = false
				break
			}
		}
		res[j] = numeric && values > 0
	}
	return res
}
