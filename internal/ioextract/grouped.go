package ioextract

import (
	"github.com/gnames/gngenes/pkg/table"
)

// groupedReport accumulates one column of gene identifiers per
// processed GO term for a single input file. Every column has a
// fixed height: gene lists are padded with empty values or truncated
// to capacity, so the written table is rectangular no matter how many
// genes each term matched.
type groupedReport struct {
	capacity int
	names    []string
	cols     map[string][]string
}

func newGrouped(capacity int) *groupedReport {
	return &groupedReport{
		capacity: capacity,
		cols:     make(map[string][]string),
	}
}

// SetColumn records the gene identifiers for one term. Reusing a
// name replaces the previous values and keeps the column position;
// this happens when the catalog lists the same GO term twice.
func (g *groupedReport) SetColumn(name string, geneIDs []string) {
	col := make([]string, g.capacity)
	copy(col, geneIDs)
	if _, ok := g.cols[name]; !ok {
		g.names = append(g.names, name)
	}
	g.cols[name] = col
}

// Width returns the number of columns collected so far.
func (g *groupedReport) Width() int { return len(g.names) }

// Table assembles the grouped report. Without any columns the result
// is an empty table, written as a header-only file.
func (g *groupedReport) Table() table.Table {
	if len(g.names) == 0 {
		return table.Table{}
	}

	rows := make([][]string, g.capacity)
	for i := range rows {
		row := make([]string, len(g.names))
		for j, name := range g.names {
			row[j] = g.cols[name][i]
		}
		rows[i] = row
	}
	return table.Table{Cols: g.names, Rows: rows}
}
