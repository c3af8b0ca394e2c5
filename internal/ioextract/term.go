package ioextract

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gngenes/internal/iotable"
	"github.com/gnames/gngenes/pkg/table"
)

// processTerm extracts the genes annotated with one GO term from one
// expression table. It writes the raw legend subset and the merged
// report, and records the matched gene identifiers in the grouped
// report. The returned bool reports whether a report was produced;
// a term without legend entries is skipped, not an error.
func (e *extractor) processTerm(
	subDir, base, term string,
	expr table.Table,
	grouped *groupedReport,
) (bool, error) {
	subset := e.legend.FilterEq(accessionCol, term)
	if subset.IsEmpty() {
		gn.Warn("Note: No entries found for GO term %s. Skipping.", term)
		return false, nil
	}

	goSafe := sanitizeGOID(term)
	termName := term
	if names := subset.Col(termNameCol); len(names) > 0 &&
		strings.TrimSpace(names[0]) != "" {
		termName = names[0]
	}
	termSafe := sanitizeTermName(termName)

	sel := subset.Select(stableIDCol, termNameCol, termDefCol)

	// The raw legend subset is an observable output of its own,
	// written without the decimal-comma convention.
	legendOut := filepath.Join(subDir, goSafe+" "+termSafe+".tab")
	if err := iotable.WriteTSV(legendOut, sel, false); err != nil {
		return false, err
	}

	withLocus := sel.WithCol(locusCol, e.lociFor(sel.Col(stableIDCol)))

	// Inner join keeps only genes present in both the legend subset
	// and this expression file; the annotation left join fills in
	// metadata where available and blanks elsewhere.
	merged := withLocus.InnerJoin(expr, locusCol)
	merged = merged.LeftJoin(e.annotation, locusCol)
	merged = merged.DedupeBy(stableIDCol)
	merged = merged.DropCols(locusCol, stableIDCol)
	merged = merged.MoveToFront(geneIDCol)

	reportOut := filepath.Join(subDir, base+goSafe+" "+termSafe+".tab")
	if err := iotable.WriteTSV(reportOut, merged, true); err != nil {
		return false, err
	}

	grouped.SetColumn(termSafe, merged.Col(geneIDCol))

	slog.Debug("GO term extracted",
		"run_id", e.runID,
		"term", term,
		"name", termName,
		"genes", merged.NRows())

	return true, nil
}

// sanitizeGOID makes a GO accession safe for file names
// (GO:0009535 becomes GO_0009535).
func sanitizeGOID(term string) string {
	return strings.ReplaceAll(term, ":", "_")
}

// sanitizeTermName makes a GO term name safe for file names and
// grouped-report headers.
func sanitizeTermName(name string) string {
	return strings.ReplaceAll(name, "/", "_")
}
