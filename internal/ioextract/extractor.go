// Package ioextract implements the Extractor interface: the
// genes-per-GO-term pipeline joining expression results with the GO
// legend and annotation lookup tables.
// This is an impure I/O package that reads input tables and writes
// per-term and grouped reports.
package ioextract

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gngenes/internal/iotable"
	"github.com/gnames/gngenes/pkg/config"
	"github.com/gnames/gngenes/pkg/gngenes"
	"github.com/gnames/gngenes/pkg/species"
	"github.com/gnames/gngenes/pkg/table"
	"github.com/gnames/gnsys"
	"github.com/google/uuid"
)

// Column names shared by the input tables.
const (
	geneIDCol    = "GeneID"
	locusCol     = "locus"
	accessionCol = "accession"
	stableIDCol  = "Gene stable ID"
	termNameCol  = "GO term name"
	termDefCol   = "GO term definition"
)

// extractor implements the Extractor interface.
type extractor struct {
	cfg     *config.Config
	profile species.Profile
	terms   []string

	// Loaded once, reused for every input file.
	legend     table.Table
	annotation table.Table

	runID string
}

// New creates a new Extractor for one species profile and one
// GO-term catalog.
func New(
	cfg *config.Config,
	profile species.Profile,
	terms []string,
) gngenes.Extractor {
	return &extractor{cfg: cfg, profile: profile, terms: terms}
}

// Extract runs the pipeline: loads the lookup tables, then processes
// every regular file of the input directory in directory-listing
// order, one GO term at a time.
func (e *extractor) Extract(ctx context.Context) error {
	startTime := time.Now()
	e.runID = uuid.NewString()

	slog.Info("Starting extraction",
		"run_id", e.runID,
		"species", e.profile.Code,
		"terms", len(e.terms))

	if err := e.loadLookups(); err != nil {
		return err
	}

	if err := gnsys.MakeDir(e.cfg.Extract.OutputDir); err != nil {
		return OutputDirError(e.cfg.Extract.OutputDir, err)
	}

	inputDir := e.cfg.Extract.InputDir
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return InputDirError(inputDir, err)
	}

	processed := 0
	skipped := 0
	for _, ent := range entries {
		if err = ctx.Err(); err != nil {
			return err
		}
		if !ent.Type().IsRegular() {
			continue
		}

		ok, err := e.processFile(ent.Name())
		if err != nil {
			return err
		}
		if ok {
			processed++
		} else {
			skipped++
		}
	}

	totalDuration := time.Since(startTime)
	slog.Info("Extraction finished",
		"run_id", e.runID,
		"files_processed", processed,
		"files_skipped", skipped,
		"duration", gnfmt.TimeString(totalDuration.Seconds()))
	gn.Info("Processed %d files in %s",
		processed, gnfmt.TimeString(totalDuration.Seconds()))
	gn.Info("Finished!")

	return nil
}

// loadLookups reads the GO legend and annotation tables for the
// species profile. Both are required resources: a missing or
// malformed file aborts the run before any input is touched.
func (e *extractor) loadLookups() error {
	var err error

	e.legend, err = iotable.ReadTSV(e.profile.Legend)
	if err != nil {
		return LegendNotFoundError(e.profile.Legend, err)
	}
	for _, col := range []string{
		accessionCol, stableIDCol, termNameCol, termDefCol,
	} {
		if !e.legend.HasCol(col) {
			return LegendColumnError(e.profile.Legend, col)
		}
	}
	slog.Info("Loaded GO legend",
		"file", e.profile.Legend,
		"rows", humanize.Comma(int64(e.legend.NRows())))

	e.annotation, err = iotable.ReadSpreadsheet(e.profile.Annotation)
	if err != nil {
		return AnnotationNotFoundError(e.profile.Annotation, err)
	}
	// An annotation file without rows is fine; the left join keeps
	// expression rows with blank annotation fields.
	if e.annotation.NCols() > 0 && !e.annotation.HasCol(locusCol) {
		return AnnotationColumnError(e.profile.Annotation, locusCol)
	}
	slog.Info("Loaded annotations",
		"file", e.profile.Annotation,
		"rows", humanize.Comma(int64(e.annotation.NRows())))

	return nil
}

// processFile runs all catalog GO terms against one expression file.
// The returned bool reports whether the file was processed; skips
// are not errors. A non-nil error is structural and aborts the run.
func (e *extractor) processFile(name string) (bool, error) {
	inPath := filepath.Join(e.cfg.Extract.InputDir, name)
	base := strings.TrimSuffix(name, filepath.Ext(name))

	// The output subfolder is created before format checks, matching
	// the observable behavior the reports' consumers rely on.
	subDir := filepath.Join(e.cfg.Extract.OutputDir, base)
	if err := gnsys.MakeDir(subDir); err != nil {
		return false, OutputDirError(subDir, err)
	}

	tbl, err := iotable.ReadAuto(inPath)
	if errors.Is(err, iotable.ErrUnsupportedFormat) {
		gn.Warn("Skipping unsupported file type: %s", name)
		return false, nil
	}
	if err != nil {
		gn.Warn("Cannot read %s, skipping", name)
		slog.Warn("Unreadable input file",
			"run_id", e.runID, "file", name, "error", err)
		return false, nil
	}

	gn.Info("Processing: %s", name)

	if !tbl.HasCol(geneIDCol) {
		gn.Warn("Warning: '%s' column not found in %s. Skipping this file.",
			geneIDCol, name)
		return false, nil
	}

	expr := tbl.WithCol(locusCol, e.lociFor(tbl.Col(geneIDCol)))

	grouped := newGrouped(e.cfg.Extract.GroupRows)
	bar := newProgressBar(len(e.terms), base)
	fileStart := time.Now()
	matched := 0
	skippedTerms := 0

	for _, term := range e.terms {
		ok, err := e.processTerm(subDir, base, term, expr, grouped)
		if err != nil {
			bar.Finish()
			return false, err
		}
		if ok {
			matched++
		} else {
			skippedTerms++
		}
		bar.Increment()
	}
	bar.Finish()

	groupedOut := filepath.Join(subDir, base+"1_grouped.tab")
	if err = iotable.WriteTSV(groupedOut, grouped.Table(), true); err != nil {
		return false, err
	}

	slog.Info("Input file done",
		"run_id", e.runID,
		"file", name,
		"terms_matched", matched,
		"terms_skipped", skippedTerms,
		"duration", gnfmt.TimeString(time.Since(fileStart).Seconds()))

	return true, nil
}

// lociFor derives locus join keys for a column of gene identifiers.
func (e *extractor) lociFor(geneIDs []string) []string {
	res := make([]string, len(geneIDs))
	for i, id := range geneIDs {
		res[i] = e.profile.LocusKey(id)
	}
	return res
}
