package gngenes

import (
	"context"
)

// Extractor defines the interface for the genes-per-GO-term pipeline.
// Extraction walks the input directory once; for every recognized
// expression-result file it produces one report per catalog GO term
// plus one grouped report, under an output subfolder named after the
// input file.
//
// Extraction is strictly sequential and restartable:
// - Lookup tables are loaded once and reused for every input file
// - A rerun on unchanged inputs rewrites byte-identical outputs
// - Per-file and per-term problems are skipped, structural problems abort
type Extractor interface {
	// Extract runs the whole pipeline: loads the species lookup
	// tables, walks the input directory, and writes per-GO-term and
	// grouped reports for every processable input file.
	Extract(ctx context.Context) error
}

// TermCatalog defines the interface for loading the ordered list of
// GO term identifiers to extract.
type TermCatalog interface {
	// Load returns trimmed, non-blank GO term identifiers in catalog
	// order. Duplicates are preserved.
	Load() ([]string, error)
}
