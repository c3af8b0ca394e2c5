// Package iocatalog loads the catalog of GO terms to extract.
//
// The catalog is a spreadsheet (or TSV) whose "names" column lists
// GO term identifiers, one per row. Blank rows are skipped;
// duplicates are kept in order, as each occurrence is processed
// separately.
package iocatalog

import (
	"log/slog"
	"strings"

	"github.com/gnames/gngenes/internal/iotable"
	"github.com/gnames/gngenes/pkg/config"
	"github.com/gnames/gngenes/pkg/gngenes"
)

// termsCol is the required catalog column holding GO identifiers.
const termsCol = "names"

type iocatalog struct {
	cfg *config.Config
}

// New creates a TermCatalog reading from the configured catalog file.
func New(cfg *config.Config) gngenes.TermCatalog {
	res := iocatalog{cfg: cfg}
	return &res
}

func (c *iocatalog) Load() ([]string, error) {
	path := c.cfg.Extract.CatalogFile
	tbl, err := iotable.ReadAuto(path)
	if err != nil {
		return nil, CatalogNotFoundError(path, err)
	}
	if !tbl.HasCol(termsCol) {
		return nil, CatalogColumnError(path, termsCol)
	}

	var res []string
	seen := make(map[string]int)
	for _, v := range tbl.Col(termsCol) {
		term := strings.TrimSpace(v)
		if term == "" {
			continue
		}
		res = append(res, term)
		seen[term]++
	}

	for term, n := range seen {
		if n > 1 {
			// Duplicates are processed again; the later run overwrites
			// the earlier report.
			slog.Warn("GO term listed more than once in catalog",
				"term", term, "count", n)
		}
	}

	slog.Info("Loaded GO term catalog", "file", path, "terms", len(res))
	return res, nil
}
