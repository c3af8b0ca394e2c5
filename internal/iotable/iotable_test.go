package iotable_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gngenes/internal/iotable"
	"github.com/gnames/gngenes/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestReadTSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "expr.tab",
		"GeneID\tbaseMean\tpadj\n"+
			"LOC001.1\t104.5\t0.001\n"+
			"LOC002.1\t3.2\n")

	tbl, err := iotable.ReadTSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"GeneID", "baseMean", "padj"}, tbl.Cols)
	require.Equal(t, 2, tbl.NRows())
	// ragged row gets padded
	assert.Equal(t, []string{"LOC002.1", "3.2", ""}, tbl.Rows[1])
}

func TestReadTSVMissing(t *testing.T) {
	_, err := iotable.ReadTSV(filepath.Join(t.TempDir(), "nope.tab"))
	assert.Error(t, err)
}

func TestReadSpreadsheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "names"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "GO:0009535"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "GO:0016020"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := iotable.ReadSpreadsheet(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"names"}, tbl.Cols)
	assert.Equal(t,
		[]string{"GO:0009535", "GO:0016020"}, tbl.Col("names"))
}

func TestReadAuto(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "expr.tab", "GeneID\nLOC001.1\n")

	tbl, err := iotable.ReadAuto(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.NRows())

	t.Run("unsupported extension", func(t *testing.T) {
		p := writeFile(t, dir, "notes.txt", "whatever")
		_, err := iotable.ReadAuto(p)
		assert.True(t, errors.Is(err, iotable.ErrUnsupportedFormat))
	})
}

func TestWriteTSVDecimalComma(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.tab")

	tbl := table.New(
		[]string{"GeneID", "baseMean", "note"},
		[][]string{
			{"LOC001.1", "104.5", "up"},
			{"LOC002.1", "3.25", "down"},
		},
	)

	err := iotable.WriteTSV(path, tbl, true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"GeneID\tbaseMean\tnote\n"+
			"LOC001.1\t104,5\tup\n"+
			"LOC002.1\t3,25\tdown\n",
		string(data),
		"numeric columns use decimal comma, identifiers stay intact")
}

func TestWriteTSVDecimalCommaWithMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.tab")

	// DESeq2 leaves NA in padj; the column is still numeric and the
	// missing cells come out blank.
	tbl := table.New(
		[]string{"GeneID", "padj"},
		[][]string{
			{"LOC001.1", "0.001"},
			{"LOC002.1", "NA"},
		},
	)

	err := iotable.WriteTSV(path, tbl, true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "0,001")
	assert.Equal(t,
		"GeneID\tpadj\n"+
			"LOC001.1\t0,001\n"+
			"LOC002.1\t\n",
		string(data))
}

func TestWriteTSVPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legend.tab")

	tbl := table.New(
		[]string{"Gene stable ID", "GO term name"},
		[][]string{{"LOC001.2", "thylakoid"}},
	)

	err := iotable.WriteTSV(path, tbl, false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Gene stable ID\tGO term name\nLOC001.2\tthylakoid\n",
		string(data))
}

// Running the writer twice over the same table produces
// byte-identical files; downstream diffs rely on this.
func TestWriteTSVDeterministic(t *testing.T) {
	dir := t.TempDir()
	tbl := table.New(
		[]string{"GeneID", "padj"},
		[][]string{
			{"LOC001.1", "0.001"},
			{"LOC002.1", "0.5"},
		},
	)

	p1 := filepath.Join(dir, "a.tab")
	p2 := filepath.Join(dir, "b.tab")
	require.NoError(t, iotable.WriteTSV(p1, tbl, true))
	require.NoError(t, iotable.WriteTSV(p2, tbl, true))

	d1, err := os.ReadFile(p1)
	require.NoError(t, err)
	d2, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.tab")

	tbl := table.New(
		[]string{"GeneID", "desc"},
		[][]string{
			{"LOC001.1", "has\ttab inside"},
			{"LOC002.1", ""},
		},
	)
	require.NoError(t, iotable.WriteTSV(path, tbl, false))

	res, err := iotable.ReadTSV(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Cols, res.Cols)
	assert.Equal(t, tbl.Rows, res.Rows)
}
