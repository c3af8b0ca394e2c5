package table_test

import (
	"testing"

	"github.com/gnames/gngenes/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legendSubset() table.Table {
	return table.New(
		[]string{"Gene stable ID", "GO term name", "locus"},
		[][]string{
			{"LOC001.2", "thylakoid", "LOC001"},
			{"LOC009.2", "thylakoid", "LOC009"},
		},
	)
}

func expression() table.Table {
	return table.New(
		[]string{"GeneID", "baseMean", "locus"},
		[][]string{
			{"LOC001.1", "104.5", "LOC001"},
			{"LOC002.1", "3.2", "LOC002"},
		},
	)
}

func TestInnerJoin(t *testing.T) {
	res := legendSubset().InnerJoin(expression(), "locus")

	require.Equal(t, 1, res.NRows(), "only shared loci survive")
	assert.Equal(t,
		[]string{"Gene stable ID", "GO term name", "locus",
			"GeneID", "baseMean"},
		res.Cols)
	assert.Equal(t,
		[]string{"LOC001.2", "thylakoid", "LOC001", "LOC001.1", "104.5"},
		res.Rows[0])
}

func TestInnerJoinNeverInventsRows(t *testing.T) {
	left := legendSubset()
	right := table.New(
		[]string{"GeneID", "locus"},
		[][]string{{"X.1", "X"}},
	)
	res := left.InnerJoin(right, "locus")
	assert.True(t, res.IsEmpty())
}

func TestInnerJoinRepeatsMultipleMatches(t *testing.T) {
	right := table.New(
		[]string{"GeneID", "locus"},
		[][]string{
			{"LOC001.1", "LOC001"},
			{"LOC001.3", "LOC001"},
		},
	)
	res := legendSubset().InnerJoin(right, "locus")
	require.Equal(t, 2, res.NRows())
	assert.Equal(t, "LOC001.1", res.Rows[0][3])
	assert.Equal(t, "LOC001.3", res.Rows[1][3])
}

func TestInnerJoinMissingKey(t *testing.T) {
	right := table.New([]string{"GeneID"}, [][]string{{"LOC001.1"}})
	res := legendSubset().InnerJoin(right, "locus")
	assert.True(t, res.IsEmpty())
	assert.Equal(t, legendSubset().Cols, res.Cols)
}

func TestLeftJoin(t *testing.T) {
	annotation := table.New(
		[]string{"locus", "description"},
		[][]string{
			{"LOC001", "photosystem subunit"},
		},
	)
	res := legendSubset().LeftJoin(annotation, "locus")

	require.Equal(t, 2, res.NRows(), "left join keeps every left row")
	assert.Equal(t,
		[]string{"Gene stable ID", "GO term name", "locus", "description"},
		res.Cols)
	assert.Equal(t, "photosystem subunit", res.Rows[0][3])
	assert.Equal(t, "", res.Rows[1][3], "no match leaves blanks")
}

func TestLeftJoinEmptyRight(t *testing.T) {
	// An empty annotation table (no columns at all) leaves the left
	// side untouched.
	res := legendSubset().LeftJoin(table.Table{}, "locus")
	assert.Equal(t, legendSubset().Cols, res.Cols)
	assert.Equal(t, 2, res.NRows())
}

func TestJoinRenamesCollidingColumns(t *testing.T) {
	right := table.New(
		[]string{"GO term name", "locus"},
		[][]string{{"other name", "LOC001"}},
	)
	res := legendSubset().InnerJoin(right, "locus")
	require.Equal(t, 1, res.NRows())
	assert.Equal(t,
		[]string{"Gene stable ID", "GO term name_x", "locus",
			"GO term name_y"},
		res.Cols)
	assert.Equal(t,
		[]string{"LOC001.2", "thylakoid", "LOC001", "other name"},
		res.Rows[0])
}

func TestJoinPreservesLeftOrder(t *testing.T) {
	left := table.New(
		[]string{"id", "locus"},
		[][]string{
			{"c", "L3"}, {"a", "L1"}, {"b", "L2"},
		},
	)
	right := table.New(
		[]string{"locus", "v"},
		[][]string{
			{"L1", "1"}, {"L2", "2"}, {"L3", "3"},
		},
	)
	res := left.InnerJoin(right, "locus")
	require.Equal(t, 3, res.NRows())
	assert.Equal(t, "c", res.Rows[0][0])
	assert.Equal(t, "a", res.Rows[1][0])
	assert.Equal(t, "b", res.Rows[2][0])
}
