package table

// joinHow selects join semantics.
type joinHow int

const (
	joinInner joinHow = iota
	joinLeft
)

// InnerJoin joins two tables on a shared key column. Left rows with
// no key match on the right are dropped; a left row matching several
// right rows is repeated once per match. Left row order is preserved.
// The key column appears once, at its position in the left table.
// Non-key columns present on both sides are suffixed "_x" on the left
// and "_y" on the right.
func (t Table) InnerJoin(right Table, key string) Table {
	return t.join(right, key, joinInner)
}

// LeftJoin joins two tables on a shared key column, keeping every
// left row. Right columns are blank when the key has no match.
func (t Table) LeftJoin(right Table, key string) Table {
	return t.join(right, key, joinLeft)
}

func (t Table) join(right Table, key string, how joinHow) Table {
	leftKey := t.ColIndex(key)
	rightKey := right.ColIndex(key)
	if leftKey < 0 || rightKey < 0 {
		if how == joinInner {
			return Table{Cols: t.Cols}
		}
		return t
	}

	// Non-key columns shared by both sides get _x/_y suffixes.
	collides := make(map[string]bool)
	for j, c := range right.Cols {
		if j != rightKey && c != key && t.HasCol(c) {
			collides[c] = true
		}
	}

	cols := make([]string, 0, len(t.Cols)+len(right.Cols)-1)
	for _, c := range t.Cols {
		if collides[c] {
			c += "_x"
		}
		cols = append(cols, c)
	}
	var rightIdxs []int
	for j, c := range right.Cols {
		if j == rightKey {
			continue
		}
		if collides[c] {
			c += "_y"
		}
		cols = append(cols, c)
		rightIdxs = append(rightIdxs, j)
	}

	index := make(map[string][]int, len(right.Rows))
	for i, row := range right.Rows {
		k := row[rightKey]
		index[k] = append(index[k], i)
	}

	res := Table{Cols: cols}
	for _, lrow := range t.Rows {
		matches := index[lrow[leftKey]]
		if len(matches) == 0 {
			if how == joinInner {
				continue
			}
			row := make([]string, len(cols))
			copy(row, lrow)
			res.Rows = append(res.Rows, row)
			continue
		}
		for _, ri := range matches {
			row := make([]string, 0, len(cols))
			row = append(row, lrow...)
			for _, j := range rightIdxs {
				row = append(row, right.Rows[ri][j])
			}
			res.Rows = append(res.Rows, row)
		}
	}
	return res
}
