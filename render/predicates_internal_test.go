package render

import "testing"

// buildTable constructs a Table directly from row->successors pairs, for
// predicate unit tests that don't need a core.Graph.
func buildTable(rows ...[]int) Table {
	t := make(Table, len(rows))
	copy(t, rows)

	return t
}

func TestColIsDsuccOfRow(t *testing.T) {
	table := buildTable([]int{1, 2}, nil, nil)
	if !colIsDsuccOfRow(table, 0, 1) {
		t.Error("expected col 1 to be a direct successor of row 0")
	}
	if colIsDsuccOfRow(table, 0, 0) {
		t.Error("expected col 0 not to be a direct successor of row 0")
	}
}

func TestRightIsDsuccOfRow(t *testing.T) {
	table := buildTable([]int{1, 3}, nil, nil, nil)
	if !rightIsDsuccOfRow(table, 0, 2) {
		t.Error("expected a successor of row 0 strictly right of col 2 (namely 3)")
	}
	if rightIsDsuccOfRow(table, 0, 3) {
		t.Error("col 3 is the max successor, nothing strictly to its right")
	}
	if rightIsDsuccOfRow(table, 1, 0) {
		t.Error("row 1 has no successors at all")
	}
}

func TestColIsDsuccOfAbove(t *testing.T) {
	table := buildTable([]int{2}, nil, nil)
	if !colIsDsuccOfAbove(table, 1, 2) {
		t.Error("row 0 (above row 1) has col 2 as a successor")
	}
	if colIsDsuccOfAbove(table, 0, 2) {
		t.Error("no row above row 0")
	}
}

func TestRightIsDsuccOfAbove(t *testing.T) {
	table := buildTable([]int{2}, nil, nil)
	if !rightIsDsuccOfAbove(table, 1, 1) {
		t.Error("row 0 has a successor (2) strictly right of col 1")
	}
	if rightIsDsuccOfAbove(table, 1, 2) {
		t.Error("col 2 is row 0's successor itself, nothing strictly right of it")
	}
}

func TestRowIsDpredOfLeftAndAlias(t *testing.T) {
	table := buildTable([]int{0, 2}, nil, nil)
	if !rowIsDpredOfLeft(table, 0, 2) {
		t.Error("row 0 has successor 0, which is strictly left of col 2")
	}
	if rowIsDpredOfLeft(table, 0, 0) {
		t.Error("no successor of row 0 is strictly left of col 0")
	}
	if leftIsDsuccOfRow(table, 0, 2) != rowIsDpredOfLeft(table, 0, 2) {
		t.Error("leftIsDsuccOfRow must be a pure alias of rowIsDpredOfLeft")
	}
}

func TestBelowIsDsuccOfCol(t *testing.T) {
	table := buildTable(nil, nil, []int{1})
	if !belowIsDsuccOfCol(table, 0, 1) {
		t.Error("row 2 (at/below row 0) has col 1 as a successor")
	}
	if belowIsDsuccOfCol(table, 0, 2) {
		t.Error("no row at/below 0 has col 2 as a successor")
	}
}

func TestAnywhereIsDsuccOfCol(t *testing.T) {
	table := buildTable(nil, []int{0}, nil)
	if !anywhereIsDsuccOfCol(table, 0) {
		t.Error("row 1 has col 0 as a successor")
	}
	if anywhereIsDsuccOfCol(table, 2) {
		t.Error("no row has col 2 as a successor")
	}
}
