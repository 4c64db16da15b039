package listview

import "sort"

// SortDirection is the direction of an active column sort.
type SortDirection int

// Sort directions.
const (
	SortAsc SortDirection = iota
	SortDesc
)

// String returns the CLI spelling of the direction.
func (d SortDirection) String() string {
	if d == SortDesc {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// SortState holds the single active sort. The zero value means no sort is
// active and rows keep their load order.
type SortState struct {
	Key       string
	Direction SortDirection
}

// IsSorted reports whether a column sort is active.
func (s SortState) IsSorted() bool {
	return s.Key != ""
}

// sortRows stable-sorts rows in place by the active sort column. With no
// active sort the slice is left in load order.
func (t *Table) sortRows(rows []Row) {
	if !t.sortState.IsSorted() {
		return
	}
	key := t.sortState.Key
	desc := t.sortState.Direction == SortDesc

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][key], rows[j][key]

		// Null cells collate last regardless of direction.
		if b == nil {
			return a != nil
		}
		if a == nil {
			return false
		}

		// For descending order, swap the operands so equal cells keep
		// their relative order.
		if desc {
			a, b = b, a
		}
		return t.compareValues(a, b) < 0
	})
}

// compareValues orders two non-null cells. Numeric pairs compare
// numerically; everything else falls back to locale-aware comparison of
// the stringified values.
func (t *Table) compareValues(a, b any) int {
	if an, aOK := numericValue(a); aOK {
		if bn, bOK := numericValue(b); bOK {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}
	return t.collator.CompareString(cellString(a), cellString(b))
}
