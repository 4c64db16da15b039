package listview

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize is the page size used when no option overrides it.
const DefaultPageSize = 25

// Option configures a Table at construction time.
type Option func(*Table)

// WithPageSize sets the fixed page size. Values below 1 keep the default.
func WithPageSize(size int) Option {
	return func(t *Table) {
		if size >= 1 {
			t.pageSize = size
		}
	}
}

// WithLocale sets the language used for string collation during sorting.
// The default is the undetermined locale, which orders letters before case.
func WithLocale(tag language.Tag) Option {
	return func(t *Table) {
		t.collator = collate.New(tag)
	}
}

// Table is the list view engine. It owns the loaded row set plus the
// active query, sort, and page, and derives the visible window through a
// fixed filter, sort, paginate pipeline.
//
// A Table performs no I/O and never panics on malformed rows. It is not
// safe for concurrent use; serialize access in the caller.
type Table struct {
	columns  []Column
	pageSize int
	collator *collate.Collator

	rows      []Row  // loaded rows in insertion order
	query     string // trimmed query as provided
	folded    string // case-folded query used for matching
	sortState SortState
	page      int

	derived []Row // filtered and sorted, cached between mutations
}

// New creates a Table over the given column set. Rows start empty; call
// Load to populate.
func New(columns []Column, opts ...Option) *Table {
	t := &Table{
		columns:  columns,
		pageSize: DefaultPageSize,
		page:     1,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.collator == nil {
		t.collator = collate.New(language.Und)
	}
	return t
}

// Load replaces the entire row set. The active query and sort are applied
// to the new rows and the view returns to the first page.
//
// Row maps are kept by reference, so in-place cell edits show up on the
// next View call. The slice itself is never reordered.
func (t *Table) Load(rows []Row) {
	t.rows = rows
	t.page = 1
	t.derive()
}

// SetSearchQuery replaces the filter query. Matching trims surrounding
// whitespace and is case-insensitive; an empty or all-space query clears
// the filter. The view returns to the first page.
func (t *Table) SetSearchQuery(query string) {
	t.query = strings.TrimSpace(query)
	t.folded = strings.ToLower(t.query)
	t.page = 1
	t.derive()
}

// ToggleSort cycles the sort on key: a new column starts ascending, the
// already-active column flips direction. Unknown and unsortable keys are
// ignored. The current page is kept.
func (t *Table) ToggleSort(key string) {
	col, ok := t.columnByKey(key)
	if !ok || !col.Sortable {
		return
	}
	if t.sortState.Key == key {
		t.sortState.Direction = t.sortState.Direction.Toggle()
	} else {
		t.sortState = SortState{Key: key, Direction: SortAsc}
	}
	t.derive()
}

// SetSort sets the sort state directly, bypassing the toggle cycle.
// Unknown and unsortable keys are ignored. The current page is kept.
func (t *Table) SetSort(key string, direction SortDirection) {
	col, ok := t.columnByKey(key)
	if !ok || !col.Sortable {
		return
	}
	t.sortState = SortState{Key: key, Direction: direction}
	t.derive()
}

// SetPage moves to the given 1-based page, silently clamped into the
// valid range.
func (t *Table) SetPage(page int) {
	t.page = clampPage(page, t.totalPages())
}

// Query returns the active filter query after trimming.
func (t *Table) Query() string {
	return t.query
}

// Sort returns the active sort state.
func (t *Table) Sort() SortState {
	return t.sortState
}

// Page returns the current 1-based page number.
func (t *Table) Page() int {
	return t.page
}

// PageSize returns the fixed page size.
func (t *Table) PageSize() int {
	return t.pageSize
}

// Columns returns the column set in declaration order.
func (t *Table) Columns() []Column {
	return t.columns
}

// RowCount returns the loaded row count before filtering.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// derive recomputes the filtered, sorted row cache and re-clamps the
// current page against the new page count.
func (t *Table) derive() {
	filtered := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		if t.folded != "" && !matchesQuery(row, t.columns, t.folded) {
			continue
		}
		filtered = append(filtered, row)
	}
	t.sortRows(filtered)
	t.derived = filtered
	t.page = clampPage(t.page, t.totalPages())
}

// totalPages returns the page count for the derived rows as an integer
// ceiling, floored at one so an empty result still has a valid page.
func (t *Table) totalPages() int {
	pages := len(t.derived) / t.pageSize
	if len(t.derived)%t.pageSize > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

func clampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

func (t *Table) columnByKey(key string) (Column, bool) {
	for _, col := range t.columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column{}, false
}
