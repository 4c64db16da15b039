package listview

// View is a snapshot of the visible page plus its pagination metadata.
type View struct {
	// Rows is the visible window of the filtered, sorted row set.
	Rows []Row

	// Page is the current 1-based page number.
	Page int

	// TotalPages is the page count, at least 1 even when empty.
	TotalPages int

	// TotalItems is the filtered row count across all pages.
	TotalItems int

	// PageStart and PageEnd are the 1-based positions of the first and
	// last visible rows within the filtered set, both 0 when empty.
	PageStart int
	PageEnd   int
}

// HasPrevious reports whether an earlier page exists.
func (v View) HasPrevious() bool {
	return v.Page > 1
}

// HasNext reports whether a later page exists.
func (v View) HasNext() bool {
	return v.Page < v.TotalPages
}

// View derives the visible page for the current query, sort, and page
// state.
func (t *Table) View() View {
	total := len(t.derived)
	start := (t.page - 1) * t.pageSize
	if start > total {
		start = total
	}
	end := start + t.pageSize
	if end > total {
		end = total
	}

	view := View{
		Rows:       t.derived[start:end],
		Page:       t.page,
		TotalPages: t.totalPages(),
		TotalItems: total,
	}
	if total > 0 {
		view.PageStart = start + 1
		view.PageEnd = end
	}
	return view
}
