package listview

// Alignment is a rendering hint for horizontal cell alignment.
type Alignment int

// Cell alignments.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// RenderFunc formats a cell value for display. It receives the raw value
// and the full row so derived columns can combine fields.
type RenderFunc func(value any, row Row) string

// NullPlaceholder is displayed for null cells that have no custom renderer.
const NullPlaceholder = "—"

// Column describes one field of a list view.
type Column struct {
	// Key is the row field this column reads.
	Key string

	// Title is the header label.
	Title string

	// Sortable marks the column as a valid sort target.
	Sortable bool

	// Filterable includes the column in substring filtering.
	Filterable bool

	// Width is a rendering hint in characters. Zero means auto.
	Width int

	// Align is a rendering hint for cell alignment.
	Align Alignment

	// Render overrides the default cell formatting when non-nil.
	Render RenderFunc
}

// NewColumn creates a sortable, filterable column with the given row key
// and header title. Use the modifier methods to adjust behavior; each
// returns an updated copy.
func NewColumn(key, title string) Column {
	return Column{Key: key, Title: title, Sortable: true, Filterable: true}
}

// WithWidth returns a copy of the column with a fixed display width.
func (c Column) WithWidth(width int) Column {
	c.Width = width
	return c
}

// WithAlign returns a copy of the column with the given alignment hint.
func (c Column) WithAlign(align Alignment) Column {
	c.Align = align
	return c
}

// WithRender returns a copy of the column using fn for display formatting.
func (c Column) WithRender(fn RenderFunc) Column {
	c.Render = fn
	return c
}

// NoSort returns a copy of the column excluded from sorting.
func (c Column) NoSort() Column {
	c.Sortable = false
	return c
}

// NoFilter returns a copy of the column excluded from filtering.
func (c Column) NoFilter() Column {
	c.Filterable = false
	return c
}

// FormatCell returns the display string for the column's cell in row. A
// custom renderer always wins; without one, null cells show NullPlaceholder
// and scalar values render verbatim.
func FormatCell(col Column, row Row) string {
	value := row[col.Key]
	if col.Render != nil {
		return col.Render(value, row)
	}
	if value == nil {
		return NullPlaceholder
	}
	return cellString(value)
}
