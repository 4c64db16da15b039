package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/breakaway-dev/rinkctl/internal/config"
	"github.com/breakaway-dev/rinkctl/internal/listview"
)

// Supported output formats.
const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
)

// resolveOutput picks the output format, falling back to the configured
// default, and validates it.
func resolveOutput(flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case outputFormatTable, outputFormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: table, json)", format)
	}
}

// PaginationMeta describes the visible page window in JSON output.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewPaginationMeta builds the JSON pagination block from a derived view.
func NewPaginationMeta(view listview.View, pageSize int) PaginationMeta {
	return PaginationMeta{
		CurrentPage: view.Page,
		PageSize:    pageSize,
		TotalPages:  view.TotalPages,
		TotalItems:  view.TotalItems,
		HasPrevious: view.HasPrevious(),
		HasNext:     view.HasNext(),
	}
}

// listEnvelope is the JSON shape of a rendered list view. Rows carry the
// raw cell values so scripts can read IDs and numbers without unformatting.
type listEnvelope struct {
	Rows       []listview.Row `json:"rows"`
	Pagination PaginationMeta `json:"pagination"`
}

// renderView writes the visible page in the requested format.
func renderView(w io.Writer, format string, columns []listview.Column, view listview.View, pageSize int) error {
	if format == outputFormatJSON {
		return renderJSON(w, view, pageSize)
	}
	return renderTable(w, columns, view)
}

// renderTable writes the page as an aligned text table with a footer line
// describing the window.
func renderTable(w io.Writer, columns []listview.Column, view listview.View) error {
	if view.TotalItems == 0 {
		_, err := fmt.Fprintln(w, "No results to display.")
		return err
	}

	const tabPadding = 2
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	headers := make([]string, 0, len(columns))
	dashes := make([]string, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.Title)
		dashes = append(dashes, strings.Repeat("-", len(col.Title)))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range view.Rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, listview.FormatCell(col, row))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nShowing %d-%d of %d (page %d/%d)\n",
		view.PageStart, view.PageEnd, view.TotalItems, view.Page, view.TotalPages)
	return err
}

// renderJSON writes the page as a {rows, pagination} envelope.
func renderJSON(w io.Writer, view listview.View, pageSize int) error {
	rows := view.Rows
	if rows == nil {
		rows = []listview.Row{}
	}
	envelope := listEnvelope{
		Rows:       rows,
		Pagination: NewPaginationMeta(view, pageSize),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(envelope)
}
