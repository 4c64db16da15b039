package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/breakaway-dev/rinkctl/internal/listview"
)

// Sort expression validation errors.
var (
	ErrEmptySortExpression = errors.New("empty sort expression")
	ErrInvalidSortFormat   = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'wins:desc')")
	ErrInvalidSortOrder    = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField    = errors.New("invalid sort field")
)

// sortPartsMax is the maximum number of parts in a sort expression (field:order).
const sortPartsMax = 2

// listParams holds the flags shared by every list command.
type listParams struct {
	search   string
	sortExpr string
	page     int
	pageSize int
	output   string
}

// addListFlags registers the shared list flags on cmd.
func addListFlags(cmd *cobra.Command, params *listParams) {
	cmd.Flags().StringVar(&params.search, "search", "",
		"substring filter applied across filterable columns (case-insensitive)")
	cmd.Flags().StringVar(&params.sortExpr, "sort", "",
		"sort expression: 'field' or 'field:asc|desc'")
	cmd.Flags().IntVar(&params.page, "page", 1,
		"1-based page number (out-of-range values are clamped)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0,
		"rows per page (0 = config default)")
	cmd.Flags().StringVar(&params.output, "output", "",
		"output format: table or json (default from config)")
}

// ParseSortExpression parses "field" or "field:order" into a sort state.
// A bare field sorts ascending.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSortExpression(expr string) (state listview.SortState, err error) {
	if strings.TrimSpace(expr) == "" {
		return listview.SortState{}, ErrEmptySortExpression
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return listview.SortState{}, fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field := strings.TrimSpace(parts[0])
	if field == "" {
		return listview.SortState{}, ErrEmptySortExpression
	}

	direction := listview.SortAsc
	if len(parts) == sortPartsMax {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc":
			direction = listview.SortAsc
		case "desc":
			direction = listview.SortDesc
		default:
			return listview.SortState{}, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, parts[1])
		}
	}

	return listview.SortState{Key: field, Direction: direction}, nil
}

// resolveSort parses and validates the sort expression against the column
// set. An empty expression means no sort.
func resolveSort(expr string, columns []listview.Column) (listview.SortState, error) {
	if expr == "" {
		return listview.SortState{}, nil
	}

	state, err := ParseSortExpression(expr)
	if err != nil {
		return listview.SortState{}, err
	}

	for _, col := range columns {
		if col.Key == state.Key && col.Sortable {
			return state, nil
		}
	}
	return listview.SortState{}, fmt.Errorf("%w: %q (valid: %s)",
		ErrInvalidSortField, state.Key, strings.Join(sortableKeys(columns), ", "))
}

// sortableKeys returns the sortable column keys in declaration order.
func sortableKeys(columns []listview.Column) []string {
	keys := make([]string, 0, len(columns))
	for _, col := range columns {
		if col.Sortable {
			keys = append(keys, col.Key)
		}
	}
	return keys
}
