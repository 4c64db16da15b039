package listview

import "strings"

// matchesQuery reports whether any filterable column of row contains the
// query as a substring. The query must already be case-folded; cell values
// are folded here. Null and missing cells never match.
func matchesQuery(row Row, columns []Column, query string) bool {
	for _, col := range columns {
		if !col.Filterable {
			continue
		}
		value, ok := row[col.Key]
		if !ok || value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(cellString(value)), query) {
			return true
		}
	}
	return false
}
