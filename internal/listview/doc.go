// Package listview implements the list rendering engine behind rinkctl's
// table output and interactive browser.
//
// A Table holds an opaque row set and derives the visible window through a
// fixed pipeline: filter, then sort, then paginate. Key behaviors:
//   - Single-query substring filtering across filterable columns
//   - Stable single-column sorting with locale-aware string comparison
//   - 1-based pagination with silent page clamping
//
// The engine performs no I/O and never panics on missing or null cells.
// Callers load rows from the API layer and read back View snapshots.
package listview
