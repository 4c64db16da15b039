// Package tui implements the interactive league browser built on Bubble Tea.
//
// The browser shows one tab per entity. Each tab owns a listview.Table, so
// search, sort and page state survive tab switches. Rows are fetched when a
// tab is first opened and on demand with 'r'.
//
// Active flag changes are applied optimistically: the row flips as soon as
// the key is pressed, and rolls back with a timed error banner if the
// backend rejects the change.
package tui
