// Package logger builds structured, column-aligned log lines on top of
// the root tabulator package: a Format describes an ordered set of
// leading information Elements (timestamp, tag, source location, ...),
// and each Entry created from that Format renders those elements into a
// fixed-width leading column, followed by a free-form, unbounded message
// column, using a nested Tabulator the same way the original library's
// logger built its per-entry information row out of the tabulator it was
// itself built on.
package logger
