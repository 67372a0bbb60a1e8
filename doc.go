// Package tabulator renders a plain character stream into multi-column
// tabular output.
//
// A Tabulator wraps an io.Writer and is itself an io.Writer: characters
// written to it land in the active column's Cell, and column/row controls
// (NextColumn, TopLine, HorizLine, BottomLine) drive buffered content
// through to the wrapped writer in strict row order. Each Cell carries its
// own width, padding, justification, wrap, and truncation policy, so a
// single Tabulator can mix left-, right-, and center-justified columns,
// word- or character-wrapped columns, and columns that truncate with an
// ellipsis instead of wrapping.
//
// Write only buffers: nothing reaches the wrapped writer until a drain.
// Sync drains, without closing the row, whatever the row's cells can
// already emit, so output can stream before the whole row closes;
// advancing past the last column, drawing a rule, and Close drain rows as
// they close.
//
// Width is measured in Unicode code points, not display cells: a
// multi-byte UTF-8 sequence, a UTF-16 surrogate pair, or (trivially) a
// UTF-32 code unit each count as one column of width, regardless of how
// wide the glyph renders in a terminal.
package tabulator
