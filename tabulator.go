package tabulator

import "github.com/skinneberg/tabulator/codeunit"

// GenericTabulator renders a fixed set of columns as an aligned text
// table. It is itself a Sink: code units written to it are appended to
// the cell at the current write column, and rows are drained to the
// wrapped sink as columns advance and fill.
//
// GenericTabulator is not safe for concurrent use; a single instance is
// meant to be driven synchronously from one goroutine, mirroring the
// single-threaded contract of the stream it decorates.
type GenericTabulator[T codeunit.CodeUnit] struct {
	sink  Sink[T]
	cells []*Cell[T]
	style Style

	col       int // column the next Write call appends to
	syncCol   int // column the drain loop is currently draining
	lineStart bool
	closed    bool
}

// Tabulator is the byte-oriented (UTF-8) instantiation and the package's
// primary entry point. It satisfies io.Writer, so it can be used directly
// anywhere an io.Writer is expected, including as another Tabulator's
// cell content.
type Tabulator = GenericTabulator[byte]

// Tabulator16 and Tabulator32 are the UTF-16 and UTF-32 instantiations,
// provided for parity with callers that already work in those widths.
type Tabulator16 = GenericTabulator[uint16]
type Tabulator32 = GenericTabulator[uint32]

// New returns a Tabulator that drains rendered rows to sink, using cells
// as the column definitions in left-to-right order. The default style is
// ASCII.
func New[T codeunit.CodeUnit](sink Sink[T], cells ...*Cell[T]) *GenericTabulator[T] {
	return &GenericTabulator[T]{
		sink:      sink,
		cells:     cells,
		style:     ASCII,
		lineStart: true,
	}
}

// GetCurrentColumn returns the index of the column that the next Write
// call will append to.
func (t *GenericTabulator[T]) GetCurrentColumn() int { return t.col }

// GetCurrentCell returns the cell at the current write column.
func (t *GenericTabulator[T]) GetCurrentCell() *Cell[T] { return t.cells[t.col] }

// SetWidth sets the width of the current write column's cell.
func (t *GenericTabulator[T]) SetWidth(w int) *GenericTabulator[T] {
	t.cells[t.col].SetWidth(w)
	return t
}

// SetJustify sets the justification of the current write column's cell.
func (t *GenericTabulator[T]) SetJustify(j Justify) *GenericTabulator[T] {
	t.cells[t.col].SetJustify(j)
	return t
}

// SetTruncate sets the truncation policy of the current write column's
// cell.
func (t *GenericTabulator[T]) SetTruncate(tr Truncate) *GenericTabulator[T] {
	t.cells[t.col].SetTruncate(tr)
	return t
}

// SetWrap sets the wrap policy of the current write column's cell.
func (t *GenericTabulator[T]) SetWrap(w Wrap) *GenericTabulator[T] {
	t.cells[t.col].SetWrap(w)
	return t
}

// SetPad sets the left/right padding of the current write column's cell.
func (t *GenericTabulator[T]) SetPad(lpad, rpad []T) *GenericTabulator[T] {
	t.cells[t.col].SetPad(lpad, rpad)
	return t
}

// SetEllipsis sets the truncation ellipsis of the current write column's
// cell.
func (t *GenericTabulator[T]) SetEllipsis(e []T) *GenericTabulator[T] {
	t.cells[t.col].SetEllipsis(e)
	return t
}

// SetStyle sets the border style used for subsequent rows and rules.
func (t *GenericTabulator[T]) SetStyle(s Style) *GenericTabulator[T] {
	t.style = s
	return t
}

// Write appends each code unit of p to the cell at the current write
// column. It never fails on its own; a failure can only come from a
// drain triggered elsewhere (NextColumn, *Line, Sync, Close).
func (t *GenericTabulator[T]) Write(p []T) (int, error) {
	cell := t.cells[t.col]
	for _, u := range p {
		cell.Put(u)
	}
	return len(p), nil
}

// Sync drains any row-lines that are already complete without forcing
// incomplete ones. This is the equivalent of flushing the underlying
// stream without closing a row.
func (t *GenericTabulator[T]) Sync() error {
	return t.flush(false)
}

// NextColumn advances to the next column. If this wraps past the last
// column, the current row is force-drained in full (every cell emits
// whatever it has, regardless of whether it naturally reached a line
// boundary) and the write column resets to 0.
func (t *GenericTabulator[T]) NextColumn() error {
	t.col++
	if t.col == len(t.cells) {
		t.col = 0
		return t.flush(true)
	}
	return nil
}

// TopLine renders a top border rule, first force-draining the partial row
// if the write column is not 0.
func (t *GenericTabulator[T]) TopLine() error { return t.rule(t.style.Top) }

// HorizLine renders a mid-table rule, first force-draining the partial
// row if the write column is not 0.
func (t *GenericTabulator[T]) HorizLine() error { return t.rule(t.style.Mid) }

// BottomLine renders a bottom border rule, first force-draining the
// partial row if the write column is not 0.
func (t *GenericTabulator[T]) BottomLine() error { return t.rule(t.style.Bottom) }

func (t *GenericTabulator[T]) rule(row Row) error {
	if t.col != 0 {
		if err := t.flush(true); err != nil {
			return err
		}
		t.col = 0
	}
	return t.drawLine(row)
}

// Close force-drains all pending content, including any columns that
// never reached a width boundary or a trailing NextColumn. It is the Go
// equivalent of the original's destructor-time forced flush; callers
// that build a Tabulator over a resource they must not leave
// mid-row should call Close when they are done writing to it.
func (t *GenericTabulator[T]) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.flush(true)
}

// more reports whether flush(all) has another row-line iteration to run.
func (t *GenericTabulator[T]) more(all bool) bool {
	if !all && t.syncCol < t.col {
		return true
	}
	if all && t.syncCol > 0 {
		return true
	}
	lo := 0
	if !all {
		lo = t.syncCol
	}
	for i := lo; i < len(t.cells); i++ {
		if !t.cells[i].Empty() {
			return true
		}
	}
	return false
}

// fullCellHint computes the write_full_line hint passed to the cell at
// syncCol for the next drain iteration.
func (t *GenericTabulator[T]) fullCellHint(all bool) bool {
	if all || t.syncCol != t.col {
		return true
	}
	for i := t.syncCol + 1; i < len(t.cells); i++ {
		if !t.cells[i].Empty() {
			return true
		}
	}
	return false
}

// flush repeatedly drains one cell's pending row-line at a time, in
// column order, emitting the row's left edge, inter-column separators,
// right edge, and trailing newline as each row completes, until no
// further progress can be made (see more).
func (t *GenericTabulator[T]) flush(all bool) error {
	for t.more(all) {
		if t.lineStart {
			if err := t.writeGlyph(t.style.Left); err != nil {
				return err
			}
			t.lineStart = false
		}

		hint := t.fullCellHint(all)
		wroteFull, err := t.cells[t.syncCol].WriteLine(t.sink, hint)
		if err != nil {
			return err
		}
		if !wroteFull {
			return nil
		}

		if t.syncCol+1 == len(t.cells) {
			if err := t.writeGlyph(t.style.Right); err != nil {
				return err
			}
			if err := t.writeGlyph("\n"); err != nil {
				return err
			}
			t.lineStart = true
		} else if err := t.writeGlyph(t.style.ColSep); err != nil {
			return err
		}

		t.syncCol++
		if t.syncCol == len(t.cells) {
			t.syncCol = 0
		}
	}
	return nil
}

// drawLine renders one horizontal rule: the row's left corner, a fill
// segment under each column sized to that column's CellWidth, the row's
// separator glyph between columns, the row's right corner, and a
// trailing newline. A Row whose fields are all empty renders as a bare
// newline.
func (t *GenericTabulator[T]) drawLine(row Row) error {
	if err := t.writeGlyph(row.Left); err != nil {
		return err
	}
	for i, c := range t.cells {
		if err := t.writeFillGlyph(row.Fill, c.CellWidth()); err != nil {
			return err
		}
		if i+1 < len(t.cells) {
			if err := t.writeGlyph(row.Sep); err != nil {
				return err
			}
		}
	}
	if err := t.writeGlyph(row.Right); err != nil {
		return err
	}
	return t.writeGlyph("\n")
}

func (t *GenericTabulator[T]) writeGlyph(s string) error {
	if s == "" {
		return nil
	}
	_, err := t.sink.Write(encodeString[T](s))
	return err
}

func (t *GenericTabulator[T]) writeFillGlyph(s string, n int) error {
	if s == "" || n <= 0 {
		return nil
	}
	unit := encodeString[T](s)
	buf := make([]T, 0, len(unit)*n)
	for i := 0; i < n; i++ {
		buf = append(buf, unit...)
	}
	_, err := t.sink.Write(buf)
	return err
}
