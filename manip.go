package tabulator

import "io"

// Manipulator is a value that, when applied to a writer, adjusts the
// state of that writer if and only if it is a *Tabulator. Manipulators
// let cell and row configuration be sprinkled into code written against
// a plain io.Writer without that code needing to know whether a
// Tabulator is actually on the other end.
//
// Apply is the only thing that invokes a Manipulator; callers never call
// one directly.
type Manipulator func(w io.Writer)

// Apply runs m against w. If w is not a *Tabulator, m does nothing.
func Apply(w io.Writer, m Manipulator) { m(w) }

// EndColumn advances to the next column, draining the current row if
// this wraps past the last one. It is the manipulator form of
// (*Tabulator).NextColumn; any drain error is silently dropped, matching
// the no-op contract for non-tabulator sinks — callers that need the
// error should call NextColumn directly instead of going through a
// Manipulator.
func EndColumn() Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			_ = t.NextColumn()
		}
	}
}

// TopLineManip renders a top border rule.
func TopLineManip() Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			_ = t.TopLine()
		}
	}
}

// HorizLineManip renders a mid-table rule.
func HorizLineManip() Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			_ = t.HorizLine()
		}
	}
}

// BottomLineManip renders a bottom border rule.
func BottomLineManip() Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			_ = t.BottomLine()
		}
	}
}

// SetWidth sets the width of the current write column's cell.
func SetWidth(width int) Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			t.SetWidth(width)
		}
	}
}

// SetJustify sets the justification of the current write column's cell.
func SetJustify(j Justify) Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			t.SetJustify(j)
		}
	}
}

// SetTruncate sets the truncation policy of the current write column's
// cell.
func SetTruncate(tr Truncate) Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			t.SetTruncate(tr)
		}
	}
}

// SetWrap sets the wrap policy of the current write column's cell.
func SetWrap(wr Wrap) Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			t.SetWrap(wr)
		}
	}
}

// SetPad sets the left/right padding of the current write column's cell.
func SetPad(lpad, rpad string) Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			t.SetPad([]byte(lpad), []byte(rpad))
		}
	}
}

// SetEllipsis sets the truncation ellipsis of the current write column's
// cell.
func SetEllipsis(e string) Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			t.SetEllipsis([]byte(e))
		}
	}
}

// SetStyle sets the border style used for subsequent rows and rules.
func SetStyle(s Style) Manipulator {
	return func(w io.Writer) {
		if t, ok := w.(*Tabulator); ok {
			t.SetStyle(s)
		}
	}
}
