package tabulator

import (
	"unicode/utf16"

	"github.com/skinneberg/tabulator/codeunit"
	"github.com/skinneberg/tabulator/internal/ring"
)

// Justify controls how a cell's rendered line is positioned within its
// column width. It only has a visible effect on columns with a nonzero
// width.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyRight
	JustifyCenter
)

// Truncate controls how a cell handles content that overflows its column
// width instead of wrapping it onto another line.
type Truncate int

const (
	// TruncateNone wraps overflowing content onto another row-line
	// instead of discarding it.
	TruncateNone Truncate = iota
	// TruncateLeft drops the left side of overflowing content and marks
	// the cut with the cell's ellipsis.
	TruncateLeft
	// TruncateRight drops the right side of overflowing content and
	// marks the cut with the cell's ellipsis.
	TruncateRight
)

// Wrap controls where a non-truncating cell breaks an overflowing line.
type Wrap int

const (
	// WrapCharacter breaks at the width boundary regardless of word
	// boundaries.
	WrapCharacter Wrap = iota
	// WrapWord defers a word to the next line rather than splitting it,
	// when the word would otherwise be split mid-word.
	WrapWord
)

// Sink is anything a Cell or Tabulator can drain rendered code units
// into. For T = byte this is satisfied by any io.Writer.
type Sink[T codeunit.CodeUnit] interface {
	Write(p []T) (n int, err error)
}

// Cell holds one column's per-row rendering state: the pending code units
// written to it, its width and padding, and its justify/truncate/wrap
// policy. A Cell is created as part of building a Tabulator and is
// mutated only through its setters and through Tabulator's write path.
type Cell[T codeunit.CodeUnit] struct {
	buf       *ring.Buffer[T]
	width     int
	written   int
	cellStart bool

	justify  Justify
	truncate Truncate
	wrap     Wrap

	lpad     []T
	rpad     []T
	ellipsis []T
}

// NewCell returns a Cell with the given width (0 means unbounded), left
// justification, no truncation, character wrapping, a single space of
// padding on each side, and "…" as the truncation ellipsis.
func NewCell[T codeunit.CodeUnit](width int) *Cell[T] {
	c := &Cell[T]{
		buf:       ring.New[T](),
		width:     width,
		cellStart: true,
		justify:   JustifyLeft,
		truncate:  TruncateNone,
		wrap:      WrapCharacter,
		lpad:      encodeString[T](" "),
		rpad:      encodeString[T](" "),
		ellipsis:  encodeString[T]("…"),
	}
	c.checkInvariant()
	return c
}

func (c *Cell[T]) checkInvariant() {
	if c.width != 0 && c.width <= codeunit.Utflen(c.ellipsis) {
		panic("tabulator: cell width must be zero or greater than the ellipsis length")
	}
}

// SetWidth sets the column width (0 means unbounded) and returns c for
// chaining. It panics if width is nonzero and does not exceed the current
// ellipsis length.
func (c *Cell[T]) SetWidth(width int) *Cell[T] {
	c.width = width
	c.checkInvariant()
	return c
}

// SetJustify sets the cell's justification and returns c for chaining.
func (c *Cell[T]) SetJustify(j Justify) *Cell[T] {
	c.justify = j
	return c
}

// SetTruncate sets the cell's truncation policy and returns c for
// chaining. It panics if the current width is nonzero and does not exceed
// the ellipsis length.
func (c *Cell[T]) SetTruncate(t Truncate) *Cell[T] {
	c.truncate = t
	c.checkInvariant()
	return c
}

// SetWrap sets the cell's wrap policy and returns c for chaining.
func (c *Cell[T]) SetWrap(w Wrap) *Cell[T] {
	c.wrap = w
	return c
}

// SetEllipsis sets the string used to mark truncated content and returns c
// for chaining. It panics if the current width is nonzero and does not
// exceed the length of e.
func (c *Cell[T]) SetEllipsis(e []T) *Cell[T] {
	c.ellipsis = append([]T(nil), e...)
	c.checkInvariant()
	return c
}

// SetPad sets the left and right padding strings and returns c for
// chaining. Padding does not count against the column width.
func (c *Cell[T]) SetPad(lpad, rpad []T) *Cell[T] {
	c.lpad = append([]T(nil), lpad...)
	c.rpad = append([]T(nil), rpad...)
	return c
}

// Width returns the current column width.
func (c *Cell[T]) Width() int { return c.width }

// CellWidth returns the column width plus the code-point length of the
// left and right padding.
func (c *Cell[T]) CellWidth() int {
	return c.width + codeunit.Utflen(c.lpad) + codeunit.Utflen(c.rpad)
}

// Put appends one code unit to the cell's pending buffer.
func (c *Cell[T]) Put(u T) { c.buf.PushBack(u) }

// Empty reports whether the cell's pending buffer holds no content.
func (c *Cell[T]) Empty() bool { return c.buf.Empty() }

// WriteLine emits up to one rendered line of this cell's content to sink.
// If writeFullLine is false and the cell truncates, WriteLine does
// nothing and reports false: truncating cells only emit when the row is
// being forced closed. The returned bool reports whether this cell
// completed one full row-line; false means the caller must invoke
// WriteLine again later (more input, or a forced close, is required)
// before this cell's row-line can be considered done.
//
// A cell configured with right or center justification and
// TruncateNone holds a line shorter than its width until the row is
// forced closed, since the fill amount cannot be known until the line's
// final width is settled; a line that reaches the full width is emitted
// without waiting.
func (c *Cell[T]) WriteLine(sink Sink[T], writeFullLine bool) (bool, error) {
	wroteFull := writeFullLine
	if !writeFullLine && c.truncate != TruncateNone {
		return false, nil
	}

	end := c.truncateBuf()
	snapshot := c.buf.Slice()
	outWidth := codeunit.Utflen(snapshot[:end]) + c.written

	if !writeFullLine && outWidth < c.width && c.justify != JustifyLeft {
		return wroteFull, nil
	}

	lfill, rfill := 0, 0
	if c.width > 0 {
		sum := 0
		for outWidth > c.width {
			end--
			sum += codeunit.Score(snapshot[end])
			if sum == 0 {
				outWidth--
			}
		}
		wroteFull = wroteFull || outWidth == c.width

		totalFill := c.width - outWidth
		switch c.justify {
		case JustifyCenter:
			lfill = totalFill / 2
			rfill = totalFill - lfill
		case JustifyRight:
			lfill = totalFill
		default: // JustifyLeft
			rfill = totalFill
		}
	}

	if c.cellStart {
		if err := writeUnits(sink, c.lpad); err != nil {
			return wroteFull, err
		}
		if err := writeFill[T](sink, lfill); err != nil {
			return wroteFull, err
		}
		c.cellStart = false
	}

	if end > 0 {
		chunk := make([]T, end)
		for i := 0; i < end; i++ {
			chunk[i] = c.buf.PopFront()
		}
		if _, err := sink.Write(chunk); err != nil {
			return wroteFull, err
		}
	}

	if !c.buf.Empty() && c.buf.Front() == T('\n') {
		wroteFull = true
	}

	if !c.buf.Empty() && codeunit.IsWhitespace(c.buf.Front()) {
		c.buf.PopFront()
		if c.wrap == WrapWord {
			for !c.buf.Empty() && codeunit.IsWhitespace(c.buf.Front()) {
				c.buf.PopFront()
			}
		}
	}

	wroteFull = wroteFull || !c.buf.Empty()

	if wroteFull {
		if err := writeFill[T](sink, rfill); err != nil {
			return wroteFull, err
		}
		if err := writeUnits(sink, c.rpad); err != nil {
			return wroteFull, err
		}
		c.cellStart = true
		c.written = 0
	} else {
		c.written = outWidth
	}

	return wroteFull, nil
}

// truncateBuf decides, and when truncating applies, mutates, the prefix of
// buf that will be emitted on this call; it returns the number of code
// units (from the current front of buf) to emit.
func (c *Cell[T]) truncateBuf() int {
	if c.width == 0 {
		snapshot := c.buf.Slice()
		if idx := codeunit.IndexNewline(snapshot); idx >= 0 {
			return idx
		}
		return len(snapshot)
	}

	if c.truncate == TruncateNone {
		snapshot := c.buf.Slice()
		return findOutputEnd(snapshot, c.width-c.written, c.written, c.wrap)
	}

	if codeunit.Utflen(c.buf.Slice()) > c.width {
		w := c.width - codeunit.Utflen(c.ellipsis)
		switch c.truncate {
		case TruncateRight:
			snapshot := c.buf.Slice()
			end := findOutputEnd(snapshot, w, 0, c.wrap)
			for c.buf.Len() > end {
				c.buf.PopBack()
			}
			if !c.buf.Empty() {
				c.buf.PushBackAll(c.ellipsis)
			}
		case TruncateLeft:
			rev := reverseSlice(c.buf.Slice())
			keep := findOutputEnd(rev, w, 0, c.wrap)
			for c.buf.Len() > keep {
				c.buf.PopFront()
			}
			if !c.buf.Empty() {
				c.buf.PushFrontAll(c.ellipsis)
			}
		}
	}
	return c.buf.Len()
}

// findLineEnd returns the index one past the last code unit of units that
// fits within width code points, stopping early (without consuming the
// newline itself) at the first '\n'.
func findLineEnd[T codeunit.CodeUnit](units []T, width int) int {
	cbr := 0
	i := 0
	for width > 0 && i < len(units) {
		cbr += codeunit.Score(units[i])
		if cbr == 0 {
			width--
			if units[i] == T('\n') {
				return i
			}
		}
		i++
	}
	return i
}

// findLastWord returns the index of the rightmost whitespace code unit in
// units[begin:end], scanning backward from end, or -1 if there is none.
func findLastWord[T codeunit.CodeUnit](units []T, begin, end int) int {
	for i := end - 1; i >= begin; i-- {
		if codeunit.IsWhitespace(units[i]) {
			return i
		}
	}
	return -1
}

// findOutputEnd finds the end of a single rendered line within units that
// fits in width code points. With word wrapping, a word that would
// otherwise be split at the character boundary is moved to the next line
// instead by cutting at the whitespace that precedes it (the whitespace
// itself is left for the caller to trim as leading whitespace of the
// next line). If no whitespace exists to cut at and nothing has been
// emitted yet for this row-line, the line falls back to the character
// boundary; if code points have already been emitted for this row-line,
// the whole word is deferred (an empty result) rather than split.
func findOutputEnd[T codeunit.CodeUnit](units []T, width, written int, wrap Wrap) int {
	charEnd := findLineEnd(units, width)
	end := charEnd
	if wrap == WrapWord && charEnd != len(units) {
		upper := charEnd + 1
		if upper > len(units) {
			upper = len(units)
		}
		if idx := findLastWord(units, 0, upper); idx >= 0 {
			end = idx
		} else if written > 0 {
			end = 0
		}
	}
	return end
}

func reverseSlice[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func writeUnits[T codeunit.CodeUnit](sink Sink[T], units []T) error {
	if len(units) == 0 {
		return nil
	}
	_, err := sink.Write(units)
	return err
}

func writeFill[T codeunit.CodeUnit](sink Sink[T], n int) error {
	if n <= 0 {
		return nil
	}
	buf := make([]T, n)
	for i := range buf {
		buf[i] = T(' ')
	}
	_, err := sink.Write(buf)
	return err
}

// encodeString encodes s into the code-unit width of T: UTF-8 bytes,
// UTF-16 words, or UTF-32 (rune) words.
func encodeString[T codeunit.CodeUnit](s string) []T {
	switch any(T(0)).(type) {
	case byte:
		bs := []byte(s)
		out := make([]T, len(bs))
		for i, b := range bs {
			out[i] = T(b)
		}
		return out
	case uint16:
		us := utf16.Encode([]rune(s))
		out := make([]T, len(us))
		for i, u := range us {
			out[i] = T(u)
		}
		return out
	default: // uint32
		rs := []rune(s)
		out := make([]T, len(rs))
		for i, r := range rs {
			out[i] = T(r)
		}
		return out
	}
}
