package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/skinneberg/tabulator"
	"github.com/skinneberg/tabulator/codeunit"
)

// Context carries the per-entry information a log line's leading
// Elements render from: the call site that started the entry and an
// arbitrary caller-supplied payload for User elements.
type Context struct {
	Tag  string
	File string
	Line int
	Func string
	User any
}

// Element is one leading information field of a log line: a cell
// definition plus the function that renders this entry's value of that
// field into it.
type Element interface {
	cell() *tabulator.Cell[byte]
	write(w io.Writer, ctx Context)
}

const defaultTimestampLayout = "2006-01-02 15:04:05.000"

// TimestampElement renders the current UTC time at Begin.
type TimestampElement struct {
	layout string
	lpad   []byte
	rpad   []byte
}

// Timestamp returns an Element that renders time.Now().UTC() formatted
// with layout (time.Layout syntax). An empty layout defaults to
// "2006-01-02 15:04:05.000". The cell width is measured once, from a
// sample render, and assumed constant thereafter.
func Timestamp(layout string) *TimestampElement {
	if layout == "" {
		layout = defaultTimestampLayout
	}
	return &TimestampElement{layout: layout, rpad: []byte(" ")}
}

func (t *TimestampElement) cell() *tabulator.Cell[byte] {
	sample := []byte(time.Now().UTC().Format(t.layout))
	return tabulator.NewCell[byte](codeunit.Utflen(sample)).SetPad(t.lpad, t.rpad)
}

func (t *TimestampElement) write(w io.Writer, _ Context) {
	fmt.Fprint(w, time.Now().UTC().Format(t.layout))
}

// TagElement renders the Entry's fixed tag name, truncated on the right
// if it overflows width.
type TagElement struct {
	width int
	rpad  []byte
}

// Tag returns an Element that renders the Entry's tag name in a column
// of the given width (0 defaults to 10).
func Tag(width int) *TagElement {
	if width == 0 {
		width = 10
	}
	return &TagElement{width: width, rpad: []byte(" ")}
}

func (t *TagElement) cell() *tabulator.Cell[byte] {
	return tabulator.NewCell[byte](t.width).SetTruncate(tabulator.TruncateRight).SetPad(nil, t.rpad)
}

func (t *TagElement) write(w io.Writer, ctx Context) {
	fmt.Fprint(w, ctx.Tag)
}

// SourceElement renders the call site's source file, truncated on the
// left (keeping the file name end, where it's most distinctive) if it
// overflows width.
type SourceElement struct {
	width int
	rpad  []byte
}

// Source returns an Element that renders the call site's source file in
// a column of the given width (0 defaults to 32).
func Source(width int) *SourceElement {
	if width == 0 {
		width = 32
	}
	return &SourceElement{width: width, rpad: []byte(" ")}
}

func (s *SourceElement) cell() *tabulator.Cell[byte] {
	return tabulator.NewCell[byte](s.width).SetTruncate(tabulator.TruncateLeft).SetPad(nil, s.rpad)
}

func (s *SourceElement) write(w io.Writer, ctx Context) {
	fmt.Fprint(w, ctx.File)
}

// FunctionElement renders the call site's function name, truncated on
// the left if it overflows width.
type FunctionElement struct {
	width int
	rpad  []byte
}

// Function returns an Element that renders the call site's function name
// in a column of the given width (0 defaults to 32).
func Function(width int) *FunctionElement {
	if width == 0 {
		width = 32
	}
	return &FunctionElement{width: width, rpad: []byte(" ")}
}

func (f *FunctionElement) cell() *tabulator.Cell[byte] {
	return tabulator.NewCell[byte](f.width).SetTruncate(tabulator.TruncateLeft).SetPad(nil, f.rpad)
}

func (f *FunctionElement) write(w io.Writer, ctx Context) {
	fmt.Fprint(w, ctx.Func)
}

// LineElement renders the call site's line number, right-justified and
// truncated on the left if it somehow overflows width.
type LineElement struct {
	width      int
	lpad, rpad []byte
}

// Line returns an Element that renders the call site's line number,
// right-justified, in a column of the given width (0 defaults to 4),
// with lpad/rpad as its padding (both default to empty if left unset by
// the caller using "").
func Line(width int, lpad, rpad string) *LineElement {
	if width == 0 {
		width = 4
	}
	return &LineElement{width: width, lpad: []byte(lpad), rpad: []byte(rpad)}
}

func (l *LineElement) cell() *tabulator.Cell[byte] {
	return tabulator.NewCell[byte](l.width).
		SetJustify(tabulator.JustifyRight).
		SetTruncate(tabulator.TruncateLeft).
		SetPad(l.lpad, l.rpad)
}

func (l *LineElement) write(w io.Writer, ctx Context) {
	fmt.Fprintf(w, "%d", ctx.Line)
}

// UserElement renders an arbitrary per-call payload through a
// caller-supplied render function, truncated on the right if it
// overflows width.
type UserElement struct {
	width  int
	render func(v any) string
	rpad   []byte
}

// User returns an Element that renders ctx.User through render in a
// column of the given width.
func User(width int, render func(v any) string) *UserElement {
	return &UserElement{width: width, render: render, rpad: []byte(" ")}
}

func (u *UserElement) cell() *tabulator.Cell[byte] {
	return tabulator.NewCell[byte](u.width).SetTruncate(tabulator.TruncateRight).SetPad(nil, u.rpad)
}

func (u *UserElement) write(w io.Writer, ctx Context) {
	fmt.Fprint(w, u.render(ctx.User))
}
