package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/skinneberg/tabulator"
)

// Format holds an ordered list of leading information Elements shared by
// every Entry built from it, the way the original library suggested
// instantiating exactly one format per project to keep every log tagger's
// output aligned.
type Format struct {
	elements []Element
}

// NewFormat returns a Format rendering elements, in order, as the leading
// columns of every Entry built from it.
func NewFormat(elements ...Element) *Format {
	return &Format{elements: elements}
}

// Entry is a log tagger bound to one output writer and one fixed tag
// name. Begin (or Logf) starts a new log line: it renders the format's
// elements into a single fixed-width leading column, then returns (or
// writes to) the unbounded message column that follows it.
type Entry struct {
	tag       string
	elements  []Element
	elemCells []*tabulator.Cell[byte]
	infoCell  *tabulator.Cell[byte]
	msgCell   *tabulator.Cell[byte]
	tab       *tabulator.Tabulator
}

// NewEntry returns an Entry that renders to w, tagged tag.
func (f *Format) NewEntry(w io.Writer, tag string) *Entry {
	elemCells := make([]*tabulator.Cell[byte], len(f.elements))
	infoWidth := 0
	for i, el := range f.elements {
		c := el.cell()
		elemCells[i] = c
		infoWidth += c.CellWidth()
	}

	infoCell := tabulator.NewCell[byte](infoWidth).SetPad(nil, nil)
	msgCell := tabulator.NewCell[byte](0).SetPad([]byte(" "), nil)
	tab := tabulator.New[byte](w, infoCell, msgCell)
	tab.SetStyle(tabulator.BorderlessBox)

	return &Entry{
		tag:       tag,
		elements:  f.elements,
		elemCells: elemCells,
		infoCell:  infoCell,
		msgCell:   msgCell,
		tab:       tab,
	}
}

// Begin closes out any entry already in progress, renders this entry's
// leading information column from the call site one frame up, and
// returns the writer for the message column so the caller can stream
// the entry's free-form text into it with as many writes as it likes.
func (e *Entry) Begin(user any) (io.Writer, error) {
	return e.begin(user, 2)
}

// Logf is a Printf-style convenience over Begin: it begins a new entry
// and writes format/args to its message column in one call.
func (e *Entry) Logf(user any, format string, args ...any) error {
	w, err := e.begin(user, 2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, format, args...)
	return err
}

func (e *Entry) begin(user any, skip int) (io.Writer, error) {
	ctx := Context{Tag: e.tag, User: user}
	if pc, file, line, ok := runtime.Caller(skip); ok {
		ctx.File = filepath.Base(file)
		ctx.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			ctx.Func = fn.Name()
		}
	}

	if err := e.goFirstColumn(); err != nil {
		return nil, err
	}

	inner := tabulator.New[byte](e.tab, e.elemCells...)
	inner.SetStyle(tabulator.Empty)
	for _, el := range e.elements {
		el.write(inner, ctx)
		if err := inner.NextColumn(); err != nil {
			return nil, err
		}
	}
	if err := inner.Close(); err != nil {
		return nil, err
	}

	if err := e.tab.NextColumn(); err != nil {
		return nil, err
	}
	return e.tab, nil
}

// Close force-drains any entry in progress. Entries are otherwise
// stateless between calls to Begin/Logf, so Close is only needed before
// discarding an Entry that has an unfinished message column pending.
func (e *Entry) Close() error {
	if err := e.goFirstColumn(); err != nil {
		return err
	}
	return e.tab.Close()
}

func (e *Entry) goFirstColumn() error {
	for e.tab.GetCurrentColumn() != 0 {
		if err := e.tab.NextColumn(); err != nil {
			return err
		}
	}
	return nil
}
