package tabulator

import (
	"bytes"
	"testing"
)

// styleCases is the canonical style/output table: for a Tabulator over two
// zero-width cells, the rendered top rule, middle rule, bottom rule, and the
// row produced by writing a single newline then advancing past both columns.
func styleCases() []struct {
	name             string
	style            Style
	top, mid, bottom string
	emptyRow         string
} {
	return []struct {
		name             string
		style            Style
		top, mid, bottom string
		emptyRow         string
	}{
		{"empty", Empty, "\n", "\n", "\n", "    \n"},
		{"ascii", ASCII, "+--+--+\n", "+--+--+\n", "+--+--+\n", "|  |  |\n"},
		{"markdown", Markdown, "\n", "--|--\n", "\n", "  |  \n"},
		{"box", Box, "┌──┬──┐\n", "├──┼──┤\n", "└──┴──┘\n", "│  │  │\n"},
		{"double_box", DoubleBox, "╔══╦══╗\n", "╠══╬══╣\n", "╚══╩══╝\n", "║  ║  ║\n"},
		{"heavy_box", HeavyBox, "┏━━┳━━┓\n", "┣━━╋━━┫\n", "┗━━┻━━┛\n", "┃  ┃  ┃\n"},
		{"rounded_box", RoundedBox, "╭──┬──╮\n", "├──┼──┤\n", "╰──┴──╯\n", "│  │  │\n"},
	}
}

func TestStyle_CanonicalOutputs(t *testing.T) {
	for _, tc := range styleCases() {
		t.Run(tc.name, func(t *testing.T) {
			newTab := func() (*bytes.Buffer, *Tabulator) {
				buf := &bytes.Buffer{}
				tab := New[byte](buf, NewCell[byte](0), NewCell[byte](0))
				tab.SetStyle(tc.style)
				return buf, tab
			}

			buf, tab := newTab()
			if err := tab.TopLine(); err != nil {
				t.Fatalf("TopLine: %v", err)
			}
			if got := buf.String(); got != tc.top {
				t.Fatalf("top: got %q, want %q", got, tc.top)
			}

			buf, tab = newTab()
			if err := tab.HorizLine(); err != nil {
				t.Fatalf("HorizLine: %v", err)
			}
			if got := buf.String(); got != tc.mid {
				t.Fatalf("middle: got %q, want %q", got, tc.mid)
			}

			buf, tab = newTab()
			if err := tab.BottomLine(); err != nil {
				t.Fatalf("BottomLine: %v", err)
			}
			if got := buf.String(); got != tc.bottom {
				t.Fatalf("bottom: got %q, want %q", got, tc.bottom)
			}

			buf, tab = newTab()
			if _, err := tab.Write([]byte("\n")); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if err := tab.NextColumn(); err != nil {
				t.Fatalf("NextColumn: %v", err)
			}
			if err := tab.NextColumn(); err != nil {
				t.Fatalf("NextColumn: %v", err)
			}
			if got := buf.String(); got != tc.emptyRow {
				t.Fatalf("empty row: got %q, want %q", got, tc.emptyRow)
			}
		})
	}
}

func TestStyle_BorderlessDropsOnlyOuterEdges(t *testing.T) {
	for _, base := range []struct {
		name       string
		full, less Style
	}{
		{"ascii", ASCII, BorderlessASCII},
		{"box", Box, BorderlessBox},
		{"heavy_box", HeavyBox, BorderlessHeavyBox},
		{"double_box", DoubleBox, BorderlessDoubleBox},
		{"rounded_box", RoundedBox, BorderlessRoundedBox},
	} {
		t.Run(base.name, func(t *testing.T) {
			if base.less.Left != "" || base.less.Right != "" {
				t.Fatalf("borderless content row still has an outer edge: %+v", base.less)
			}
			if base.less.ColSep != base.full.ColSep {
				t.Fatalf("borderless ColSep = %q, want %q (unchanged)", base.less.ColSep, base.full.ColSep)
			}
			if base.less.Top.Fill != base.full.Top.Fill || base.less.Top.Sep != base.full.Top.Sep {
				t.Fatalf("borderless top rule fill/sep changed: got %+v, want fill/sep from %+v", base.less.Top, base.full.Top)
			}
			if base.less.Top.Left != "" || base.less.Top.Right != "" {
				t.Fatalf("borderless top rule still has corners: %+v", base.less.Top)
			}
		})
	}
}

func TestStyle_BorderlessBoxPreservesColSepForLoggerLikeLayout(t *testing.T) {
	buf := &bytes.Buffer{}
	tab := New[byte](buf, NewCell[byte](0).SetPad(nil, nil), NewCell[byte](0).SetPad(nil, nil))
	tab.SetStyle(BorderlessBox)

	if _, err := tab.Write([]byte("ts")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := tab.NextColumn(); err != nil {
		t.Fatalf("NextColumn: %v", err)
	}
	if _, err := tab.Write([]byte("msg")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := tab.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := "ts│msg\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
