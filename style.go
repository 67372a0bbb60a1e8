package tabulator

import "github.com/charmbracelet/lipgloss"

// Row holds the glyphs used to draw one horizontal rule: the left corner,
// the fill segment repeated under each column, the separator drawn
// between adjacent columns, and the right corner. An empty Row (all empty
// strings) draws a bare newline.
type Row struct {
	Left  string
	Fill  string
	Sep   string
	Right string
}

// Style describes how a Tabulator draws borders and separators: the rule
// rows above the first row (Top), between rows (Mid), and below the last
// row (Bottom); and, for ordinary content rows, the left/right edge
// glyphs and the separator drawn between adjacent cells.
type Style struct {
	Top    Row
	Mid    Row
	Bottom Row

	Left   string
	Right  string
	ColSep string
}

func borderRows(b lipgloss.Border, left, right, colSep string) Style {
	return Style{
		Top: Row{
			Left:  b.TopLeft,
			Fill:  b.Top,
			Sep:   b.MiddleTop,
			Right: b.TopRight,
		},
		Mid: Row{
			Left:  b.MiddleLeft,
			Fill:  b.Top,
			Sep:   b.Middle,
			Right: b.MiddleRight,
		},
		Bottom: Row{
			Left:  b.BottomLeft,
			Fill:  b.Bottom,
			Sep:   b.MiddleBottom,
			Right: b.BottomRight,
		},
		Left:   left,
		Right:  right,
		ColSep: colSep,
	}
}

// borderless returns a copy of s with its outer left/right edges removed
// from every row — content rows begin and end with an empty string
// instead of a corner or tee — while leaving fills and the separators
// between columns untouched.
func borderless(s Style) Style {
	s.Left, s.Right = "", ""
	s.Top.Left, s.Top.Right = "", ""
	s.Mid.Left, s.Mid.Right = "", ""
	s.Bottom.Left, s.Bottom.Right = "", ""
	return s
}

var (
	// Empty draws no borders or column separators at all.
	Empty = Style{}

	// ASCII draws borders using only plain ASCII characters: '+', '-',
	// and '|'.
	ASCII = Style{
		Top:    Row{Left: "+", Fill: "-", Sep: "+", Right: "+"},
		Mid:    Row{Left: "+", Fill: "-", Sep: "+", Right: "+"},
		Bottom: Row{Left: "+", Fill: "-", Sep: "+", Right: "+"},
		Left:   "|",
		Right:  "|",
		ColSep: "|",
	}

	// Markdown draws a GitHub-Flavored-Markdown-compatible header rule: no
	// top or bottom border and no outer edge on any row, just a
	// '|'-delimited dashed separator between the header and body.
	Markdown = Style{
		Top:    Row{},
		Mid:    Row{Fill: "-", Sep: "|"},
		Bottom: Row{},
		ColSep: "|",
	}

	// Box draws single-line box-drawing borders (lipgloss's normal
	// border set).
	Box = borderRows(lipgloss.NormalBorder(), "│", "│", "│")

	// HeavyBox draws heavy/thick box-drawing borders.
	HeavyBox = borderRows(lipgloss.ThickBorder(), "┃", "┃", "┃")

	// DoubleBox draws double-line box-drawing borders.
	DoubleBox = borderRows(lipgloss.DoubleBorder(), "║", "║", "║")

	// RoundedBox draws box-drawing borders with rounded corners.
	RoundedBox = borderRows(lipgloss.RoundedBorder(), "│", "│", "│")

	// BorderlessASCII is ASCII with its outer left/right edges removed;
	// the '|' column separator and '-'/'+' rules remain.
	BorderlessASCII = borderless(ASCII)

	// BorderlessBox is Box with its outer left/right edges removed.
	BorderlessBox = borderless(Box)

	// BorderlessHeavyBox is HeavyBox with its outer left/right edges
	// removed.
	BorderlessHeavyBox = borderless(HeavyBox)

	// BorderlessDoubleBox is DoubleBox with its outer left/right edges
	// removed.
	BorderlessDoubleBox = borderless(DoubleBox)

	// BorderlessRoundedBox is RoundedBox with its outer left/right edges
	// removed.
	BorderlessRoundedBox = borderless(RoundedBox)
)
