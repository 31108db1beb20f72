// Package render lays boards out as text for terminals and documents.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/lox/speedbingo/bingo"
)

// Options controls cell layout. Zero fields take the defaults.
type Options struct {
	CellWidth int // characters per cell, including padding
	Padding   int // blank characters on each side of the text
}

const (
	DefaultCellWidth = 18
	DefaultPadding   = 1
)

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.Padding < 0 || 2*o.Padding >= o.CellWidth {
		o.Padding = DefaultPadding
	}
	return o
}

func (o Options) textWidth() int {
	return o.CellWidth - 2*o.Padding
}

// Reference catalogs suffix some goal names with a star marker that only
// makes sense on the original site.
const starMarker = " ★"

// CleanName strips display markers from a goal name.
func CleanName(name string) string {
	return strings.ReplaceAll(name, starMarker, "")
}

// Wrap breaks text into lines of at most width characters at word
// boundaries. A word longer than width gets a line to itself.
func Wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	lineLen := 0

	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		if lineLen > 0 && lineLen+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += n
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// cellLines wraps every cell and returns, per row, the wrapped lines of each
// cell plus the row height.
func cellLines(board bingo.Board, o Options) ([bingo.Size][bingo.Size][]string, [bingo.Size]int) {
	var cells [bingo.Size][bingo.Size][]string
	var heights [bingo.Size]int
	for r := 0; r < bingo.Size; r++ {
		heights[r] = 1
		for c := 0; c < bingo.Size; c++ {
			lines := Wrap(CleanName(board.Cell(r, c)), o.textWidth())
			cells[r][c] = lines
			heights[r] = max(heights[r], len(lines))
		}
	}
	return cells, heights
}

// Text draws the board as an ASCII grid. Each cell's lines are centred
// horizontally and vertically.
func Text(board bingo.Board, opts Options) string {
	o := opts.withDefaults()
	cells, heights := cellLines(board, o)

	// Cells holding an over-long word widen their column.
	var widths [bingo.Size]int
	for c := 0; c < bingo.Size; c++ {
		widths[c] = o.textWidth()
		for r := 0; r < bingo.Size; r++ {
			for _, l := range cells[r][c] {
				widths[c] = max(widths[c], utf8.RuneCountInString(l))
			}
		}
	}

	var sep strings.Builder
	sep.WriteByte('+')
	for c := 0; c < bingo.Size; c++ {
		sep.WriteString(strings.Repeat("-", widths[c]+2*o.Padding))
		sep.WriteByte('+')
	}
	sep.WriteByte('\n')

	pad := strings.Repeat(" ", o.Padding)
	var sb strings.Builder
	sb.WriteString(sep.String())
	for r := 0; r < bingo.Size; r++ {
		for i := 0; i < heights[r]; i++ {
			sb.WriteByte('|')
			for c := 0; c < bingo.Size; c++ {
				lines := cells[r][c]
				top := (heights[r] - len(lines)) / 2
				text := ""
				if i >= top && i-top < len(lines) {
					text = lines[i-top]
				}
				sb.WriteString(pad)
				sb.WriteString(center(text, widths[c]))
				sb.WriteString(pad)
				sb.WriteByte('|')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(sep.String())
	}
	return sb.String()
}

// Markdown renders the board as a GitHub-flavoured table with a header of
// column numbers.
func Markdown(board bingo.Board) string {
	var sb strings.Builder
	sb.WriteString("| | 1 | 2 | 3 | 4 | 5 |\n|---|---|---|---|---|---|\n")
	for r := 0; r < bingo.Size; r++ {
		sb.WriteString("| ")
		sb.WriteByte(byte('A' + r))
		sb.WriteString(" |")
		for c := 0; c < bingo.Size; c++ {
			sb.WriteByte(' ')
			sb.WriteString(strings.ReplaceAll(CleanName(board.Cell(r, c)), "|", `\|`))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
