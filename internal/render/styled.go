package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/speedbingo/bingo"
	"github.com/muesli/termenv"
)

// NewRenderer returns a lipgloss renderer for w. With color false, or when
// the environment asks for no colour, output is plain text with borders.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.EnvColorProfile()
	}
	return lipgloss.NewRenderer(w, termenv.WithProfile(profile))
}

// CellState describes how a single cell is highlighted.
type CellState struct {
	Marked bool // the player has claimed the goal
	OnLine bool // the cell completes a bingo line
	Cursor bool // the cell has keyboard focus
}

// StyledOptions extends Options with per-cell highlighting.
type StyledOptions struct {
	Options
	State func(index int) CellState
}

// Styled draws the board with lipgloss borders. Renderer may be nil for the
// default renderer.
func Styled(r *lipgloss.Renderer, board bingo.Board, opts StyledOptions) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	o := opts.Options.withDefaults()
	cells, heights := cellLines(board, o)

	base := r.NewStyle().
		Width(o.CellWidth).
		Padding(0, o.Padding).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Foreground(CellColor)

	rows := make([]string, bingo.Size)
	for row := 0; row < bingo.Size; row++ {
		rendered := make([]string, bingo.Size)
		for col := 0; col < bingo.Size; col++ {
			style := base.Height(heights[row])
			if opts.State != nil {
				state := opts.State(row*bingo.Size + col)
				switch {
				case state.OnLine:
					style = style.Foreground(LineColor).BorderForeground(LineColor).Bold(true)
				case state.Marked:
					style = style.Foreground(MarkedColor).BorderForeground(MarkedColor)
				}
				if state.Cursor {
					style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(CursorColor)
				}
			}
			rendered[col] = style.Render(strings.Join(cells[row][col], "\n"))
		}
		rows[row] = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// DetectColor reports whether w is a terminal that accepts colour, honouring
// NO_COLOR and CLICOLOR_FORCE.
func DetectColor(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}
