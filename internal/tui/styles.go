package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/speedbingo/internal/render"
)

// Static styles for the chrome around the board
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(render.HeaderFgColor).
			Background(render.HeaderBgColor).
			Bold(true).
			Padding(0, 1)

	TimerStyle = lipgloss.NewStyle().
			Foreground(render.LineColor).
			Bold(true)

	BingoStyle = lipgloss.NewStyle().
			Foreground(render.MarkedColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(render.ErrorTextColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(render.SubtleColor)
)
