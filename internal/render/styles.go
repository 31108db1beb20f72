package render

import "github.com/charmbracelet/lipgloss"

// Palette shared by the styled renderer and the TUI.
var (
	CellColor      = lipgloss.Color("#FAFAFA")
	BorderColor    = lipgloss.Color("#626262")
	MarkedColor    = lipgloss.Color("#96CEB4")
	LineColor      = lipgloss.Color("#FFD700")
	CursorColor    = lipgloss.Color("#7D56F4")
	HeaderFgColor  = lipgloss.Color("#FAFAFA")
	HeaderBgColor  = lipgloss.Color("#7D56F4")
	SubtleColor    = lipgloss.Color("#626262")
	ErrorTextColor = lipgloss.Color("#FF6B6B")
)
