package style

import "github.com/charmbracelet/lipgloss"

// Semantic colors used by the stack renderer and the REPL.
var (
	AccentColor  = lipgloss.Color("#cba6f7")
	SuccessColor = lipgloss.Color("#a6e3a1")
	WarningColor = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	FaintColor   = lipgloss.Color("#6c7086")
	BorderColor  = lipgloss.Color("#313244")
)
