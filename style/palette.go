package style

import "github.com/charmbracelet/lipgloss"

// Palette used by the command line output.
var (
	Surface  = lipgloss.Color("#313244")
	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Sapphire = lipgloss.Color("#74c7ec")

	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	LinkColor    = Sapphire
	BorderColor  = Surface
)
