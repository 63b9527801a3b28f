// Package style composes lipgloss styles for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a function rendering strings in the given foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Tag returns a function rendering a padded colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Box renders lines inside a rounded border.
func Box(s string) string {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1).
		Render(s)
}
