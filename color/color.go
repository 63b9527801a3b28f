// Package color holds terminal colors addressed by ANSI code.
package color

import "github.com/charmbracelet/lipgloss"

// New returns a lipgloss color from an ANSI code or hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	HiRed  = New("9")
)
