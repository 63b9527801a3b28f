// Package util holds small helpers shared by the commands.
package util

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Quantify returns count followed by the singular or plural label.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of stdout, or fallback when it is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// Ellipsis shortens s to at most n runes, marking the cut with "…".
func Ellipsis(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}

// PrintErasable prints msg on the current line and returns a function clearing it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stderr, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}
