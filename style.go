package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})

	paragraphStyle = lipgloss.NewStyle().
			Width(78).
			Padding(0, 0, 0, 2)
)

// keyword renders a highlighted word or phrase; plain text when stdout is not
// a terminal.
func keyword(s string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return keywordStyle.Render(s)
}

// paragraph formats help text at a fixed width with a small indent.
func paragraph(s string) string {
	return paragraphStyle.Render(s)
}
