// Package ui provides the terminal styling for advent's answer output.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Semantic colors
	Accent  = lipgloss.Color("#8BC34A") // Lime Green
	Muted   = lipgloss.Color("#6c7680")
	Failure = lipgloss.Color("#e53935") // Red

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	labelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	faintStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(Failure)
)

// DayHeader renders the banner line for a day, e.g. "Day 1: Chronal Calibration".
func DayHeader(day int, name string) string {
	return titleStyle.Render(fmt.Sprintf("Day %d: %s", day, name))
}

// AnswerLine renders one labeled answer.
func AnswerLine(label, value string) string {
	return fmt.Sprintf("  %s %s", labelStyle.Render(label+":"), valueStyle.Render(value))
}

// Elapsed renders the per-day timing footer.
func Elapsed(s string) string {
	return faintStyle.Render("  solved in " + s)
}

// Error renders a failure line.
func Error(s string) string {
	return errorStyle.Render(s)
}
