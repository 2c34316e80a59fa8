// Package ui renders interactive output and owns the dual console/file log
// sink for a provisioning run.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette shared across banners, task sections, and the summary table.
var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorAmber = lipgloss.Color("#f59e0b")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

// Styles holds the lipgloss styles used for console output.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Dim     lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the style set. When color is false every style is a
// no-op passthrough (non-TTY console, piped output).
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Title: plain, Section: plain, Dim: plain, Success: plain, Warn: plain, Error: plain}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		Section: lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		Dim:     lipgloss.NewStyle().Foreground(colorDim),
		Success: lipgloss.NewStyle().Foreground(colorGreen),
		Warn:    lipgloss.NewStyle().Foreground(colorAmber),
		Error:   lipgloss.NewStyle().Foreground(colorRed),
	}
}

// StdoutIsTTY reports whether stdout is an interactive terminal.
func StdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
