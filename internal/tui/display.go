package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"opinions/internal/domain"
)

// Display shows rendered figures in an interactive terminal viewer.
type Display struct {
	title   string
	entries []Entry
}

func NewDisplay(title string, entries []Entry) *Display {
	return &Display{title: title, entries: entries}
}

// Show blocks until the user closes the viewer.
func (d *Display) Show(figures []domain.Figure) error {
	_, err := tea.NewProgram(New(d.title, d.entries, figures), tea.WithAltScreen()).Run()
	return err
}
