// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Catalog preselects a catalog by name, skipping the catalog picker.
	Catalog string

	// Query pre-fills the lesson search input.
	Query string
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	bubble.newState(catalogsState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
