// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/spf13/viper"
)

// Init initializes the terminal user interface, triggering initial data loads.
func (b *statefulBubble) Init() tea.Cmd {
	name := viper.GetString(key.CatalogDefault)
	if b.options != nil && b.options.Catalog != "" {
		name = b.options.Catalog
	}

	// Auto-load the catalog if one is preselected, skipping the picker.
	if name != "" {
		p, ok := catalog.Get(name)
		if !ok {
			b.raiseError(fmt.Errorf("catalog %s not found", name))
			return nil
		}

		b.lessonsC.Title = fmt.Sprintf("Lessons - %s", p.Name)
		b.setState(loadingState)
		return tea.Batch(b.startLoading(), b.loadLessons(p), b.waitForLessons(), b.spinnerC.Tick)
	}

	return tea.Batch(textinput.Blink, b.loadProviders())
}
