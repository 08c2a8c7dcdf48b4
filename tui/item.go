// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/icon"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/style"
	"github.com/spf13/viper"
)

// listItem implements the list.Item interface, wrapping various domain models for terminal display.
type listItem struct {
	internal interface{}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *catalog.Lesson:
		title = e.DisplayTitle()
	case *catalog.Provider:
		title = e.Name
		if e.IsCustom {
			title = title + " " + icon.Get(icon.Lua)
		}
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	return
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *catalog.Lesson:
		var parts []string

		if e.Summary != "" {
			parts = append(parts, e.Summary)
		}

		if len(e.Tags) > 0 {
			tags := lipgloss.NewStyle().Foreground(style.SecondaryColor).Render(strings.Join(e.Tags, ", "))
			parts = append(parts, tags)
		}

		if viper.GetBool(key.TUIShowURLs) {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(e.WatchURL()))
		}

		description = strings.Join(parts, " • ")
	case *catalog.Provider:
		if e.IsCustom {
			description = "Lua Catalog"
		} else {
			description = "Built-in Catalog"
		}
	case string:
		description = ""
	}

	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *catalog.Lesson:
		return strings.Join(append([]string{e.ID, e.Title, e.Summary}, e.Tags...), " ")
	case *catalog.Provider:
		return e.Name
	case string:
		return e
	default:
		return ""
	}
}
