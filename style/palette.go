// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the application's color scheme.
var (
	// Base colors
	Base    = lipgloss.Color("#2e3440")
	Text    = lipgloss.Color("#eceff4")
	Subtext = lipgloss.Color("#d8dee9")
	Overlay = lipgloss.Color("#4c566a")
	Surface = lipgloss.Color("#3b4252")

	// Accents
	Red    = lipgloss.Color("#bf616a")
	Orange = lipgloss.Color("#d08770")
	Yellow = lipgloss.Color("#ebcb8b")
	Green  = lipgloss.Color("#a3be8c")
	Teal   = lipgloss.Color("#8fbcbb")
	Cyan   = lipgloss.Color("#88c0d0")
	Sky    = lipgloss.Color("#81a1c1")
	Blue   = lipgloss.Color("#5e81ac")
	Purple = lipgloss.Color("#b48ead")

	// Semantic mappings
	AccentColor    = Cyan
	SecondaryColor = Sky
	SuccessColor   = Green
	WarningColor   = Yellow
	ErrorColor     = Red
	LockedColor    = Orange
	UnlockedColor  = Green
	FaintColor     = Overlay

	// UI Elements
	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)
