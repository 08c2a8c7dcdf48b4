// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/filmschoolyt/filmschoolyt/color"
	"github.com/filmschoolyt/filmschoolyt/gate"
	"github.com/filmschoolyt/filmschoolyt/icon"
	"github.com/filmschoolyt/filmschoolyt/style"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case catalogsState:
		output = b.viewCatalogs()
	case searchState:
		output = b.viewSearch()
	case lessonsState:
		output = b.viewLessons()
	case watchState:
		output = b.viewWatch()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewCatalogs() string {
	return listExtraPaddingStyle.Render(b.catalogsC.View())
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Lessons"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("tab: %s", suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewLessons() string {
	return listExtraPaddingStyle.Render(b.lessonsC.View())
}

func (b *statefulBubble) viewWatch() string {
	var lessonTitle string
	if b.currentLesson != nil {
		lessonTitle = b.currentLesson.DisplayTitle()
	}

	snap := b.lastSnapshot

	lines := []string{
		style.Title("Now Watching"),
		"",
		style.Truncate(b.width)(fmt.Sprintf("%s %s", icon.Get(icon.Play), style.Fg(color.Purple)(lessonTitle))),
		"",
		b.viewGateStatus(snap),
	}

	if snap.Required > 0 {
		ratio := float64(snap.Accumulated) / float64(snap.Required)
		if ratio > 1 {
			ratio = 1
		}
		lines = append(lines, "", b.progressC.ViewAs(ratio))
	}

	lines = append(lines, "", b.viewResourceLink(snap))

	return b.renderLines(true, lines)
}

// viewGateStatus renders the single status line describing where the gate is.
func (b *statefulBubble) viewGateStatus(snap gate.Snapshot) string {
	switch snap.State {
	case gate.Unlocked:
		return fmt.Sprintf("%s %s",
			icon.Get(icon.Success),
			style.Fg(style.UnlockedColor)("Unlocked"),
		)
	case gate.LockedRunning:
		return fmt.Sprintf("%s Counting - %s watched, %s to go",
			icon.Get(icon.Clock),
			util.FormatSeconds(snap.Accumulated),
			style.Fg(style.LockedColor)(util.FormatSeconds(snap.Remaining)),
		)
	case gate.LockedIdle:
		return fmt.Sprintf("%s Paused - %s to go",
			icon.Get(icon.Pause),
			style.Fg(style.LockedColor)(util.FormatSeconds(snap.Remaining)),
		)
	default:
		return b.spinnerC.View() + " Waiting for the player..."
	}
}

func (b *statefulBubble) viewResourceLink(snap gate.Snapshot) string {
	if b.currentLesson == nil {
		return ""
	}

	if snap.Unlocked {
		return style.Truncate(b.width)(fmt.Sprintf("%s %s",
			icon.Get(icon.Unlock),
			style.Fg(style.UnlockedColor)(b.currentLesson.Link),
		))
	}

	return fmt.Sprintf("%s %s",
		icon.Get(icon.Lock),
		style.Faint("Resource link locked until the timer runs out"),
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Critical Failure: %v", b.lastError.Error()))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
