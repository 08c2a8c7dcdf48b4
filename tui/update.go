// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/gate"
	"github.com/filmschoolyt/filmschoolyt/icon"
	"github.com/filmschoolyt/filmschoolyt/internal/ui"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/open"
	"github.com/filmschoolyt/filmschoolyt/query"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process Ephemeral UI Notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.closeSession()
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			b.closeSession()
			return b, tea.Quit
		}

		// Input Guard: Ignore non-priority keys during asynchronous operations.
		if b.busy && b.state != watchState && b.state != errorState {
			return b, nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			onListBack := func(l *list.Model) tea.Cmd {
				l.ResetSelected()
				l.ResetFilter()
				return tea.Batch(cmd, l.NewStatusMessage(""))
			}

			switch b.state {
			case searchState:
				b.inputC.SetValue("")
			case watchState:
				b.closeSession()
			case lessonsState:
				if b.lessonsC.FilterState() != list.Unfiltered {
					b.lessonsC, cmd = b.lessonsC.Update(msg)
					return b, cmd
				}
				cmd = onListBack(&b.lessonsC)
			case catalogsState:
				if b.catalogsC.FilterState() != list.Unfiltered {
					b.catalogsC, cmd = b.catalogsC.Update(msg)
					return b, cmd
				}
				cmd = onListBack(&b.catalogsC)
			}

			b.previousState()
			b.stopLoading()
			return b, cmd
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case catalogsState:
		return b.updateCatalogs(msg)
	case searchState:
		return b.updateSearch(msg)
	case lessonsState:
		return b.updateLessons(msg)
	case watchState:
		return b.updateWatch(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds = make([]tea.Cmd, 0)
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() > 0 {
				b.previousState()
			} else {
				return b, tea.Quit
			}
		}
	case []*catalog.Lesson:
		b.allLessons = msg

		lessons := msg
		if b.options != nil && b.options.Query != "" {
			// consume the flag so an explicit search later sees all lessons
			lessons = filterLessons(lessons, b.options.Query)
			b.options.Query = ""
		}

		cmds = append(cmds, b.setLessonItems(lessons))
		b.newState(lessonsState)
		b.stopLoading()
	case watchStartedMsg:
		b.stopLoading()
		b.newState(watchState)
		cmds = append(cmds, b.waitForGate())
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateCatalogs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.catalogsC.Items()); n > 0 && b.catalogsC.Index() == 0 {
				b.catalogsC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.catalogsC.Items()); n > 0 && b.catalogsC.Index() == n-1 {
				b.catalogsC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.catalogsC.SelectedItem() == nil {
				break
			}
			p := b.catalogsC.SelectedItem().(*listItem).internal.(*catalog.Provider)
			b.lessonsC.Title = fmt.Sprintf("Lessons - %s", p.Name)
			b.progressStatus = fmt.Sprintf("Loading lessons from %s...", p.Name)
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.loadLessons(p), b.waitForLessons(), b.spinnerC.Tick)
		}
	}

	b.catalogsC, cmd = b.catalogsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			q := b.inputC.Value()

			lessons := b.allLessons
			if q != "" {
				go query.Remember(q, 1)
				lessons = filterLessons(lessons, q)
			}

			cmd = b.setLessonItems(lessons)
			b.newState(lessonsState)
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateLessons(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.lessonsC.Items()); n > 0 && b.lessonsC.Index() == 0 {
				b.lessonsC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.lessonsC.Items()); n > 0 && b.lessonsC.Index() == n-1 {
				b.lessonsC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			b.inputC.Focus()
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.changeCatalog):
			b.newState(catalogsState)
			return b, b.loadProviders()
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.lessonsC.SelectedItem() == nil {
				break
			}
			lesson := b.lessonsC.SelectedItem().(*listItem).internal.(*catalog.Lesson)
			if err := open.Start(lesson.WatchURL()); err != nil {
				b.raiseError(err)
			}
		case bubblesKey.Matches(msg, b.keymap.watch):
			if b.lessonsC.SelectedItem() == nil {
				break
			}
			lesson := b.lessonsC.SelectedItem().(*listItem).internal.(*catalog.Lesson)
			go query.Remember(lesson.DisplayTitle(), 2)
			b.progressStatus = fmt.Sprintf("Launching %s...", lesson.DisplayTitle())
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.watchLesson(lesson), b.spinnerC.Tick)
		}
	}

	b.lessonsC, cmd = b.lessonsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateWatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case gate.Snapshot:
		was := b.lastSnapshot
		b.lastSnapshot = msg

		cmds := []tea.Cmd{b.waitForGate()}

		if msg.Unlocked && !was.Unlocked {
			log.Infof("resource link unlocked for %s", b.currentLesson.ID)
			cmds = append(cmds, ui.Notify(fmt.Sprintf("%s Resource link unlocked", icon.Get(icon.Unlock))))

			if viper.GetBool(key.TUIOpenOnUnlock) && b.currentLesson != nil {
				if err := open.Start(b.currentLesson.Link); err != nil {
					log.Warnf("failed to open resource link: %v", err)
				}
			}
		}

		return b, tea.Batch(cmds...)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.playPause):
			if b.embed != nil {
				util.Ignore(b.embed.TogglePause)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openLink):
			if b.currentLesson == nil {
				return b, nil
			}
			if !b.lastSnapshot.Unlocked {
				remaining := util.FormatSeconds(b.lastSnapshot.Remaining)
				return b, ui.Notify(fmt.Sprintf("%s Locked - %s of playback to go", icon.Get(icon.Lock), remaining))
			}
			if err := open.Start(b.currentLesson.Link); err != nil {
				b.raiseError(err)
			}
			return b, nil
		}
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}
	return b, cmd
}
