// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/color"
	"github.com/filmschoolyt/filmschoolyt/gate"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/player"
	"github.com/filmschoolyt/filmschoolyt/style"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/viper"
)

func (b *statefulBubble) loadProviders() tea.Cmd {
	builtins := catalog.Builtins()
	customs := catalog.Customs()

	var items []list.Item
	for _, p := range builtins {
		items = append(items, &listItem{
			internal: p,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.Compare(items[i].FilterValue(), items[j].FilterValue()) < 0
	})

	var customItems []list.Item
	for _, p := range customs {
		customItems = append(customItems, &listItem{
			internal: p,
		})
	}
	sort.Slice(customItems, func(i, j int) bool {
		return strings.Compare(customItems[i].FilterValue(), customItems[j].FilterValue()) < 0
	})

	return b.catalogsC.SetItems(append(items, customItems...))
}

func (b *statefulBubble) loadLessons(p *catalog.Provider) tea.Cmd {
	return func() tea.Msg {
		log.Info("loading catalog " + p.ID)
		b.progressStatus = fmt.Sprintf("Loading %s", style.Fg(color.Purple)(p.Name))

		c, err := p.CreateCatalog()
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		lessons, err := c.Lessons()
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		sort.Slice(lessons, func(i, j int) bool {
			return lessons[i].Index < lessons[j].Index
		})

		log.Infof("loaded %s from %s", util.Quantify(len(lessons), "lesson", "lessons"), c.Name())

		if viper.GetBool(key.CatalogFetchTitles) {
			// Hydrate display titles in the background so the list renders immediately.
			go func(lessons []*catalog.Lesson) {
				for _, l := range lessons {
					l.FetchTitle()
				}
			}(lessons)
		}

		b.selectedCatalog = c
		b.foundLessonsChannel <- lessons
		return nil
	}
}

func (b *statefulBubble) waitForLessons() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundLessonsChannel:
			return found
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

// filterLessons keeps lessons whose id, title, summary or tags fuzzy-match the query.
func filterLessons(lessons []*catalog.Lesson, query string) []*catalog.Lesson {
	query = strings.ToLower(query)

	var matched []*catalog.Lesson
	for _, lesson := range lessons {
		haystack := strings.ToLower(strings.Join(append(
			[]string{lesson.ID, lesson.Title, lesson.Summary},
			lesson.Tags...,
		), " "))

		if fuzzy.Match(query, haystack) {
			matched = append(matched, lesson)
		}
	}
	return matched
}

func (b *statefulBubble) setLessonItems(lessons []*catalog.Lesson) tea.Cmd {
	items := make([]list.Item, len(lessons))
	for i, l := range lessons {
		items[i] = &listItem{internal: l}
	}
	return b.lessonsC.SetItems(items)
}

// watchLesson spawns the embedded player, opens a fresh gate session for the
// lesson and starts relaying progress snapshots into the message loop.
func (b *statefulBubble) watchLesson(lesson *catalog.Lesson) tea.Cmd {
	return func() tea.Msg {
		b.currentLesson = lesson
		b.progressStatus = fmt.Sprintf("Launching %s", style.Fg(color.Purple)(lesson.DisplayTitle()))

		embed, err := player.New()
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		gateChannel := make(chan gate.Snapshot, 16)
		ctrl := gate.NewController(func(snap gate.Snapshot) {
			// Never block a controller goroutine on the UI; dropped
			// intermediate snapshots are recovered by the next one.
			select {
			case gateChannel <- snap:
			default:
			}
		})

		session := gate.NewSession(ctrl, embed)
		if err := session.Open(lesson.VideoID); err != nil {
			log.Errorf("failed to open session: %v", err)
			b.errorChannel <- fmt.Errorf("playback failed: %w", err)
			return nil
		}

		b.embed = embed
		b.session = session
		b.gateChannel = gateChannel
		b.watchDone = make(chan struct{})

		log.Infof("watching %s on %s", lesson.ID, embed.Origin())
		return watchStartedMsg{}
	}
}

type watchStartedMsg struct{}

func (b *statefulBubble) waitForGate() tea.Cmd {
	gateChannel := b.gateChannel
	watchDone := b.watchDone
	return func() tea.Msg {
		select {
		case snap := <-gateChannel:
			return snap
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		case <-watchDone:
			return nil
		}
	}
}

// closeSession tears the active watch session down: the gate resets and the
// player handle is discarded. Safe to call with no session active.
func (b *statefulBubble) closeSession() {
	if b.session == nil {
		return
	}

	close(b.watchDone)
	util.Ignore(b.session.Close)

	b.session = nil
	b.embed = nil
	b.gateChannel = nil
	b.currentLesson = nil
	b.lastSnapshot = gate.Snapshot{}
}
