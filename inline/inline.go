// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"os"
	"strings"

	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/viper"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Collect lessons from every requested catalog.
	var lessons []*catalog.Lesson
	for _, c := range options.Catalogs {
		found, err := c.Lessons()
		if err != nil {
			return fmt.Errorf("list lessons of %s: %w", c.Name(), err)
		}
		lessons = append(lessons, found...)
	}

	// Step 2: Narrow by query, if given.
	if options.Query != "" {
		lessons = filter(lessons, options.Query)
	}

	// Step 3: Apply lesson selection logic if a picker is defined.
	var selected []*catalog.Lesson
	if options.LessonPicker.IsPresent() {
		picker := options.LessonPicker.MustGet()
		if choice := picker(lessons); choice != nil {
			selected = []*catalog.Lesson{choice}
		}
	} else {
		selected = lessons
	}

	if len(selected) == 0 {
		if options.Json {
			return writeJson(options.Out, []*catalog.Lesson{}, options)
		}
		return nil // Nothing found
	}

	// Step 4: Resolve display titles when requested.
	if options.FetchTitles || viper.GetBool(key.CatalogFetchTitles) {
		for _, lesson := range selected {
			lesson.FetchTitle()
		}
	}

	// Step 5: Dispatch the results to the configured output writer.
	if options.Json {
		return writeJson(options.Out, selected, options)
	}

	for _, lesson := range selected {
		log.Info("Found " + lesson.DisplayTitle())
		if options.Links {
			fmt.Fprintln(options.Out, lesson.Link)
		} else {
			fmt.Fprintln(options.Out, lesson.WatchURL())
		}
	}

	return nil
}

// filter keeps lessons whose id, title, summary or tags fuzzy-match the query.
func filter(lessons []*catalog.Lesson, query string) []*catalog.Lesson {
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
