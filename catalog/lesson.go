// Package catalog defines the domain models and interfaces for lesson discovery.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/filmschoolyt/filmschoolyt/yt"
)

// Lesson represents a single film-craft lesson: an embedded video paired
// with a resource link that stays locked until enough of the video is watched.
type Lesson struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	VideoID string   `json:"video"`
	Link    string   `json:"link"`
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Index   uint16   `json:"index"`

	Catalog Catalog `json:"-"`

	fetchedTitle string
}

func (l *Lesson) String() string {
	return l.DisplayTitle()
}

// DisplayTitle returns the best available title for the lesson.
// A title fetched from the video metadata endpoint takes precedence
// over the catalog-declared one.
func (l *Lesson) DisplayTitle() string {
	if l.fetchedTitle != "" {
		return l.fetchedTitle
	}
	if l.Title != "" {
		return l.Title
	}
	return l.VideoID
}

// WatchURL returns the canonical watch page URL for the lesson's video.
func (l *Lesson) WatchURL() string {
	return yt.WatchURL(l.VideoID)
}

// EmbedURL returns the embedded-player URL for the lesson's video.
func (l *Lesson) EmbedURL() string {
	return yt.EmbedURL(l.VideoID)
}

// Validate checks that the lesson carries the minimum required fields and
// normalizes the video reference: catalogs may declare either a bare video id
// or any common watch/embed/short-link URL.
func (l *Lesson) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lesson must have an id")
	}
	if l.VideoID == "" {
		return fmt.Errorf("lesson %q must have a video id", l.ID)
	}

	id, err := yt.ExtractVideoID(l.VideoID)
	if err != nil {
		return fmt.Errorf("lesson %q: %w", l.ID, err)
	}
	l.VideoID = id

	if l.Link == "" {
		return fmt.Errorf("lesson %q must have a resource link", l.ID)
	}
	return nil
}

// FetchTitle resolves and memoizes the lesson's display title. The Data API
// is preferred when a key is stored and enabled; otherwise the oEmbed
// endpoint is used. Failures are non-fatal: the catalog-declared title
// remains in use.
func (l *Lesson) FetchTitle() {
	if l.fetchedTitle != "" {
		return
	}

	if meta, err := yt.Metadata(l.VideoID); err == nil && meta != nil && meta.Title != "" {
		l.fetchedTitle = meta.Title
		return
	}

	if title, err := yt.Title(l.VideoID); err == nil && title != "" {
		l.fetchedTitle = title
	}
}

// LessonJSON returns the JSON representation of the lesson.
func (l *Lesson) LessonJSON() []byte {
	b, _ := json.Marshal(l)
	return b
}
