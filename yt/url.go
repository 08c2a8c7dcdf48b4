// Package yt models the embedded-player notification protocol and the
// YouTube metadata endpoints used to describe lesson videos.
package yt

import (
	"fmt"
	"regexp"

	"github.com/filmschoolyt/filmschoolyt/util"
)

var (
	idPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	urlPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|shorts/)|youtu\.be/)(?P<id>[A-Za-z0-9_-]{11})`)
)

// ValidID reports whether the string is a well-formed video identifier.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ExtractVideoID resolves a video identifier from a raw ID or any common
// watch, embed, shorts, or short-link URL form.
func ExtractVideoID(input string) (string, error) {
	if ValidID(input) {
		return input, nil
	}

	groups := util.ReGroups(urlPattern, input)
	if id, ok := groups["id"]; ok && id != "" {
		return id, nil
	}

	return "", fmt.Errorf("cannot extract video id from %q", input)
}

// WatchURL returns the canonical watch page URL for a video.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// EmbedURL returns the embedded-player URL for a video.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
