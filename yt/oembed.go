// Package yt models the embedded-player notification protocol and the
// YouTube metadata endpoints used to describe lesson videos.
package yt

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/filmschoolyt/filmschoolyt/constant"
	"github.com/filmschoolyt/filmschoolyt/filesystem"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/network"
	"github.com/filmschoolyt/filmschoolyt/where"
	"github.com/metafates/gache"
)

const oembedURL = "https://www.youtube.com/oembed"

// oembedResponse defines the internal structural mapping for oEmbed responses.
type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

var titleCacher = gache.New[map[string]string](
	&gache.Options{
		Path:       where.Titles(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Title retrieves the display title of a video from the oEmbed endpoint.
// Results are cached on disk to not spam the endpoint.
// Returns an empty string (not an error) when the endpoint is unreachable.
func Title(videoID string) (string, error) {
	cached, expired, err := titleCacher.Get()
	if err == nil && !expired && cached != nil {
		if title, ok := cached[videoID]; ok {
			return title, nil
		}
	}

	endpoint := fmt.Sprintf("%s?url=%s&format=json", oembedURL, url.QueryEscape(WatchURL(videoID)))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create oembed request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Active().Do(req)
	if err != nil {
		log.Warnf("oembed request failed: %v", err)
		return "", nil // Graceful degradation
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("oembed returned status %d for %s", resp.StatusCode, videoID)
		// Recover gracefully: the catalog-declared title stays in use.
		return "", nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read oembed response: %w", err)
	}

	var data oembedResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("parse oembed response: %w", err)
	}

	if cached == nil {
		cached = make(map[string]string)
	}
	cached[videoID] = data.Title
	if err := titleCacher.Set(cached); err != nil {
		log.Warnf("cache video title: %v", err)
	}

	return data.Title, nil
}
