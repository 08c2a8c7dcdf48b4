package yt

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/filmschoolyt/filmschoolyt/auth"
	"github.com/filmschoolyt/filmschoolyt/constant"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/network"
	"github.com/spf13/viper"
)

const dataAPIURL = "https://www.googleapis.com/youtube/v3/videos"

// VideoMeta holds extended metadata from the Data API.
type VideoMeta struct {
	Title        string
	ChannelTitle string
	Duration     string // ISO 8601, e.g. "PT4M13S"
}

type dataAPIResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Metadata retrieves extended video metadata using the stored Data API key.
// Returns nil (not an error) when no key is stored, the integration is
// disabled, or the endpoint is unreachable.
func Metadata(videoID string) (*VideoMeta, error) {
	if !viper.GetBool(key.MetadataUseAPIKey) {
		return nil, nil
	}

	apiKey, err := auth.GetAPIKey()
	if err != nil || apiKey == "" {
		log.Debug("no data api key stored, skipping metadata lookup")
		return nil, nil
	}

	endpoint := fmt.Sprintf(
		"%s?part=snippet,contentDetails&id=%s&key=%s",
		dataAPIURL, url.QueryEscape(videoID), url.QueryEscape(apiKey),
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create data api request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Active().Do(req)
	if err != nil {
		log.Warnf("data api request failed: %v", err)
		return nil, nil // Graceful degradation
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("data api returned status %d for %s", resp.StatusCode, videoID)
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read data api response: %w", err)
	}

	var data dataAPIResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("parse data api response: %w", err)
	}

	if len(data.Items) == 0 {
		return nil, nil
	}

	item := data.Items[0]
	return &VideoMeta{
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		Duration:     item.ContentDetails.Duration,
	}, nil
}
