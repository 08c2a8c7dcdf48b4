// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/spf13/viper"
)

type Lesson struct {
	// Catalog is the name of the catalog the lesson came from.
	Catalog string `json:"catalog"`
	// Lesson is the lesson object itself.
	Lesson *catalog.Lesson `json:"lesson"`
	// WatchURL is the derived watch page URL.
	WatchURL string `json:"watch_url"`
}

type Output struct {
	Query string `json:"query"`
	// RequiredSeconds is the active unlock threshold, so programmatic
	// consumers know how long the resource link stays gated.
	RequiredSeconds int       `json:"required_seconds"`
	Result          []*Lesson `json:"result"`
}

func asJson(lessons []*catalog.Lesson, query string) ([]byte, error) {
	var result = make([]*Lesson, len(lessons))
	for i, l := range lessons {
		var name string
		if l.Catalog != nil {
			name = l.Catalog.Name()
		}

		result[i] = &Lesson{
			Catalog:  name,
			Lesson:   l,
			WatchURL: l.WatchURL(),
		}
	}

	return json.Marshal(&Output{
		Query:           query,
		RequiredSeconds: viper.GetInt(key.GateRequiredSeconds),
		Result:          result,
	})
}

func writeJson(out io.Writer, lessons []*catalog.Lesson, options *Options) error {
	data, err := asJson(lessons, options.Query)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
