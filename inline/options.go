// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/samber/mo"
)

type LessonPicker func([]*catalog.Lesson) *catalog.Lesson

type Options struct {
	Out          io.Writer
	Catalogs     []catalog.Catalog
	Json         bool
	Query        string
	LessonPicker mo.Option[LessonPicker]
	FetchTitles  bool
	// Links prints resource links instead of watch URLs in plain-text mode.
	Links bool
}

func ParseLessonPicker(kind, value string) (LessonPicker, error) {
	switch kind {
	case "first":
		return func(lessons []*catalog.Lesson) *catalog.Lesson {
			if len(lessons) == 0 {
				return nil
			}
			return lessons[0]
		}, nil
	case "last":
		return func(lessons []*catalog.Lesson) *catalog.Lesson {
			if len(lessons) == 0 {
				return nil
			}
			return lessons[len(lessons)-1]
		}, nil
	case "exact":
		return func(lessons []*catalog.Lesson) *catalog.Lesson {
			for _, l := range lessons {
				if l.ID == value {
					return l
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(lessons []*catalog.Lesson) *catalog.Lesson {
			if len(lessons) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(lessons)-1))
			return lessons[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
