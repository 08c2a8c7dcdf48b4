package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

const builtinID = "builtin"

// lessons.json ships a small starter catalog so the application is usable
// before any custom catalog is installed.
//
//go:embed lessons.json
var builtinLessons []byte

type builtin struct {
	lessons []*Lesson
}

func newBuiltin() (*builtin, error) {
	var lessons []*Lesson
	if err := json.Unmarshal(builtinLessons, &lessons); err != nil {
		return nil, fmt.Errorf("parse builtin catalog: %w", err)
	}

	b := &builtin{lessons: lessons}
	for i, lesson := range lessons {
		if err := lesson.Validate(); err != nil {
			return nil, err
		}
		lesson.Index = uint16(i)
		lesson.Catalog = b
	}

	return b, nil
}

func (b *builtin) Name() string { return builtinID }
func (b *builtin) ID() string   { return builtinID }

func (b *builtin) Lessons() ([]*Lesson, error) {
	return b.lessons, nil
}
