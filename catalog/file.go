package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/filmschoolyt/filmschoolyt/filesystem"
	"github.com/filmschoolyt/filmschoolyt/util"
)

const fileID = "file"

// fileCatalog serves lessons from a user-supplied JSON file,
// read through the virtualized filesystem backend.
type fileCatalog struct {
	name string
	path string
}

func newFileCatalog(path string) (*fileCatalog, error) {
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("catalog file %s does not exist", path)
	}

	return &fileCatalog{
		name: util.FileStem(path),
		path: path,
	}, nil
}

func (f *fileCatalog) Name() string { return f.name }
func (f *fileCatalog) ID() string   { return fileID + " " + f.name }

func (f *fileCatalog) Lessons() ([]*Lesson, error) {
	content, err := filesystem.API().ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var lessons []*Lesson
	if err := json.Unmarshal(content, &lessons); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	for i, lesson := range lessons {
		if err := lesson.Validate(); err != nil {
			return nil, err
		}
		lesson.Index = uint16(i)
		lesson.Catalog = f
	}

	return lessons, nil
}
