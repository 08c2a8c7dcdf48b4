// Package catalog defines the domain models and interfaces for lesson discovery.
package catalog

import (
	"path/filepath"

	"github.com/filmschoolyt/filmschoolyt/catalog/custom"
	"github.com/filmschoolyt/filmschoolyt/filesystem"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/filmschoolyt/filmschoolyt/where"
	"github.com/spf13/viper"
)

// Provider represents a registered catalog backend.
type Provider struct {
	ID            string
	Name          string
	IsCustom      bool // Reserved for Lua-based catalogs.
	CreateCatalog func() (Catalog, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the built-in catalog providers.
// The optional file-backed provider appears only when a catalog path is configured.
func Builtins() []*Provider {
	providers := []*Provider{
		{
			ID:   builtinID,
			Name: builtinID,
			CreateCatalog: func() (Catalog, error) {
				return newBuiltin()
			},
		},
	}

	if path := viper.GetString(key.CatalogPath); path != "" {
		providers = append(providers, &Provider{
			ID:   fileID,
			Name: fileID,
			CreateCatalog: func() (Catalog, error) {
				return newFileCatalog(path)
			},
		})
	}

	return providers
}

// Customs returns all available Lua catalog providers.
func Customs() []*Provider {
	providers, _ := customProviders()
	return providers
}

// All returns every registered provider, built-in and custom.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	for _, p := range All() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

func customProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Catalogs())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		if f.Name() == "common.lua" {
			continue
		}

		path := filepath.Join(where.Catalogs(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			CreateCatalog: func() (Catalog, error) {
				return loadCustom(path)
			},
		})
	}

	return providers, nil
}

// loadCustom adapts a Lua catalog into the Catalog interface,
// translating its raw lesson tables into validated domain models.
func loadCustom(path string) (Catalog, error) {
	lc, err := custom.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	return &customCatalog{lua: lc}, nil
}

type customCatalog struct {
	lua *custom.LuaCatalog
}

func (c *customCatalog) Name() string { return c.lua.Name() }
func (c *customCatalog) ID() string   { return c.lua.ID() }

func (c *customCatalog) Lessons() ([]*Lesson, error) {
	raw, err := c.lua.Lessons()
	if err != nil {
		return nil, err
	}

	lessons := make([]*Lesson, 0, len(raw))
	for i, r := range raw {
		lesson := &Lesson{
			ID:      r.ID,
			Title:   r.Title,
			VideoID: r.VideoID,
			Link:    r.Link,
			Summary: r.Summary,
			Tags:    r.Tags,
			Index:   uint16(i),
			Catalog: c,
		}
		if err := lesson.Validate(); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}
