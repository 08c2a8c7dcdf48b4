// Package custom provides a bridge between the Go core and Lua-based catalog scripts.
package custom

import (
	"fmt"

	"github.com/filmschoolyt/filmschoolyt/constant"
	"github.com/filmschoolyt/filmschoolyt/filesystem"
	"github.com/filmschoolyt/filmschoolyt/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName generates a canonical catalog identifier for a given Lua script basename.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadCatalog initializes a new LuaCatalog by executing and validating a Lua catalog script.
func LoadCatalog(path string) (*LuaCatalog, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state) // Injected from wrapper_tls.go

	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog script: %w", err)
	}

	if err := state.DoString(string(content)); err != nil {
		return nil, fmt.Errorf("execute catalog script: %w", err)
	}

	name := util.FileStem(path)

	// Validation
	if state.GetGlobal(constant.CatalogLessonsFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.CatalogLessonsFn, name)
	}

	return newLuaCatalog(name, state), nil
}
