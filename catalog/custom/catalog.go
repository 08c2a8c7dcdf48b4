// Package custom provides a bridge between the Go core and Lua-based catalog scripts.
package custom

import (
	"fmt"
	"strconv"

	"github.com/filmschoolyt/filmschoolyt/constant"
	lua "github.com/yuin/gopher-lua"
)

// LuaCatalog executes a loaded Lua catalog script and exposes its lessons.
type LuaCatalog struct {
	name  string
	state *lua.LState
}

func newLuaCatalog(name string, state *lua.LState) *LuaCatalog {
	return &LuaCatalog{
		name:  name,
		state: state,
	}
}

// Name returns the catalog name.
func (c *LuaCatalog) Name() string {
	return c.name
}

// ID returns the catalog ID.
func (c *LuaCatalog) ID() string {
	return IDfromName(c.name)
}

// Lessons invokes the script's lesson listing function and translates its results.
func (c *LuaCatalog) Lessons() ([]*RawLesson, error) {
	val, err := c.call(constant.CatalogLessonsFn, lua.LTTable)
	if err != nil {
		return nil, err
	}

	table := val.(*lua.LTable)
	var lessons []*RawLesson

	var errs []error
	table.ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return // Skip invalid entries
		}

		if _, err := strconv.ParseUint(k.String(), 10, 16); err != nil {
			errs = append(errs, err)
			return
		}

		lesson, err := lessonFromTable(v.(*lua.LTable))
		if err != nil {
			errs = append(errs, err)
			return
		}

		lessons = append(lessons, lesson)
	})

	if len(lessons) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	return lessons, nil
}

// call executes a global Lua function safely.
func (c *LuaCatalog) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	luaFn := c.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := c.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)

	if err != nil {
		return nil, err
	}

	retval := c.state.Get(-1)
	c.state.Pop(1) // Clean stack

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}
