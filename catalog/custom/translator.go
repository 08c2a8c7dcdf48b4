// Package custom provides a bridge between the Go core and Lua-based catalog scripts.
package custom

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// RawLesson is a lesson as declared by a Lua script, before domain validation.
type RawLesson struct {
	ID      string
	Title   string
	VideoID string
	Link    string
	Summary string
	Tags    []string
}

// Helper to get string from table with default
func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

// Helper to get string list from table (comma-separated or table)
func getStringList(table *lua.LTable, key string) []string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return lo.Map(strings.Split(val.String(), ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	}
	if val.Type() == lua.LTTable {
		var list []string
		val.(*lua.LTable).ForEach(func(_, v lua.LValue) {
			if v.Type() == lua.LTString {
				list = append(list, v.String())
			}
		})
		return list
	}
	return nil
}

func lessonFromTable(table *lua.LTable) (*RawLesson, error) {
	id := getString(table, "id")
	video := getString(table, "video")
	link := getString(table, "link")

	if id == "" || video == "" || link == "" {
		return nil, fmt.Errorf("lesson must have id, video and link")
	}

	return &RawLesson{
		ID:      id,
		Title:   getString(table, "title"),
		VideoID: video,
		Link:    link,
		Summary: getString(table, "summary"),
		Tags:    getStringList(table, "tags"),
	}, nil
}
