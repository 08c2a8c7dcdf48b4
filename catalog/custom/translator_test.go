package custom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestLessonFromTable(t *testing.T) {
	Convey("lessonFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should translate a complete table", func() {
			tbl := L.NewTable()
			tbl.RawSetString("id", lua.LString("match-cut"))
			tbl.RawSetString("title", lua.LString("Match Cuts"))
			tbl.RawSetString("video", lua.LString("dQw4w9WgXcQ"))
			tbl.RawSetString("link", lua.LString("https://example.com/match-cut.pdf"))
			tbl.RawSetString("summary", lua.LString("Cutting on matched action or shape."))
			tbl.RawSetString("tags", lua.LString("editing, montage"))

			lesson, err := lessonFromTable(tbl)
			So(err, ShouldBeNil)
			So(lesson.ID, ShouldEqual, "match-cut")
			So(lesson.Title, ShouldEqual, "Match Cuts")
			So(lesson.VideoID, ShouldEqual, "dQw4w9WgXcQ")
			So(lesson.Link, ShouldEqual, "https://example.com/match-cut.pdf")
			So(lesson.Tags, ShouldResemble, []string{"editing", "montage"})
		})

		Convey("Should accept tags as a table", func() {
			tags := L.NewTable()
			tags.Append(lua.LString("lighting"))
			tags.Append(lua.LString("color"))

			tbl := L.NewTable()
			tbl.RawSetString("id", lua.LString("color-temp"))
			tbl.RawSetString("video", lua.LString("dQw4w9WgXcQ"))
			tbl.RawSetString("link", lua.LString("https://example.com/color.pdf"))
			tbl.RawSetString("tags", tags)

			lesson, err := lessonFromTable(tbl)
			So(err, ShouldBeNil)
			So(lesson.Tags, ShouldResemble, []string{"lighting", "color"})
		})

		Convey("Should reject a table missing required fields", func() {
			tbl := L.NewTable()
			tbl.RawSetString("id", lua.LString("incomplete"))

			_, err := lessonFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLoadCatalogValidation(t *testing.T) {
	Convey("LuaCatalog", t, func() {
		Convey("Should list lessons from a script", func() {
			L := lua.NewState()
			err := L.DoString(`
				function CatalogLessons()
					return {
						{
							id = "crane-shot",
							title = "The Crane Shot",
							video = "dQw4w9WgXcQ",
							link = "https://example.com/crane.pdf",
						},
					}
				end
			`)
			So(err, ShouldBeNil)

			c := newLuaCatalog("test", L)
			So(c.ID(), ShouldEqual, "test custom")

			lessons, err := c.Lessons()
			So(err, ShouldBeNil)
			So(lessons, ShouldHaveLength, 1)
			So(lessons[0].ID, ShouldEqual, "crane-shot")
		})

		Convey("Should error when the listing function returns a non-table", func() {
			L := lua.NewState()
			So(L.DoString(`function CatalogLessons() return 42 end`), ShouldBeNil)

			c := newLuaCatalog("test", L)
			_, err := c.Lessons()
			So(err, ShouldNotBeNil)
		})
	})
}
