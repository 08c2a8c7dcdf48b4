package catalog

import (
	"testing"

	"github.com/filmschoolyt/filmschoolyt/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestBuiltin(t *testing.T) {
	Convey("Builtin catalog", t, func() {
		c, err := newBuiltin()
		So(err, ShouldBeNil)
		So(c.Name(), ShouldEqual, "builtin")

		lessons, err := c.Lessons()
		So(err, ShouldBeNil)
		So(lessons, ShouldNotBeEmpty)

		Convey("Every lesson is valid and back-referenced", func() {
			for _, lesson := range lessons {
				So(lesson.Validate(), ShouldBeNil)
				So(lesson.Catalog, ShouldEqual, c)
			}
		})

		Convey("Indexes are sequential", func() {
			for i, lesson := range lessons {
				So(lesson.Index, ShouldEqual, uint16(i))
			}
		})
	})
}

func TestFileCatalog(t *testing.T) {
	Convey("File catalog", t, func() {
		Convey("Should load lessons from a JSON file", func() {
			content := `[{"id":"foley","title":"Foley Basics","video":"dQw4w9WgXcQ","link":"https://example.com/foley.pdf"}]`
			So(filesystem.API().WriteFile("/catalogs/mine.json", []byte(content), 0644), ShouldBeNil)

			c, err := newFileCatalog("/catalogs/mine.json")
			So(err, ShouldBeNil)
			So(c.Name(), ShouldEqual, "mine")

			lessons, err := c.Lessons()
			So(err, ShouldBeNil)
			So(lessons, ShouldHaveLength, 1)
			So(lessons[0].ID, ShouldEqual, "foley")
			So(lessons[0].WatchURL(), ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		})

		Convey("Should reject a missing file", func() {
			_, err := newFileCatalog("/catalogs/nope.json")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject lessons without a resource link", func() {
			content := `[{"id":"bad","video":"dQw4w9WgXcQ"}]`
			So(filesystem.API().WriteFile("/catalogs/bad.json", []byte(content), 0644), ShouldBeNil)

			c, err := newFileCatalog("/catalogs/bad.json")
			So(err, ShouldBeNil)

			_, err = c.Lessons()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLessonDisplayTitle(t *testing.T) {
	Convey("Lesson display title", t, func() {
		lesson := &Lesson{ID: "x", VideoID: "dQw4w9WgXcQ", Link: "https://example.com"}

		Convey("Falls back to the video id", func() {
			So(lesson.DisplayTitle(), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Prefers the declared title", func() {
			lesson.Title = "Declared"
			So(lesson.DisplayTitle(), ShouldEqual, "Declared")
		})

		Convey("Prefers the fetched title over everything", func() {
			lesson.Title = "Declared"
			lesson.fetchedTitle = "Fetched"
			So(lesson.DisplayTitle(), ShouldEqual, "Fetched")
		})
	})
}
