package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		viper.Set(key.GateRequiredSeconds, 20)

		Convey("Should produce valid JSON for an empty lesson list", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.RequiredSeconds, ShouldEqual, 20)
			So(output.Result, ShouldHaveLength, 0)
		})

		Convey("Should include derived watch URLs", func() {
			var buf bytes.Buffer
			lessons := []*catalog.Lesson{
				{ID: "a", Title: "A", VideoID: "dQw4w9WgXcQ", Link: "https://example.com/a.pdf"},
			}
			err := writeJson(&buf, lessons, &Options{Query: "a", Json: true})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].WatchURL, ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("filter", t, func() {
		lessons := []*catalog.Lesson{
			{ID: "blocking-basics", Title: "Blocking a Scene", Tags: []string{"directing"}},
			{ID: "location-sound", Title: "Clean Location Sound", Tags: []string{"sound"}},
		}

		Convey("Matches by title", func() {
			got := filter(lessons, "blocking")
			So(got, ShouldHaveLength, 1)
			So(got[0].ID, ShouldEqual, "blocking-basics")
		})

		Convey("Matches by tag", func() {
			got := filter(lessons, "sound")
			So(got, ShouldHaveLength, 1)
			So(got[0].ID, ShouldEqual, "location-sound")
		})

		Convey("No match yields empty", func() {
			So(filter(lessons, "vfx compositing"), ShouldBeEmpty)
		})
	})
}

func TestParseLessonPicker(t *testing.T) {
	Convey("ParseLessonPicker", t, func() {
		lessons := []*catalog.Lesson{
			{ID: "one"}, {ID: "two"}, {ID: "three"},
		}

		Convey("first", func() {
			picker, err := ParseLessonPicker("first", "")
			So(err, ShouldBeNil)
			So(picker(lessons).ID, ShouldEqual, "one")
		})

		Convey("last", func() {
			picker, err := ParseLessonPicker("last", "")
			So(err, ShouldBeNil)
			So(picker(lessons).ID, ShouldEqual, "three")
		})

		Convey("exact", func() {
			picker, err := ParseLessonPicker("exact", "two")
			So(err, ShouldBeNil)
			So(picker(lessons).ID, ShouldEqual, "two")
			So(picker(lessons[:1]), ShouldBeNil)
		})

		Convey("index clamps to bounds", func() {
			picker, err := ParseLessonPicker("index", "99")
			So(err, ShouldBeNil)
			So(picker(lessons).ID, ShouldEqual, "three")
		})

		Convey("unknown kind errors", func() {
			_, err := ParseLessonPicker("middle", "")
			So(err, ShouldNotBeNil)
		})

		Convey("mo.Option wiring", func() {
			opt := mo.Some[LessonPicker](func(l []*catalog.Lesson) *catalog.Lesson { return l[0] })
			So(opt.IsPresent(), ShouldBeTrue)
		})
	})
}
