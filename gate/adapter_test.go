package gate

import (
	"testing"

	"github.com/filmschoolyt/filmschoolyt/yt"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAdapter(t *testing.T) {
	Convey("Given an adapter bound to a trusted origin", t, func() {
		a := NewAdapter("mpv:///tmp/a.sock")

		Convey("It discards notifications from other origins", func() {
			sig := a.Translate(yt.Notification{
				Origin: "mpv:///tmp/b.sock",
				Event:  yt.EventStateChange,
				Info:   yt.StatePlaying,
			})
			So(sig, ShouldEqual, Ignored)
		})

		Convey("It emits ready exactly once", func() {
			first := a.Translate(yt.Notification{Origin: "mpv:///tmp/a.sock", Event: yt.EventReady})
			second := a.Translate(yt.Notification{Origin: "mpv:///tmp/a.sock", Event: yt.EventReady})
			So(first, ShouldEqual, Ready)
			So(second, ShouldEqual, Ignored)
			So(a.Ready(), ShouldBeTrue)
		})

		Convey("It maps state codes to signals", func() {
			cases := map[int]Signal{
				yt.StatePlaying:   Playing,
				yt.StatePaused:    Paused,
				yt.StateEnded:     Ended,
				yt.StateBuffering: Ignored,
				yt.StateCued:      Ignored,
				yt.StateUnstarted: Ignored,
			}
			for code, want := range cases {
				sig := a.Translate(yt.Notification{
					Origin: "mpv:///tmp/a.sock",
					Event:  yt.EventStateChange,
					Info:   code,
				})
				So(sig, ShouldEqual, want)
			}
		})

		Convey("It discards unrecognized event shapes", func() {
			sig := a.Translate(yt.Notification{Origin: "mpv:///tmp/a.sock", Event: "onBogus", Info: 1})
			So(sig, ShouldEqual, Ignored)
		})
	})
}
