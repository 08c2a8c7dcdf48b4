package yt

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExtractVideoID(t *testing.T) {
	Convey("ExtractVideoID", t, func() {
		Convey("Should accept a raw id", func() {
			id, err := ExtractVideoID("dQw4w9WgXcQ")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Should parse a watch URL", func() {
			id, err := ExtractVideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Should parse an embed URL", func() {
			id, err := ExtractVideoID("https://www.youtube.com/embed/dQw4w9WgXcQ")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Should parse a short link", func() {
			id, err := ExtractVideoID("https://youtu.be/dQw4w9WgXcQ?t=42")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Should reject garbage", func() {
			_, err := ExtractVideoID("not a video")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestURLDerivation(t *testing.T) {
	Convey("URL derivation", t, func() {
		So(WatchURL("dQw4w9WgXcQ"), ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		So(EmbedURL("dQw4w9WgXcQ"), ShouldEqual, "https://www.youtube.com/embed/dQw4w9WgXcQ")
	})
}

func TestStateName(t *testing.T) {
	Convey("StateName", t, func() {
		So(StateName(StatePlaying), ShouldEqual, "playing")
		So(StateName(StatePaused), ShouldEqual, "paused")
		So(StateName(StateEnded), ShouldEqual, "ended")
		So(StateName(StateBuffering), ShouldEqual, "buffering")
		So(StateName(StateCued), ShouldEqual, "cued")
		So(StateName(StateUnstarted), ShouldEqual, "unstarted")
		So(StateName(42), ShouldEqual, "unknown")
	})
}

func TestNotification(t *testing.T) {
	Convey("Notification", t, func() {
		n := Notification{Origin: "mpv:///tmp/sock", Event: EventStateChange, Info: StatePlaying}
		So(n.IsState(StatePlaying), ShouldBeTrue)
		So(n.IsState(StatePaused), ShouldBeFalse)

		ready := Notification{Origin: "mpv:///tmp/sock", Event: EventReady}
		So(ready.IsState(StatePlaying), ShouldBeFalse)
	})
}
