package player

import (
	"testing"

	"github.com/filmschoolyt/filmschoolyt/yt"
	. "github.com/smartystreets/goconvey/convey"
)

func drain(m *MPV) []yt.Notification {
	var out []yt.Notification
	for {
		select {
		case n := <-m.notif:
			out = append(out, n)
		default:
			return out
		}
	}
}

func TestBridge(t *testing.T) {
	Convey("Given an MPV surface", t, func() {
		m, err := NewMPV()
		So(err, ShouldBeNil)

		Convey("Unpausing surfaces as playing", func() {
			m.bridge("pause", false)
			got := drain(m)
			So(got, ShouldHaveLength, 1)
			So(got[0].Origin, ShouldEqual, m.Origin())
			So(got[0].IsState(yt.StatePlaying), ShouldBeTrue)
		})

		Convey("Pausing surfaces as paused", func() {
			m.bridge("pause", true)
			got := drain(m)
			So(got, ShouldHaveLength, 1)
			So(got[0].IsState(yt.StatePaused), ShouldBeTrue)
		})

		Convey("End of file surfaces as ended", func() {
			m.bridge("eof-reached", true)
			got := drain(m)
			So(got, ShouldHaveLength, 1)
			So(got[0].IsState(yt.StateEnded), ShouldBeTrue)

			Convey("But eof-reached=false is silent", func() {
				m.bridge("eof-reached", false)
				So(drain(m), ShouldBeEmpty)
			})
		})

		Convey("Seeking surfaces as buffering", func() {
			m.bridge("seeking", true)
			got := drain(m)
			So(got, ShouldHaveLength, 1)
			So(got[0].IsState(yt.StateBuffering), ShouldBeTrue)
		})

		Convey("File load surfaces as ready", func() {
			m.bridge("file-loaded", map[string]interface{}{"event": "file-loaded"})
			got := drain(m)
			So(got, ShouldHaveLength, 1)
			So(got[0].Event, ShouldEqual, yt.EventReady)
		})

		Convey("Non-boolean payloads are discarded", func() {
			m.bridge("pause", "yes")
			m.bridge("eof-reached", 1)
			So(drain(m), ShouldBeEmpty)
		})

		Convey("Unknown properties are discarded", func() {
			m.bridge("volume", 50.0)
			So(drain(m), ShouldBeEmpty)
		})
	})
}

func TestMPVSurface(t *testing.T) {
	Convey("MPV surface identity", t, func() {
		a, err := NewMPV()
		So(err, ShouldBeNil)
		b, err := NewMPV()
		So(err, ShouldBeNil)

		Convey("Origins are distinct per instance", func() {
			So(a.Origin(), ShouldNotEqual, b.Origin())
			So(a.Origin(), ShouldStartWith, "mpv://")
		})

		Convey("Load rejects malformed video ids", func() {
			So(a.Load("--ytdl-raw-options=exec"), ShouldNotBeNil)
			So(a.Load(""), ShouldNotBeNil)
			So(a.Load("not a video id"), ShouldNotBeNil)
		})

		Convey("Discard before load is safe and closes the stream", func() {
			So(a.Discard(), ShouldBeNil)
			_, open := <-a.Notifications()
			So(open, ShouldBeFalse)

			Convey("And is idempotent", func() {
				So(a.Discard(), ShouldBeNil)
			})
		})

		Convey("IsRunning is false before load", func() {
			So(b.IsRunning(), ShouldBeFalse)
		})
	})
}
