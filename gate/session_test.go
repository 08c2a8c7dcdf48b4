package gate

import (
	"testing"
	"time"

	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/yt"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type fakeSurface struct {
	origin    string
	notif     chan yt.Notification
	loaded    []string
	listened  bool
	discarded int
}

func newFakeSurface(origin string) *fakeSurface {
	return &fakeSurface{
		origin: origin,
		notif:  make(chan yt.Notification, 16),
	}
}

func (f *fakeSurface) Origin() string { return f.origin }

func (f *fakeSurface) Load(videoID string) error {
	f.loaded = append(f.loaded, videoID)
	return nil
}

func (f *fakeSurface) Listen() error {
	f.listened = true
	return nil
}

func (f *fakeSurface) Notifications() <-chan yt.Notification { return f.notif }

func (f *fakeSurface) Discard() error {
	f.discarded++
	return nil
}

// eventually polls until the condition holds or the deadline passes.
func eventually(cond func() bool) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestSession(t *testing.T) {
	Convey("Given a session over a fake player surface", t, func() {
		viper.Set(key.GateRequiredSeconds, 20)
		viper.Set(key.GateGraceDelaySeconds, 3)
		viper.Set(key.GateFallbackAutostart, false)

		surface := newFakeSurface("mpv:///tmp/session-test.sock")
		ctrl := NewController(nil)
		session := NewSession(ctrl, surface)

		Convey("Open loads the video, opens the gate and sends the handshake", func() {
			So(session.Open("dQw4w9WgXcQ"), ShouldBeNil)
			defer session.Close()

			So(surface.loaded, ShouldResemble, []string{"dQw4w9WgXcQ"})
			So(surface.listened, ShouldBeTrue)
			So(ctrl.Snapshot().State, ShouldEqual, LockedIdle)
		})

		Convey("Notifications from the surface reach the controller", func() {
			So(session.Open("dQw4w9WgXcQ"), ShouldBeNil)
			defer session.Close()

			surface.notif <- yt.Notification{
				Origin: surface.origin,
				Event:  yt.EventStateChange,
				Info:   yt.StatePlaying,
			}

			So(eventually(func() bool {
				return ctrl.Snapshot().State == LockedRunning
			}), ShouldBeTrue)
		})

		Convey("Close resets the gate and discards the player handle", func() {
			So(session.Open("dQw4w9WgXcQ"), ShouldBeNil)
			So(session.Close(), ShouldBeNil)

			So(ctrl.Snapshot().State, ShouldEqual, Closed)
			So(surface.discarded, ShouldEqual, 1)

			Convey("And is idempotent: the handle is discarded once", func() {
				So(session.Close(), ShouldBeNil)
				So(surface.discarded, ShouldEqual, 1)
			})
		})

		Convey("Notifications sent after close are not applied", func() {
			So(session.Open("dQw4w9WgXcQ"), ShouldBeNil)
			So(session.Close(), ShouldBeNil)

			surface.notif <- yt.Notification{
				Origin: surface.origin,
				Event:  yt.EventStateChange,
				Info:   yt.StatePlaying,
			}

			time.Sleep(50 * time.Millisecond)
			So(ctrl.Snapshot().State, ShouldEqual, Closed)
		})
	})
}
