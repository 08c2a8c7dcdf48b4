package gate

import (
	"testing"
	"time"

	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/yt"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

const testOrigin = "mpv:///tmp/gate-test.sock"

func stateChange(code int) yt.Notification {
	return yt.Notification{Origin: testOrigin, Event: yt.EventStateChange, Info: code}
}

func newTestController(required int, fallback bool) *Controller {
	viper.Set(key.GateRequiredSeconds, required)
	viper.Set(key.GateGraceDelaySeconds, 3)
	viper.Set(key.GateFallbackAutostart, fallback)
	return NewController(nil)
}

// advance drives the accumulator directly, one second per call.
func advance(c *Controller, ticks int) {
	gen := c.gen
	for i := 0; i < ticks; i++ {
		c.tick(gen)
	}
}

func TestGraceFallback(t *testing.T) {
	Convey("A session with no player signals at all", t, func() {
		c := newTestController(20, true)
		c.grace = 25 * time.Millisecond
		c.Open(testOrigin)
		defer c.Close()

		So(c.Snapshot().State, ShouldEqual, LockedIdle)

		Convey("Starts counting once the grace delay expires", func() {
			time.Sleep(100 * time.Millisecond)
			So(c.Snapshot().State, ShouldEqual, LockedRunning)
			So(c.timer.Running(), ShouldBeTrue)
		})
	})

	Convey("With the fallback disabled the session stays idle", t, func() {
		c := newTestController(20, false)
		c.grace = 25 * time.Millisecond
		c.Open(testOrigin)
		defer c.Close()

		time.Sleep(100 * time.Millisecond)
		So(c.Snapshot().State, ShouldEqual, LockedIdle)
	})

	Convey("A stale grace expiration cannot fire into a new session", t, func() {
		c := newTestController(20, false)
		c.Open(testOrigin)
		staleGen := c.gen

		c.Close()
		c.Open(testOrigin)

		c.autoStart(staleGen)
		So(c.Snapshot().State, ShouldEqual, LockedIdle)
		c.Close()
	})
}

func TestUnlockAtThreshold(t *testing.T) {
	Convey("Playing for the full requirement unlocks the gate", t, func() {
		c := newTestController(20, false)
		c.Open(testOrigin)
		defer c.Close()

		c.HandleNotification(stateChange(yt.StatePlaying))
		So(c.Snapshot().State, ShouldEqual, LockedRunning)

		advance(c, 20)

		snap := c.Snapshot()
		So(snap.Unlocked, ShouldBeTrue)
		So(snap.Remaining, ShouldEqual, 0)
		So(snap.Accumulated, ShouldEqual, 20)
		So(c.timer.Running(), ShouldBeFalse)

		Convey("Further ticks never increment past the unlock point", func() {
			advance(c, 5)
			So(c.Snapshot().Accumulated, ShouldEqual, 20)
		})

		Convey("Unlock is terminal: pause and ended do not relock", func() {
			c.HandleNotification(stateChange(yt.StatePaused))
			So(c.Unlocked(), ShouldBeTrue)
			c.HandleNotification(stateChange(yt.StateEnded))
			So(c.Unlocked(), ShouldBeTrue)
		})
	})
}

func TestPauseResumeAccumulation(t *testing.T) {
	Convey("Accumulation survives pauses without double counting", t, func() {
		c := newTestController(20, false)
		c.Open(testOrigin)
		defer c.Close()

		c.HandleNotification(stateChange(yt.StatePlaying))
		advance(c, 5)
		So(c.Snapshot().Accumulated, ShouldEqual, 5)

		c.HandleNotification(stateChange(yt.StatePaused))
		So(c.Snapshot().State, ShouldEqual, LockedIdle)
		So(c.timer.Running(), ShouldBeFalse)

		advance(c, 10)
		So(c.Snapshot().Accumulated, ShouldEqual, 5)

		c.HandleNotification(stateChange(yt.StatePlaying))
		advance(c, 15)

		snap := c.Snapshot()
		So(snap.Accumulated, ShouldEqual, 20)
		So(snap.Unlocked, ShouldBeTrue)
	})

	Convey("Duplicate playing signals while running are no-ops", t, func() {
		c := newTestController(20, false)
		c.Open(testOrigin)
		defer c.Close()

		c.HandleNotification(stateChange(yt.StatePlaying))
		c.HandleNotification(stateChange(yt.StatePlaying))
		So(c.Snapshot().State, ShouldEqual, LockedRunning)
		So(c.timer.Running(), ShouldBeTrue)
	})

	Convey("Ended stops counting but keeps the accumulator", t, func() {
		c := newTestController(20, false)
		c.Open(testOrigin)
		defer c.Close()

		c.HandleNotification(stateChange(yt.StatePlaying))
		advance(c, 7)
		c.HandleNotification(stateChange(yt.StateEnded))

		snap := c.Snapshot()
		So(snap.State, ShouldEqual, LockedIdle)
		So(snap.Accumulated, ShouldEqual, 7)
		So(snap.Remaining, ShouldEqual, 13)
	})
}

func TestSessionIsolation(t *testing.T) {
	Convey("A new session never inherits a prior session's progress", t, func() {
		c := newTestController(20, false)

		c.Open(testOrigin)
		c.HandleNotification(stateChange(yt.StatePlaying))
		advance(c, 3)
		So(c.Snapshot().Accumulated, ShouldEqual, 3)
		staleGen := c.gen

		c.Close()
		So(c.Snapshot().State, ShouldEqual, Closed)
		So(c.Snapshot().Accumulated, ShouldEqual, 0)

		c.Open(testOrigin)
		defer c.Close()

		snap := c.Snapshot()
		So(snap.State, ShouldEqual, LockedIdle)
		So(snap.Accumulated, ShouldEqual, 0)

		Convey("Stale ticks from the old session are discarded", func() {
			c.tick(staleGen)
			So(c.Snapshot().Accumulated, ShouldEqual, 0)
		})
	})

	Convey("Close always resets, regardless of prior state", t, func() {
		c := newTestController(5, false)
		c.Open(testOrigin)
		c.HandleNotification(stateChange(yt.StatePlaying))
		advance(c, 5)
		So(c.Unlocked(), ShouldBeTrue)

		c.Close()
		snap := c.Snapshot()
		So(snap.Unlocked, ShouldBeFalse)
		So(snap.Accumulated, ShouldEqual, 0)
		So(snap.State, ShouldEqual, Closed)

		Convey("And is idempotent", func() {
			c.Close()
			So(c.Snapshot().State, ShouldEqual, Closed)
		})
	})

	Convey("Signals after close are ignored", t, func() {
		c := newTestController(20, false)
		c.Open(testOrigin)
		c.Close()

		c.HandleNotification(stateChange(yt.StatePlaying))
		So(c.Snapshot().State, ShouldEqual, Closed)
	})
}

func TestUntrustedOrigin(t *testing.T) {
	Convey("Notifications from an untrusted origin change nothing", t, func() {
		c := newTestController(20, false)
		c.Open(testOrigin)
		defer c.Close()

		c.HandleNotification(stateChange(yt.StatePlaying))
		advance(c, 5)

		c.HandleNotification(yt.Notification{
			Origin: "mpv:///tmp/evil.sock",
			Event:  yt.EventStateChange,
			Info:   yt.StatePaused,
		})

		snap := c.Snapshot()
		So(snap.State, ShouldEqual, LockedRunning)
		So(snap.Accumulated, ShouldEqual, 5)
	})
}

func TestProgressObserver(t *testing.T) {
	Convey("The progress observer sees every observable change", t, func() {
		viper.Set(key.GateRequiredSeconds, 3)
		viper.Set(key.GateGraceDelaySeconds, 3)
		viper.Set(key.GateFallbackAutostart, false)

		var snaps []Snapshot
		c := NewController(func(s Snapshot) { snaps = append(snaps, s) })

		c.Open(testOrigin)
		c.HandleNotification(stateChange(yt.StatePlaying))
		advance(c, 3)
		c.Close()

		So(len(snaps), ShouldBeGreaterThanOrEqualTo, 5)
		last := snaps[len(snaps)-1]
		So(last.State, ShouldEqual, Closed)

		unlocked := snaps[len(snaps)-2]
		So(unlocked.Unlocked, ShouldBeTrue)
		So(unlocked.Remaining, ShouldEqual, 0)
	})
}
