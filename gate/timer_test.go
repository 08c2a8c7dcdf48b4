package gate

import (
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTimerIdempotence(t *testing.T) {
	Convey("Engagement timer", t, func() {
		var ticks atomic.Int64
		timer := NewTimer(func() { ticks.Add(1) })
		timer.period = 10 * time.Millisecond

		Convey("Double start yields exactly one schedule", func() {
			timer.Start()
			timer.Start()
			So(timer.Running(), ShouldBeTrue)

			time.Sleep(105 * time.Millisecond)
			timer.Stop()

			got := ticks.Load()
			// One schedule at 10ms over ~105ms: well under the 20+
			// a duplicated schedule would produce.
			So(got, ShouldBeGreaterThanOrEqualTo, 5)
			So(got, ShouldBeLessThanOrEqualTo, 15)
		})

		Convey("Double stop is safe", func() {
			timer.Start()
			timer.Stop()
			timer.Stop()
			So(timer.Running(), ShouldBeFalse)
		})

		Convey("Stop before start is safe", func() {
			timer.Stop()
			So(timer.Running(), ShouldBeFalse)
		})

		Convey("No ticks arrive after stop", func() {
			timer.Start()
			time.Sleep(35 * time.Millisecond)
			timer.Stop()

			settled := ticks.Load()
			time.Sleep(50 * time.Millisecond)
			So(ticks.Load(), ShouldEqual, settled)
		})
	})
}
