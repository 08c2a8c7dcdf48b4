package gate

import (
	"sync"
	"time"
)

// tickPeriod is the fixed engagement accounting granularity.
const tickPeriod = time.Second

// Timer drives the engagement accumulator with a recurring 1-second tick.
//
// Start and Stop are idempotent: multiple independent triggers (the grace
// fallback and real playback signals) may request a start around the same
// moment, and a double start must never double-schedule.
type Timer struct {
	mu     sync.Mutex
	stop   chan struct{}
	onTick func()
	period time.Duration
}

// NewTimer creates a stopped timer that invokes onTick once per period.
func NewTimer(onTick func()) *Timer {
	return &Timer{
		onTick: onTick,
		period: tickPeriod,
	}
}

// Start schedules the recurring tick. No-op if already running.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		return
	}

	stop := make(chan struct{})
	t.stop = stop
	go t.loop(stop)
}

// Stop cancels the scheduled tick. No-op if not running.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop == nil {
		return
	}

	close(t.stop)
	t.stop = nil
}

// Running reports whether a tick is currently scheduled.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *Timer) loop(stop chan struct{}) {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.onTick()
		}
	}
}
