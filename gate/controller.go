package gate

import (
	"sync"
	"time"

	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/filmschoolyt/filmschoolyt/yt"
	"github.com/spf13/viper"
)

// State describes where the controller is in a viewing session's lifecycle.
type State int

const (
	// Closed means no viewing session is active.
	Closed State = iota

	// LockedIdle means a session is open but playback has not started counting.
	LockedIdle

	// LockedRunning means playback is active and seconds are accumulating.
	LockedRunning

	// Unlocked means the threshold was met. Terminal for the session: no
	// later pause, end or replay relocks the gate.
	Unlocked
)

func (s State) String() string {
	switch s {
	case LockedIdle:
		return "locked·idle"
	case LockedRunning:
		return "locked·running"
	case Unlocked:
		return "unlocked"
	default:
		return "closed"
	}
}

// Snapshot is an immutable view of session progress handed to observers.
type Snapshot struct {
	State       State
	Accumulated int
	Required    int
	Remaining   int
	Unlocked    bool
}

// Controller owns the lifecycle of one viewing session: it consumes adapter
// signals, drives the engagement timer, and exposes the single externally
// observable fact: is the gate unlocked.
//
// Every anomaly degrades to "gate remains locked"; there are no fatal states.
type Controller struct {
	mu sync.Mutex

	state       State
	accumulated int
	playing     bool

	required int
	grace    time.Duration
	fallback bool

	// gen tags the current session; ticks and grace expirations carrying a
	// stale generation are discarded so a previous session can never leak
	// progress into a new one.
	gen uint64

	adapter    *Adapter
	timer      *Timer
	graceTimer *time.Timer

	onProgress func(Snapshot)
}

// NewController creates a closed controller configured from the active settings.
// onProgress is invoked after every observable change; it may be nil.
func NewController(onProgress func(Snapshot)) *Controller {
	return &Controller{
		required:   viper.GetInt(key.GateRequiredSeconds),
		grace:      time.Duration(viper.GetInt(key.GateGraceDelaySeconds)) * time.Second,
		fallback:   viper.GetBool(key.GateFallbackAutostart),
		onProgress: onProgress,
	}
}

// Open starts a fresh viewing session bound to the given player origin.
// Any prior session is torn down unconditionally with no carry-over.
func (c *Controller) Open(origin string) {
	c.mu.Lock()
	c.teardownLocked()

	c.gen++
	gen := c.gen

	c.state = LockedIdle
	c.adapter = NewAdapter(origin)
	c.timer = NewTimer(func() { c.tick(gen) })

	if c.fallback {
		// Tolerates players that never emit an explicit ready/playing event:
		// if the session is still idle when the grace delay expires, proceed
		// as if a playing signal had arrived.
		c.graceTimer = time.AfterFunc(c.grace, func() { c.autoStart(gen) })
	}

	log.Infof("gate opened for %s (threshold %s)", origin, util.Quantify(c.required, "second", "seconds"))

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// Close ends the session and resets every field. Idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.state == Closed {
		c.mu.Unlock()
		return
	}

	c.gen++ // Invalidate pending ticks and the grace expiration.
	c.teardownLocked()

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// HandleNotification consumes one raw player notification.
// Notifications arriving while closed, from untrusted origins, or with
// unrecognized shapes are silently discarded.
func (c *Controller) HandleNotification(n yt.Notification) {
	c.mu.Lock()
	if c.state == Closed || c.adapter == nil {
		c.mu.Unlock()
		return
	}

	sig := c.adapter.Translate(n)
	changed := c.applyLocked(sig)

	snap := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.emit(snap)
	}
}

// Snapshot returns the current observable session progress.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Unlocked reports whether the threshold has been met this session.
func (c *Controller) Unlocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Unlocked
}

// Remaining returns the seconds still required to unlock, clamped at zero.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return util.Max(0, c.required-c.accumulated)
}

func (c *Controller) applyLocked(sig Signal) bool {
	switch sig {
	case Playing:
		c.playing = true
		if c.state != LockedIdle {
			// Duplicate playing while running is a no-op; unlocked is terminal.
			return false
		}
		c.stopGraceLocked()
		c.timer.Start()
		c.state = LockedRunning
		log.Debug("gate counting started")
		return true

	case Paused, Ended:
		c.playing = false
		if c.state != LockedRunning {
			return false
		}
		c.timer.Stop()
		c.state = LockedIdle
		log.Debugf("gate counting stopped at %d/%d", c.accumulated, c.required)
		return true

	default:
		return false
	}
}

// tick is invoked by the engagement timer once per period. The generation
// check discards ticks scheduled by a session that has since been replaced;
// the state check guarantees a tick racing a pause observes the pause first.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != LockedRunning || !c.playing {
		c.mu.Unlock()
		return
	}

	c.accumulated++
	if c.accumulated >= c.required {
		c.timer.Stop()
		c.stopGraceLocked()
		c.state = Unlocked
		log.Infof("gate unlocked after %s", util.Quantify(c.accumulated, "second", "seconds"))
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// autoStart is the grace-delay fallback expiration.
func (c *Controller) autoStart(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != LockedIdle {
		c.mu.Unlock()
		return
	}

	c.playing = true
	c.timer.Start()
	c.state = LockedRunning
	log.Debug("gate counting started by grace fallback")

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

func (c *Controller) teardownLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.stopGraceLocked()
	c.adapter = nil
	c.state = Closed
	c.accumulated = 0
	c.playing = false
}

func (c *Controller) stopGraceLocked() {
	if c.graceTimer != nil {
		c.graceTimer.Stop()
		c.graceTimer = nil
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:       c.state,
		Accumulated: c.accumulated,
		Required:    c.required,
		Remaining:   util.Max(0, c.required-c.accumulated),
		Unlocked:    c.state == Unlocked,
	}
}

func (c *Controller) emit(snap Snapshot) {
	if c.onProgress != nil {
		c.onProgress(snap)
	}
}
