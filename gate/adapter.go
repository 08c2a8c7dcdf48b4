package gate

import (
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/yt"
)

// Adapter normalizes origin-scoped player notifications into Signals.
//
// Notifications from any origin other than the one the adapter was bound to
// are discarded without state change. The ready signal is emitted at most
// once per adapter; repeats collapse to Ignored.
type Adapter struct {
	origin string
	ready  bool
}

// NewAdapter binds an adapter to the trusted origin of one player surface.
func NewAdapter(origin string) *Adapter {
	return &Adapter{origin: origin}
}

// Origin returns the trusted origin the adapter accepts notifications from.
func (a *Adapter) Origin() string {
	return a.origin
}

// Ready reports whether the bound surface has announced readiness.
func (a *Adapter) Ready() bool {
	return a.ready
}

// Translate maps a raw notification to a Signal.
func (a *Adapter) Translate(n yt.Notification) Signal {
	if n.Origin != a.origin {
		log.Debugf("discarding notification from untrusted origin %q", n.Origin)
		return Ignored
	}

	switch n.Event {
	case yt.EventReady:
		if a.ready {
			return Ignored
		}
		a.ready = true
		return Ready

	case yt.EventStateChange:
		switch n.Info {
		case yt.StatePlaying:
			return Playing
		case yt.StatePaused:
			return Paused
		case yt.StateEnded:
			return Ended
		default:
			// Buffering, cued and unstarted produce no signal transition.
			return Ignored
		}

	default:
		return Ignored
	}
}
