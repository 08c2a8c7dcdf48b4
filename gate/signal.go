// Package gate implements the watch-time gating state machine: a lesson's
// resource link stays locked until enough seconds of actively playing video
// have accumulated in the current viewing session.
package gate

// Signal is a normalized playback state derived from untrusted player notifications.
type Signal int

const (
	// Ignored is emitted for untrusted, malformed or irrelevant notifications.
	Ignored Signal = iota

	// Ready means the player surface reported itself operational.
	Ready

	// Playing means active playback. Only this signal lets the accumulator grow.
	Playing

	// Paused means playback was explicitly paused.
	Paused

	// Ended means playback ran to completion.
	Ended
)

func (s Signal) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "ignored"
	}
}
