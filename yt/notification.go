// Package yt models the embedded-player notification protocol and the
// YouTube metadata endpoints used to describe lesson videos.
package yt

// Player event names carried by notifications.
const (
	EventReady       = "onReady"
	EventStateChange = "onStateChange"
	EventError       = "onError"
)

// Playback state codes carried by onStateChange notifications.
// The numbering follows the embedded iframe player convention.
const (
	StateUnstarted = -1
	StateEnded     = 0
	StatePlaying   = 1
	StatePaused    = 2
	StateBuffering = 3
	StateCued      = 5
)

// Notification is a single asynchronous message emitted by a player surface.
//
// Origin identifies the emitting surface instance. Consumers must discard
// notifications whose origin does not match the surface they are bound to:
// a discarded surface keeps draining its pipe for a short while after
// replacement, and its messages must not leak into the new session.
type Notification struct {
	Origin string `json:"origin"`
	Event  string `json:"event"`
	Info   int    `json:"info"`
}

// IsState reports whether the notification is a state change carrying the given code.
func (n Notification) IsState(code int) bool {
	return n.Event == EventStateChange && n.Info == code
}

// StateName returns a human-readable label for a playback state code.
func StateName(code int) string {
	switch code {
	case StateUnstarted:
		return "unstarted"
	case StateEnded:
		return "ended"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateBuffering:
		return "buffering"
	case StateCued:
		return "cued"
	default:
		return "unknown"
	}
}
