package player

import (
	"github.com/filmschoolyt/filmschoolyt/yt"
)

// bridge translates raw mpv property changes into embed-style notifications.
//
// Mapping:
//
//	pause=false   → onStateChange playing
//	pause=true    → onStateChange paused
//	eof-reached   → onStateChange ended
//	seeking=true  → onStateChange buffering
//	idle-active   → onStateChange cued
//	file-loaded   → onReady
//
// Buffering and cued are forwarded as well; the gate adapter discards them.
func (m *MPV) bridge(property string, data interface{}) {
	switch property {
	case "pause":
		paused, ok := data.(bool)
		if !ok {
			return
		}
		code := yt.StatePlaying
		if paused {
			code = yt.StatePaused
		}
		m.emitState(code)

	case "eof-reached":
		if reached, ok := data.(bool); ok && reached {
			m.emitState(yt.StateEnded)
		}

	case "seeking":
		if seeking, ok := data.(bool); ok && seeking {
			m.emitState(yt.StateBuffering)
		}

	case "idle-active":
		if idle, ok := data.(bool); ok && idle {
			m.emitState(yt.StateCued)
		}

	case "file-loaded":
		m.emit(yt.Notification{Origin: m.Origin(), Event: yt.EventReady})
	}
}

func (m *MPV) emitState(code int) {
	m.emit(yt.Notification{
		Origin: m.Origin(),
		Event:  yt.EventStateChange,
		Info:   code,
	})
}
