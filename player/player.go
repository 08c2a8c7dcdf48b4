// Package player implements the embedded player surface over mpv's JSON-IPC protocol.
//
// The gate core treats the player as an opaque embed: it loads a video,
// receives asynchronous origin-tagged notifications, and can only stop
// playback by discarding the handle. mpv's property observers provide the
// raw events that the bridge translates into the notification protocol.
package player

import (
	"fmt"

	"github.com/filmschoolyt/filmschoolyt/gate"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/spf13/viper"
)

// Embed is a playback engine usable as a gate surface.
type Embed interface {
	gate.Surface

	// TogglePause inverts the current playback suspension state.
	TogglePause() error

	// IsRunning validates the liveness of the underlying playback process.
	IsRunning() bool
}

// New creates the configured playback engine.
func New() (Embed, error) {
	switch name := viper.GetString(key.Player); name {
	case "mpv", "":
		return NewMPV()
	default:
		return nil, fmt.Errorf("unsupported player %q (only mpv is supported)", name)
	}
}
