package gate

import (
	"sync"

	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/filmschoolyt/filmschoolyt/yt"
)

// Surface is an embedded player instance as seen by the gate core.
//
// Discard is the sole stop primitive: the only reliable way to stop an opaque
// embed is to throw away its loaded handle and recreate it later.
type Surface interface {
	// Origin returns the trusted origin tag stamped on this surface's notifications.
	Origin() string

	// Load points the surface at a video and requests state notifications.
	Load(videoID string) error

	// Listen sends the fire-and-forget handshake that makes the surface begin
	// emitting state notifications. No acknowledgment is required: a lost
	// handshake means no signals arrive and the gate simply stays locked.
	Listen() error

	// Notifications returns the surface's asynchronous notification stream.
	Notifications() <-chan yt.Notification

	// Discard stops playback by throwing the loaded handle away.
	Discard() error
}

// Session binds one player surface to the gate controller for the lifetime
// of a single opened lesson.
type Session struct {
	ctrl    *Controller
	surface Surface

	done      chan struct{}
	closeOnce sync.Once
}

// NewSession pairs a controller with a player surface.
func NewSession(ctrl *Controller, surface Surface) *Session {
	return &Session{
		ctrl:    ctrl,
		surface: surface,
		done:    make(chan struct{}),
	}
}

// Open loads the video, opens the gate and starts relaying notifications.
func (s *Session) Open(videoID string) error {
	if err := s.surface.Load(videoID); err != nil {
		return err
	}

	s.ctrl.Open(s.surface.Origin())
	util.Ignore(s.surface.Listen)

	go s.pump()
	return nil
}

// Controller exposes the gate controller bound to this session.
func (s *Session) Controller() *Controller {
	return s.ctrl
}

// Close resets the gate and force-stops the player by discarding its handle.
// Idempotent.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.ctrl.Close()
		err = s.surface.Discard()
		if err != nil {
			log.Warnf("discard player surface: %v", err)
		}
	})
	return err
}

func (s *Session) pump() {
	for {
		select {
		case n, ok := <-s.surface.Notifications():
			if !ok {
				return
			}
			s.ctrl.HandleNotification(n)
		case <-s.done:
			return
		}
	}
}
