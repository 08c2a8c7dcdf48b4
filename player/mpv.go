package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/yt"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV drives one mpv process over its JSON-IPC socket and exposes it as an
// embedded player surface. The socket path doubles as the surface origin, so
// notifications from a discarded instance can never be mistaken for the
// current one.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when the mpv process exits
	notif      chan yt.Notification
	listener   *EventListener

	mu          sync.Mutex // protects socket writes
	discardOnce sync.Once
}

// NewMPV creates a new MPV surface (does not start playback).
func NewMPV() (*MPV, error) {
	// Random socket path using os.TempDir() for cross-platform support
	// (macOS $TMPDIR is /var/folders/... not /tmp/).
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, fmt.Errorf("generate socket name: %w", err)
	}

	return &MPV{
		socketPath: filepath.Join(os.TempDir(), fmt.Sprintf("filmschool-%x.sock", randomBytes)),
		exited:     make(chan struct{}),
		notif:      make(chan yt.Notification, 32),
	}, nil
}

// Origin returns the origin tag stamped on this surface's notifications.
func (m *MPV) Origin() string {
	return "mpv://" + m.socketPath
}

// Load starts mpv pointed at the lesson's watch URL.
func (m *MPV) Load(videoID string) error {
	if !yt.ValidID(videoID) {
		return fmt.Errorf("invalid video id %q", videoID)
	}

	// Pass ONLY what we need; respect the user's mpv.conf for everything else.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--force-window=yes",
		"--idle=yes",
		yt.WatchURL(videoID),
	}

	m.cmd = exec.Command("mpv", args...)

	// Detach from the parent process group to prevent cascading shell panics.
	m.cmd.SysProcAttr = sysProcAttr()

	// Disable standard pipes to prevent resource leaks.
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	// Reap the process in the background to prevent zombies.
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		// If the socket never became ready, kill the orphaned process.
		if m.cmd.Process != nil {
			select {
			case <-m.exited:
				// Already exited
			default:
				log.Warnf("killing mpv: socket never became ready")
				_ = m.cmd.Process.Kill()
			}
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

// Listen starts the property observer bridge and announces readiness.
// Fire-and-forget from the core's perspective: if it fails, no notifications
// arrive and the gate stays locked.
func (m *MPV) Listen() error {
	listener := NewEventListener(m.socketPath, m.bridge)
	if err := listener.Start(); err != nil {
		return err
	}
	m.listener = listener

	m.emit(yt.Notification{Origin: m.Origin(), Event: yt.EventReady})

	// Report the initial playback state so a session that attaches to an
	// already-playing instance starts counting immediately.
	if paused, err := m.GetPausedStatus(); err == nil {
		code := yt.StatePlaying
		if paused {
			code = yt.StatePaused
		}
		m.emit(yt.Notification{Origin: m.Origin(), Event: yt.EventStateChange, Info: code})
	}

	return nil
}

// Notifications returns the surface's asynchronous notification stream.
func (m *MPV) Notifications() <-chan yt.Notification {
	return m.notif
}

// Discard force-stops playback by throwing the whole instance away:
// quit the process (killing it if necessary), remove the socket, close the
// notification stream. Idempotent.
func (m *MPV) Discard() error {
	m.discardOnce.Do(func() {
		// Join the listener first: once Stop returns, no bridge callback
		// can emit into the stream we are about to close.
		if m.listener != nil {
			m.listener.Stop()
		}

		if m.cmd != nil {
			// Try a graceful quit via IPC first.
			_, _ = m.sendCommand([]interface{}{"quit"})

			select {
			case <-m.exited:
				// Clean exit
			case <-time.After(3 * time.Second):
				_ = killProcess(m.cmd)
			}
		}

		_ = os.Remove(m.socketPath)
		close(m.notif)
	})
	return nil
}

// TogglePause inverts the current playback suspension state.
func (m *MPV) TogglePause() error {
	_, err := m.sendCommand([]interface{}{"cycle", "pause"})
	return err
}

// GetPausedStatus returns whether playback is currently paused.
func (m *MPV) GetPausedStatus() (bool, error) {
	data, err := m.sendCommand([]interface{}{"get_property", "pause"})
	if err != nil {
		return false, err
	}
	paused, ok := data.(bool)
	if !ok {
		return false, nil
	}
	return paused, nil
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	if m.cmd == nil {
		return false
	}

	// Fast check: process already exited?
	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]interface{}{"get_property", "pid"})
	return err == nil
}

// emit pushes a notification without ever blocking the observer goroutine.
func (m *MPV) emit(n yt.Notification) {
	select {
	case m.notif <- n:
	default:
		log.Warnf("dropping player notification %s: consumer not keeping up", n.Event)
	}
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}
