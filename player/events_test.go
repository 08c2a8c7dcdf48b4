package player

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeIPC emulates the mpv JSON-IPC socket. Connections that send a command
// get an immediate success response; the connection that stays silent is the
// event stream and receives whatever is pushed through events.
type fakeIPC struct {
	path     string
	listener net.Listener
	events   chan string
	once     sync.Once
}

func newFakeIPC() (*fakeIPC, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("filmschool-fake-%d.sock", time.Now().UnixNano()))
	l, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}

	f := &fakeIPC{path: path, listener: l, events: make(chan string, 8)}
	go f.serve()
	return f, nil
}

func (f *fakeIPC) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeIPC) handle(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, 256)
	_ = conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if n, err := conn.Read(buf); err == nil && n > 0 {
		_, _ = conn.Write([]byte(`{"error":"success"}` + "\n"))
		return
	}

	for line := range f.events {
		if _, err := conn.Write([]byte(line + "\n")); err != nil {
			return
		}
	}
}

func (f *fakeIPC) shutdown() {
	f.once.Do(func() {
		close(f.events)
		f.listener.Close()
		os.Remove(f.path)
	})
}

const pauseFlip = `{"event":"property-change","id":1,"name":"pause","data":false}`

func TestEventListenerStop(t *testing.T) {
	Convey("Given a listener attached to a live socket", t, func() {
		ipc, err := newFakeIPC()
		So(err, ShouldBeNil)
		defer ipc.shutdown()

		entered := make(chan struct{}, 1)
		release := make(chan struct{})

		el := NewEventListener(ipc.path, func(property string, data interface{}) {
			select {
			case entered <- struct{}{}:
			default:
			}
			<-release
		})
		So(el.Start(), ShouldBeNil)

		ipc.events <- pauseFlip

		arrived := false
		select {
		case <-entered:
			arrived = true
		case <-time.After(2 * time.Second):
		}
		So(arrived, ShouldBeTrue)

		Convey("Stop blocks until the in-flight dispatch returns", func() {
			stopped := make(chan struct{})
			go func() {
				el.Stop()
				close(stopped)
			}()

			early := false
			select {
			case <-stopped:
				early = true
			case <-time.After(100 * time.Millisecond):
			}
			So(early, ShouldBeFalse)

			close(release)

			joined := false
			select {
			case <-stopped:
				joined = true
			case <-time.After(2 * time.Second):
			}
			So(joined, ShouldBeTrue)

			Convey("And a second Stop is a no-op", func() {
				el.Stop()
			})
		})
	})
}

func TestDiscardDuringEvents(t *testing.T) {
	Convey("Discard while events are streaming closes the stream cleanly", t, func() {
		ipc, err := newFakeIPC()
		So(err, ShouldBeNil)
		defer ipc.shutdown()

		m, err := NewMPV()
		So(err, ShouldBeNil)
		m.socketPath = ipc.path

		So(m.Listen(), ShouldBeNil)

		// Flood pause flips while the surface is being torn down.
		flood := make(chan struct{})
		go func() {
			defer close(flood)
			for i := 0; i < 50; i++ {
				select {
				case ipc.events <- pauseFlip:
				case <-time.After(10 * time.Millisecond):
					return
				}
			}
		}()

		So(m.Discard(), ShouldBeNil)

		// The stream must terminate; a late emit would panic instead.
		for range m.Notifications() {
		}
		<-flood
	})
}

func TestIsTimeout(t *testing.T) {
	Convey("An expired read deadline is a timeout", t, func() {
		client, server := net.Pipe()
		defer client.Close()
		defer server.Close()

		So(client.SetReadDeadline(time.Now().Add(time.Millisecond)), ShouldBeNil)
		_, err := client.Read(make([]byte, 1))
		So(err, ShouldNotBeNil)
		So(isTimeout(err), ShouldBeTrue)
	})

	Convey("Other errors are not", t, func() {
		So(isTimeout(errors.New("connection reset")), ShouldBeFalse)
		So(isTimeout(fmt.Errorf("read: %w", os.ErrClosed)), ShouldBeFalse)
	})
}
