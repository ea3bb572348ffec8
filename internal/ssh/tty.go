package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// RemoteTty adapts a gliderlabs/ssh session into a tcell.Tty so each
// connected client can drive its own tcell.Screen over the wire.
type RemoteTty struct {
	session gossh.Session

	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	onSize func()
}

// NewRemoteTty wraps an SSH session as a tcell Tty. pty carries the initial
// window size; winCh delivers resize events for the session's lifetime.
func NewRemoteTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *RemoteTty {
	return &RemoteTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read pulls raw keyboard bytes from the client.
func (t *RemoteTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write pushes rendered output to the client.
func (t *RemoteTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the underlying SSH channel.
func (t *RemoteTty) Close() error { return t.session.Close() }

// Start and Stop are no-ops: the SSH channel is already open and is torn
// down by the server handler, not by tcell.
func (t *RemoteTty) Start() error { return nil }
func (t *RemoteTty) Stop() error  { return nil }

// Drain is a no-op; SSH writes are not buffered on our side.
func (t *RemoteTty) Drain() error { return nil }

// WindowSize returns the client's current terminal dimensions.
func (t *RemoteTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers tcell's resize callback and starts draining the
// window-change channel for the lifetime of the session.
func (t *RemoteTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			fn := t.onSize
			t.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}()
}
