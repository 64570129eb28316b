// Package x11 wraps the X server connection and the window calls the
// manager makes. Everything protocol-shaped lives here; the wm package
// never talks to X directly.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Connection manages the X11 connection and core X resources.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server and
// initializes the keybind module used for hotkeys.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// BecomeWM claims substructure redirection on the root window, which
// only one client may hold. Fails if another window manager is
// running.
func (c *Connection) BecomeWM() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify)

	err := xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		c.Root,
		xproto.CwEventMask,
		[]uint32{mask},
	).Check()
	if err != nil {
		return fmt.Errorf("another window manager appears to be running: %w", err)
	}
	return nil
}

// RootGeometry returns the usable root window area.
func (c *Connection) RootGeometry() (width, height int) {
	screen := c.XUtil.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// EventLoop starts the main X11 event loop (blocking).
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Quit asks the event loop to exit after the current event.
func (c *Connection) Quit() {
	xevent.Quit(c.XUtil)
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
