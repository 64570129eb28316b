package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// MoveResizeWindow moves and resizes a window to the given geometry.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	xwindow.New(c.XUtil, windowID).MoveResize(x, y, width, height)
	return nil
}

// MapWindow makes a window visible.
func (c *Connection) MapWindow(windowID xproto.Window) {
	xwindow.New(c.XUtil, windowID).Map()
}

// UnmapWindow hides a window without destroying it, used when its
// workspace is not the current one.
func (c *Connection) UnmapWindow(windowID xproto.Window) {
	xwindow.New(c.XUtil, windowID).Unmap()
}

// FocusWindow gives a window input focus and advertises it as the
// active window.
func (c *Connection) FocusWindow(windowID xproto.Window) error {
	// Focus reverts to the parent if the window goes away, so a dying
	// window cannot strand the input focus.
	err := xproto.SetInputFocusChecked(
		c.XUtil.Conn(),
		xproto.InputFocusParent,
		windowID,
		xproto.TimeCurrentTime,
	).Check()
	if err != nil {
		return err
	}

	return ewmh.ActiveWindowSet(c.XUtil, windowID)
}

// SetBorder applies a border width and color to a window.
func (c *Connection) SetBorder(windowID xproto.Window, width int, color uint32) error {
	err := xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(width)},
	).Check()
	if err != nil {
		return err
	}

	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.CwBorderPixel,
		[]uint32{color},
	).Check()
}

// CloseWindow asks a window to close via the EWMH protocol.
func (c *Connection) CloseWindow(windowID xproto.Window) error {
	return ewmh.CloseWindow(c.XUtil, windowID)
}

// WindowClass returns the WM_CLASS class name of a window, or "" when
// the property is unreadable.
func (c *Connection) WindowClass(windowID xproto.Window) string {
	class, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return ""
	}
	return class.Class
}

// WindowExists reports whether a window id still names a live window.
func (c *Connection) WindowExists(windowID xproto.Window) bool {
	_, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	return err == nil
}

// IsNormalWindow reports whether a window is an ordinary application
// window rather than a dock, splash screen or notification.
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// Windows without the property are treated as normal.
		return true
	}

	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}

	return len(types) == 0
}

// MappedClients returns the normal application windows the server
// currently knows about, in EWMH client-list order.
func (c *Connection) MappedClients() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, err
	}

	normal := make([]xproto.Window, 0, len(clients))
	for _, win := range clients {
		if c.IsNormalWindow(win) {
			normal = append(normal, win)
		}
	}
	return normal, nil
}
