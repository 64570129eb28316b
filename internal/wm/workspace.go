package wm

import (
	"github.com/1broseidon/stackwm/internal/stack"
	"github.com/BurntSushi/xgb/xproto"
)

// Workspace is a named group of windows with a single focused window.
// The windows live in a focus-tracking stack; a workspace with no
// windows holds a nil stack, since the stack itself cannot be empty.
type Workspace struct {
	Name    string
	Layout  string
	windows *stack.Stack[xproto.Window]
}

// NewWorkspace creates an empty workspace using the given layout.
func NewWorkspace(name, layout string) *Workspace {
	return &Workspace{Name: name, Layout: layout}
}

// Len reports the number of windows on the workspace.
func (w *Workspace) Len() int {
	if w.windows == nil {
		return 0
	}
	return w.windows.Len()
}

// IsEmpty reports whether the workspace holds no windows.
func (w *Workspace) IsEmpty() bool {
	return w.windows == nil
}

// Focused returns the focused window, if any.
func (w *Workspace) Focused() (xproto.Window, bool) {
	if w.windows == nil {
		return 0, false
	}
	return w.windows.Focused(), true
}

// Windows returns the workspace's windows in stack order, head first.
// The head is the main window for layout purposes.
func (w *Workspace) Windows() []xproto.Window {
	if w.windows == nil {
		return nil
	}
	return w.windows.Flatten()
}

// Contains reports whether the window is on this workspace.
func (w *Workspace) Contains(id xproto.Window) bool {
	return w.windows != nil && stack.Contains(w.windows, id)
}

// Add inserts a window at the focus point, pushing the previously
// focused window down the stack.
func (w *Workspace) Add(id xproto.Window) {
	w.AddAt(stack.Focus, id)
}

// AddAt inserts a window at the given stack position. The first window
// added to an empty workspace becomes the focus regardless of pos.
func (w *Workspace) AddAt(pos stack.Position, id xproto.Window) {
	if w.windows == nil {
		w.windows = stack.Of(id)
		return
	}
	w.windows.InsertAt(pos, id)
}

// Remove drops a window from the workspace, reporting whether it was
// present. Focus moves to the nearest remaining window when the
// focused window is removed.
func (w *Workspace) Remove(id xproto.Window) bool {
	if w.windows == nil {
		return false
	}
	_, found, rest := stack.Remove(w.windows, id)
	w.windows = rest
	return found
}

// FocusNext moves focus to the next window, wrapping at the end.
func (w *Workspace) FocusNext() {
	if w.windows != nil {
		w.windows.FocusDown()
	}
}

// FocusPrev moves focus to the previous window, wrapping at the head.
func (w *Workspace) FocusPrev() {
	if w.windows != nil {
		w.windows.FocusUp()
	}
}

// SwapNext exchanges the focused window with its successor.
func (w *Workspace) SwapNext() {
	if w.windows != nil {
		w.windows.SwapDown()
	}
}

// SwapPrev exchanges the focused window with its predecessor.
func (w *Workspace) SwapPrev() {
	if w.windows != nil {
		w.windows.SwapUp()
	}
}

// RotateNext rotates every window back one position in the stack.
func (w *Workspace) RotateNext() {
	if w.windows != nil {
		w.windows.RotateDown()
	}
}

// RotatePrev rotates every window forward one position in the stack.
func (w *Workspace) RotatePrev() {
	if w.windows != nil {
		w.windows.RotateUp()
	}
}

// Promote swaps the focused window into the main (head) position,
// keeping focus on it. Focusing an interesting window and promoting it
// is the usual way to change the main window of a layout.
func (w *Workspace) Promote() {
	if w.windows != nil {
		w.windows.SwapFocusAndHead()
	}
}

// FocusWindow moves focus to the given window if it is present;
// otherwise the workspace is left unchanged.
func (w *Workspace) FocusWindow(id xproto.Window) {
	if w.windows != nil {
		stack.FocusElement(w.windows, id)
	}
}

// Prune drops every window for which alive reports false.
func (w *Workspace) Prune(alive func(xproto.Window) bool) {
	if w.windows != nil {
		w.windows = w.windows.Filter(alive)
	}
}
