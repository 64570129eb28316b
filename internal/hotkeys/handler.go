// Package hotkeys registers global key bindings and dispatches them to
// named actions. Callbacks run on the X event loop goroutine, so the
// manager state they mutate needs no locking.
package hotkeys

import (
	"fmt"
	"sync"

	"github.com/1broseidon/stackwm/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Handler manages global keyboard shortcuts.
type Handler struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

var ignoreModsOnce sync.Once

// NewHandler creates a hotkey handler bound to the root window.
func NewHandler(conn *x11.Connection) *Handler {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(conn.XUtil)
	})

	return &Handler{
		xu:   conn.XUtil,
		root: conn.Root,
	}
}

// RegisterAll binds every action in bindings to its key sequence.
// Unknown sequences fail with the offending action named.
func (h *Handler) RegisterAll(bindings map[string]string, actions map[string]func()) error {
	for action, seq := range bindings {
		callback, ok := actions[action]
		if !ok {
			return fmt.Errorf("no handler for action %q", action)
		}
		if err := h.RegisterFunc(seq, callback); err != nil {
			return fmt.Errorf("failed to bind %q to %s: %w", action, seq, err)
		}
	}
	return nil
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

// configureIgnoreMods makes bindings fire regardless of the CapsLock
// and NumLock state.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	caps := uint16(xproto.ModMaskLock)
	numLock := modMaskForKeysym(xu, "Num_Lock")

	ignore := []uint16{0, caps}
	if numLock != 0 && numLock != caps {
		ignore = append(ignore, numLock, numLock|caps)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
