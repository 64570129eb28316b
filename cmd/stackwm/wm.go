package main

import (
	"log/slog"

	"github.com/1broseidon/stackwm/internal/config"
	"github.com/1broseidon/stackwm/internal/hotkeys"
	"github.com/1broseidon/stackwm/internal/layout"
	"github.com/1broseidon/stackwm/internal/wm"
	"github.com/1broseidon/stackwm/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
)

// windowManager ties the pure manager state to the X connection. All
// methods run on the X event loop goroutine.
type windowManager struct {
	conn    *x11.Connection
	manager *wm.Manager
	cfg     *config.Config
	logger  *slog.Logger
}

// adoptExisting manages windows that were already mapped when stackwm
// started, in the order the server reports them.
func (w *windowManager) adoptExisting() {
	clients, err := w.conn.MappedClients()
	if err != nil {
		w.logger.Warn("failed to list existing clients", "error", err)
		return
	}

	for _, win := range clients {
		w.manage(win)
	}
	w.retile()
}

func (w *windowManager) registerEvents() {
	xevent.MapRequestFun(func(xu *xgbutil.XUtil, ev xevent.MapRequestEvent) {
		w.onMapRequest(ev.Window)
	}).Connect(w.conn.XUtil, w.conn.Root)

	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
		w.onDestroy(ev.Window)
	}).Connect(w.conn.XUtil, w.conn.Root)

	xevent.UnmapNotifyFun(func(xu *xgbutil.XUtil, ev xevent.UnmapNotifyEvent) {
		// Unmaps caused by workspace switches concern windows we still
		// manage on a hidden workspace; only prune windows that are gone.
		if !w.conn.WindowExists(ev.Window) {
			w.onDestroy(ev.Window)
		}
	}).Connect(w.conn.XUtil, w.conn.Root)
}

func (w *windowManager) registerHotkeys() error {
	handler := hotkeys.NewHandler(w.conn)

	actions := map[string]func(){
		config.ActionFocusNext:     w.withRetile(func() { w.manager.Current().FocusNext() }),
		config.ActionFocusPrev:     w.withRetile(func() { w.manager.Current().FocusPrev() }),
		config.ActionSwapNext:      w.withRetile(func() { w.manager.Current().SwapNext() }),
		config.ActionSwapPrev:      w.withRetile(func() { w.manager.Current().SwapPrev() }),
		config.ActionRotateNext:    w.withRetile(func() { w.manager.Current().RotateNext() }),
		config.ActionRotatePrev:    w.withRetile(func() { w.manager.Current().RotatePrev() }),
		config.ActionPromote:       w.withRetile(func() { w.manager.Current().Promote() }),
		config.ActionNextWorkspace: w.withRetile(func() { w.manager.NextWorkspace() }),
		config.ActionPrevWorkspace: w.withRetile(func() { w.manager.PrevWorkspace() }),
		config.ActionMoveNext:      w.withRetile(func() { w.manager.MoveFocusedNext() }),
		config.ActionMovePrev:      w.withRetile(func() { w.manager.MoveFocusedPrev() }),
		config.ActionCloseWindow:   w.closeFocused,
		config.ActionQuit:          w.conn.Quit,
	}

	return handler.RegisterAll(w.cfg.Keybindings, actions)
}

func (w *windowManager) withRetile(action func()) func() {
	return func() {
		action()
		w.retile()
	}
}

func (w *windowManager) onMapRequest(win xproto.Window) {
	if !w.conn.IsNormalWindow(win) {
		// Docks and splashes map themselves and stay untiled.
		w.conn.MapWindow(win)
		return
	}

	w.manage(win)
	w.conn.MapWindow(win)
	w.retile()
}

func (w *windowManager) onDestroy(win xproto.Window) {
	if !w.manager.Unmanage(win) {
		return
	}
	w.logger.Debug("unmanaged window", "window", win)
	w.retile()
}

func (w *windowManager) manage(win xproto.Window) {
	client := wm.NewClient(win, w.conn.WindowClass(win), w.cfg.Border.Width, false)
	w.manager.Manage(client)
	w.logger.Info("managed window", "window", win, "class", client.Class)
}

func (w *windowManager) closeFocused() {
	id, ok := w.manager.Current().Focused()
	if !ok {
		return
	}
	if err := w.conn.CloseWindow(id); err != nil {
		w.logger.Warn("failed to close window", "window", id, "error", err)
	}
}

// retile recomputes geometry for the current workspace, hides windows
// on other workspaces, and applies focus and borders.
func (w *windowManager) retile() {
	// Drop windows that vanished without a destroy notification.
	w.manager.Prune(w.conn.WindowExists)

	current := w.manager.Current()
	windows := current.Windows()

	width, height := w.conn.RootGeometry()
	region := layout.Rect{Width: width, Height: height}

	positions, err := layout.Apply(current.Layout, len(windows), region, w.cfg.MainRatio, w.cfg.GapSize)
	if err != nil {
		w.logger.Error("layout failed", "layout", current.Layout, "error", err)
		return
	}

	for i, win := range windows {
		pos := positions[i]
		if err := w.conn.MoveResizeWindow(win, pos.X, pos.Y, pos.Width, pos.Height); err != nil {
			w.logger.Warn("failed to place window", "window", win, "error", err)
		}
		w.conn.MapWindow(win)
	}

	for _, name := range w.manager.WorkspaceNames() {
		if name == current.Name {
			continue
		}
		ws, _ := w.manager.Workspace(name)
		for _, win := range ws.Windows() {
			w.conn.UnmapWindow(win)
		}
	}

	w.applyFocus()
}

// applyFocus sets input focus and borders to match the manager state.
func (w *windowManager) applyFocus() {
	focused, ok := w.manager.Current().Focused()
	if !ok {
		return
	}

	for _, win := range w.manager.Current().Windows() {
		color := w.cfg.Border.Unfocused
		if win == focused {
			color = w.cfg.Border.Focused
		}
		if err := w.conn.SetBorder(win, w.cfg.Border.Width, color); err != nil {
			w.logger.Warn("failed to set border", "window", win, "error", err)
		}
	}

	if err := w.conn.FocusWindow(focused); err != nil {
		w.logger.Warn("failed to focus window", "window", focused, "error", err)
	}
}
