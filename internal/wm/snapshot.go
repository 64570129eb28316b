package wm

import (
	"fmt"

	"github.com/1broseidon/stackwm/internal/stack"
	"github.com/BurntSushi/xgb/xproto"
)

// WorkspaceSnapshot is the serializable form of a workspace: the three
// logical parts of its window stack written out verbatim. Focus is a
// pointer so an empty workspace round-trips as "no focus" rather than
// window id zero.
type WorkspaceSnapshot struct {
	Name   string   `yaml:"name"`
	Layout string   `yaml:"layout"`
	Up     []uint32 `yaml:"up,omitempty"`
	Focus  *uint32  `yaml:"focus,omitempty"`
	Down   []uint32 `yaml:"down,omitempty"`
}

// Snapshot is the serializable form of the whole manager state.
type Snapshot struct {
	Current    string              `yaml:"current"`
	Workspaces []WorkspaceSnapshot `yaml:"workspaces"`
}

// Snapshot captures the manager's workspace ring for persistence.
func (m *Manager) Snapshot() *Snapshot {
	snap := &Snapshot{Current: m.Current().Name}

	for ws := range m.workspaces.All() {
		wss := WorkspaceSnapshot{Name: ws.Name, Layout: ws.Layout}
		if ws.windows != nil {
			up, focus, down := ws.windows.Parts()
			wss.Up = toUint32s(up)
			f := uint32(focus)
			wss.Focus = &f
			wss.Down = toUint32s(down)
		}
		snap.Workspaces = append(snap.Workspaces, wss)
	}

	return snap
}

// FromSnapshot rebuilds a manager from a snapshot. Window metadata is
// not part of the snapshot; clients are re-registered as the windows
// are queried again on startup.
func FromSnapshot(snap *Snapshot) (*Manager, error) {
	if len(snap.Workspaces) == 0 {
		return nil, fmt.Errorf("snapshot holds no workspaces")
	}

	workspaces := make([]*Workspace, 0, len(snap.Workspaces))
	for _, wss := range snap.Workspaces {
		ws := NewWorkspace(wss.Name, wss.Layout)
		if wss.Focus != nil {
			ws.windows = stack.New(
				toWindows(wss.Up),
				xproto.Window(*wss.Focus),
				toWindows(wss.Down),
			)
		} else if len(wss.Up) > 0 || len(wss.Down) > 0 {
			return nil, fmt.Errorf("workspace %q has windows but no focus", wss.Name)
		}
		workspaces = append(workspaces, ws)
	}

	m := &Manager{
		workspaces: stack.MustFromSlice(workspaces),
		clients:    make(map[xproto.Window]*Client),
	}
	if snap.Current != "" && !m.FocusWorkspace(snap.Current) {
		return nil, fmt.Errorf("current workspace %q not in snapshot", snap.Current)
	}
	return m, nil
}

func toUint32s(ids []xproto.Window) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

func toWindows(ids []uint32) []xproto.Window {
	out := make([]xproto.Window, len(ids))
	for i, id := range ids {
		out[i] = xproto.Window(id)
	}
	return out
}
