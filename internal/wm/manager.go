package wm

import (
	"fmt"

	"github.com/1broseidon/stackwm/internal/stack"
	"github.com/BurntSushi/xgb/xproto"
)

// Manager owns the workspace ring and the client table. The ring is a
// focus-tracking stack of workspaces, so there is always exactly one
// current workspace and workspace switching is ordinary stack
// navigation.
type Manager struct {
	workspaces *stack.Stack[*Workspace]
	clients    map[xproto.Window]*Client
}

// NewManager creates a manager with one workspace per name, focusing
// the first. At least one workspace name is required.
func NewManager(names []string, layout string) (*Manager, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one workspace is required")
	}

	seen := make(map[string]bool, len(names))
	workspaces := make([]*Workspace, 0, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("duplicate workspace name %q", name)
		}
		seen[name] = true
		workspaces = append(workspaces, NewWorkspace(name, layout))
	}

	return &Manager{
		workspaces: stack.MustFromSlice(workspaces),
		clients:    make(map[xproto.Window]*Client),
	}, nil
}

// Current returns the focused workspace.
func (m *Manager) Current() *Workspace {
	return m.workspaces.Focused()
}

// WorkspaceNames returns the workspace names in ring order.
func (m *Manager) WorkspaceNames() []string {
	names := make([]string, 0, m.workspaces.Len())
	for ws := range m.workspaces.All() {
		names = append(names, ws.Name)
	}
	return names
}

// Workspace returns the workspace with the given name.
func (m *Manager) Workspace(name string) (*Workspace, bool) {
	for ws := range m.workspaces.All() {
		if ws.Name == name {
			return ws, true
		}
	}
	return nil, false
}

// FocusWorkspace makes the named workspace current, reporting whether
// it exists. The ring is unchanged if the name is unknown.
func (m *Manager) FocusWorkspace(name string) bool {
	m.workspaces.FocusElementBy(func(ws *Workspace) bool { return ws.Name == name })
	return m.Current().Name == name
}

// NextWorkspace moves to the next workspace in the ring.
func (m *Manager) NextWorkspace() {
	m.workspaces.FocusDown()
}

// PrevWorkspace moves to the previous workspace in the ring.
func (m *Manager) PrevWorkspace() {
	m.workspaces.FocusUp()
}

// Client returns the metadata for a managed window.
func (m *Manager) Client(id xproto.Window) (*Client, bool) {
	c, ok := m.clients[id]
	return c, ok
}

// FocusedClient returns the client focused on the current workspace.
func (m *Manager) FocusedClient() (*Client, bool) {
	id, ok := m.Current().Focused()
	if !ok {
		return nil, false
	}
	return m.Client(id)
}

// Manage starts tracking a window, placing it at the focus point of
// the current workspace. Managing an already managed window is a
// no-op.
func (m *Manager) Manage(c *Client) {
	if _, ok := m.clients[c.ID]; ok {
		return
	}
	m.clients[c.ID] = c
	m.Current().Add(c.ID)
}

// Unmanage stops tracking a window, removing it from whichever
// workspace holds it. Reports whether the window was managed.
func (m *Manager) Unmanage(id xproto.Window) bool {
	if _, ok := m.clients[id]; !ok {
		return false
	}
	delete(m.clients, id)

	for ws := range m.workspaces.All() {
		if ws.Remove(id) {
			return true
		}
	}
	return true
}

// WorkspaceOf returns the workspace holding the given window.
func (m *Manager) WorkspaceOf(id xproto.Window) (*Workspace, bool) {
	for ws := range m.workspaces.All() {
		if ws.Contains(id) {
			return ws, true
		}
	}
	return nil, false
}

// MoveFocusedTo moves the focused window of the current workspace to
// the named workspace, inserting it at that workspace's focus point.
// Reports false if the target does not exist, is the current
// workspace, or there is nothing to move.
func (m *Manager) MoveFocusedTo(name string) bool {
	target, ok := m.Workspace(name)
	if !ok || target == m.Current() {
		return false
	}

	id, ok := m.Current().Focused()
	if !ok {
		return false
	}

	m.Current().Remove(id)
	target.Add(id)
	return true
}

// MoveFocusedNext moves the focused window of the current workspace to
// the next workspace in the ring. The current workspace stays current.
func (m *Manager) MoveFocusedNext() bool {
	m.workspaces.FocusDown()
	target := m.Current().Name
	m.workspaces.FocusUp()
	return m.MoveFocusedTo(target)
}

// MoveFocusedPrev moves the focused window of the current workspace to
// the previous workspace in the ring.
func (m *Manager) MoveFocusedPrev() bool {
	m.workspaces.FocusUp()
	target := m.Current().Name
	m.workspaces.FocusDown()
	return m.MoveFocusedTo(target)
}

// Prune drops every window for which alive reports false from every
// workspace and from the client table. The event loop runs this after
// destroy notifications to clear windows that vanished without an
// unmap.
func (m *Manager) Prune(alive func(xproto.Window) bool) {
	for ws := range m.workspaces.All() {
		ws.Prune(alive)
	}
	for id := range m.clients {
		if !alive(id) {
			delete(m.clients, id)
		}
	}
}
