package wm

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func wins(ids ...uint32) []xproto.Window {
	out := make([]xproto.Window, len(ids))
	for i, id := range ids {
		out[i] = xproto.Window(id)
	}
	return out
}

func windowsEqual(a, b []xproto.Window) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWorkspaceAddInsertsAtFocus(t *testing.T) {
	ws := NewWorkspace("dev", "main_stack")

	ws.Add(1)
	ws.Add(2)
	ws.Add(3)

	// Each new window takes the focus, pushing the previous one down.
	if got, _ := ws.Focused(); got != 3 {
		t.Fatalf("expected focus on 3, got %d", got)
	}
	if got := ws.Windows(); !windowsEqual(got, wins(3, 2, 1)) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestWorkspaceRemoveLastWindowEmptiesWorkspace(t *testing.T) {
	ws := NewWorkspace("dev", "main_stack")
	ws.Add(1)

	if !ws.Remove(1) {
		t.Fatalf("expected window 1 to be removed")
	}
	if !ws.IsEmpty() {
		t.Fatalf("expected workspace to be empty")
	}
	if _, ok := ws.Focused(); ok {
		t.Fatalf("empty workspace should have no focus")
	}
}

func TestWorkspaceFocusWrapsBothWays(t *testing.T) {
	ws := NewWorkspace("dev", "main_stack")
	ws.Add(3)
	ws.Add(2)
	ws.Add(1)
	// Stack order is now 1, 2, 3 with focus on 1.

	ws.FocusPrev()
	if got, _ := ws.Focused(); got != 3 {
		t.Fatalf("expected wrap to 3, got %d", got)
	}

	ws.FocusNext()
	if got, _ := ws.Focused(); got != 1 {
		t.Fatalf("expected wrap back to 1, got %d", got)
	}
}

func TestWorkspacePromoteMakesFocusTheMainWindow(t *testing.T) {
	ws := NewWorkspace("dev", "main_stack")
	ws.Add(3)
	ws.Add(2)
	ws.Add(1)
	ws.FocusWindow(3)

	ws.Promote()

	if got, _ := ws.Focused(); got != 3 {
		t.Fatalf("promote should keep focus, got %d", got)
	}
	if got := ws.Windows(); got[0] != 3 {
		t.Fatalf("expected 3 at the head, got %v", got)
	}
	if ws.Len() != 3 {
		t.Fatalf("promote must not change the window count, got %d", ws.Len())
	}
}

func TestWorkspaceSwapAndRotate(t *testing.T) {
	ws := NewWorkspace("dev", "main_stack")
	ws.Add(3)
	ws.Add(2)
	ws.Add(1)
	// order 1, 2, 3 focused on 1

	ws.SwapNext()
	if got := ws.Windows(); !windowsEqual(got, wins(2, 1, 3)) {
		t.Fatalf("after SwapNext: %v", got)
	}
	ws.SwapPrev()
	if got := ws.Windows(); !windowsEqual(got, wins(1, 2, 3)) {
		t.Fatalf("after SwapPrev: %v", got)
	}

	ws.RotateNext()
	if got := ws.Windows(); !windowsEqual(got, wins(3, 1, 2)) {
		t.Fatalf("after RotateNext: %v", got)
	}
	if got, _ := ws.Focused(); got != 1 {
		t.Fatalf("rotate should keep focus on 1, got %d", got)
	}
}

func TestWorkspaceFocusUnknownWindowIsNoOp(t *testing.T) {
	ws := NewWorkspace("dev", "main_stack")
	ws.Add(2)
	ws.Add(1)

	ws.FocusWindow(99)

	if got, _ := ws.Focused(); got != 1 {
		t.Fatalf("focus should be unchanged, got %d", got)
	}
}

func TestWorkspacePrune(t *testing.T) {
	ws := NewWorkspace("dev", "main_stack")
	ws.Add(3)
	ws.Add(2)
	ws.Add(1)

	ws.Prune(func(id xproto.Window) bool { return id != 1 })

	if got, _ := ws.Focused(); got != 2 {
		t.Fatalf("focus should move to nearest survivor, got %d", got)
	}
	if got := ws.Windows(); !windowsEqual(got, wins(2, 3)) {
		t.Fatalf("unexpected windows after prune: %v", got)
	}

	ws.Prune(func(xproto.Window) bool { return false })
	if !ws.IsEmpty() {
		t.Fatalf("expected workspace to collapse to empty")
	}
}
