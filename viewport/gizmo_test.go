package viewport

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func newTestGizmo() (*Gizmo, *fakeStore) {
	cam := NewCamera(800, 600)
	store := newFakeStore()
	store.addEntity(1, 0, 0)
	store.SelectEntity(1)
	return NewGizmo(cam, nil), store
}

func TestGizmoModeRegistry(t *testing.T) {
	g, _ := newTestGizmo()

	want := []string{ModeSelect, ModeMove, ModeRotate, ModeScale}
	got := g.ModeIDs()
	if len(got) != len(want) {
		t.Fatalf("ModeIDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ModeIDs[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if g.ActiveModeID() != ModeSelect {
		t.Errorf("initial mode = %q, want %q", g.ActiveModeID(), ModeSelect)
	}
	if !g.SetActiveMode(ModeRotate) {
		t.Error("SetActiveMode(rotate) = false")
	}
	if g.ActiveModeID() != ModeRotate {
		t.Errorf("active mode = %q, want %q", g.ActiveModeID(), ModeRotate)
	}
	if g.SetActiveMode("bend") {
		t.Error("SetActiveMode accepted an unknown id")
	}
	if g.ActiveModeID() != ModeRotate {
		t.Errorf("unknown id changed the active mode to %q", g.ActiveModeID())
	}
}

func TestMoveDragConstrainedToX(t *testing.T) {
	g, store := newTestGizmo()
	g.SetActiveMode(ModeMove)

	// On the +X axis segment, slightly off-line.
	if !g.OnMouseDown(store, 35, 2) {
		t.Fatal("press on the X handle was not claimed")
	}

	g.OnMouseMove(store, 60, 30)
	tr, _ := store.WorldTransform(1)
	if !approxEqual(tr.Position.X, 25) || !approxEqual(tr.Position.Y, 0) {
		t.Errorf("position = %+v, want (25, 0)", tr.Position)
	}

	// Each move reads the true previous value from the store.
	g.OnMouseMove(store, 80, 40)
	if len(store.calls) != 2 {
		t.Fatalf("len(calls) = %d, want 2", len(store.calls))
	}
	old := store.calls[1].oldValue.(cp.Vector)
	if !approxEqual(old.X, 25) || !approxEqual(old.Y, 0) {
		t.Errorf("second call oldValue = %+v, want (25, 0)", old)
	}
	tr, _ = store.WorldTransform(1)
	if !approxEqual(tr.Position.X, 45) || !approxEqual(tr.Position.Y, 0) {
		t.Errorf("position = %+v, want (45, 0)", tr.Position)
	}

	g.OnMouseUp()
	if g.Dragging() {
		t.Error("still dragging after mouse up")
	}
}

func TestMoveCenterDragsBothAxes(t *testing.T) {
	g, store := newTestGizmo()
	g.SetActiveMode(ModeMove)

	if !g.OnMouseDown(store, 0, 0) {
		t.Fatal("press on the center handle was not claimed")
	}
	g.OnMouseMove(store, 10, -7)

	tr, _ := store.WorldTransform(1)
	if !approxEqual(tr.Position.X, 10) || !approxEqual(tr.Position.Y, -7) {
		t.Errorf("position = %+v, want (10, -7)", tr.Position)
	}
}

func TestRotateDrag(t *testing.T) {
	g, store := newTestGizmo()
	g.SetActiveMode(ModeRotate)

	// On the ring at angle zero.
	if !g.OnMouseDown(store, 60, 0) {
		t.Fatal("press on the rotate ring was not claimed")
	}
	// Quarter turn counterclockwise.
	g.OnMouseMove(store, 0, 60)

	tr, _ := store.WorldTransform(1)
	if got := tr.Rotation.EulerZ(); math.Abs(got-90) > 1e-6 {
		t.Errorf("EulerZ = %v, want 90", got)
	}
}

func TestScaleDragFloorsAtEpsilon(t *testing.T) {
	g, store := newTestGizmo()
	g.SetActiveMode(ModeScale)

	// On the X end handle.
	if !g.OnMouseDown(store, 70, 0) {
		t.Fatal("press on the scale handle was not claimed")
	}

	// Dragging right by 50 world units adds 0.5.
	g.OnMouseMove(store, 120, 0)
	tr, _ := store.WorldTransform(1)
	if !approxEqual(tr.Scale.X, 1.5) || !approxEqual(tr.Scale.Y, 1) {
		t.Errorf("scale = %+v, want (1.5, 1)", tr.Scale)
	}

	// Dragging far left would go negative; the floor holds.
	g.OnMouseMove(store, -400, 0)
	tr, _ = store.WorldTransform(1)
	if tr.Scale.X != ScaleEpsilon {
		t.Errorf("Scale.X = %v, want floored at %v", tr.Scale.X, ScaleEpsilon)
	}
	if !approxEqual(tr.Scale.Y, 1) {
		t.Errorf("Scale.Y = %v, want untouched", tr.Scale.Y)
	}
}

func TestGizmoIgnoresMissesAndEmptySelection(t *testing.T) {
	g, store := newTestGizmo()
	g.SetActiveMode(ModeMove)

	if g.OnMouseDown(store, 500, 500) {
		t.Error("press far from any handle was claimed")
	}

	store.SelectEntities(nil)
	if g.OnMouseDown(store, 0, 0) {
		t.Error("press with empty selection was claimed")
	}
}

func TestGizmoDragHandlesDeletedEntity(t *testing.T) {
	g, store := newTestGizmo()
	g.SetActiveMode(ModeMove)

	if !g.OnMouseDown(store, 0, 0) {
		t.Fatal("press was not claimed")
	}
	delete(store.transforms, 1)

	g.OnMouseMove(store, 50, 50)
	if g.Dragging() {
		t.Error("drag survived entity deletion")
	}
	if len(store.calls) != 0 {
		t.Errorf("mutations issued against a deleted entity: %v", store.calls)
	}
}

func TestGizmoHoverCursor(t *testing.T) {
	g, store := newTestGizmo()
	g.SetActiveMode(ModeMove)

	g.OnMouseMove(store, 35, 0)
	if got := g.Cursor(); got != CursorEWResize {
		t.Errorf("cursor over X axis = %q, want %q", got, CursorEWResize)
	}

	g.OnMouseMove(store, 0, 35)
	if got := g.Cursor(); got != CursorNSResize {
		t.Errorf("cursor over Y axis = %q, want %q", got, CursorNSResize)
	}

	g.OnMouseMove(store, 500, 500)
	if got := g.Cursor(); got != CursorDefault {
		t.Errorf("cursor off the handles = %q, want %q", got, CursorDefault)
	}
}

func TestSelectModeHasNoHandles(t *testing.T) {
	g, store := newTestGizmo()

	if g.OnMouseDown(store, 0, 0) {
		t.Error("select mode claimed a press on the entity origin")
	}
	if g.HitTest(store, 0, 0) {
		t.Error("select mode hit-tested true")
	}
}
