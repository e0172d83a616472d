package viewport

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

func newColliderFixture() (*ColliderHandles, *fakeStore) {
	cam := NewCamera(800, 600)
	store := newFakeStore()
	store.addEntity(1, 0, 0)
	store.SelectEntity(1)
	return NewColliderHandles(cam, nil), store
}

func TestBoxColliderWidthDrag(t *testing.T) {
	c, store := newColliderFixture()
	store.boxes[1] = &scene.BoxCollider{Width: 40, Height: 20}

	// Width handle sits at the right edge midpoint.
	if !c.OnDragStart(store, 20, 0) {
		t.Fatal("press on the width handle was not claimed")
	}

	c.OnDrag(store, 30, 0)
	if got := store.boxes[1].Width; !approxEqual(got, 60) {
		t.Errorf("Width = %v, want 60", got)
	}
	if got := store.boxes[1].Height; !approxEqual(got, 20) {
		t.Errorf("Height = %v, want untouched", got)
	}

	// Each move carries the true previous value.
	c.OnDrag(store, 35, 0)
	if len(store.calls) != 2 {
		t.Fatalf("len(calls) = %d, want 2", len(store.calls))
	}
	if old := store.calls[1].oldValue.(float64); !approxEqual(old, 60) {
		t.Errorf("second call oldValue = %v, want 60", old)
	}

	c.OnDragEnd()
	if c.Dragging() {
		t.Error("still dragging after drag end")
	}
}

func TestBoxColliderHeightDrag(t *testing.T) {
	c, store := newColliderFixture()
	store.boxes[1] = &scene.BoxCollider{Width: 40, Height: 20}

	if !c.OnDragStart(store, 0, 10) {
		t.Fatal("press on the height handle was not claimed")
	}
	c.OnDrag(store, 0, 25)
	if got := store.boxes[1].Height; !approxEqual(got, 50) {
		t.Errorf("Height = %v, want 50", got)
	}
}

func TestColliderDragFloorsAtEpsilon(t *testing.T) {
	c, store := newColliderFixture()
	store.boxes[1] = &scene.BoxCollider{Width: 40, Height: 20}

	if !c.OnDragStart(store, 20, 0) {
		t.Fatal("press was not claimed")
	}
	c.OnDrag(store, -100, 0)
	if got := store.boxes[1].Width; got != ColliderEpsilon {
		t.Errorf("Width = %v, want floored at %v", got, ColliderEpsilon)
	}
}

func TestCircleColliderRadiusDrag(t *testing.T) {
	c, store := newColliderFixture()
	store.circles[1] = &scene.CircleCollider{Radius: 15}

	if !c.OnDragStart(store, 15, 0) {
		t.Fatal("press on the radius handle was not claimed")
	}
	c.OnDrag(store, 25, 0)
	if got := store.circles[1].Radius; !approxEqual(got, 25) {
		t.Errorf("Radius = %v, want 25", got)
	}
}

func TestCapsuleColliderDrags(t *testing.T) {
	c, store := newColliderFixture()
	store.capsules[1] = &scene.CapsuleCollider{Radius: 10, Height: 30}

	if !c.OnDragStart(store, 10, 0) {
		t.Fatal("press on the radius handle was not claimed")
	}
	c.OnDrag(store, 18, 0)
	if got := store.capsules[1].Radius; !approxEqual(got, 18) {
		t.Errorf("Radius = %v, want 18", got)
	}
	c.OnDragEnd()

	if !c.OnDragStart(store, 0, 15) {
		t.Fatal("press on the height handle was not claimed")
	}
	c.OnDrag(store, 0, 25)
	if got := store.capsules[1].Height; !approxEqual(got, 50) {
		t.Errorf("Height = %v, want 50", got)
	}
}

func TestColliderHandlesFollowOffset(t *testing.T) {
	c, store := newColliderFixture()
	store.boxes[1] = &scene.BoxCollider{Width: 40, Height: 20, Offset: cp.Vector{X: 100, Y: 50}}

	if c.OnDragStart(store, 20, 0) {
		t.Fatal("handle claimed at the unoffset position")
	}
	if !c.OnDragStart(store, 120, 50) {
		t.Fatal("press on the offset width handle was not claimed")
	}
}

func TestColliderIgnoresEntitiesWithoutColliders(t *testing.T) {
	c, store := newColliderFixture()

	if c.OnDragStart(store, 0, 0) {
		t.Error("claimed a press on an entity with no collider")
	}
	if c.HitTest(store, 0, 0) {
		t.Error("hit-tested true with no collider")
	}
}

func TestColliderDragHandlesDeletedEntity(t *testing.T) {
	c, store := newColliderFixture()
	store.boxes[1] = &scene.BoxCollider{Width: 40, Height: 20}

	if !c.OnDragStart(store, 20, 0) {
		t.Fatal("press was not claimed")
	}
	delete(store.transforms, 1)

	c.OnDrag(store, 50, 0)
	if c.Dragging() {
		t.Error("drag survived entity deletion")
	}
	if len(store.calls) != 0 {
		t.Errorf("mutations issued against a deleted entity: %v", store.calls)
	}
}

func TestColliderHoverCursor(t *testing.T) {
	c, store := newColliderFixture()
	store.boxes[1] = &scene.BoxCollider{Width: 40, Height: 20}

	c.OnMouseMove(store, 20, 0)
	if got := c.Cursor(); got != CursorEWResize {
		t.Errorf("cursor over width handle = %q, want %q", got, CursorEWResize)
	}
	c.OnMouseMove(store, 0, 10)
	if got := c.Cursor(); got != CursorNSResize {
		t.Errorf("cursor over height handle = %q, want %q", got, CursorNSResize)
	}
	c.OnMouseMove(store, 300, 300)
	if got := c.Cursor(); got != CursorDefault {
		t.Errorf("cursor off the handles = %q, want %q", got, CursorDefault)
	}
}

func TestDisabledColliderHandlesClaimNothing(t *testing.T) {
	c, store := newColliderFixture()
	store.boxes[1] = &scene.BoxCollider{Width: 40, Height: 20}

	c.SetEnabled(false)
	if c.HitTest(store, 20, 0) {
		t.Error("disabled overlay still hit-tests")
	}
	if c.OnDragStart(store, 20, 0) {
		t.Error("disabled overlay claimed a drag")
	}
	c.OnMouseMove(store, 20, 0)
	if got := c.Cursor(); got != CursorDefault {
		t.Errorf("Cursor = %q, want default", got)
	}

	c.SetEnabled(true)
	if !c.OnDragStart(store, 20, 0) {
		t.Error("re-enabled overlay did not claim the handle")
	}
}

func TestDisablingMidDragEndsDrag(t *testing.T) {
	c, store := newColliderFixture()
	store.boxes[1] = &scene.BoxCollider{Width: 40, Height: 20}

	if !c.OnDragStart(store, 20, 0) {
		t.Fatal("press on the width handle was not claimed")
	}
	c.SetEnabled(false)
	if c.Dragging() {
		t.Error("still dragging after disable")
	}
	c.OnDrag(store, 30, 0)
	if len(store.calls) != 0 {
		t.Errorf("len(calls) = %d, want 0", len(store.calls))
	}
}
