package viewport

import (
	"testing"

	"github.com/crowvale/scenedit/scene"
)

func TestOverlayEntityAt(t *testing.T) {
	store := newFakeStore()
	store.addEntity(1, 0, 0)
	store.addEntity(2, 100, 0)
	bounds := fixedBounds(20, 20)

	cam := NewCamera(800, 600)
	o := NewOverlay(cam, NewGizmo(cam, nil), NewColliderHandles(cam, nil), &Marquee{}, bounds)

	// World origin maps to the viewport center.
	if got := o.EntityAt(store, 400, 300); got != 1 {
		t.Errorf("EntityAt(center) = %v, want 1", got)
	}
	if got := o.EntityAt(store, 500, 300); got != 2 {
		t.Errorf("EntityAt(+100) = %v, want 2", got)
	}
	if got := o.EntityAt(store, 400, 100); got != scene.None {
		t.Errorf("EntityAt(empty) = %v, want None", got)
	}
}
