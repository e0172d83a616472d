package viewport

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/crowvale/scenedit/scene"
)

var (
	selectionOutline = color.RGBA{0x4f, 0xa3, 0xff, 0xff}
	marqueeFill      = color.RGBA{0x4f, 0xa3, 0xff, 0x30}
	marqueeStroke    = color.RGBA{0x4f, 0xa3, 0xff, 0xc0}
)

// Overlay draws the selection feedback layered over the scene: footprint
// outlines for every selected entity, the marquee rectangle, the active
// gizmo, and the collider handles.
type Overlay struct {
	cam       *Camera
	gizmo     *Gizmo
	colliders *ColliderHandles
	marquee   *Marquee
	bounds    BoundsProvider
}

// NewOverlay wires the overlay to the controllers whose state it draws.
func NewOverlay(cam *Camera, gizmo *Gizmo, colliders *ColliderHandles, marquee *Marquee, bounds BoundsProvider) *Overlay {
	return &Overlay{cam: cam, gizmo: gizmo, colliders: colliders, marquee: marquee, bounds: bounds}
}

// Draw renders all overlay layers in back-to-front order.
func (o *Overlay) Draw(dst *ebiten.Image, store Store) {
	o.drawSelectionOutlines(dst, store)
	o.colliders.Draw(dst, store)
	o.gizmo.Draw(dst, store)
	o.drawMarquee(dst)
}

func (o *Overlay) drawSelectionOutlines(dst *ebiten.Image, store Store) {
	if o.bounds == nil {
		return
	}
	for _, id := range store.SelectedEntities() {
		tr, ok := store.WorldTransform(id)
		if !ok {
			continue
		}
		b, ok := o.bounds(store, id)
		if !ok {
			continue
		}
		bb := Footprint(tr, b)
		// Top-left on screen is the footprint's (L, T) corner in y-up world
		// space.
		sx, sy := o.cam.WorldToScreen(bb.L, bb.T)
		w := float32((bb.R - bb.L) * o.cam.Zoom)
		h := float32((bb.T - bb.B) * o.cam.Zoom)
		vector.StrokeRect(dst, float32(sx), float32(sy), w, h, 1, selectionOutline, true)
	}
}

func (o *Overlay) drawMarquee(dst *ebiten.Image) {
	if !o.marquee.Active() {
		return
	}
	bb := o.marquee.Rect()
	sx, sy := o.cam.WorldToScreen(bb.L, bb.T)
	w := float32((bb.R - bb.L) * o.cam.Zoom)
	h := float32((bb.T - bb.B) * o.cam.Zoom)
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(sx), float32(sy), w, h, marqueeFill, true)
	vector.StrokeRect(dst, float32(sx), float32(sy), w, h, 1, marqueeStroke, true)
}

// EntityAt returns the topmost visible entity under a client point, or
// scene.None. Hosts use it for context menus and status readouts.
func (o *Overlay) EntityAt(store Store, clientX, clientY float64) scene.EntityID {
	wx, wy := o.cam.ScreenToWorld(clientX, clientY)
	hits := PointHits(store, o.bounds, wx, wy)
	if len(hits) == 0 {
		return scene.None
	}
	return hits[0]
}
