package viewport

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

// Footprint computes the entity's axis-aligned world-space bounding box
// from its transform and local bounds. The pivot offset is scaled but the
// rotation is deliberately ignored: footprints stay axis-aligned even for
// rotated entities, matching how the renderer culls them.
func Footprint(tr scene.Transform, b scene.Bounds) cp.BB {
	cx := tr.Position.X + b.OffsetX*tr.Scale.X
	cy := tr.Position.Y + b.OffsetY*tr.Scale.Y
	hw := math.Abs(tr.Scale.X) * b.Width / 2
	hh := math.Abs(tr.Scale.Y) * b.Height / 2
	return cp.BB{L: cx - hw, B: cy - hh, R: cx + hw, T: cy + hh}
}

// EntityFootprint resolves an entity's footprint through the bounds
// provider. Returns false when the entity has no transform or bounds.
func EntityFootprint(store Store, provider BoundsProvider, id scene.EntityID) (cp.BB, bool) {
	tr, ok := store.WorldTransform(id)
	if !ok {
		return cp.BB{}, false
	}
	b, ok := provider(store, id)
	if !ok {
		return cp.BB{}, false
	}
	return Footprint(tr, b), true
}

// PointHits returns every visible entity whose footprint contains the
// world point, ordered front to back (reverse z-order). Entities with
// missing transforms or bounds are skipped.
func PointHits(store Store, provider BoundsProvider, worldX, worldY float64) []scene.EntityID {
	pt := cp.Vector{X: worldX, Y: worldY}
	order := store.Entities()
	var hits []scene.EntityID
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		if !store.IsEntityVisible(id) {
			continue
		}
		bb, ok := EntityFootprint(store, provider, id)
		if !ok {
			continue
		}
		if bb.ContainsVect(pt) {
			hits = append(hits, id)
		}
	}
	return hits
}

// RectHits returns every visible entity whose footprint intersects the
// rectangle, inclusive of touching edges, in z-order.
func RectHits(store Store, provider BoundsProvider, rect cp.BB) []scene.EntityID {
	var hits []scene.EntityID
	for _, id := range store.Entities() {
		if !store.IsEntityVisible(id) {
			continue
		}
		bb, ok := EntityFootprint(store, provider, id)
		if !ok {
			continue
		}
		if bb.Intersects(rect) {
			hits = append(hits, id)
		}
	}
	return hits
}
