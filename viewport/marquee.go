package viewport

import (
	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

// Marquee is the drag-rectangle multi-select. It lives in world space so
// that camera motion during a drag does not shift the anchored corner.
type Marquee struct {
	active   bool
	anchor   cp.Vector
	current  cp.Vector
	additive bool
}

// Active reports whether a marquee drag is in progress.
func (m *Marquee) Active() bool {
	return m.active
}

// Start anchors the marquee at a world point. additive selects union
// (shift) semantics on finish instead of replacement.
func (m *Marquee) Start(worldX, worldY float64, additive bool) {
	m.active = true
	m.anchor = cp.Vector{X: worldX, Y: worldY}
	m.current = m.anchor
	m.additive = additive
}

// Update moves the free corner.
func (m *Marquee) Update(worldX, worldY float64) {
	if !m.active {
		return
	}
	m.current = cp.Vector{X: worldX, Y: worldY}
}

// Rect returns the normalized marquee rectangle. Drag direction does not
// matter; any corner may be the anchor.
func (m *Marquee) Rect() cp.BB {
	return cp.BB{
		L: min(m.anchor.X, m.current.X),
		B: min(m.anchor.Y, m.current.Y),
		R: max(m.anchor.X, m.current.X),
		T: max(m.anchor.Y, m.current.Y),
	}
}

// Finish resolves the selection and ends the drag. Replacement mode
// selects exactly the intersecting set (empty rect clears the selection);
// additive mode unions it with the current selection.
func (m *Marquee) Finish(store Store, bounds BoundsProvider) {
	if !m.active {
		return
	}
	m.active = false

	hits := RectHits(store, bounds, m.Rect())
	if !m.additive {
		store.SelectEntities(hits)
		return
	}
	if len(hits) == 0 {
		return
	}
	selected := store.SelectedEntities()
	have := make(map[scene.EntityID]bool, len(selected))
	merged := make([]scene.EntityID, 0, len(selected)+len(hits))
	for _, id := range selected {
		have[id] = true
		merged = append(merged, id)
	}
	for _, id := range hits {
		if !have[id] {
			merged = append(merged, id)
		}
	}
	store.SelectEntities(merged)
}

// Cancel ends the drag without touching the selection.
func (m *Marquee) Cancel() {
	m.active = false
}
