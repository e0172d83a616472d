package viewport

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

// Axis identifies which gizmo handle a drag is constrained to.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisXY
)

// Built-in mode ids, registered in this order.
const (
	ModeSelect = "select"
	ModeMove   = "move"
	ModeRotate = "rotate"
	ModeScale  = "scale"
)

// Mode is one gizmo tool. Handle layout is in world units derived from
// screen-pixel constants divided by the camera zoom, so handles keep a
// constant on-screen size.
type Mode interface {
	ID() string
	// HitTest tests the mode's handles, laid out for tr, against a world
	// point. ok is false when no handle is under the point.
	HitTest(cam *Camera, tr scene.Transform, worldX, worldY float64) (axis Axis, ok bool)
	// Start captures the pre-drag value of the property this mode edits.
	Start(tr scene.Transform) any
	// Apply computes the new value from the captured start value and the
	// world-space drag and issues exactly one property mutation.
	Apply(store Store, id scene.EntityID, start any, pivot, dragStart, current cp.Vector, axis Axis)
	Cursor(axis Axis) Cursor
	Draw(dst *ebiten.Image, cam *Camera, tr scene.Transform, active Axis)
}

// Gizmo runs the per-mode handle state machine: idle, hovered(axis), or
// dragging(axis, startValue). Exactly one mode is active at a time; the
// registry is open so hosts can add custom modes, and iteration order is
// registration order.
type Gizmo struct {
	cam    *Camera
	modes  []Mode
	active int

	hover  Axis
	cursor Cursor

	dragging       bool
	dragAxis       Axis
	dragStart      any
	dragStartWorld cp.Vector
	pivot          cp.Vector
	dragEntity     scene.EntityID

	requestRender func()
}

// NewGizmo creates a gizmo manager with the built-in select, move,
// rotate, and scale modes registered in that order.
func NewGizmo(cam *Camera, requestRender func()) *Gizmo {
	g := &Gizmo{cam: cam, cursor: CursorDefault, requestRender: requestRender}
	g.Register(selectMode{})
	g.Register(moveMode{})
	g.Register(rotateMode{})
	g.Register(scaleMode{})
	return g
}

// Register appends a mode to the registry. The first registered mode is
// active initially.
func (g *Gizmo) Register(m Mode) {
	g.modes = append(g.modes, m)
}

// ModeIDs returns the registered mode ids in registration order.
func (g *Gizmo) ModeIDs() []string {
	ids := make([]string, len(g.modes))
	for i, m := range g.modes {
		ids[i] = m.ID()
	}
	return ids
}

// ActiveModeID returns the active mode's id.
func (g *Gizmo) ActiveModeID() string {
	return g.modes[g.active].ID()
}

// SetActiveMode activates the mode with the given id. Unknown ids are
// ignored and reported false. Switching modes ends any hover state but
// never interrupts a drag (the router prevents mode switching mid-drag).
func (g *Gizmo) SetActiveMode(id string) bool {
	for i, m := range g.modes {
		if m.ID() == id {
			if g.active != i {
				g.active = i
				g.hover = AxisNone
				g.cursor = CursorDefault
				g.render()
			}
			return true
		}
	}
	return false
}

func (g *Gizmo) activeMode() Mode {
	return g.modes[g.active]
}

func (g *Gizmo) render() {
	if g.requestRender != nil {
		g.requestRender()
	}
}

// Dragging reports whether a handle drag is in progress.
func (g *Gizmo) Dragging() bool {
	return g.dragging
}

// Cursor returns the cursor for the current hover/drag state.
func (g *Gizmo) Cursor() Cursor {
	return g.cursor
}

// HitTest reports whether a world point lands on one of the active
// mode's handles for the first selected entity. Click-select uses this
// to avoid changing the selection when the click grabbed a handle.
func (g *Gizmo) HitTest(store Store, worldX, worldY float64) bool {
	id := store.SelectedEntity()
	if id == scene.None {
		return false
	}
	tr, ok := store.WorldTransform(id)
	if !ok {
		return false
	}
	_, hit := g.activeMode().HitTest(g.cam, tr, worldX, worldY)
	return hit
}

// OnMouseDown hit-tests the active mode's handles against the first
// selected entity and, on a hit, captures the pre-drag value and starts
// a drag. Returns whether the gizmo claimed the interaction.
func (g *Gizmo) OnMouseDown(store Store, worldX, worldY float64) bool {
	id := store.SelectedEntity()
	if id == scene.None {
		return false
	}
	tr, ok := store.WorldTransform(id)
	if !ok {
		return false
	}
	m := g.activeMode()
	axis, hit := m.HitTest(g.cam, tr, worldX, worldY)
	if !hit {
		return false
	}
	g.dragging = true
	g.dragAxis = axis
	g.dragStart = m.Start(tr)
	g.dragStartWorld = cp.Vector{X: worldX, Y: worldY}
	g.pivot = tr.Position
	g.dragEntity = id
	g.cursor = m.Cursor(axis)
	g.render()
	return true
}

// OnMouseMove applies the drag, or re-hit-tests for hover when idle.
// Hover changes update the cursor and request a redraw only when the
// hovered handle actually changed.
func (g *Gizmo) OnMouseMove(store Store, worldX, worldY float64) {
	if g.dragging {
		// The selection may have been deleted mid-drag; treat the rest of
		// the drag as a no-op.
		if _, ok := store.WorldTransform(g.dragEntity); !ok {
			g.OnMouseUp()
			return
		}
		g.activeMode().Apply(store, g.dragEntity, g.dragStart, g.pivot,
			g.dragStartWorld, cp.Vector{X: worldX, Y: worldY}, g.dragAxis)
		g.render()
		return
	}

	hover := AxisNone
	cursor := CursorDefault
	if id := store.SelectedEntity(); id != scene.None {
		if tr, ok := store.WorldTransform(id); ok {
			m := g.activeMode()
			if axis, hit := m.HitTest(g.cam, tr, worldX, worldY); hit {
				hover = axis
				cursor = m.Cursor(axis)
			}
		}
	}
	if hover != g.hover || cursor != g.cursor {
		g.hover = hover
		g.cursor = cursor
		g.render()
	}
}

// OnMouseUp ends the drag. Intermediate moves already issued their
// mutator calls, so there is nothing to commit here.
func (g *Gizmo) OnMouseUp() {
	if !g.dragging {
		return
	}
	g.dragging = false
	g.dragAxis = AxisNone
	g.dragStart = nil
	g.dragEntity = scene.None
	g.cursor = CursorDefault
	g.render()
}

// Draw renders the active mode's handles for the first selected entity.
func (g *Gizmo) Draw(dst *ebiten.Image, store Store) {
	id := store.SelectedEntity()
	if id == scene.None {
		return
	}
	tr, ok := store.WorldTransform(id)
	if !ok {
		return
	}
	active := g.hover
	if g.dragging {
		active = g.dragAxis
	}
	g.activeMode().Draw(dst, g.cam, tr, active)
}
