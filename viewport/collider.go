package viewport

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

// Collider handle sizing in screen pixels.
const (
	colliderHandleHalf = 5.0
	colliderHitPad     = 7.0

	// ColliderEpsilon is the floor applied to collider extents and radii.
	ColliderEpsilon = 0.01
)

var (
	colliderOutline = color.RGBA{0x3c, 0xd9, 0x8a, 0xff}
	colliderHandle  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colliderActive  = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

type colliderShape int

const (
	shapeNone colliderShape = iota
	shapeBox
	shapeCircle
	shapeCapsule
)

type colliderHandleID int

const (
	handleNone colliderHandleID = iota
	handleBoxWidth
	handleBoxHeight
	handleRadius
	handleCapsuleHeight
)

// ColliderHandles exposes drag handles for the defining parameters of the
// first selected entity's collider component: half-extents for boxes,
// radius for circles, radius and half-height for capsules. It mirrors the
// gizmo's drag lifecycle and is mutually exclusive with it during a drag
// (the router tries the gizmo first).
type ColliderHandles struct {
	cam     *Camera
	enabled bool

	dragging   bool
	entity     scene.EntityID
	shape      colliderShape
	handle     colliderHandleID
	startValue float64
	startWorld cp.Vector
	cursor     Cursor
	hover      colliderHandleID

	requestRender func()
}

// NewColliderHandles creates the collider handle controller, enabled by
// default.
func NewColliderHandles(cam *Camera, requestRender func()) *ColliderHandles {
	return &ColliderHandles{cam: cam, enabled: true, cursor: CursorDefault, requestRender: requestRender}
}

// SetEnabled toggles the overlay. A disabled overlay neither draws nor
// claims input; disabling mid-drag ends the drag.
func (c *ColliderHandles) SetEnabled(on bool) {
	if on == c.enabled {
		return
	}
	c.enabled = on
	if !on {
		c.OnDragEnd()
		if c.hover != handleNone {
			c.hover = handleNone
			c.cursor = CursorDefault
		}
	}
	c.render()
}

// Enabled reports whether the overlay draws and accepts input.
func (c *ColliderHandles) Enabled() bool {
	return c.enabled
}

func (c *ColliderHandles) render() {
	if c.requestRender != nil {
		c.requestRender()
	}
}

// Dragging reports whether a handle drag is in progress.
func (c *ColliderHandles) Dragging() bool {
	return c.dragging
}

// Cursor returns the cursor for the current hover/drag state.
func (c *ColliderHandles) Cursor() Cursor {
	return c.cursor
}

// handleLayout computes the world-space handle positions for the first
// selected entity's collider. Returns shapeNone when the entity has no
// collider component.
func (c *ColliderHandles) handleLayout(store Store, id scene.EntityID) (colliderShape, map[colliderHandleID]cp.Vector) {
	tr, ok := store.WorldTransform(id)
	if !ok {
		return shapeNone, nil
	}
	pos := tr.Position

	if box, ok := store.BoxCollider(id); ok {
		center := pos.Add(box.Offset)
		return shapeBox, map[colliderHandleID]cp.Vector{
			handleBoxWidth:  {X: center.X + box.Width/2, Y: center.Y},
			handleBoxHeight: {X: center.X, Y: center.Y + box.Height/2},
		}
	}
	if circ, ok := store.CircleCollider(id); ok {
		center := pos.Add(circ.Offset)
		return shapeCircle, map[colliderHandleID]cp.Vector{
			handleRadius: {X: center.X + circ.Radius, Y: center.Y},
		}
	}
	if cap, ok := store.CapsuleCollider(id); ok {
		center := pos.Add(cap.Offset)
		return shapeCapsule, map[colliderHandleID]cp.Vector{
			handleRadius:        {X: center.X + cap.Radius, Y: center.Y},
			handleCapsuleHeight: {X: center.X, Y: center.Y + cap.Height/2},
		}
	}
	return shapeNone, nil
}

func (c *ColliderHandles) hitHandle(store Store, id scene.EntityID, worldX, worldY float64) (colliderShape, colliderHandleID) {
	shape, handles := c.handleLayout(store, id)
	if shape == shapeNone {
		return shapeNone, handleNone
	}
	pad := colliderHitPad / c.cam.Zoom
	pt := cp.Vector{X: worldX, Y: worldY}
	for hid, hpos := range handles {
		if math.Abs(pt.X-hpos.X) <= pad && math.Abs(pt.Y-hpos.Y) <= pad {
			return shape, hid
		}
	}
	return shapeNone, handleNone
}

// HitTest reports whether a world point lands on a collider handle of the
// first selected entity.
func (c *ColliderHandles) HitTest(store Store, worldX, worldY float64) bool {
	if !c.enabled {
		return false
	}
	id := store.SelectedEntity()
	if id == scene.None {
		return false
	}
	_, h := c.hitHandle(store, id, worldX, worldY)
	return h != handleNone
}

// OnDragStart hit-tests the handles and, on a hit, captures the pre-drag
// parameter value. Returns whether the overlay claimed the interaction.
func (c *ColliderHandles) OnDragStart(store Store, worldX, worldY float64) bool {
	if !c.enabled {
		return false
	}
	id := store.SelectedEntity()
	if id == scene.None {
		return false
	}
	shape, handle := c.hitHandle(store, id, worldX, worldY)
	if handle == handleNone {
		return false
	}
	c.dragging = true
	c.entity = id
	c.shape = shape
	c.handle = handle
	c.startWorld = cp.Vector{X: worldX, Y: worldY}
	c.startValue = c.currentValue(store)
	c.cursor = handleCursor(handle)
	c.render()
	return true
}

func (c *ColliderHandles) currentValue(store Store) float64 {
	switch c.shape {
	case shapeBox:
		if box, ok := store.BoxCollider(c.entity); ok {
			if c.handle == handleBoxWidth {
				return box.Width
			}
			return box.Height
		}
	case shapeCircle:
		if circ, ok := store.CircleCollider(c.entity); ok {
			return circ.Radius
		}
	case shapeCapsule:
		if cap, ok := store.CapsuleCollider(c.entity); ok {
			if c.handle == handleRadius {
				return cap.Radius
			}
			return cap.Height
		}
	}
	return 0
}

// OnDrag applies the drag to the collider parameter, floored at
// ColliderEpsilon. One mutator call per move, carrying the true previous
// value.
func (c *ColliderHandles) OnDrag(store Store, worldX, worldY float64) {
	if !c.dragging {
		return
	}
	if _, ok := store.WorldTransform(c.entity); !ok {
		c.OnDragEnd()
		return
	}
	old := c.currentValue(store)
	dx := worldX - c.startWorld.X
	dy := worldY - c.startWorld.Y

	var next float64
	switch c.handle {
	case handleBoxWidth:
		next = c.startValue + 2*dx
	case handleBoxHeight:
		next = c.startValue + 2*dy
	case handleRadius:
		next = c.startValue + dx
	case handleCapsuleHeight:
		next = c.startValue + 2*dy
	default:
		return
	}
	if next < ColliderEpsilon {
		next = ColliderEpsilon
	}
	if next == old {
		return
	}

	kind, prop := c.mutationTarget()
	if kind == "" {
		return
	}
	store.UpdateProperty(c.entity, kind, prop, old, next)
	c.render()
}

func (c *ColliderHandles) mutationTarget() (kind, prop string) {
	switch c.shape {
	case shapeBox:
		if c.handle == handleBoxWidth {
			return scene.KindBoxCollider, scene.PropWidth
		}
		return scene.KindBoxCollider, scene.PropHeight
	case shapeCircle:
		return scene.KindCircleCollider, scene.PropRadius
	case shapeCapsule:
		if c.handle == handleRadius {
			return scene.KindCapsuleCollider, scene.PropRadius
		}
		return scene.KindCapsuleCollider, scene.PropHeight
	}
	return "", ""
}

// OnDragEnd ends the drag.
func (c *ColliderHandles) OnDragEnd() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.handle = handleNone
	c.shape = shapeNone
	c.entity = scene.None
	c.cursor = CursorDefault
	c.render()
}

// OnMouseMove updates hover state and cursor while idle.
func (c *ColliderHandles) OnMouseMove(store Store, worldX, worldY float64) {
	if !c.enabled || c.dragging {
		return
	}
	hover := handleNone
	cursor := CursorDefault
	if id := store.SelectedEntity(); id != scene.None {
		if _, h := c.hitHandle(store, id, worldX, worldY); h != handleNone {
			hover = h
			cursor = handleCursor(h)
		}
	}
	if hover != c.hover || cursor != c.cursor {
		c.hover = hover
		c.cursor = cursor
		c.render()
	}
}

func handleCursor(h colliderHandleID) Cursor {
	switch h {
	case handleBoxWidth, handleRadius:
		return CursorEWResize
	case handleBoxHeight, handleCapsuleHeight:
		return CursorNSResize
	}
	return CursorDefault
}

// Draw renders the collider outline and its handles for the first
// selected entity.
func (c *ColliderHandles) Draw(dst *ebiten.Image, store Store) {
	if !c.enabled {
		return
	}
	id := store.SelectedEntity()
	if id == scene.None {
		return
	}
	tr, ok := store.WorldTransform(id)
	if !ok {
		return
	}
	pos := tr.Position
	z := c.cam.Zoom

	if box, ok := store.BoxCollider(id); ok {
		center := pos.Add(box.Offset)
		sx, sy := c.cam.WorldToScreen(center.X-box.Width/2, center.Y+box.Height/2)
		vector.StrokeRect(dst, float32(sx), float32(sy),
			float32(box.Width*z), float32(box.Height*z), 1.5, colliderOutline, true)
	} else if circ, ok := store.CircleCollider(id); ok {
		center := pos.Add(circ.Offset)
		sx, sy := c.cam.WorldToScreen(center.X, center.Y)
		vector.StrokeCircle(dst, float32(sx), float32(sy), float32(circ.Radius*z), 1.5, colliderOutline, true)
	} else if cap, ok := store.CapsuleCollider(id); ok {
		center := pos.Add(cap.Offset)
		topX, topY := c.cam.WorldToScreen(center.X, center.Y+cap.Height/2)
		botX, botY := c.cam.WorldToScreen(center.X, center.Y-cap.Height/2)
		r := float32(cap.Radius * z)
		vector.StrokeCircle(dst, float32(topX), float32(topY), r, 1.5, colliderOutline, true)
		vector.StrokeCircle(dst, float32(botX), float32(botY), r, 1.5, colliderOutline, true)
		vector.StrokeLine(dst, float32(topX)-r, float32(topY), float32(botX)-r, float32(botY), 1.5, colliderOutline, true)
		vector.StrokeLine(dst, float32(topX)+r, float32(topY), float32(botX)+r, float32(botY), 1.5, colliderOutline, true)
	}

	_, handles := c.handleLayout(store, id)
	for hid, hpos := range handles {
		sx, sy := c.cam.WorldToScreen(hpos.X, hpos.Y)
		col := colliderHandle
		if c.dragging && hid == c.handle || !c.dragging && hid == c.hover {
			col = colliderActive
		}
		vector.DrawFilledRect(dst, float32(sx-colliderHandleHalf), float32(sy-colliderHandleHalf),
			colliderHandleHalf*2, colliderHandleHalf*2, col, true)
	}
}
