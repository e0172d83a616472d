package viewport

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

// Handle layout constants in screen pixels; divided by zoom when laid out
// in world space so handles keep a constant on-screen size.
const (
	gizmoAxisLen    = 70.0
	gizmoCenterHalf = 7.0
	gizmoHandleHalf = 6.0
	gizmoHitPad     = 8.0
	rotateRadius    = 60.0

	// scaleSensitivity converts world-space drag distance into scale
	// delta: a 100-unit drag changes scale by 1.
	scaleSensitivity = 0.01

	// ScaleEpsilon is the floor applied to each scale axis; scale never
	// reaches zero or flips sign through a gizmo drag.
	ScaleEpsilon = 0.001
)

var (
	axisXColor       = color.RGBA{0xd9, 0x4a, 0x4a, 0xff}
	axisXActiveColor = color.RGBA{0xff, 0x6e, 0x6e, 0xff}
	axisYColor       = color.RGBA{0x4a, 0xc2, 0x5a, 0xff}
	axisYActiveColor = color.RGBA{0x6e, 0xff, 0x85, 0xff}
	centerColor      = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	centerActive     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

func distToSegment(p, a, b cp.Vector) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Mult(t)))
}

func axisCursor(axis Axis) Cursor {
	switch axis {
	case AxisX:
		return CursorEWResize
	case AxisY:
		return CursorNSResize
	case AxisXY:
		return CursorMove
	}
	return CursorDefault
}

func axisColor(axis, active Axis) (x, y, center color.RGBA) {
	x, y, center = axisXColor, axisYColor, centerColor
	if active == AxisX {
		x = axisXActiveColor
	}
	if active == AxisY {
		y = axisYActiveColor
	}
	if active == AxisXY {
		center = centerActive
	}
	return
}

// --- select ---

// selectMode has no handles; clicking and marquee-dragging are handled by
// the router.
type selectMode struct{}

func (selectMode) ID() string { return ModeSelect }

func (selectMode) HitTest(*Camera, scene.Transform, float64, float64) (Axis, bool) {
	return AxisNone, false
}

func (selectMode) Start(scene.Transform) any { return nil }

func (selectMode) Apply(Store, scene.EntityID, any, cp.Vector, cp.Vector, cp.Vector, Axis) {}

func (selectMode) Cursor(Axis) Cursor { return CursorDefault }

func (selectMode) Draw(*ebiten.Image, *Camera, scene.Transform, Axis) {}

// --- move ---

type moveMode struct{}

func (moveMode) ID() string { return ModeMove }

func (moveMode) HitTest(cam *Camera, tr scene.Transform, worldX, worldY float64) (Axis, bool) {
	pos := tr.Position
	pt := cp.Vector{X: worldX, Y: worldY}
	z := cam.Zoom
	alen := gizmoAxisLen / z
	pad := gizmoHitPad / z
	chalf := gizmoCenterHalf / z

	if math.Abs(pt.X-pos.X) <= chalf && math.Abs(pt.Y-pos.Y) <= chalf {
		return AxisXY, true
	}
	if distToSegment(pt, pos, cp.Vector{X: pos.X + alen, Y: pos.Y}) <= pad {
		return AxisX, true
	}
	if distToSegment(pt, pos, cp.Vector{X: pos.X, Y: pos.Y + alen}) <= pad {
		return AxisY, true
	}
	return AxisNone, false
}

func (moveMode) Start(tr scene.Transform) any { return tr.Position }

func (moveMode) Apply(store Store, id scene.EntityID, start any, _, dragStart, current cp.Vector, axis Axis) {
	startPos, ok := start.(cp.Vector)
	if !ok {
		return
	}
	tr, ok := store.WorldTransform(id)
	if !ok {
		return
	}
	delta := current.Sub(dragStart)
	switch axis {
	case AxisX:
		delta.Y = 0
	case AxisY:
		delta.X = 0
	}
	next := startPos.Add(delta)
	store.UpdateProperty(id, scene.KindTransform, scene.PropPosition, tr.Position, next)
}

func (moveMode) Cursor(axis Axis) Cursor { return axisCursor(axis) }

func (moveMode) Draw(dst *ebiten.Image, cam *Camera, tr scene.Transform, active Axis) {
	xc, yc, cc := axisColor(AxisNone, active)
	cx, cy := cam.WorldToScreen(tr.Position.X, tr.Position.Y)

	// +X right, +Y up on screen.
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(cx+gizmoAxisLen), float32(cy), 2, xc, true)
	vector.DrawFilledCircle(dst, float32(cx+gizmoAxisLen), float32(cy), 5, xc, true)
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(cx), float32(cy-gizmoAxisLen), 2, yc, true)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy-gizmoAxisLen), 5, yc, true)
	vector.DrawFilledRect(dst, float32(cx-gizmoCenterHalf), float32(cy-gizmoCenterHalf),
		gizmoCenterHalf*2, gizmoCenterHalf*2, cc, true)
}

// --- rotate ---

type rotateMode struct{}

func (rotateMode) ID() string { return ModeRotate }

func (rotateMode) HitTest(cam *Camera, tr scene.Transform, worldX, worldY float64) (Axis, bool) {
	pt := cp.Vector{X: worldX, Y: worldY}
	r := rotateRadius / cam.Zoom
	pad := gizmoHitPad / cam.Zoom
	if math.Abs(pt.Distance(tr.Position)-r) <= pad {
		return AxisXY, true
	}
	return AxisNone, false
}

func (rotateMode) Start(tr scene.Transform) any { return tr.Rotation.EulerZ() }

func (rotateMode) Apply(store Store, id scene.EntityID, start any, pivot, dragStart, current cp.Vector, _ Axis) {
	startDeg, ok := start.(float64)
	if !ok {
		return
	}
	tr, ok := store.WorldTransform(id)
	if !ok {
		return
	}
	a0 := math.Atan2(dragStart.Y-pivot.Y, dragStart.X-pivot.X)
	a1 := math.Atan2(current.Y-pivot.Y, current.X-pivot.X)
	deg := startDeg + (a1-a0)*180/math.Pi
	store.UpdateProperty(id, scene.KindTransform, scene.PropRotation, tr.Rotation, scene.FromEulerZ(deg))
}

func (rotateMode) Cursor(axis Axis) Cursor {
	if axis == AxisNone {
		return CursorDefault
	}
	return CursorMove
}

func (rotateMode) Draw(dst *ebiten.Image, cam *Camera, tr scene.Transform, active Axis) {
	cx, cy := cam.WorldToScreen(tr.Position.X, tr.Position.Y)
	ring := color.RGBA{0x5a, 0x9b, 0xd9, 0xff}
	if active != AxisNone {
		ring = color.RGBA{0x8c, 0xc5, 0xff, 0xff}
	}
	vector.StrokeCircle(dst, float32(cx), float32(cy), rotateRadius, 2, ring, true)
	// Tick marking the entity's current angle; screen angle mirrors the
	// world angle because screen Y points down.
	a := tr.Rotation.EulerZ() * math.Pi / 180
	tx := cx + math.Cos(a)*rotateRadius
	ty := cy - math.Sin(a)*rotateRadius
	vector.DrawFilledCircle(dst, float32(tx), float32(ty), 4, ring, true)
}

// --- scale ---

type scaleMode struct{}

func (scaleMode) ID() string { return ModeScale }

func (scaleMode) HitTest(cam *Camera, tr scene.Transform, worldX, worldY float64) (Axis, bool) {
	pos := tr.Position
	pt := cp.Vector{X: worldX, Y: worldY}
	z := cam.Zoom
	alen := gizmoAxisLen / z
	pad := gizmoHitPad / z
	chalf := gizmoCenterHalf / z

	if math.Abs(pt.X-pos.X) <= chalf && math.Abs(pt.Y-pos.Y) <= chalf {
		return AxisXY, true
	}
	xh := cp.Vector{X: pos.X + alen, Y: pos.Y}
	if math.Abs(pt.X-xh.X) <= pad && math.Abs(pt.Y-xh.Y) <= pad {
		return AxisX, true
	}
	yh := cp.Vector{X: pos.X, Y: pos.Y + alen}
	if math.Abs(pt.X-yh.X) <= pad && math.Abs(pt.Y-yh.Y) <= pad {
		return AxisY, true
	}
	if distToSegment(pt, pos, xh) <= pad {
		return AxisX, true
	}
	if distToSegment(pt, pos, yh) <= pad {
		return AxisY, true
	}
	return AxisNone, false
}

func (scaleMode) Start(tr scene.Transform) any { return tr.Scale }

func (scaleMode) Apply(store Store, id scene.EntityID, start any, _, dragStart, current cp.Vector, axis Axis) {
	startScale, ok := start.(cp.Vector)
	if !ok {
		return
	}
	tr, ok := store.WorldTransform(id)
	if !ok {
		return
	}
	delta := current.Sub(dragStart)
	next := startScale
	switch axis {
	case AxisX:
		next.X = startScale.X + delta.X*scaleSensitivity
	case AxisY:
		next.Y = startScale.Y + delta.Y*scaleSensitivity
	case AxisXY:
		next.X = startScale.X + delta.X*scaleSensitivity
		next.Y = startScale.Y + delta.Y*scaleSensitivity
	}
	if next.X < ScaleEpsilon {
		next.X = ScaleEpsilon
	}
	if next.Y < ScaleEpsilon {
		next.Y = ScaleEpsilon
	}
	store.UpdateProperty(id, scene.KindTransform, scene.PropScale, tr.Scale, next)
}

func (scaleMode) Cursor(axis Axis) Cursor { return axisCursor(axis) }

func (scaleMode) Draw(dst *ebiten.Image, cam *Camera, tr scene.Transform, active Axis) {
	xc, yc, cc := axisColor(AxisNone, active)
	cx, cy := cam.WorldToScreen(tr.Position.X, tr.Position.Y)

	vector.StrokeLine(dst, float32(cx), float32(cy), float32(cx+gizmoAxisLen), float32(cy), 2, xc, true)
	vector.DrawFilledRect(dst, float32(cx+gizmoAxisLen-gizmoHandleHalf), float32(cy-gizmoHandleHalf),
		gizmoHandleHalf*2, gizmoHandleHalf*2, xc, true)
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(cx), float32(cy-gizmoAxisLen), 2, yc, true)
	vector.DrawFilledRect(dst, float32(cx-gizmoHandleHalf), float32(cy-gizmoAxisLen-gizmoHandleHalf),
		gizmoHandleHalf*2, gizmoHandleHalf*2, yc, true)
	vector.DrawFilledRect(dst, float32(cx-gizmoCenterHalf), float32(cy-gizmoCenterHalf),
		gizmoCenterHalf*2, gizmoCenterHalf*2, cc, true)
}
