package viewport

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom limits. Zoom never reaches zero so screen/world conversion can
// never divide by zero.
const (
	MinZoom = 0.1
	MaxZoom = 10.0
)

const zoomStep = 1.1

// glideAnim animates the camera pan toward a focus target.
type glideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera owns the viewport's pan/zoom state and converts between screen
// (client pixels) and world coordinates. World space is y-up, screen
// space y-down.
//
// The rendering transform it must invert exactly is
//
//	translate(w/2 + panX*zoom, h/2 + panY*zoom); scale(zoom)
//
// applied in device pixels, with entities drawn at (x, -y).
type Camera struct {
	PanX float64
	PanY float64
	Zoom float64

	// Viewport size in device pixels and the client-to-device scale.
	ViewW       float64
	ViewH       float64
	DeviceScale float64

	dragging  bool
	lastDragX float64
	lastDragY float64
	spaceHeld bool
	glide     *glideAnim
	onMove    func()
}

// NewCamera creates a camera with identity pan, unit zoom, and unit
// device scale for the given viewport size in device pixels.
func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{Zoom: 1, ViewW: viewW, ViewH: viewH, DeviceScale: 1}
}

// SetViewport updates the viewport size (device pixels) and device scale.
func (c *Camera) SetViewport(w, h, deviceScale float64) {
	c.ViewW = w
	c.ViewH = h
	if deviceScale > 0 {
		c.DeviceScale = deviceScale
	}
}

// OnMove registers a callback invoked whenever pan or zoom change.
func (c *Camera) OnMove(fn func()) {
	c.onMove = fn
}

func (c *Camera) moved() {
	if c.onMove != nil {
		c.onMove()
	}
}

// ScreenToWorld converts a client-pixel point to world coordinates,
// inverting pan, zoom, and device scale.
func (c *Camera) ScreenToWorld(clientX, clientY float64) (worldX, worldY float64) {
	dx := clientX * c.DeviceScale
	dy := clientY * c.DeviceScale
	worldX = (dx-c.ViewW/2)/c.Zoom - c.PanX
	worldY = -((dy-c.ViewH/2)/c.Zoom - c.PanY)
	return
}

// WorldToScreen converts a world point to client pixels. Exact inverse of
// ScreenToWorld for any pan/zoom state.
func (c *Camera) WorldToScreen(worldX, worldY float64) (clientX, clientY float64) {
	dx := (worldX+c.PanX)*c.Zoom + c.ViewW/2
	dy := (-worldY+c.PanY)*c.Zoom + c.ViewH/2
	return dx / c.DeviceScale, dy / c.DeviceScale
}

// Wheel zooms about the cursor: the world point under (clientX, clientY)
// stays under it after the zoom step. dy > 0 zooms in by 1.1, dy < 0 out
// by 1/1.1; zoom is clamped to [MinZoom, MaxZoom].
func (c *Camera) Wheel(clientX, clientY, dy float64) {
	if dy == 0 {
		return
	}
	wx, wy := c.ScreenToWorld(clientX, clientY)

	factor := zoomStep
	if dy < 0 {
		factor = 1 / zoomStep
	}
	newZoom := c.Zoom * factor
	if newZoom < MinZoom {
		newZoom = MinZoom
	}
	if newZoom > MaxZoom {
		newZoom = MaxZoom
	}
	c.Zoom = newZoom

	// Re-anchor the pan so the same world point maps back to the cursor.
	dxp := clientX * c.DeviceScale
	dyp := clientY * c.DeviceScale
	c.PanX = (dxp-c.ViewW/2)/c.Zoom - wx
	c.PanY = (dyp-c.ViewH/2)/c.Zoom + wy
	c.moved()
}

// ShouldStartDrag reports whether this mouse-down claims a camera pan:
// middle button, alt+left, or left while space is held.
func (c *Camera) ShouldStartDrag(ev MouseEvent, spaceHeld bool) bool {
	if ev.Button == ButtonMiddle {
		return true
	}
	if ev.Button == ButtonLeft && (ev.Alt || spaceHeld) {
		return true
	}
	return false
}

// StartDrag begins a camera pan anchored at the given client point.
func (c *Camera) StartDrag(clientX, clientY float64) {
	c.dragging = true
	c.lastDragX = clientX
	c.lastDragY = clientY
	c.glide = nil
}

// Drag pans by the screen delta divided by zoom. No-op unless dragging.
func (c *Camera) Drag(clientX, clientY float64) {
	if !c.dragging {
		return
	}
	dx := (clientX - c.lastDragX) * c.DeviceScale
	dy := (clientY - c.lastDragY) * c.DeviceScale
	c.PanX += dx / c.Zoom
	c.PanY += dy / c.Zoom
	c.lastDragX = clientX
	c.lastDragY = clientY
	c.moved()
}

// StopDrag ends a camera pan.
func (c *Camera) StopDrag() {
	c.dragging = false
}

// Dragging reports whether a camera pan is in progress.
func (c *Camera) Dragging() bool {
	return c.dragging
}

// SetSpaceHeld tracks the space modifier for cursor feedback.
func (c *Camera) SetSpaceHeld(held bool) {
	c.spaceHeld = held
}

// Cursor returns grabbing while panning, grab while space is held idle,
// default otherwise.
func (c *Camera) Cursor() Cursor {
	if c.dragging {
		return CursorGrabbing
	}
	if c.spaceHeld {
		return CursorGrab
	}
	return CursorDefault
}

// FocusOn centers the camera on a world point immediately. The Y sign
// flips because pan lives in screen-oriented space.
func (c *Camera) FocusOn(worldX, worldY float64) {
	c.glide = nil
	c.PanX = -worldX
	c.PanY = worldY
	c.moved()
}

// GlideTo animates the camera toward a world point over duration seconds.
func (c *Camera) GlideTo(worldX, worldY float64, duration float32) {
	c.glide = &glideAnim{
		tweenX: gween.New(float32(c.PanX), float32(-worldX), duration, ease.OutQuad),
		tweenY: gween.New(float32(c.PanY), float32(worldY), duration, ease.OutQuad),
	}
}

// Update advances the glide animation. Returns true while the camera is
// still moving (the host should keep rendering).
func (c *Camera) Update(dt float32) bool {
	if c.glide == nil {
		return false
	}
	if !c.glide.doneX {
		v, done := c.glide.tweenX.Update(dt)
		c.PanX = float64(v)
		c.glide.doneX = done
	}
	if !c.glide.doneY {
		v, done := c.glide.tweenY.Update(dt)
		c.PanY = float64(v)
		c.glide.doneY = done
	}
	c.moved()
	if c.glide.doneX && c.glide.doneY {
		c.glide = nil
		return false
	}
	return true
}
