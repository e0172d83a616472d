package viewport

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

// clickSlopPx is the client-pixel distance past which a press counts as a
// drag. Releases within the slop stay clicks even if a marquee was armed.
const clickSlopPx = 3.0

// CaptureHooks lets the host globally capture the pointer for the
// duration of a drag so fast moves that leave the viewport keep arriving.
// Release fires exactly once per Acquire, on every exit path: mouse up,
// Cancel, Dispose, and pointer-leave with no button held.
type CaptureHooks struct {
	Acquire func()
	Release func()
}

type claim int

const (
	claimNone claim = iota
	claimCamera
	claimGizmo
	claimCollider
	claimMarquee
)

// Router arbitrates the viewport's pointer and keyboard input between the
// camera, gizmo, collider handles, and marquee. At most one controller
// owns a drag at a time; claims are tried in fixed priority order on
// mouse-down (camera, gizmo, collider handles, marquee) and click-select
// resolves on mouse-up only when nothing upstream claimed the press.
type Router struct {
	cam       *Camera
	gizmo     *Gizmo
	colliders *ColliderHandles
	marquee   *Marquee
	store     Store
	bounds    BoundsProvider
	hooks     CaptureHooks

	claim      claim
	downX      float64
	downY      float64
	downEvent  MouseEvent
	moved      bool
	spaceHeld  bool
	shiftHeld  bool
	ctrlHeld   bool
	gridSize   float64
	snapToGrid bool
	disposed   bool

	requestRender func()
}

// NewRouter wires the input router to its controllers. bounds and hooks
// are optional; a nil bounds provider disables hit-testing against entity
// footprints.
func NewRouter(cam *Camera, gizmo *Gizmo, colliders *ColliderHandles, marquee *Marquee, store Store, bounds BoundsProvider, hooks CaptureHooks, requestRender func()) *Router {
	return &Router{
		cam:           cam,
		gizmo:         gizmo,
		colliders:     colliders,
		marquee:       marquee,
		store:         store,
		bounds:        bounds,
		hooks:         hooks,
		requestRender: requestRender,
	}
}

// SetGrid configures arrow-key nudge snapping. size <= 0 disables it.
func (r *Router) SetGrid(size float64, snap bool) {
	r.gridSize = size
	r.snapToGrid = snap
}

func (r *Router) render() {
	if r.requestRender != nil {
		r.requestRender()
	}
}

func (r *Router) acquire() {
	if r.hooks.Acquire != nil {
		r.hooks.Acquire()
	}
}

func (r *Router) release() {
	if r.hooks.Release != nil {
		r.hooks.Release()
	}
}

// Claimed reports whether any controller currently owns a drag.
func (r *Router) Claimed() bool {
	return r.claim != claimNone
}

// OnMouseDown routes a press through the claim chain. Presses while a
// drag is already in progress are ignored.
func (r *Router) OnMouseDown(ev MouseEvent) {
	if r.disposed || r.claim != claimNone {
		return
	}
	r.downX, r.downY = ev.X, ev.Y
	r.downEvent = ev
	r.moved = false

	if r.cam.ShouldStartDrag(ev, r.spaceHeld) {
		r.claim = claimCamera
		r.cam.StartDrag(ev.X, ev.Y)
		r.acquire()
		r.render()
		return
	}
	if ev.Button != ButtonLeft {
		return
	}

	wx, wy := r.cam.ScreenToWorld(ev.X, ev.Y)
	if r.gizmo.OnMouseDown(r.store, wx, wy) {
		r.claim = claimGizmo
		r.acquire()
		return
	}
	if r.colliders.OnDragStart(r.store, wx, wy) {
		r.claim = claimCollider
		r.acquire()
		return
	}

	// Nothing claimed the press. In select mode an empty-space press arms
	// a marquee; a press on an entity (or in any other mode) can only
	// resolve as a click-select on mouse-up.
	r.claim = claimMarquee
	if r.gizmo.ActiveModeID() == ModeSelect && len(PointHits(r.store, r.bounds, wx, wy)) == 0 {
		r.marquee.Start(wx, wy, ev.Shift)
	}
	r.acquire()
}

// OnMouseMove routes pointer motion to the claiming controller, or to
// hover tracking when idle.
func (r *Router) OnMouseMove(ev MouseEvent) {
	if r.disposed {
		return
	}
	wx, wy := r.cam.ScreenToWorld(ev.X, ev.Y)

	if r.claim == claimNone {
		r.gizmo.OnMouseMove(r.store, wx, wy)
		r.colliders.OnMouseMove(r.store, wx, wy)
		return
	}

	if !r.moved && math.Hypot(ev.X-r.downX, ev.Y-r.downY) > clickSlopPx {
		r.moved = true
	}

	switch r.claim {
	case claimCamera:
		r.cam.Drag(ev.X, ev.Y)
	case claimGizmo:
		r.gizmo.OnMouseMove(r.store, wx, wy)
	case claimCollider:
		r.colliders.OnDrag(r.store, wx, wy)
	case claimMarquee:
		if r.moved && r.marquee.Active() {
			r.marquee.Update(wx, wy)
			r.render()
		}
	}
}

// OnMouseUp ends the current claim. An unmoved marquee press resolves as
// a click-select here.
func (r *Router) OnMouseUp(ev MouseEvent) {
	if r.disposed || r.claim == claimNone {
		return
	}
	switch r.claim {
	case claimCamera:
		r.cam.StopDrag()
	case claimGizmo:
		r.gizmo.OnMouseUp()
	case claimCollider:
		r.colliders.OnDragEnd()
	case claimMarquee:
		if r.moved && r.marquee.Active() {
			wx, wy := r.cam.ScreenToWorld(ev.X, ev.Y)
			r.marquee.Update(wx, wy)
			r.marquee.Finish(r.store, r.bounds)
		} else {
			r.marquee.Cancel()
			if !r.moved {
				r.clickSelect(ev)
			}
		}
	}
	r.claim = claimNone
	r.release()
	r.render()
}

// clickSelect resolves a click that no controller claimed. Plain clicks
// replace the selection with the topmost hit; repeated clicks on the same
// spot cycle through occluded entities; shift-clicks toggle the topmost
// hit's membership. Clicking empty space clears a plain selection.
func (r *Router) clickSelect(ev MouseEvent) {
	wx, wy := r.cam.ScreenToWorld(ev.X, ev.Y)
	hits := PointHits(r.store, r.bounds, wx, wy)

	if len(hits) == 0 {
		if !ev.Shift {
			r.store.SelectEntities(nil)
		}
		return
	}

	if ev.Shift {
		r.toggleSelection(hits[0])
		return
	}

	// Cycle: when the current single selection is already one of the
	// hits, advance to the next hit modulo the list.
	selected := r.store.SelectedEntities()
	if len(selected) == 1 {
		for i, id := range hits {
			if id == selected[0] {
				r.store.SelectEntity(hits[(i+1)%len(hits)])
				return
			}
		}
	}
	r.store.SelectEntity(hits[0])
}

func (r *Router) toggleSelection(id scene.EntityID) {
	selected := r.store.SelectedEntities()
	next := make([]scene.EntityID, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == id {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found {
		next = append(next, id)
	}
	r.store.SelectEntities(next)
}

// OnWheel zooms about the pointer. Wheel input never participates in the
// claim chain, so zooming works mid-drag.
func (r *Router) OnWheel(clientX, clientY, deltaY float64) {
	if r.disposed {
		return
	}
	r.cam.Wheel(clientX, clientY, deltaY)
}

// OnPointerLeave handles the pointer exiting the viewport. A drag with
// the button still held keeps its claim (the host's capture hooks keep
// events flowing); if the button was lost, the drag is cancelled so
// capture cannot leak.
func (r *Router) OnPointerLeave(buttonHeld bool) {
	if r.disposed {
		return
	}
	if r.claim != claimNone && !buttonHeld {
		r.Cancel()
		return
	}
	if r.claim == claimNone {
		// Drop hover state so handles do not stay highlighted.
		r.gizmo.OnMouseMove(r.store, math.Inf(1), math.Inf(1))
		r.colliders.OnMouseMove(r.store, math.Inf(1), math.Inf(1))
	}
}

// OnKeyDown handles viewport shortcuts. Mode switches are ignored while
// a drag is in progress.
func (r *Router) OnKeyDown(key Key) {
	if r.disposed {
		return
	}
	switch key {
	case KeySpace:
		r.spaceHeld = true
		r.cam.SetSpaceHeld(true)
		return
	case KeyShift:
		r.shiftHeld = true
		return
	case KeyCtrl, KeyMeta:
		r.ctrlHeld = true
		return
	}

	if r.claim != claimNone {
		return
	}

	switch key {
	case KeyQ:
		r.gizmo.SetActiveMode(ModeSelect)
	case KeyW:
		r.gizmo.SetActiveMode(ModeMove)
	case KeyE:
		r.gizmo.SetActiveMode(ModeRotate)
	case KeyR:
		r.gizmo.SetActiveMode(ModeScale)
	case KeyD:
		if r.ctrlHeld {
			r.store.DuplicateSelectedEntities()
			r.render()
		}
	case KeyDelete, KeyBackspace:
		r.store.DeleteSelectedEntities()
		r.render()
	case KeyArrowLeft:
		r.nudgeSelection(-1, 0)
	case KeyArrowRight:
		r.nudgeSelection(1, 0)
	case KeyArrowUp:
		r.nudgeSelection(0, 1)
	case KeyArrowDown:
		r.nudgeSelection(0, -1)
	}
}

// OnKeyUp clears modifier state.
func (r *Router) OnKeyUp(key Key) {
	if r.disposed {
		return
	}
	switch key {
	case KeySpace:
		r.spaceHeld = false
		r.cam.SetSpaceHeld(false)
	case KeyShift:
		r.shiftHeld = false
	case KeyCtrl, KeyMeta:
		r.ctrlHeld = false
	}
}

// nudgeSelection moves the first selected entity by one world unit along
// (dx, dy), or by the grid size when snapping. One mutation per key
// event, so the host's undo history sees one step per press.
func (r *Router) nudgeSelection(dx, dy int) {
	id := r.store.SelectedEntity()
	if id == scene.None {
		return
	}
	tr, ok := r.store.WorldTransform(id)
	if !ok {
		return
	}
	step := 1.0
	if (r.snapToGrid || r.shiftHeld) && r.gridSize > 0 {
		step = r.gridSize
	}
	old := tr.Position
	next := cp.Vector{X: old.X + float64(dx)*step, Y: old.Y + float64(dy)*step}
	r.store.UpdateProperty(id, scene.KindTransform, scene.PropPosition, old, next)
	r.render()
}

// Cancel aborts the in-progress interaction without resolving it: the
// marquee selects nothing, the camera stops where it is, and gizmo and
// collider drags keep the mutations already applied.
func (r *Router) Cancel() {
	if r.claim == claimNone {
		return
	}
	switch r.claim {
	case claimCamera:
		r.cam.StopDrag()
	case claimGizmo:
		r.gizmo.OnMouseUp()
	case claimCollider:
		r.colliders.OnDragEnd()
	case claimMarquee:
		r.marquee.Cancel()
	}
	r.claim = claimNone
	r.release()
	r.render()
}

// Dispose cancels any interaction and drops all subsequent events. Safe
// to call mid-drag: the capture hook is released exactly once.
func (r *Router) Dispose() {
	if r.disposed {
		return
	}
	r.Cancel()
	r.disposed = true
}

// Cursor composes the cursor for the current state: camera feedback wins
// (panning or space held), then the gizmo's drag/hover cursor, then the
// collider handles'.
func (r *Router) Cursor() Cursor {
	if c := r.cam.Cursor(); c != CursorDefault {
		return c
	}
	if c := r.gizmo.Cursor(); c != CursorDefault {
		return c
	}
	return r.colliders.Cursor()
}
