package main

import (
	"path/filepath"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	ebuiinput "github.com/ebitenui/ebitenui/input"

	"github.com/crowvale/scenedit/content"
	"github.com/crowvale/scenedit/document"
	"github.com/crowvale/scenedit/scene"
	"github.com/crowvale/scenedit/viewport"
)

// keyBindings maps the ebiten keys the viewport cares about to router
// keys. Pressed/released edges are forwarded every frame.
var keyBindings = []struct {
	eb ebiten.Key
	vp viewport.Key
}{
	{ebiten.KeySpace, viewport.KeySpace},
	{ebiten.KeyShift, viewport.KeyShift},
	{ebiten.KeyControl, viewport.KeyCtrl},
	{ebiten.KeyAlt, viewport.KeyAlt},
	{ebiten.KeyMeta, viewport.KeyMeta},
	{ebiten.KeyQ, viewport.KeyQ},
	{ebiten.KeyW, viewport.KeyW},
	{ebiten.KeyE, viewport.KeyE},
	{ebiten.KeyR, viewport.KeyR},
	{ebiten.KeyD, viewport.KeyD},
	{ebiten.KeyDelete, viewport.KeyDelete},
	{ebiten.KeyBackspace, viewport.KeyBackspace},
	{ebiten.KeyArrowLeft, viewport.KeyArrowLeft},
	{ebiten.KeyArrowRight, viewport.KeyArrowRight},
	{ebiten.KeyArrowUp, viewport.KeyArrowUp},
	{ebiten.KeyArrowDown, viewport.KeyArrowDown},
}

// EditorGame is the ebiten application hosting the viewport core, the
// scene renderer, and the editor UI.
type EditorGame struct {
	doc       *document.Document
	cam       *viewport.Camera
	gizmo     *viewport.Gizmo
	colliders *viewport.ColliderHandles
	marquee   *viewport.Marquee
	router    *viewport.Router
	overlay   *viewport.Overlay
	scheduler *viewport.RenderScheduler
	renderer  *sceneRenderer

	ui       *EditorUI
	clip     *entityClipboard
	watcher  *content.Watcher
	registry *content.Registry

	settings     EditorSettings
	settingsPath string
	scenePath    string

	sceneImage *ebiten.Image
	width      int
	height     int

	lastMouseX   int
	lastMouseY   int
	cursorInside bool
	lastCursor   viewport.Cursor
	// docChanged is set by the document subscriber and consumed once per
	// Update to resync the panels.
	docChanged bool
	lastEntity scene.EntityID
}

func newEditorGame(doc *document.Document, settings EditorSettings, settingsPath, scenePath string) *EditorGame {
	g := &EditorGame{
		doc:          doc,
		settings:     settings,
		settingsPath: settingsPath,
		scenePath:    scenePath,
		lastCursor:   viewport.CursorDefault,
		lastEntity:   scene.None,
	}

	g.scheduler = &viewport.RenderScheduler{}
	g.cam = viewport.NewCamera(float64(settings.WindowWidth), float64(settings.WindowHeight))
	g.cam.OnMove(g.scheduler.RequestRender)
	g.scheduler.SetContinuous(settings.ContinuousRender)
	g.gizmo = viewport.NewGizmo(g.cam, g.scheduler.RequestRender)
	g.colliders = viewport.NewColliderHandles(g.cam, g.scheduler.RequestRender)
	g.colliders.SetEnabled(settings.ShowColliders)
	g.marquee = &viewport.Marquee{}

	// Ebiten keeps delivering mouse events while a button is held, so the
	// capture hooks only need to exist for the router's bookkeeping.
	g.router = viewport.NewRouter(g.cam, g.gizmo, g.colliders, g.marquee, doc,
		entityBounds, viewport.CaptureHooks{}, g.scheduler.RequestRender)
	g.router.SetGrid(settings.GridSize, settings.SnapToGrid)

	g.overlay = viewport.NewOverlay(g.cam, g.gizmo, g.colliders, g.marquee, entityBounds)

	reg, err := content.LoadRegistry(settings.AssetsDir)
	if err != nil {
		logf("%v", err)
	}
	g.registry = reg

	g.renderer = newSceneRenderer(doc, g.cam, settings.AssetsDir, reg)
	g.renderer.showGrid = settings.ShowGrid
	g.renderer.gridSize = settings.GridSize

	g.clip = newEntityClipboard()

	doc.Subscribe(func() {
		g.scheduler.RequestRender()
		g.docChanged = true
	})

	g.ui = BuildEditorUI(doc, settings.AssetsDir,
		g.gizmo.ModeIDs(),
		func(id string) { g.gizmo.SetActiveMode(id) },
		func(id scene.EntityID, additive bool) {
			if additive {
				doc.AddToSelection(id)
			} else {
				doc.SelectEntity(id)
			}
		},
		g.focusEntity,
		g.newEntity,
		g.moveSelected,
		g.toggleSelectedVisible,
		g.placeBrowsedAsset,
	)

	if w, err := content.NewWatcher(settings.AssetsDir); err != nil {
		logf("asset watcher disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.scheduler.RequestRender()
	return g
}

// focusEntity glides the camera to an entity.
func (g *EditorGame) focusEntity(id scene.EntityID) {
	tr, ok := g.doc.WorldTransform(id)
	if !ok {
		return
	}
	g.cam.GlideTo(tr.Position.X, tr.Position.Y, 0.35)
	g.scheduler.RequestRender()
}

// viewCenter is the world point at the middle of the viewport, where new
// entities land.
func (g *EditorGame) viewCenter() cp.Vector {
	w, h := float64(g.width), float64(g.height)
	if w == 0 || h == 0 {
		w, h = float64(g.settings.WindowWidth), float64(g.settings.WindowHeight)
	}
	x, y := g.cam.ScreenToWorld(w/2, h/2)
	return cp.Vector{X: x, Y: y}
}

// newEntity creates an empty entity at the view center and selects it.
func (g *EditorGame) newEntity() {
	id := g.doc.CreateEntity("entity")
	g.doc.UpdateProperty(id, scene.KindTransform, scene.PropPosition, cp.Vector{}, g.viewCenter())
	g.doc.SelectEntity(id)
}

// placeBrowsedAsset drops the clicked asset into the scene at the view
// center.
func (g *EditorGame) placeBrowsedAsset(a content.Asset) {
	id, err := placeAsset(g.doc, g.settings.AssetsDir, g.registry, a, g.viewCenter())
	if err != nil {
		logf("%v", err)
		return
	}
	logf("placed %s", g.doc.Name(id))
}

// moveSelected shifts the selected entity through the z-order. delta is
// in hierarchy-list steps: -1 toward the back, +1 toward the front.
func (g *EditorGame) moveSelected(delta int) {
	id := g.doc.SelectedEntity()
	if id == scene.None {
		return
	}
	for i, e := range g.doc.Entities() {
		if e == id {
			g.doc.MoveEntity(id, i+delta)
			return
		}
	}
}

func (g *EditorGame) toggleSelectedVisible() {
	id := g.doc.SelectedEntity()
	if id == scene.None {
		return
	}
	g.doc.SetVisible(id, !g.doc.IsEntityVisible(id))
}

func (g *EditorGame) Update() error {
	messages.syncLabel()
	g.ui.UI.Update()

	// When a text widget has focus the user is typing; keep shortcuts and
	// viewport keys away from the router.
	typing := false
	if fw := g.ui.UI.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			typing = true
		}
	}

	if !typing {
		g.forwardKeys()
		g.editorShortcuts()
	}
	g.forwardMouse()
	g.pumpWatcher()

	if g.cam.Update(1.0 / 60) {
		g.scheduler.RequestRender()
	}

	if g.docChanged {
		g.docChanged = false
		g.ui.Hierarchy.Refresh(g.doc)
		g.ui.Hierarchy.SetSelected(g.doc.SelectedEntity())
		if !typing {
			g.ui.Inspector.Bind(g.doc.SelectedEntity())
		}
	} else if cur := g.doc.SelectedEntity(); cur != g.lastEntity {
		g.ui.Hierarchy.SetSelected(cur)
		g.ui.Inspector.Bind(cur)
	}
	g.lastEntity = g.doc.SelectedEntity()

	g.ui.ToolBar.SetMode(g.gizmo.ActiveModeID())
	g.updateCursorShape()
	return nil
}

func (g *EditorGame) forwardKeys() {
	for _, kb := range keyBindings {
		if inpututil.IsKeyJustPressed(kb.eb) {
			g.router.OnKeyDown(kb.vp)
		}
		if inpututil.IsKeyJustReleased(kb.eb) {
			g.router.OnKeyUp(kb.vp)
		}
	}
}

// editorShortcuts handles the application-level keys the router does not
// own: undo/redo, save, copy/paste, focus.
func (g *EditorGame) editorShortcuts() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.doc.Redo()
		} else {
			g.doc.Undo()
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY) {
		g.doc.Redo()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveScene()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.reopenScene()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if ids := g.doc.SelectedEntities(); len(ids) > 0 {
			if err := g.clip.Copy(g.doc, ids); err != nil {
				logf("copy: %v", err)
			} else {
				logf("copied %d entities", len(ids))
			}
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		ids, err := g.clip.Paste(g.doc)
		if err != nil {
			logf("paste: %v", err)
		} else {
			g.doc.SelectEntities(ids)
		}
	}
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if id := g.doc.SelectedEntity(); id != scene.None {
			g.focusEntity(id)
		}
	}
}

func (g *EditorGame) saveScene() {
	if g.scenePath == "" {
		logf("no scene path; start the editor with -scene")
		return
	}
	if err := g.doc.Save(g.scenePath); err != nil {
		logf("save %s: %v", g.scenePath, err)
		return
	}
	g.settings.LastScenePath = g.scenePath
	if err := SaveSettings(g.settingsPath, g.settings); err != nil {
		logf("save settings: %v", err)
	}
	logf("saved %s", g.scenePath)
}

// reopenScene reloads the scene file, discarding unsaved edits.
func (g *EditorGame) reopenScene() {
	if g.scenePath == "" {
		logf("no scene path; start the editor with -scene")
		return
	}
	g.router.Cancel()
	if err := g.doc.Open(g.scenePath); err != nil {
		logf("open %s: %v", g.scenePath, err)
		return
	}
	logf("opened %s", g.scenePath)
}

func (g *EditorGame) forwardMouse() {
	mx, my := ebiten.CursorPosition()
	ev := viewport.MouseEvent{
		X:     float64(mx),
		Y:     float64(my),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	}

	buttons := []struct {
		eb ebiten.MouseButton
		vp viewport.MouseButton
	}{
		{ebiten.MouseButtonLeft, viewport.ButtonLeft},
		{ebiten.MouseButtonMiddle, viewport.ButtonMiddle},
		{ebiten.MouseButtonRight, viewport.ButtonRight},
	}

	for _, b := range buttons {
		// Presses over the UI belong to the UI; releases always reach the
		// router so a drag can't get stuck when the pointer ends on a panel.
		if inpututil.IsMouseButtonJustPressed(b.eb) && !ebuiinput.UIHovered {
			ev.Button = b.vp
			g.router.OnMouseDown(ev)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			ev.Button = b.vp
			g.router.OnMouseUp(ev)
		}
	}

	// Right click reports what's under the cursor in the log panel.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && !ebuiinput.UIHovered {
		if id := g.overlay.EntityAt(g.doc, ev.X, ev.Y); id != scene.None {
			tr, _ := g.doc.WorldTransform(id)
			logf("%s at (%.1f, %.1f)", g.doc.Name(id), tr.Position.X, tr.Position.Y)
		}
	}

	if mx != g.lastMouseX || my != g.lastMouseY {
		g.lastMouseX, g.lastMouseY = mx, my
		ev.Button = viewport.ButtonLeft
		g.router.OnMouseMove(ev)
	}

	// Leaving the window without a button held cancels any stale drag.
	inside := mx >= 0 && my >= 0 && mx < g.width && my < g.height
	if g.cursorInside && !inside {
		held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
		g.router.OnPointerLeave(held)
	}
	g.cursorInside = inside

	if _, dy := ebiten.Wheel(); dy != 0 && !ebuiinput.UIHovered {
		g.router.OnWheel(float64(mx), float64(my), dy)
	}
}

// pumpWatcher drains asset watcher events without blocking the frame.
func (g *EditorGame) pumpWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			logf("asset changed: %s", path)
			// Textures are cached under whatever the sprite referenced:
			// the assets-relative name or its address.
			if rel, err := filepath.Rel(g.settings.AssetsDir, path); err == nil {
				g.renderer.invalidateTexture(rel)
				if addr, ok := g.registry.AddressOf(rel); ok {
					g.renderer.invalidateTexture(addr)
				}
			}
			g.ui.Assets.Refresh()
			g.scheduler.RequestRender()
		case err, ok := <-g.watcher.Errors:
			if ok {
				logf("asset watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *EditorGame) updateCursorShape() {
	cur := g.router.Cursor()
	if ebuiinput.UIHovered {
		cur = viewport.CursorDefault
	}
	if cur == g.lastCursor {
		return
	}
	g.lastCursor = cur

	switch cur {
	case viewport.CursorGrab, viewport.CursorGrabbing, viewport.CursorMove:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	case viewport.CursorEWResize:
		ebiten.SetCursorShape(ebiten.CursorShapeEWResize)
	case viewport.CursorNSResize:
		ebiten.SetCursorShape(ebiten.CursorShapeNSResize)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	if g.sceneImage == nil {
		g.sceneImage = ebiten.NewImage(g.width, g.height)
		g.scheduler.RequestRender()
	}
	if g.scheduler.BeginFrame() {
		g.renderer.Draw(g.sceneImage)
	}
	screen.DrawImage(g.sceneImage, nil)

	// Overlay and UI are cheap; they draw every frame so hover feedback
	// never lags the scheduler.
	g.overlay.Draw(screen, g.doc)
	g.ui.UI.Draw(screen)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.cam.SetViewport(float64(outsideWidth), float64(outsideHeight), 1)
		if g.sceneImage != nil {
			g.sceneImage.Deallocate()
			g.sceneImage = nil
		}
		g.scheduler.RequestRender()
	}
	return outsideWidth, outsideHeight
}
