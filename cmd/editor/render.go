package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	_ "image/jpeg"
	_ "image/png"

	"github.com/crowvale/scenedit/content"
	"github.com/crowvale/scenedit/document"
	"github.com/crowvale/scenedit/scene"
	"github.com/crowvale/scenedit/viewport"
)

const defaultEntitySize = 32.0

var (
	gridColor     = color.RGBA{0x2e, 0x2e, 0x2e, 0xff}
	gridAxisColor = color.RGBA{0x4a, 0x4a, 0x4a, 0xff}
	fallbackColor = color.RGBA{0x9a, 0x6a, 0xd9, 0xff}
)

// sceneRenderer draws the document into the scene image: grid first,
// then entities in z-order. It only runs on frames the scheduler marks
// dirty; the result is cached between them.
type sceneRenderer struct {
	doc      *document.Document
	cam      *viewport.Camera
	assets   string
	registry *content.Registry
	pixel    *ebiten.Image
	textures map[string]*ebiten.Image
	showGrid bool
	gridSize float64
}

func newSceneRenderer(doc *document.Document, cam *viewport.Camera, assetsDir string, registry *content.Registry) *sceneRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &sceneRenderer{
		doc:      doc,
		cam:      cam,
		assets:   assetsDir,
		registry: registry,
		pixel:    pixel,
		textures: map[string]*ebiten.Image{},
		showGrid: true,
		gridSize: 32,
	}
}

// texture loads and caches an image from the assets directory. The name
// is an address when the registry knows it, an assets-relative path
// otherwise. Missing or bad files cache as nil so the error logs once.
func (r *sceneRenderer) texture(name string) *ebiten.Image {
	if img, ok := r.textures[name]; ok {
		return img
	}
	path := name
	if r.registry != nil {
		if p, ok := r.registry.Resolve(name); ok {
			path = p
		}
	}
	f, err := os.Open(filepath.Join(r.assets, path))
	if err != nil {
		logf("load texture %s: %v", name, err)
		r.textures[name] = nil
		return nil
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		logf("decode texture %s: %v", name, err)
		r.textures[name] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	r.textures[name] = img
	return img
}

// invalidateTexture drops a cached texture so the next draw reloads it.
// The asset watcher calls this when a file changes on disk.
func (r *sceneRenderer) invalidateTexture(name string) {
	delete(r.textures, name)
}

func (r *sceneRenderer) Draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{0x1b, 0x1b, 0x1b, 0xff})
	if r.showGrid {
		r.drawGrid(dst)
	}
	for _, id := range r.doc.Entities() {
		if !r.doc.IsEntityVisible(id) {
			continue
		}
		r.drawEntity(dst, id)
	}
}

func (r *sceneRenderer) drawGrid(dst *ebiten.Image) {
	step := r.gridSize
	if step <= 0 {
		return
	}
	// Thin the grid out rather than drawing sub-4px cells when zoomed out.
	for step*r.cam.Zoom < 4 {
		step *= 4
	}

	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())
	left, top := r.cam.ScreenToWorld(0, 0)
	right, bottom := r.cam.ScreenToWorld(float64(w), float64(h))

	for x := floorTo(left, step); x <= right; x += step {
		sx, _ := r.cam.WorldToScreen(x, 0)
		col := gridColor
		if x == 0 {
			col = gridAxisColor
		}
		vector.StrokeLine(dst, float32(sx), 0, float32(sx), h, 1, col, false)
	}
	for y := floorTo(bottom, step); y <= top; y += step {
		_, sy := r.cam.WorldToScreen(0, y)
		col := gridColor
		if y == 0 {
			col = gridAxisColor
		}
		vector.StrokeLine(dst, 0, float32(sy), w, float32(sy), 1, col, false)
	}
}

func floorTo(v, step float64) float64 {
	n := int(v / step)
	f := float64(n) * step
	if f > v {
		f -= step
	}
	return f
}

func (r *sceneRenderer) drawEntity(dst *ebiten.Image, id scene.EntityID) {
	tr, ok := r.doc.WorldTransform(id)
	if !ok {
		return
	}
	sprite, hasSprite := r.doc.Sprite(id)

	w, h := defaultEntitySize, defaultEntitySize
	if hasSprite && sprite.Width > 0 && sprite.Height > 0 {
		w, h = sprite.Width, sprite.Height
	}
	w *= abs(tr.Scale.X)
	h *= abs(tr.Scale.Y)

	// Top-left corner on screen; world y-up.
	sx, sy := r.cam.WorldToScreen(tr.Position.X-w/2, tr.Position.Y+h/2)
	z := r.cam.Zoom

	if hasSprite && sprite.Texture != "" {
		if img := r.texture(sprite.Texture); img != nil {
			iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w*z/float64(iw), h*z/float64(ih))
			op.GeoM.Translate(sx, sy)
			dst.DrawImage(img, op)
			return
		}
	}

	col := fallbackColor
	if hasSprite && sprite.Color != "" {
		if c, err := parseHexColor(sprite.Color); err == nil {
			col = c
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w*z, h*z)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.Scale(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1)
	dst.DrawImage(r.pixel, op)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// parseHexColor parses "#rrggbb" into an opaque color.
func parseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("bad color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("bad color %q: %w", s, err)
	}
	c.A = 0xff
	return c, nil
}

// entityBounds resolves an entity's local bounds for hit-testing and
// outlines: the sprite quad when present, else the collider footprint,
// else a default square so bare transforms stay clickable.
func entityBounds(store viewport.Store, id scene.EntityID) (scene.Bounds, bool) {
	doc, ok := store.(*document.Document)
	if !ok {
		return scene.Bounds{Width: defaultEntitySize, Height: defaultEntitySize}, true
	}
	if s, ok := doc.Sprite(id); ok && s.Width > 0 && s.Height > 0 {
		return scene.Bounds{Width: s.Width, Height: s.Height}, true
	}
	if c, ok := doc.BoxCollider(id); ok {
		return scene.Bounds{Width: c.Width, Height: c.Height, OffsetX: c.Offset.X, OffsetY: c.Offset.Y}, true
	}
	if c, ok := doc.CircleCollider(id); ok {
		return scene.Bounds{Width: c.Radius * 2, Height: c.Radius * 2, OffsetX: c.Offset.X, OffsetY: c.Offset.Y}, true
	}
	if c, ok := doc.CapsuleCollider(id); ok {
		return scene.Bounds{Width: c.Radius * 2, Height: c.Height + c.Radius*2, OffsetX: c.Offset.X, OffsetY: c.Offset.Y}, true
	}
	return scene.Bounds{Width: defaultEntitySize, Height: defaultEntitySize}, true
}
