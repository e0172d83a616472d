package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/content"
	"github.com/crowvale/scenedit/document"
	"github.com/crowvale/scenedit/scene"
)

// placeAsset turns a browsed asset into scene content: an image becomes a
// new sprite entity at the given world position, a script attaches to the
// selected entity. Scene files load through Ctrl+O, not placement.
func placeAsset(doc *document.Document, assetsDir string, reg *content.Registry, a content.Asset, at cp.Vector) (scene.EntityID, error) {
	switch a.Kind {
	case content.KindImage:
		return spawnSpriteEntity(doc, assetsDir, reg, a, at)
	case content.KindScript:
		id := doc.SelectedEntity()
		if id == scene.None {
			return scene.None, fmt.Errorf("select an entity to attach %s to", a.Name)
		}
		doc.SetScript(id, scene.Script{Path: assetRef(assetsDir, reg, a)})
		return id, nil
	}
	return scene.None, fmt.Errorf("%s is not placeable", a.Name)
}

// spawnSpriteEntity creates an entity named after the image, sized to its
// pixel dimensions, positioned at the drop point, and selects it.
func spawnSpriteEntity(doc *document.Document, assetsDir string, reg *content.Registry, a content.Asset, at cp.Vector) (scene.EntityID, error) {
	w, h, err := imageSize(a.Path)
	if err != nil {
		return scene.None, fmt.Errorf("place %s: %w", a.Name, err)
	}
	name := strings.TrimSuffix(a.Name, filepath.Ext(a.Name))
	id := doc.CreateEntity(name)
	doc.SetSprite(id, scene.Sprite{Texture: assetRef(assetsDir, reg, a), Width: w, Height: h})
	doc.UpdateProperty(id, scene.KindTransform, scene.PropPosition, cp.Vector{}, at)
	doc.SelectEntity(id)
	return id, nil
}

// assetRef is how the document refers to an asset: its address when the
// registry has one, the path relative to the assets root otherwise.
func assetRef(assetsDir string, reg *content.Registry, a content.Asset) string {
	rel, err := filepath.Rel(assetsDir, a.Path)
	if err != nil {
		rel = a.Name
	}
	if reg != nil {
		if addr, ok := reg.AddressOf(rel); ok {
			return addr
		}
	}
	return rel
}

// imageSize reads an image's pixel dimensions without decoding pixels.
func imageSize(path string) (w, h float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}
