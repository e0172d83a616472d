// Package content is the editor's asset browser model: directory
// listings filtered to known asset types, and a filesystem watcher that
// tells the editor when to refresh them.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AssetKind classifies a browsable file by extension.
type AssetKind int

const (
	KindUnknown AssetKind = iota
	KindImage
	KindScript
	KindScene
)

// Asset is one entry in an asset directory listing.
type Asset struct {
	Name string // file name without directory
	Path string // full path
	Kind AssetKind
}

// KindOf classifies a path by its extension.
func KindOf(path string) AssetKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return KindImage
	case ".tengo":
		return KindScript
	case ".json":
		return KindScene
	}
	return KindUnknown
}

// List returns the browsable assets directly under dir, sorted by name.
// Subdirectories, unrecognized extensions, and the addressable table
// itself are skipped.
func List(dir string) ([]Asset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list assets in %s: %w", dir, err)
	}

	var assets []Asset
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == registryFile {
			continue
		}
		kind := KindOf(entry.Name())
		if kind == KindUnknown {
			continue
		}
		assets = append(assets, Asset{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Kind: kind,
		})
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return assets, nil
}
