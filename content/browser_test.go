package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestList(t *testing.T) {
	dir := t.TempDir()
	files := []string{"zebra.png", "alpha.tengo", "level.json", "notes.txt", "photo.JPG", registryFile}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	assets, err := List(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		name string
		kind AssetKind
	}{
		{"alpha.tengo", KindScript},
		{"level.json", KindScene},
		{"photo.JPG", KindImage},
		{"zebra.png", KindImage},
	}
	if len(assets) != len(want) {
		t.Fatalf("len(assets) = %d, want %d: %v", len(assets), len(want), assets)
	}
	for i, w := range want {
		if assets[i].Name != w.name || assets[i].Kind != w.kind {
			t.Errorf("assets[%d] = %+v, want %s (%v)", i, assets[i], w.name, w.kind)
		}
	}
}

func TestListMissingDir(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("List on a missing directory returned nil error")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		path string
		want AssetKind
	}{
		{"a/b/c.png", KindImage},
		{"script.tengo", KindScript},
		{"scene.json", KindScene},
		{"README.md", KindUnknown},
		{"noext", KindUnknown},
	}
	for _, tt := range tests {
		if got := KindOf(tt.path); got != tt.want {
			t.Errorf("KindOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
