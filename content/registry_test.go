package content

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRegistryRoundTrip(t *testing.T) {
	dir := t.TempDir()

	r := NewRegistry(dir)
	r.Assign("player", "sprites/player.png")
	r.Assign("crate", "sprites/crate.png")
	if err := r.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadRegistry(dir)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len = %d, want 2", loaded.Len())
	}
	if path, ok := loaded.Resolve("player"); !ok || path != "sprites/player.png" {
		t.Errorf("Resolve(player) = %q, %v", path, ok)
	}
	if got := loaded.Addresses(); !reflect.DeepEqual(got, []string{"crate", "player"}) {
		t.Errorf("Addresses = %v", got)
	}
}

func TestRegistryMissingFileIsEmpty(t *testing.T) {
	r, err := LoadRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
	if _, ok := r.Resolve("anything"); ok {
		t.Error("empty registry resolved an address")
	}
}

func TestRegistryMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, registryFile), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadRegistry(dir)
	if err == nil {
		t.Error("malformed file returned nil error")
	}
	if r == nil || r.Len() != 0 {
		t.Error("malformed file must still yield a usable empty registry")
	}
}

func TestRegistryReassignAndRemove(t *testing.T) {
	r := NewRegistry(t.TempDir())
	r.Assign("hero", "old/hero.png")
	r.Assign("hero", "new/hero.png")
	if path, _ := r.Resolve("hero"); path != "new/hero.png" {
		t.Errorf("Resolve after reassign = %q", path)
	}
	if addr, ok := r.AddressOf("new/hero.png"); !ok || addr != "hero" {
		t.Errorf("AddressOf = %q, %v", addr, ok)
	}
	r.Remove("hero")
	r.Remove("hero") // no-op
	if r.Len() != 0 {
		t.Errorf("Len after Remove = %d", r.Len())
	}
}
