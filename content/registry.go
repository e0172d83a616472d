package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// registryFile is the addressable table's file name under the assets root.
const registryFile = "addressables.json"

const registryVersion = 1

type registryData struct {
	Version   int               `json:"version"`
	Addresses map[string]string `json:"addresses"`
}

// Registry is the addressable-asset table: stable string addresses mapped
// to paths relative to the assets root. A scene that references a sprite
// by address keeps working when the file moves; reassigning the address
// is the only edit needed.
type Registry struct {
	dir     string
	entries map[string]string
}

// NewRegistry creates an empty registry rooted at the assets directory.
func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir, entries: make(map[string]string)}
}

// LoadRegistry reads the addressable table from the assets directory. A
// missing file yields an empty registry; a malformed one yields an empty
// registry and the error.
func LoadRegistry(dir string) (*Registry, error) {
	r := NewRegistry(dir)
	data, err := os.ReadFile(filepath.Join(dir, registryFile))
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return r, fmt.Errorf("load addressables: %w", err)
	}
	var rd registryData
	if err := json.Unmarshal(data, &rd); err != nil {
		return r, fmt.Errorf("load addressables: %w", err)
	}
	if rd.Version != registryVersion {
		return r, fmt.Errorf("load addressables: unsupported version %d", rd.Version)
	}
	for addr, path := range rd.Addresses {
		r.entries[addr] = path
	}
	return r, nil
}

// Save writes the addressable table next to the assets it names.
func (r *Registry) Save() error {
	rd := registryData{Version: registryVersion, Addresses: r.entries}
	data, err := json.MarshalIndent(&rd, "", "  ")
	if err != nil {
		return fmt.Errorf("save addressables: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, registryFile), data, 0o644); err != nil {
		return fmt.Errorf("save addressables: %w", err)
	}
	return nil
}

// Resolve returns the relative path an address points at.
func (r *Registry) Resolve(address string) (string, bool) {
	path, ok := r.entries[address]
	return path, ok
}

// AddressOf returns the address assigned to a relative path, if any.
func (r *Registry) AddressOf(relPath string) (string, bool) {
	for addr, path := range r.entries {
		if path == relPath {
			return addr, true
		}
	}
	return "", false
}

// Assign points an address at a relative path, replacing any previous
// assignment of that address.
func (r *Registry) Assign(address, relPath string) {
	r.entries[address] = relPath
}

// Remove deletes an address. Removing an unknown address is a no-op.
func (r *Registry) Remove(address string) {
	delete(r.entries, address)
}

// Addresses returns every assigned address, sorted.
func (r *Registry) Addresses() []string {
	out := make([]string, 0, len(r.entries))
	for addr := range r.entries {
		out = append(out, addr)
	}
	sort.Strings(out)
	return out
}

// Len is the number of assigned addresses.
func (r *Registry) Len() int {
	return len(r.entries)
}
