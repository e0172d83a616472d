package scene

import "github.com/jakecoffman/cp"

// Sprite is a textured (or flat-colored) quad attached to an entity.
// Width/Height are the quad size in local unscaled units.
type Sprite struct {
	Texture string  `json:"texture,omitempty"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Color   string  `json:"color,omitempty"` // "#rrggbb", used when Texture is empty
}

// BoxCollider is an axis-aligned box collider in local space.
type BoxCollider struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Offset cp.Vector `json:"offset"`
}

// CircleCollider is a circle collider in local space.
type CircleCollider struct {
	Radius float64   `json:"radius"`
	Offset cp.Vector `json:"offset"`
}

// CapsuleCollider is a vertical capsule: a segment of the given height
// with circular caps of the given radius.
type CapsuleCollider struct {
	Radius float64   `json:"radius"`
	Height float64   `json:"height"`
	Offset cp.Vector `json:"offset"`
}

// Script references a behavior script attached to an entity. Source is
// cached after load so validation doesn't re-read the file.
type Script struct {
	Path   string `json:"path"`
	Source string `json:"-"`
}
