// Package scene holds the data types shared between the scene document
// and the editor viewport: entity ids, transforms, local bounds, and the
// component/property vocabulary used by property mutations.
package scene

import "github.com/jakecoffman/cp"

// EntityID identifies an entity in a scene document. Zero means "no entity".
type EntityID int

// None is the zero EntityID.
const None EntityID = 0

// Transform is an entity's world transform. World space is y-up; screen
// space is y-down, and the viewport camera owns that flip.
type Transform struct {
	Position cp.Vector `json:"position"`
	Rotation Quat      `json:"rotation"`
	Scale    cp.Vector `json:"scale"`
}

// NewTransform returns a transform at the origin with identity rotation
// and unit scale.
func NewTransform() Transform {
	return Transform{
		Rotation: IdentityQuat(),
		Scale:    cp.Vector{X: 1, Y: 1},
	}
}

// Bounds describes an entity's footprint in its local, unscaled space,
// relative to the pivot. Width and Height are never negative; offsets
// default to zero.
type Bounds struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Component kinds understood by UpdateProperty.
const (
	KindTransform       = "transform"
	KindSprite          = "sprite"
	KindBoxCollider     = "boxCollider"
	KindCircleCollider  = "circleCollider"
	KindCapsuleCollider = "capsuleCollider"
	KindScript          = "script"
)

// Property names understood by UpdateProperty.
const (
	PropPosition = "position"
	PropRotation = "rotation"
	PropScale    = "scale"
	PropWidth    = "width"
	PropHeight   = "height"
	PropRadius   = "radius"
	PropOffset   = "offset"
	PropTexture  = "texture"
	PropColor    = "color"
	PropPath     = "path"
)
