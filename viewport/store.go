package viewport

import (
	"github.com/crowvale/scenedit/scene"
)

// Store is the slice of the scene document this core reads and mutates.
// *document.Document satisfies it; tests may substitute their own.
//
// Mutators must apply synchronously: when UpdateProperty returns, the
// change (and any subscriber notification) is complete.
type Store interface {
	// Entities returns entity ids in z-order, first drawn first.
	Entities() []scene.EntityID
	WorldTransform(id scene.EntityID) (scene.Transform, bool)
	IsEntityVisible(id scene.EntityID) bool

	SelectedEntities() []scene.EntityID
	SelectedEntity() scene.EntityID
	SelectEntity(id scene.EntityID)
	SelectEntities(ids []scene.EntityID)

	// UpdateProperty mutates one component property. oldValue must be the
	// true previous value so the host can build an inverse operation.
	UpdateProperty(id scene.EntityID, kind, property string, oldValue, newValue any)

	DeleteSelectedEntities()
	DuplicateSelectedEntities()

	BoxCollider(id scene.EntityID) (*scene.BoxCollider, bool)
	CircleCollider(id scene.EntityID) (*scene.CircleCollider, bool)
	CapsuleCollider(id scene.EntityID) (*scene.CapsuleCollider, bool)
}

// BoundsProvider resolves an entity's local bounds (sprite size, collider
// extents, text metrics...). Supplied by the host; returning false skips
// the entity in hit-testing and overlay drawing.
type BoundsProvider func(store Store, id scene.EntityID) (scene.Bounds, bool)
