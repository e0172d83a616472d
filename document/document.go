// Package document implements the mutable scene document the editor
// operates on: entity and component storage, z-order, selection,
// visibility, and an undo/redo history built from property mutations.
//
// All methods are synchronous and single-threaded: a mutation completes,
// including subscriber notification, before it returns.
package document

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

const maxUndo = 100

// propOp is one reversible property mutation.
type propOp struct {
	entity   scene.EntityID
	kind     string
	property string
	old      any
	new      any
}

// Document is a scene document. The zero value is not usable; call New.
type Document struct {
	nextID scene.EntityID
	order  []scene.EntityID // z-order, first drawn first (back to front)

	names    map[scene.EntityID]string
	visible  map[scene.EntityID]bool
	trans    map[scene.EntityID]*scene.Transform
	sprites  map[scene.EntityID]*scene.Sprite
	boxes    map[scene.EntityID]*scene.BoxCollider
	circles  map[scene.EntityID]*scene.CircleCollider
	capsules map[scene.EntityID]*scene.CapsuleCollider
	scripts  map[scene.EntityID]*scene.Script

	selection []scene.EntityID // insertion-ordered; membership is what matters

	undo []propOp
	redo []propOp

	subscribers []func()

	// DuplicateOffset is added to duplicated entities' positions so
	// clones don't sit exactly on their originals.
	DuplicateOffset cp.Vector
}

// New creates an empty document.
func New() *Document {
	return &Document{
		names:           make(map[scene.EntityID]string),
		visible:         make(map[scene.EntityID]bool),
		trans:           make(map[scene.EntityID]*scene.Transform),
		sprites:         make(map[scene.EntityID]*scene.Sprite),
		boxes:           make(map[scene.EntityID]*scene.BoxCollider),
		circles:         make(map[scene.EntityID]*scene.CircleCollider),
		capsules:        make(map[scene.EntityID]*scene.CapsuleCollider),
		scripts:         make(map[scene.EntityID]*scene.Script),
		DuplicateOffset: cp.Vector{X: 16, Y: -16},
	}
}

// Subscribe registers fn to run synchronously after every mutation.
func (d *Document) Subscribe(fn func()) {
	d.subscribers = append(d.subscribers, fn)
}

func (d *Document) notify() {
	for _, fn := range d.subscribers {
		fn()
	}
}

// CreateEntity adds an entity at the top of the z-order with a default
// transform and returns its id.
func (d *Document) CreateEntity(name string) scene.EntityID {
	d.nextID++
	id := d.nextID
	d.order = append(d.order, id)
	d.names[id] = name
	d.visible[id] = true
	tr := scene.NewTransform()
	d.trans[id] = &tr
	d.notify()
	return id
}

// DeleteEntity removes an entity and all its components. Deleting an
// unknown id is a no-op.
func (d *Document) DeleteEntity(id scene.EntityID) {
	if _, ok := d.names[id]; !ok {
		return
	}
	for i, e := range d.order {
		if e == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	delete(d.names, id)
	delete(d.visible, id)
	delete(d.trans, id)
	delete(d.sprites, id)
	delete(d.boxes, id)
	delete(d.circles, id)
	delete(d.capsules, id)
	delete(d.scripts, id)
	d.removeFromSelection(id)
	d.notify()
}

// Entities returns the entity ids in z-order (first drawn first).
func (d *Document) Entities() []scene.EntityID {
	out := make([]scene.EntityID, len(d.order))
	copy(out, d.order)
	return out
}

// Exists reports whether the entity is in the document.
func (d *Document) Exists(id scene.EntityID) bool {
	_, ok := d.names[id]
	return ok
}

// Name returns the entity's display name.
func (d *Document) Name(id scene.EntityID) string {
	return d.names[id]
}

// Rename sets the entity's display name.
func (d *Document) Rename(id scene.EntityID, name string) {
	if _, ok := d.names[id]; !ok {
		return
	}
	d.names[id] = name
	d.notify()
}

// MoveEntity moves the entity to the given z-order index, clamped to the
// valid range.
func (d *Document) MoveEntity(id scene.EntityID, index int) {
	from := -1
	for i, e := range d.order {
		if e == id {
			from = i
			break
		}
	}
	if from < 0 {
		return
	}
	d.order = append(d.order[:from], d.order[from+1:]...)
	if index < 0 {
		index = 0
	}
	if index > len(d.order) {
		index = len(d.order)
	}
	d.order = append(d.order[:index], append([]scene.EntityID{id}, d.order[index:]...)...)
	d.notify()
}

// WorldTransform returns the entity's world transform. The second result
// is false when the entity doesn't exist or has no transform.
func (d *Document) WorldTransform(id scene.EntityID) (scene.Transform, bool) {
	tr, ok := d.trans[id]
	if !ok {
		return scene.Transform{}, false
	}
	return *tr, true
}

// IsEntityVisible reports the entity's visibility flag. Unknown entities
// are invisible.
func (d *Document) IsEntityVisible(id scene.EntityID) bool {
	return d.visible[id]
}

// SetVisible sets the entity's visibility flag.
func (d *Document) SetVisible(id scene.EntityID, v bool) {
	if _, ok := d.names[id]; !ok {
		return
	}
	d.visible[id] = v
	d.notify()
}

// --- components ---

// SetSprite attaches (or replaces) a sprite component.
func (d *Document) SetSprite(id scene.EntityID, s scene.Sprite) {
	if !d.Exists(id) {
		return
	}
	d.sprites[id] = &s
	d.notify()
}

// Sprite returns the entity's sprite component, if any.
func (d *Document) Sprite(id scene.EntityID) (*scene.Sprite, bool) {
	s, ok := d.sprites[id]
	return s, ok
}

// SetBoxCollider attaches (or replaces) a box collider.
func (d *Document) SetBoxCollider(id scene.EntityID, c scene.BoxCollider) {
	if !d.Exists(id) {
		return
	}
	d.boxes[id] = &c
	d.notify()
}

// BoxCollider returns the entity's box collider, if any.
func (d *Document) BoxCollider(id scene.EntityID) (*scene.BoxCollider, bool) {
	c, ok := d.boxes[id]
	return c, ok
}

// SetCircleCollider attaches (or replaces) a circle collider.
func (d *Document) SetCircleCollider(id scene.EntityID, c scene.CircleCollider) {
	if !d.Exists(id) {
		return
	}
	d.circles[id] = &c
	d.notify()
}

// CircleCollider returns the entity's circle collider, if any.
func (d *Document) CircleCollider(id scene.EntityID) (*scene.CircleCollider, bool) {
	c, ok := d.circles[id]
	return c, ok
}

// SetCapsuleCollider attaches (or replaces) a capsule collider.
func (d *Document) SetCapsuleCollider(id scene.EntityID, c scene.CapsuleCollider) {
	if !d.Exists(id) {
		return
	}
	d.capsules[id] = &c
	d.notify()
}

// CapsuleCollider returns the entity's capsule collider, if any.
func (d *Document) CapsuleCollider(id scene.EntityID) (*scene.CapsuleCollider, bool) {
	c, ok := d.capsules[id]
	return c, ok
}

// SetScript attaches (or replaces) a script component.
func (d *Document) SetScript(id scene.EntityID, s scene.Script) {
	if !d.Exists(id) {
		return
	}
	d.scripts[id] = &s
	d.notify()
}

// Script returns the entity's script component, if any.
func (d *Document) Script(id scene.EntityID) (*scene.Script, bool) {
	s, ok := d.scripts[id]
	return s, ok
}

// --- selection ---

// SelectedEntities returns the selected ids in selection order.
func (d *Document) SelectedEntities() []scene.EntityID {
	out := make([]scene.EntityID, len(d.selection))
	copy(out, d.selection)
	return out
}

// SelectedEntity returns the first selected entity, or scene.None.
func (d *Document) SelectedEntity() scene.EntityID {
	if len(d.selection) == 0 {
		return scene.None
	}
	return d.selection[0]
}

// IsSelected reports whether the entity is in the selection.
func (d *Document) IsSelected(id scene.EntityID) bool {
	for _, e := range d.selection {
		if e == id {
			return true
		}
	}
	return false
}

// SelectEntity replaces the selection with a single entity. Passing
// scene.None clears the selection.
func (d *Document) SelectEntity(id scene.EntityID) {
	d.selection = d.selection[:0]
	if id != scene.None && d.Exists(id) {
		d.selection = append(d.selection, id)
	}
	d.notify()
}

// SelectEntities replaces the selection. Unknown ids and duplicates are
// dropped.
func (d *Document) SelectEntities(ids []scene.EntityID) {
	d.selection = d.selection[:0]
	seen := make(map[scene.EntityID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup || !d.Exists(id) {
			continue
		}
		seen[id] = struct{}{}
		d.selection = append(d.selection, id)
	}
	d.notify()
}

// AddToSelection adds an entity to the selection if not already present.
func (d *Document) AddToSelection(id scene.EntityID) {
	if !d.Exists(id) || d.IsSelected(id) {
		return
	}
	d.selection = append(d.selection, id)
	d.notify()
}

func (d *Document) removeFromSelection(id scene.EntityID) {
	for i, e := range d.selection {
		if e == id {
			d.selection = append(d.selection[:i], d.selection[i+1:]...)
			return
		}
	}
}

// --- property mutation and history ---

// UpdateProperty applies a property mutation and records it on the undo
// stack. oldValue must be the true previous value so the inverse
// operation restores it exactly. Mutating a missing entity or an unknown
// component/property pair is a silent no-op.
func (d *Document) UpdateProperty(id scene.EntityID, kind, property string, oldValue, newValue any) {
	if !d.Exists(id) {
		return
	}
	if !d.setProperty(id, kind, property, newValue) {
		return
	}
	d.undo = append(d.undo, propOp{entity: id, kind: kind, property: property, old: oldValue, new: newValue})
	if len(d.undo) > maxUndo {
		d.undo = d.undo[len(d.undo)-maxUndo:]
	}
	d.redo = d.redo[:0]
	d.notify()
}

// CanUndo reports whether an undo step is available.
func (d *Document) CanUndo() bool { return len(d.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (d *Document) CanRedo() bool { return len(d.redo) > 0 }

// Undo reverts the most recent property mutation.
func (d *Document) Undo() {
	if len(d.undo) == 0 {
		return
	}
	op := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	d.setProperty(op.entity, op.kind, op.property, op.old)
	d.redo = append(d.redo, op)
	d.notify()
}

// Redo re-applies the most recently undone mutation.
func (d *Document) Redo() {
	if len(d.redo) == 0 {
		return
	}
	op := d.redo[len(d.redo)-1]
	d.redo = d.redo[:len(d.redo)-1]
	d.setProperty(op.entity, op.kind, op.property, op.new)
	d.undo = append(d.undo, op)
	d.notify()
}

// setProperty writes a property value. Returns false when the target
// component or property doesn't exist or the value has the wrong type.
func (d *Document) setProperty(id scene.EntityID, kind, property string, value any) bool {
	switch kind {
	case scene.KindTransform:
		tr, ok := d.trans[id]
		if !ok {
			return false
		}
		switch property {
		case scene.PropPosition:
			v, ok := value.(cp.Vector)
			if !ok {
				return false
			}
			tr.Position = v
		case scene.PropRotation:
			v, ok := value.(scene.Quat)
			if !ok {
				return false
			}
			tr.Rotation = v
		case scene.PropScale:
			v, ok := value.(cp.Vector)
			if !ok {
				return false
			}
			tr.Scale = v
		default:
			return false
		}
		return true
	case scene.KindSprite:
		s, ok := d.sprites[id]
		if !ok {
			return false
		}
		return setSpriteProp(s, property, value)
	case scene.KindBoxCollider:
		c, ok := d.boxes[id]
		if !ok {
			return false
		}
		return setBoxProp(c, property, value)
	case scene.KindCircleCollider:
		c, ok := d.circles[id]
		if !ok {
			return false
		}
		return setCircleProp(c, property, value)
	case scene.KindCapsuleCollider:
		c, ok := d.capsules[id]
		if !ok {
			return false
		}
		return setCapsuleProp(c, property, value)
	case scene.KindScript:
		s, ok := d.scripts[id]
		if !ok {
			return false
		}
		if property != scene.PropPath {
			return false
		}
		v, ok := value.(string)
		if !ok {
			return false
		}
		s.Path = v
		return true
	}
	return false
}

func setSpriteProp(s *scene.Sprite, property string, value any) bool {
	switch property {
	case scene.PropTexture:
		v, ok := value.(string)
		if !ok {
			return false
		}
		s.Texture = v
	case scene.PropColor:
		v, ok := value.(string)
		if !ok {
			return false
		}
		s.Color = v
	case scene.PropWidth:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		s.Width = v
	case scene.PropHeight:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		s.Height = v
	default:
		return false
	}
	return true
}

func setBoxProp(c *scene.BoxCollider, property string, value any) bool {
	switch property {
	case scene.PropWidth:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		c.Width = v
	case scene.PropHeight:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		c.Height = v
	case scene.PropOffset:
		v, ok := value.(cp.Vector)
		if !ok {
			return false
		}
		c.Offset = v
	default:
		return false
	}
	return true
}

func setCircleProp(c *scene.CircleCollider, property string, value any) bool {
	switch property {
	case scene.PropRadius:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		c.Radius = v
	case scene.PropOffset:
		v, ok := value.(cp.Vector)
		if !ok {
			return false
		}
		c.Offset = v
	default:
		return false
	}
	return true
}

func setCapsuleProp(c *scene.CapsuleCollider, property string, value any) bool {
	switch property {
	case scene.PropRadius:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		c.Radius = v
	case scene.PropHeight:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		c.Height = v
	case scene.PropOffset:
		v, ok := value.(cp.Vector)
		if !ok {
			return false
		}
		c.Offset = v
	default:
		return false
	}
	return true
}

// --- bulk operations ---

// DeleteSelectedEntities removes every selected entity.
func (d *Document) DeleteSelectedEntities() {
	ids := d.SelectedEntities()
	for _, id := range ids {
		d.DeleteEntity(id)
	}
}

// DuplicateSelectedEntities clones the selected entities (components and
// all), offsets the clones by DuplicateOffset, and selects them.
func (d *Document) DuplicateSelectedEntities() {
	ids := d.SelectedEntities()
	if len(ids) == 0 {
		return
	}
	clones := make([]scene.EntityID, 0, len(ids))
	for _, id := range ids {
		if !d.Exists(id) {
			continue
		}
		clone := d.CreateEntity(fmt.Sprintf("%s copy", d.names[id]))
		if tr, ok := d.trans[id]; ok {
			c := *tr
			c.Position = c.Position.Add(d.DuplicateOffset)
			d.trans[clone] = &c
		}
		d.visible[clone] = d.visible[id]
		if s, ok := d.sprites[id]; ok {
			c := *s
			d.sprites[clone] = &c
		}
		if b, ok := d.boxes[id]; ok {
			c := *b
			d.boxes[clone] = &c
		}
		if ci, ok := d.circles[id]; ok {
			c := *ci
			d.circles[clone] = &c
		}
		if ca, ok := d.capsules[id]; ok {
			c := *ca
			d.capsules[clone] = &c
		}
		if sc, ok := d.scripts[id]; ok {
			c := *sc
			d.scripts[clone] = &c
		}
		clones = append(clones, clone)
	}
	d.SelectEntities(clones)
}
