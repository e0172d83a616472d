package viewport

import (
	"github.com/jakecoffman/cp"

	"github.com/crowvale/scenedit/scene"
)

// propCall records one UpdateProperty invocation.
type propCall struct {
	id       scene.EntityID
	kind     string
	property string
	oldValue any
	newValue any
}

// fakeStore is an in-memory Store for exercising the controllers without
// a document. Mutations apply synchronously, matching the contract.
type fakeStore struct {
	order      []scene.EntityID
	transforms map[scene.EntityID]scene.Transform
	hidden     map[scene.EntityID]bool
	boxes      map[scene.EntityID]*scene.BoxCollider
	circles    map[scene.EntityID]*scene.CircleCollider
	capsules   map[scene.EntityID]*scene.CapsuleCollider
	selection  []scene.EntityID

	calls      []propCall
	deletes    int
	duplicates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		transforms: map[scene.EntityID]scene.Transform{},
		hidden:     map[scene.EntityID]bool{},
		boxes:      map[scene.EntityID]*scene.BoxCollider{},
		circles:    map[scene.EntityID]*scene.CircleCollider{},
		capsules:   map[scene.EntityID]*scene.CapsuleCollider{},
	}
}

func (f *fakeStore) addEntity(id scene.EntityID, x, y float64) {
	f.order = append(f.order, id)
	tr := scene.NewTransform()
	tr.Position = cp.Vector{X: x, Y: y}
	f.transforms[id] = tr
}

func (f *fakeStore) Entities() []scene.EntityID { return f.order }

func (f *fakeStore) WorldTransform(id scene.EntityID) (scene.Transform, bool) {
	tr, ok := f.transforms[id]
	return tr, ok
}

func (f *fakeStore) IsEntityVisible(id scene.EntityID) bool { return !f.hidden[id] }

func (f *fakeStore) SelectedEntities() []scene.EntityID { return f.selection }

func (f *fakeStore) SelectedEntity() scene.EntityID {
	if len(f.selection) == 0 {
		return scene.None
	}
	return f.selection[0]
}

func (f *fakeStore) SelectEntity(id scene.EntityID) { f.selection = []scene.EntityID{id} }

func (f *fakeStore) SelectEntities(ids []scene.EntityID) { f.selection = ids }

func (f *fakeStore) UpdateProperty(id scene.EntityID, kind, property string, oldValue, newValue any) {
	f.calls = append(f.calls, propCall{id, kind, property, oldValue, newValue})

	switch kind {
	case scene.KindTransform:
		tr := f.transforms[id]
		switch property {
		case scene.PropPosition:
			tr.Position = newValue.(cp.Vector)
		case scene.PropRotation:
			tr.Rotation = newValue.(scene.Quat)
		case scene.PropScale:
			tr.Scale = newValue.(cp.Vector)
		}
		f.transforms[id] = tr
	case scene.KindBoxCollider:
		switch property {
		case scene.PropWidth:
			f.boxes[id].Width = newValue.(float64)
		case scene.PropHeight:
			f.boxes[id].Height = newValue.(float64)
		}
	case scene.KindCircleCollider:
		f.circles[id].Radius = newValue.(float64)
	case scene.KindCapsuleCollider:
		switch property {
		case scene.PropRadius:
			f.capsules[id].Radius = newValue.(float64)
		case scene.PropHeight:
			f.capsules[id].Height = newValue.(float64)
		}
	}
}

func (f *fakeStore) DeleteSelectedEntities() {
	f.deletes++
	for _, id := range f.selection {
		delete(f.transforms, id)
		for i, o := range f.order {
			if o == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
	f.selection = nil
}

func (f *fakeStore) DuplicateSelectedEntities() { f.duplicates++ }

func (f *fakeStore) BoxCollider(id scene.EntityID) (*scene.BoxCollider, bool) {
	b, ok := f.boxes[id]
	return b, ok
}

func (f *fakeStore) CircleCollider(id scene.EntityID) (*scene.CircleCollider, bool) {
	c, ok := f.circles[id]
	return c, ok
}

func (f *fakeStore) CapsuleCollider(id scene.EntityID) (*scene.CapsuleCollider, bool) {
	c, ok := f.capsules[id]
	return c, ok
}

var _ Store = (*fakeStore)(nil)

// fixedBounds resolves every entity to the same w×h centered box.
func fixedBounds(w, h float64) BoundsProvider {
	return func(Store, scene.EntityID) (scene.Bounds, bool) {
		return scene.Bounds{Width: w, Height: h}, true
	}
}

func approxEqual(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	return diff < epsilon && diff > -epsilon
}
