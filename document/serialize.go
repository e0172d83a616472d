package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crowvale/scenedit/scene"
)

// sceneFile is the on-disk scene format. Entities are stored in z-order.
type sceneFile struct {
	Version  int            `json:"version"`
	Entities []entityRecord `json:"entities"`
}

type entityRecord struct {
	Name      string                 `json:"name"`
	Visible   bool                   `json:"visible"`
	Transform scene.Transform        `json:"transform"`
	Sprite    *scene.Sprite          `json:"sprite,omitempty"`
	Box       *scene.BoxCollider     `json:"box_collider,omitempty"`
	Circle    *scene.CircleCollider  `json:"circle_collider,omitempty"`
	Capsule   *scene.CapsuleCollider `json:"capsule_collider,omitempty"`
	Script    *scene.Script          `json:"script,omitempty"`
}

const sceneFileVersion = 1

// Save writes the document to filename as indented JSON, creating parent
// directories as needed.
func (d *Document) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(d.snapshot())
}

// Load reads a scene file and replaces the document's contents. The undo
// history is discarded.
func Load(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sf sceneFile
	if err := json.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", filename, err)
	}
	if sf.Version > sceneFileVersion {
		return nil, fmt.Errorf("scene %s: unsupported version %d", filename, sf.Version)
	}

	d := New()
	d.restore(sf)
	return d, nil
}

// Open replaces the document's contents with the scene in filename.
// Selection and undo history are discarded.
func (d *Document) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var sf sceneFile
	if err := json.NewDecoder(f).Decode(&sf); err != nil {
		return fmt.Errorf("decode scene %s: %w", filename, err)
	}
	if sf.Version > sceneFileVersion {
		return fmt.Errorf("scene %s: unsupported version %d", filename, sf.Version)
	}

	d.order = d.order[:0]
	d.selection = d.selection[:0]
	clear(d.names)
	clear(d.visible)
	clear(d.trans)
	clear(d.sprites)
	clear(d.boxes)
	clear(d.circles)
	clear(d.capsules)
	clear(d.scripts)
	d.restore(sf)
	d.notify()
	return nil
}

func (d *Document) snapshot() sceneFile {
	sf := sceneFile{Version: sceneFileVersion}
	for _, id := range d.order {
		rec := entityRecord{
			Name:    d.names[id],
			Visible: d.visible[id],
		}
		if tr, ok := d.trans[id]; ok {
			rec.Transform = *tr
		}
		rec.Sprite = d.sprites[id]
		rec.Box = d.boxes[id]
		rec.Circle = d.circles[id]
		rec.Capsule = d.capsules[id]
		rec.Script = d.scripts[id]
		sf.Entities = append(sf.Entities, rec)
	}
	return sf
}

func (d *Document) restore(sf sceneFile) {
	for _, rec := range sf.Entities {
		id := d.CreateEntity(rec.Name)
		d.visible[id] = rec.Visible
		tr := rec.Transform
		if tr.Scale.X == 0 && tr.Scale.Y == 0 {
			tr = scene.NewTransform()
		}
		d.trans[id] = &tr
		if rec.Sprite != nil {
			s := *rec.Sprite
			d.sprites[id] = &s
		}
		if rec.Box != nil {
			c := *rec.Box
			d.boxes[id] = &c
		}
		if rec.Circle != nil {
			c := *rec.Circle
			d.circles[id] = &c
		}
		if rec.Capsule != nil {
			c := *rec.Capsule
			d.capsules[id] = &c
		}
		if rec.Script != nil {
			s := *rec.Script
			d.scripts[id] = &s
		}
	}
	d.undo = d.undo[:0]
	d.redo = d.redo[:0]
}
