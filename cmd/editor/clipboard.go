package main

import (
	"encoding/json"
	"fmt"

	"golang.design/x/clipboard"

	"github.com/crowvale/scenedit/document"
	"github.com/crowvale/scenedit/scene"
)

// clipboardEntity is one entity in the copy/paste payload.
type clipboardEntity struct {
	Name      string                 `json:"name"`
	Visible   bool                   `json:"visible"`
	Transform scene.Transform        `json:"transform"`
	Sprite    *scene.Sprite          `json:"sprite,omitempty"`
	Box       *scene.BoxCollider     `json:"box_collider,omitempty"`
	Circle    *scene.CircleCollider  `json:"circle_collider,omitempty"`
	Capsule   *scene.CapsuleCollider `json:"capsule_collider,omitempty"`
	Script    *scene.Script          `json:"script,omitempty"`
}

type clipboardPayload struct {
	Entities []clipboardEntity `json:"entities"`
}

// encodeEntities serializes the given entities into the paste payload.
func encodeEntities(doc *document.Document, ids []scene.EntityID) ([]byte, error) {
	payload := clipboardPayload{}
	for _, id := range ids {
		tr, ok := doc.WorldTransform(id)
		if !ok {
			continue
		}
		e := clipboardEntity{
			Name:      doc.Name(id),
			Visible:   doc.IsEntityVisible(id),
			Transform: tr,
		}
		if s, ok := doc.Sprite(id); ok {
			sc := *s
			e.Sprite = &sc
		}
		if c, ok := doc.BoxCollider(id); ok {
			cc := *c
			e.Box = &cc
		}
		if c, ok := doc.CircleCollider(id); ok {
			cc := *c
			e.Circle = &cc
		}
		if c, ok := doc.CapsuleCollider(id); ok {
			cc := *c
			e.Capsule = &cc
		}
		if s, ok := doc.Script(id); ok {
			sc := *s
			e.Script = &sc
		}
		payload.Entities = append(payload.Entities, e)
	}
	if len(payload.Entities) == 0 {
		return nil, fmt.Errorf("nothing to copy")
	}
	return json.Marshal(payload)
}

// decodeEntities creates the payload's entities in the document and
// returns the new ids, in payload order.
func decodeEntities(doc *document.Document, data []byte) ([]scene.EntityID, error) {
	var payload clipboardPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse clipboard payload: %w", err)
	}
	if len(payload.Entities) == 0 {
		return nil, fmt.Errorf("clipboard payload has no entities")
	}

	ids := make([]scene.EntityID, 0, len(payload.Entities))
	for _, e := range payload.Entities {
		id := doc.CreateEntity(e.Name)
		tr, _ := doc.WorldTransform(id)
		doc.UpdateProperty(id, scene.KindTransform, scene.PropPosition, tr.Position, e.Transform.Position)
		doc.UpdateProperty(id, scene.KindTransform, scene.PropRotation, tr.Rotation, e.Transform.Rotation)
		doc.UpdateProperty(id, scene.KindTransform, scene.PropScale, tr.Scale, e.Transform.Scale)
		doc.SetVisible(id, e.Visible)
		if e.Sprite != nil {
			doc.SetSprite(id, *e.Sprite)
		}
		if e.Box != nil {
			doc.SetBoxCollider(id, *e.Box)
		}
		if e.Circle != nil {
			doc.SetCircleCollider(id, *e.Circle)
		}
		if e.Capsule != nil {
			doc.SetCapsuleCollider(id, *e.Capsule)
		}
		if e.Script != nil {
			doc.SetScript(id, *e.Script)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// entityClipboard copies and pastes entities through the system
// clipboard. Init must succeed before use; without a display the editor
// falls back to an in-process buffer.
type entityClipboard struct {
	system   bool
	fallback []byte
}

func newEntityClipboard() *entityClipboard {
	c := &entityClipboard{}
	if err := clipboard.Init(); err == nil {
		c.system = true
	}
	return c
}

func (c *entityClipboard) Copy(doc *document.Document, ids []scene.EntityID) error {
	data, err := encodeEntities(doc, ids)
	if err != nil {
		return err
	}
	if c.system {
		clipboard.Write(clipboard.FmtText, data)
	} else {
		c.fallback = data
	}
	return nil
}

func (c *entityClipboard) Paste(doc *document.Document) ([]scene.EntityID, error) {
	var data []byte
	if c.system {
		data = clipboard.Read(clipboard.FmtText)
	} else {
		data = c.fallback
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("clipboard is empty")
	}
	return decodeEntities(doc, data)
}
