package main

import (
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/crowvale/scenedit/document"
	"github.com/crowvale/scenedit/scene"
)

// InspectorPanel edits the first selected entity's components through
// the document's property mutator, so every field edit is undoable.
type InspectorPanel struct {
	doc    *document.Document
	entity scene.EntityID
	// suppress guards programmatic SetText calls so syncing the fields
	// doesn't fire their submit handlers.
	suppress bool

	nameInput *widget.TextInput
	posX      *widget.TextInput
	posY      *widget.TextInput
	rotZ      *widget.TextInput
	sclX      *widget.TextInput
	sclY      *widget.TextInput

	boxW    *widget.TextInput
	boxH    *widget.TextInput
	circleR *widget.TextInput
	capR    *widget.TextInput
	capH    *widget.TextInput

	scriptLabel *widget.Label
}

// Bind points the inspector at an entity and refreshes the fields.
// scene.None clears it.
func (ip *InspectorPanel) Bind(id scene.EntityID) {
	ip.entity = id
	ip.Sync()
}

// Sync refreshes every field from the document.
func (ip *InspectorPanel) Sync() {
	ip.suppress = true
	defer func() { ip.suppress = false }()

	tr, ok := ip.doc.WorldTransform(ip.entity)
	if !ok {
		for _, in := range ip.allInputs() {
			in.SetText("")
		}
		ip.scriptLabel.Label = "Script: none"
		return
	}

	ip.nameInput.SetText(ip.doc.Name(ip.entity))
	ip.posX.SetText(formatFloat(tr.Position.X))
	ip.posY.SetText(formatFloat(tr.Position.Y))
	ip.rotZ.SetText(formatFloat(tr.Rotation.EulerZ()))
	ip.sclX.SetText(formatFloat(tr.Scale.X))
	ip.sclY.SetText(formatFloat(tr.Scale.Y))

	ip.boxW.SetText("")
	ip.boxH.SetText("")
	ip.circleR.SetText("")
	ip.capR.SetText("")
	ip.capH.SetText("")
	if c, ok := ip.doc.BoxCollider(ip.entity); ok {
		ip.boxW.SetText(formatFloat(c.Width))
		ip.boxH.SetText(formatFloat(c.Height))
	}
	if c, ok := ip.doc.CircleCollider(ip.entity); ok {
		ip.circleR.SetText(formatFloat(c.Radius))
	}
	if c, ok := ip.doc.CapsuleCollider(ip.entity); ok {
		ip.capR.SetText(formatFloat(c.Radius))
		ip.capH.SetText(formatFloat(c.Height))
	}

	if s, ok := ip.doc.Script(ip.entity); ok {
		ip.scriptLabel.Label = "Script: " + s.Path
	} else {
		ip.scriptLabel.Label = "Script: none"
	}
}

func (ip *InspectorPanel) allInputs() []*widget.TextInput {
	return []*widget.TextInput{
		ip.nameInput, ip.posX, ip.posY, ip.rotZ, ip.sclX, ip.sclY,
		ip.boxW, ip.boxH, ip.circleR, ip.capR, ip.capH,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// applyTransform mutates one transform property from a submitted field.
func (ip *InspectorPanel) applyTransform(property string, axis rune, text string) {
	if ip.suppress {
		return
	}
	tr, ok := ip.doc.WorldTransform(ip.entity)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		logf("bad value %q: %v", text, err)
		ip.Sync()
		return
	}

	switch property {
	case scene.PropPosition:
		next := tr.Position
		if axis == 'x' {
			next.X = v
		} else {
			next.Y = v
		}
		ip.doc.UpdateProperty(ip.entity, scene.KindTransform, property, tr.Position, next)
	case scene.PropRotation:
		ip.doc.UpdateProperty(ip.entity, scene.KindTransform, property, tr.Rotation, scene.FromEulerZ(v))
	case scene.PropScale:
		next := tr.Scale
		if axis == 'x' {
			next.X = v
		} else {
			next.Y = v
		}
		ip.doc.UpdateProperty(ip.entity, scene.KindTransform, property, tr.Scale, next)
	}
}

// applyCollider mutates one collider property from a submitted field.
func (ip *InspectorPanel) applyCollider(kind, property, text string) {
	if ip.suppress {
		return
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		logf("bad value %q: %v", text, err)
		ip.Sync()
		return
	}

	var old float64
	switch kind {
	case scene.KindBoxCollider:
		c, ok := ip.doc.BoxCollider(ip.entity)
		if !ok {
			return
		}
		if property == scene.PropWidth {
			old = c.Width
		} else {
			old = c.Height
		}
	case scene.KindCircleCollider:
		c, ok := ip.doc.CircleCollider(ip.entity)
		if !ok {
			return
		}
		old = c.Radius
	case scene.KindCapsuleCollider:
		c, ok := ip.doc.CapsuleCollider(ip.entity)
		if !ok {
			return
		}
		if property == scene.PropRadius {
			old = c.Radius
		} else {
			old = c.Height
		}
	}
	ip.doc.UpdateProperty(ip.entity, kind, property, old, v)
}

func (ip *InspectorPanel) validateScript() {
	s, ok := ip.doc.Script(ip.entity)
	if !ok {
		logf("entity has no script component")
		return
	}
	if err := document.ValidateScriptFile(s.Path); err != nil {
		logf("script %s: %v", s.Path, err)
		return
	}
	logf("script %s compiled cleanly", s.Path)
}

func addFieldRow(parent *widget.Container, fontFace *text.Face, label string, onSubmit func(text string)) *widget.TextInput {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, fontFace, &widget.LabelColor{Idle: color.Gray{Y: 200}, Disabled: color.Gray{Y: 110}}),
	))
	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 24),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{28, 28, 32, 255}),
			Disabled: solidNineSlice(color.RGBA{50, 50, 56, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Gray{Y: 230},
			Disabled: color.Gray{Y: 120},
			Caret:    color.White,
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			onSubmit(args.InputText)
		}),
	)
	row.AddChild(input)
	parent.AddChild(row)
	return input
}

func buildInspectorPanel(theme *widget.Theme, fontFace *text.Face, doc *document.Document) (*widget.Container, *InspectorPanel) {
	ip := &InspectorPanel{doc: doc, entity: scene.None}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(240, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 44, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Inspector", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	ip.nameInput = addFieldRow(panel, fontFace, "Name", func(text string) {
		if ip.suppress {
			return
		}
		ip.doc.Rename(ip.entity, text)
	})

	ip.posX = addFieldRow(panel, fontFace, "Pos X", func(t string) { ip.applyTransform(scene.PropPosition, 'x', t) })
	ip.posY = addFieldRow(panel, fontFace, "Pos Y", func(t string) { ip.applyTransform(scene.PropPosition, 'y', t) })
	ip.rotZ = addFieldRow(panel, fontFace, "Rot Z", func(t string) { ip.applyTransform(scene.PropRotation, 'z', t) })
	ip.sclX = addFieldRow(panel, fontFace, "Scl X", func(t string) { ip.applyTransform(scene.PropScale, 'x', t) })
	ip.sclY = addFieldRow(panel, fontFace, "Scl Y", func(t string) { ip.applyTransform(scene.PropScale, 'y', t) })

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Collider", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))
	ip.boxW = addFieldRow(panel, fontFace, "Box W", func(t string) { ip.applyCollider(scene.KindBoxCollider, scene.PropWidth, t) })
	ip.boxH = addFieldRow(panel, fontFace, "Box H", func(t string) { ip.applyCollider(scene.KindBoxCollider, scene.PropHeight, t) })
	ip.circleR = addFieldRow(panel, fontFace, "Circle R", func(t string) { ip.applyCollider(scene.KindCircleCollider, scene.PropRadius, t) })
	ip.capR = addFieldRow(panel, fontFace, "Capsule R", func(t string) { ip.applyCollider(scene.KindCapsuleCollider, scene.PropRadius, t) })
	ip.capH = addFieldRow(panel, fontFace, "Capsule H", func(t string) { ip.applyCollider(scene.KindCapsuleCollider, scene.PropHeight, t) })

	ip.scriptLabel = widget.NewLabel(
		widget.LabelOpts.Text("Script: none", fontFace, &widget.LabelColor{Idle: color.Gray{Y: 200}, Disabled: color.Gray{Y: 110}}),
	)
	panel.AddChild(ip.scriptLabel)
	validateBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Validate Script", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ip.validateScript()
		}),
	)
	panel.AddChild(validateBtn)

	return panel, ip
}
