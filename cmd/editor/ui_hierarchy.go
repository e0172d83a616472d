package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/crowvale/scenedit/document"
	"github.com/crowvale/scenedit/scene"
)

const doubleClickWindow = 400 * time.Millisecond

// HierarchyEntry is one entity row in the hierarchy list.
type HierarchyEntry struct {
	ID   scene.EntityID
	Name string
}

// HierarchyPanel lists the scene's entities in z-order. Clicking selects,
// shift-clicking extends the selection, double-clicking asks the camera
// to glide to the entity. The control row creates entities, nudges the
// selected one through the z-order, and toggles its visibility.
type HierarchyPanel struct {
	list          *widget.List
	entries       []any
	lastClickTime time.Time
	lastClickID   scene.EntityID
	// suppressEvents guards programmatic selection so document-driven
	// updates don't echo back as user clicks.
	suppressEvents bool

	onSelected func(id scene.EntityID, additive bool)
	onFocus    func(id scene.EntityID)
}

// Refresh rebuilds the list from the document's entity order.
func (hp *HierarchyPanel) Refresh(doc *document.Document) {
	if hp == nil || hp.list == nil {
		return
	}
	hp.suppressEvents = true
	ids := doc.Entities()
	entries := make([]any, len(ids))
	for i, id := range ids {
		name := doc.Name(id)
		if name == "" {
			name = fmt.Sprintf("Entity %d", id)
		}
		if !doc.IsEntityVisible(id) {
			name += " (hidden)"
		}
		entries[i] = HierarchyEntry{ID: id, Name: name}
	}
	hp.entries = entries
	hp.list.SetEntries(entries)
	hp.suppressEvents = false
}

// SetSelected mirrors the document's selection into the list.
func (hp *HierarchyPanel) SetSelected(id scene.EntityID) {
	if hp == nil || hp.list == nil {
		return
	}
	hp.suppressEvents = true
	hp.lastClickID = scene.None
	hp.lastClickTime = time.Time{}
	for _, e := range hp.entries {
		if entry, ok := e.(HierarchyEntry); ok && entry.ID == id {
			hp.list.SetSelectedEntry(e)
			break
		}
	}
	hp.suppressEvents = false
}

func buildHierarchyPanel(
	theme *widget.Theme,
	fontFace *text.Face,
	onSelected func(id scene.EntityID, additive bool),
	onFocus func(id scene.EntityID),
	onNewEntity func(),
	onMoveSelected func(delta int),
	onToggleVisible func(),
) (*widget.Container, *HierarchyPanel) {
	hp := &HierarchyPanel{
		lastClickID: scene.None,
		onSelected:  onSelected,
		onFocus:     onFocus,
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 44, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("Hierarchy", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	panel.AddChild(title)

	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Gray{Y: 230},
		Hover:    color.White,
		Pressed:  color.RGBA{150, 190, 255, 255},
		Disabled: color.Gray{Y: 110},
	}

	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	controlButtons := []struct {
		label   string
		onClick func()
	}{
		{"New", onNewEntity},
		{"Up", func() { onMoveSelected(-1) }},
		{"Down", func() { onMoveSelected(+1) }},
		{"Hide", onToggleVisible},
	}
	for _, cb := range controlButtons {
		click := cb.onClick
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(cb.label, fontFace, buttonTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if click != nil {
					click()
				}
			}),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(48, 28),
			),
		)
		controls.AddChild(btn)
	}
	panel.AddChild(controls)

	list := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(HierarchyEntry); ok {
				return entry.Name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(HierarchyEntry)
			if !ok || hp.suppressEvents {
				return
			}
			now := time.Now()
			if entry.ID == hp.lastClickID && now.Sub(hp.lastClickTime) < doubleClickWindow {
				if hp.onFocus != nil {
					hp.onFocus(entry.ID)
				}
			}
			hp.lastClickID = entry.ID
			hp.lastClickTime = now
			if hp.onSelected != nil {
				hp.onSelected(entry.ID, ebiten.IsKeyPressed(ebiten.KeyShift))
			}
		}),
	)
	panel.AddChild(list)
	hp.list = list

	return panel, hp
}
