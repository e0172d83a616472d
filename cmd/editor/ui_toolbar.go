package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ToolBar is the radio group of gizmo mode buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	modeIDs []string
}

// SetMode activates the button for the given mode id without firing the
// selection callback twice (the radio group handles re-selection).
func (tb *ToolBar) SetMode(id string) {
	if tb == nil || tb.group == nil {
		return
	}
	for i, mid := range tb.modeIDs {
		if mid == id {
			tb.group.SetActive(tb.buttons[i])
			return
		}
	}
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, modeIDs []string, onModeSelected func(id string)) (*widget.Container, *ToolBar) {
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Gray{Y: 230},
		Hover:    color.White,
		Pressed:  color.RGBA{150, 190, 255, 255},
		Disabled: color.Gray{Y: 110},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{34, 34, 40, 240})),
	)

	var buttons []*widget.Button
	for _, id := range modeIDs {
		name := strings.ToUpper(id[:1]) + id[1:]
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(name, fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 40),
			),
		)
		buttons = append(buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onModeSelected == nil {
				return
			}
			for idx, b := range buttons {
				if args.Active == b {
					onModeSelected(modeIDs[idx])
					return
				}
			}
		}),
	)

	if len(buttons) > 0 {
		group.SetActive(buttons[0])
	}

	return toolbar, &ToolBar{group: group, buttons: buttons, modeIDs: modeIDs}
}
