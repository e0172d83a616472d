package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Dark editor palette shared by the panels.
var (
	palettePanel      = color.RGBA{40, 40, 44, 255}
	paletteWell       = color.RGBA{34, 34, 38, 255}
	paletteButton     = color.RGBA{62, 62, 70, 255}
	paletteButtonHot  = color.RGBA{78, 78, 88, 255}
	paletteButtonDown = color.RGBA{50, 50, 58, 255}
	paletteAccent     = color.RGBA{70, 92, 124, 255}
	paletteAccentDim  = color.RGBA{58, 74, 98, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.Gray{Y: 220},
				Selected:            color.White,
				DisabledUnselected:  color.Gray{Y: 110},
				DisabledSelected:    color.Gray{Y: 90},
				SelectingBackground: paletteAccentDim,
				SelectedBackground:  paletteAccent,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(paletteWell),
				Mask: solidNineSlice(paletteWell),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(palettePanel),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(paletteButton),
				Hover:   solidNineSlice(paletteButtonHot),
				Pressed: solidNineSlice(paletteButtonDown),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Gray{Y: 230},
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(paletteButton),
				Hover: solidNineSlice(paletteButtonHot),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{120, 120, 130, 255}),
				Hover:   solidNineSlice(color.RGBA{150, 150, 160, 255}),
				Pressed: solidNineSlice(color.RGBA{100, 100, 110, 255}),
			},
		},
	}
}
