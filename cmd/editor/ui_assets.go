package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/crowvale/scenedit/content"
)

// AssetPanel lists the browsable assets in the assets directory. The
// watcher refreshes it when files change on disk.
type AssetPanel struct {
	list *widget.List
	dir  string
}

// Refresh re-lists the assets directory.
func (ap *AssetPanel) Refresh() {
	if ap == nil || ap.list == nil {
		return
	}
	assets, err := content.List(ap.dir)
	if err != nil {
		logf("refresh assets: %v", err)
		return
	}
	entries := make([]any, len(assets))
	for i, a := range assets {
		entries[i] = a
	}
	ap.list.SetEntries(entries)
}

func buildAssetPanel(fontFace *text.Face, dir string, onAssetSelected func(asset content.Asset)) (*widget.Container, *AssetPanel) {
	ap := &AssetPanel{dir: dir}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 240),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 44, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Assets", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	list := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if a, ok := e.(content.Asset); ok {
				return a.Name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if a, ok := args.Entry.(content.Asset); ok && onAssetSelected != nil {
				onAssetSelected(a)
			}
		}),
	)
	panel.AddChild(list)
	ap.list = list
	ap.Refresh()

	return panel, ap
}
