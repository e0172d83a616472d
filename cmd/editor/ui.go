package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/crowvale/scenedit/content"
	"github.com/crowvale/scenedit/document"
	"github.com/crowvale/scenedit/scene"
)

// EditorUI bundles the built widget tree and the stateful panels the
// game loop talks to.
type EditorUI struct {
	UI        *ebitenui.UI
	ToolBar   *ToolBar
	Hierarchy *HierarchyPanel
	Inspector *InspectorPanel
	Assets    *AssetPanel
}

func BuildEditorUI(
	doc *document.Document,
	assetsDir string,
	modeIDs []string,
	onModeSelected func(id string),
	onEntitySelected func(id scene.EntityID, additive bool),
	onEntityFocused func(id scene.EntityID),
	onNewEntity func(),
	onMoveSelected func(delta int),
	onToggleVisible func(),
	onAssetSelected func(asset content.Asset),
) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, modeIDs, onModeSelected)
	hierarchyContainer, hierarchy := buildHierarchyPanel(ui.PrimaryTheme, &fontFace,
		onEntitySelected, onEntityFocused, onNewEntity, onMoveSelected, onToggleVisible)
	inspectorContainer, inspector := buildInspectorPanel(ui.PrimaryTheme, &fontFace, doc)
	assetContainer, assets := buildAssetPanel(&fontFace, assetsDir, onAssetSelected)
	logPanel := buildLogPanel(&fontFace)

	// Left column: hierarchy over assets.
	leftColumn := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	leftColumn.AddChild(hierarchyContainer)
	leftColumn.AddChild(assetContainer)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftColumn.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	inspectorContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	logPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}
	root.AddChild(leftColumn)
	root.AddChild(inspectorContainer)
	root.AddChild(toolbarContainer)
	root.AddChild(logPanel)

	ui.Container = root
	hierarchy.Refresh(doc)

	return &EditorUI{
		UI:        ui,
		ToolBar:   toolBar,
		Hierarchy: hierarchy,
		Inspector: inspector,
		Assets:    assets,
	}
}
