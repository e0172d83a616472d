package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/crowvale/scenedit/document"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to open")
	assetsDir := flag.String("assets", "", "assets directory (overrides settings)")
	settingsPath := flag.String("settings", "editor_settings.yaml", "editor settings file")
	flag.Parse()

	settings, err := LoadSettings(*settingsPath)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	if *assetsDir != "" {
		settings.AssetsDir = *assetsDir
	}
	if *scenePath == "" {
		*scenePath = settings.LastScenePath
	}

	var doc *document.Document
	if *scenePath != "" {
		doc, err = document.Load(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene %s: %v", *scenePath, err)
		}
		log.Printf("Loaded scene %s", *scenePath)
	} else {
		doc = document.New()
	}

	game := newEditorGame(doc, settings, *settingsPath, *scenePath)

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Scene Editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Failed to run editor: %v", err)
	}
	if game.watcher != nil {
		game.watcher.Close()
	}
}
