package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/orbsurge/pkg/app"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	configPath = flag.String("config", "", "Path to a game config YAML (default: built-in data/orbsurge.yaml)")
	seed       = flag.Int64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Orb Surge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		gameApp.Close()
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
