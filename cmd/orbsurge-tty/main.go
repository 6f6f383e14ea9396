// orbsurge-tty 在终端中运行 Orb Surge（需要支持鼠标的终端）
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/game"
	"github.com/decker502/orbsurge/pkg/tty"
)

var (
	configPath = flag.String("config", "", "Path to a game config YAML (default: built-in values)")
	seed       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	logFile    = flag.String("log", "", "Write logs to this file (terminal output is reserved for the game)")
	mute       = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	cfg := config.LoadGameConfigOrDefault(*configPath)
	if *mute {
		cfg.Audio.SoundEnabled = false
	}

	sound := tty.NewSound(cfg.Audio)
	defer sound.Close()

	session := game.NewSession(game.SessionOptions{
		Config:  cfg,
		Rand:    rand.New(rand.NewSource(s)),
		Store:   game.OpenBestScoreStore(game.AppName),
		OnEvent: sound.HandleEvent,
	})
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	tty.New(screen, session).Run()
}
