package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/game"
)

const defaultConfigPath = "config.yaml"

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file (default config.yaml if present)")
	verboseFlag = flag.Bool("verbose", false, "Log every burst and show live entity counts")
	muteFlag    = flag.Bool("mute", false, "Start without sound")
)

func main() {
	flag.Parse()

	path := *configFlag
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fatal(err)
	}

	g, err := game.New(cfg, game.Options{Verbose: *verboseFlag, Mute: *muteFlag})
	if err != nil {
		fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title + " - Esc/Q: Quit, Space: Pause, M: Mute")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		g.Close()
		fatal(err)
	}
}

// fatal reports a setup failure in the log and in a native dialog, then exits.
func fatal(err error) {
	log.Printf("fatal: %v", err)
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Valentine fireworks"), zenity.ErrorIcon); dlgErr != nil {
		log.Printf("could not show error dialog: %v", dlgErr)
	}
	os.Exit(1)
}
