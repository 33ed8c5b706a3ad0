// Package game wires the scenes, timers and sound into an ebiten.Game.
package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/valentine-fireworks/internal/audio"
	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/scene"
	"github.com/iburimskiy/valentine-fireworks/internal/schedule"
)

// Options tweak a Game beyond its config file.
type Options struct {
	Verbose bool
	Mute    bool
	// Now supplies wall-clock time; nil means time.Now.
	Now func() time.Time
}

type Game struct {
	cfg     *config.Config
	queue   *schedule.Queue
	scenes  *scene.Manager
	pointer scene.PointerTracker
	sound   *audio.Player
	now     func() time.Time

	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// New builds the game and opens the choice view. It fails if the view
// cannot be set up.
func New(cfg *config.Config, opts Options) (*Game, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	audioCfg := cfg.Audio
	if opts.Mute {
		audioCfg.Enabled = false
	}

	g := &Game{
		cfg:     cfg,
		queue:   schedule.NewQueue(now()),
		sound:   audio.NewPlayer(audioCfg),
		now:     now,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		prevKey: map[ebiten.Key]bool{},
	}

	g.scenes = scene.NewManager(scene.Env{
		Config:  cfg,
		Queue:   g.queue,
		Rand:    rand.New(rand.NewSource(now().UnixNano())),
		Sound:   g.sound,
		Width:   float64(g.width),
		Height:  float64(g.height),
		Verbose: opts.Verbose,
	})
	g.scenes.Register(config.AddrChoice, func(env scene.Env) (scene.Scene, error) {
		return scene.NewChoice(env)
	})
	g.scenes.Register(config.AddrCelebration, func(env scene.Env) (scene.Scene, error) {
		return scene.NewCelebration(env)
	})

	if err := g.scenes.Navigate(config.AddrChoice); err != nil {
		g.sound.Close()
		return nil, fmt.Errorf("failed to open the first view: %w", err)
	}
	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		if paused, ok := g.scenes.TogglePause(); ok {
			log.Printf("[Game] paused: %v", paused)
		}
	}
	if justPressed(ebiten.KeyM) {
		log.Printf("[Game] muted: %v", g.sound.ToggleMute())
	}

	g.queue.Advance(g.now())
	g.scenes.Update(g.pointer.Poll())

	if err := g.scenes.Err(); err != nil {
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen)
}

// Layout follows the window size so the views always fill it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scenes.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Close releases the audio device.
func (g *Game) Close() {
	g.sound.Close()
}
