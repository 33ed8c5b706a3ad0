package scene

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/valentine-fireworks/internal/canvas"
	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/fireworks"
)

var (
	replayFill = color.RGBA{R: 233, G: 30, B: 99, A: 220}
	backFill   = color.RGBA{R: 101, G: 31, B: 255, A: 220}
)

const celebrationBanner = "Yay! Happy Valentine's Day!"

// Celebration runs the fireworks display. Clicking the sky launches a
// projectile at the pointer.
type Celebration struct {
	env Env

	pop      *fireworks.Population
	driver   *fireworks.FrameDriver
	launcher *fireworks.Launcher

	replay *button
	back   *button

	// fireworks accumulate here between frames so they can fade
	canvas  *ebiten.Image
	surface *canvas.Surface
}

// NewCelebration fails if the layout lacks the replay or back button, then
// starts the launch timers.
func NewCelebration(env Env) (*Celebration, error) {
	elems, err := lookup(env, config.ElementReplay, config.ElementBack)
	if err != nil {
		return nil, fmt.Errorf("celebration view: %w", err)
	}

	pop := fireworks.NewPopulation(env.Rand, env.Width, env.Height)
	pop.SetLimits(env.Config.Limits)
	pop.OnExplode = func(x, y, hue float64) {
		if env.Sound != nil {
			env.Sound.Pop()
		}
		if env.Verbose {
			log.Printf("[Celebration] burst at (%.0f, %.0f) hue %.0f", x, y, hue)
		}
	}

	c := &Celebration{
		env:      env,
		pop:      pop,
		driver:   fireworks.NewFrameDriver(pop, fireworks.NewRenderer()),
		launcher: fireworks.NewLauncher(env.Queue, pop, env.Rand, env.Config.Launch),
		replay:   newButton(elems[0], replayFill, env.Width, env.Height),
		back:     newButton(elems[1], backFill, env.Width, env.Height),
	}
	c.launcher.Start()
	return c, nil
}

func (c *Celebration) HandlePointer(ev PointerEvent) {
	if ev.Kind != PointerPress {
		return
	}

	switch {
	case c.replay.contains(ev.X, ev.Y):
		c.Replay()
	case c.back.contains(ev.X, ev.Y):
		if err := c.env.Nav.Navigate(config.AddrChoice); err != nil {
			log.Printf("[Celebration] could not go back: %v", err)
		}
	default:
		c.pop.LaunchAt(ev.X, ev.Y)
	}
}

// Replay clears the sky and fires a bigger burst.
func (c *Celebration) Replay() {
	c.launcher.Replay()
}

// Population exposes the live entity counts.
func (c *Celebration) Population() (projectiles, sparks, emblems int) {
	return c.pop.Counts()
}

// Update runs one simulation tick and paints it onto the fade canvas.
func (c *Celebration) Update() {
	w, h := int(math.Ceil(c.env.Width)), int(math.Ceil(c.env.Height))
	if w <= 0 || h <= 0 {
		return
	}
	if c.canvas == nil {
		c.canvas = ebiten.NewImage(w, h)
		c.canvas.Fill(color.Black)
		c.surface = canvas.New(c.canvas)
	}
	c.driver.Frame(c.surface)
}

func (c *Celebration) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if c.canvas != nil {
		screen.DrawImage(c.canvas, nil)
	}

	textX := int(c.env.Width/2) - len(celebrationBanner)*debugGlyphWidth/2
	ebitenutil.DebugPrintAt(screen, celebrationBanner, textX, int(c.env.Height*0.1))

	c.replay.draw(screen)
	c.back.draw(screen)

	if c.env.Verbose {
		p, s, e := c.pop.Counts()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("projectiles %d  sparks %d  hearts %d  TPS %.0f", p, s, e, ebiten.ActualTPS()), 8, 8)
	}
}

// Resize drops the fade canvas; the accumulated trails are lost.
func (c *Celebration) Resize(width, height float64) {
	c.env.Width, c.env.Height = width, height
	c.pop.Resize(width, height)
	c.replay.layout(width, height)
	c.back.layout(width, height)
	if c.canvas != nil {
		c.canvas.Deallocate()
		c.canvas = nil
		c.surface = nil
	}
}

// TogglePause stops or restarts the frame driver.
func (c *Celebration) TogglePause() bool {
	if c.driver.Running() {
		c.driver.Stop()
		return true
	}
	c.driver.Start()
	return false
}

func (c *Celebration) Leave() {
	c.launcher.Stop()
	c.driver.Stop()
}
