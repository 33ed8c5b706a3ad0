package scene

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/valentine-fireworks/internal/canvas"
	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/dodge"
	"github.com/iburimskiy/valentine-fireworks/internal/schedule"
)

var (
	choiceBackdrop = color.RGBA{R: 255, G: 228, B: 236, A: 255}
	yesFill        = color.RGBA{R: 233, G: 30, B: 99, A: 255}
	noFill         = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const choiceQuestion = "Will you be my Valentine?"

// Choice asks the question. The "No" button runs from the pointer; "Yes"
// leads to the celebration.
type Choice struct {
	env Env

	yes        *button
	no         *button
	dodger     *dodge.Dodger
	background *Background

	accepted bool
	proceed  *schedule.Handle
	lastTick time.Time
	surface  *canvas.Surface
}

// NewChoice fails if the layout lacks either button.
func NewChoice(env Env) (*Choice, error) {
	elems, err := lookup(env, config.ElementYes, config.ElementNo)
	if err != nil {
		return nil, fmt.Errorf("choice view: %w", err)
	}

	c := &Choice{
		env:        env,
		yes:        newButton(elems[0], yesFill, env.Width, env.Height),
		no:         newButton(elems[1], noFill, env.Width, env.Height),
		dodger:     dodge.New(env.Rand, env.Queue, env.Config.Dodge, elems[1], env.Width, env.Height),
		background: NewBackground(env.Rand, config.BackgroundHearts),
		lastTick:   env.Queue.Now(),
	}
	c.syncNo()
	return c, nil
}

func (c *Choice) HandlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerMove:
		c.dodger.Check(ev.X, ev.Y)
	case PointerPress:
		// a press that lands on "No" only ever moves it
		if c.dodger.Contains(ev.X, ev.Y) {
			c.dodger.Relocate()
			return
		}
		if ev.Touch {
			c.dodger.Check(ev.X, ev.Y)
		}
		if c.yes.contains(ev.X, ev.Y) {
			c.accept()
		}
	}
}

// accept enlarges "Yes" and navigates after a short pause. Repeat presses
// are ignored.
func (c *Choice) accept() {
	if c.accepted {
		return
	}
	c.accepted = true
	c.yes.Scale = config.AcceptScale
	c.yes.Label = "Yay!"
	log.Printf("[Choice] accepted")

	c.proceed = c.env.Queue.After(c.env.Config.Dodge.AcceptDelay, func() {
		if err := c.env.Nav.Navigate(config.AddrCelebration); err != nil {
			log.Printf("[Choice] could not open the celebration: %v", err)
		}
	})
}

// Accepted reports whether "Yes" has been pressed.
func (c *Choice) Accepted() bool { return c.accepted }

func (c *Choice) Update() {
	now := c.env.Queue.Now()
	c.background.Advance(now.Sub(c.lastTick).Seconds())
	c.lastTick = now
	c.syncNo()
}

func (c *Choice) syncNo() {
	c.no.X, c.no.Y = c.dodger.X, c.dodger.Y
	c.no.Scale, c.no.Rotation = c.dodger.Scale, c.dodger.Rotation
}

func (c *Choice) Draw(screen *ebiten.Image) {
	screen.Fill(choiceBackdrop)

	if c.surface == nil || c.surface.Image() != screen {
		c.surface = canvas.New(screen)
	}
	c.background.Render(c.surface)

	textX := int(c.env.Width/2) - len(choiceQuestion)*debugGlyphWidth/2
	textY := int(c.env.Height * 0.4)
	ebitenutil.DebugPrintAt(screen, choiceQuestion, textX, textY)

	c.yes.draw(screen)
	c.no.draw(screen)
}

func (c *Choice) Resize(width, height float64) {
	c.env.Width, c.env.Height = width, height
	c.yes.layout(width, height)
	c.dodger.Resize(width, height)
	c.syncNo()
}

func (c *Choice) Leave() {
	c.proceed.Stop()
	c.dodger.Stop()
}
