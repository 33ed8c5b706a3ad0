package fireworks

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
)

// Emblem is a heart that drifts upward with a horizontal sway.
type Emblem struct {
	X, Y      float64
	Size      float64
	Speed     float64 // upward, per tick
	Sway      float64 // amplitude
	SwaySpeed float64 // phase increment per tick
	Phase     float64
	Opacity   float64
	Color     color.NRGBA
	// Floor is the lowest y the emblem may reach before it is discarded.
	// Explosion emblems can be given a downward speed.
	Floor      float64
	Terminated bool
}

// NewEmblem creates an emblem just below the bottom edge at a random x.
func NewEmblem(rng *rand.Rand, width, height float64) Emblem {
	palette := config.EmblemPalette
	return Emblem{
		X:         rng.Float64() * width,
		Y:         height + 20,
		Size:      rng.Float64()*config.EmblemSizeRange + config.EmblemMinSize,
		Speed:     rng.Float64()*2 + 1,
		Sway:      rng.Float64()*2 - 1,
		SwaySpeed: rng.Float64()*0.02 + 0.01,
		Phase:     rng.Float64() * math.Pi * 2,
		Opacity:   1,
		Color:     ParseHex(palette[rng.Intn(len(palette))]),
		Floor:     height + config.EmblemEscapeMargin,
	}
}

func (e *Emblem) Step() bool {
	if e.Terminated {
		return true
	}

	e.Y -= e.Speed
	e.X += math.Sin(e.Phase) * e.Sway
	e.Phase += e.SwaySpeed

	if e.Y < -config.EmblemEscapeMargin || e.Y > e.Floor {
		e.Terminated = true
	}
	return e.Terminated
}

func (e *Emblem) Render(s Surface) {
	s.FillHeart(e.X, e.Y, e.Size, WithAlpha(e.Color, e.Opacity))
}
