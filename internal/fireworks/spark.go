package fireworks

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
)

// Spark is an explosion fragment slowed by friction, pulled by gravity and
// fading at its own decay rate.
type Spark struct {
	X, Y       float64
	VX, VY     float64
	Hue        float64
	Brightness float64
	Opacity    float64
	Decay      float64
	Terminated bool
}

// NewSpark flings a spark from (x, y) in a random direction.
func NewSpark(rng *rand.Rand, x, y, hue float64) Spark {
	angle := rng.Float64() * math.Pi * 2
	speed := rng.Float64()*config.SparkSpeedRange + config.SparkMinSpeed

	return Spark{
		X:          x,
		Y:          y,
		VX:         math.Cos(angle) * speed,
		VY:         math.Sin(angle) * speed,
		Hue:        hue,
		Brightness: rng.Float64()*50 + 50,
		Opacity:    1,
		Decay:      rng.Float64()*config.SparkDecayRange + config.SparkMinDecay,
	}
}

func (s *Spark) Step() bool {
	if s.Terminated {
		return true
	}

	s.VX *= config.SparkFriction
	s.VY *= config.SparkFriction
	s.VY += config.SparkGravity
	s.X += s.VX
	s.Y += s.VY
	s.Opacity -= s.Decay

	if s.Opacity <= 0 {
		s.Terminated = true
	}
	return s.Terminated
}

func (s *Spark) Render(dst Surface) {
	dst.FillCircle(s.X, s.Y, config.SparkRadius, hslColor(s.Hue, 100, s.Brightness, s.Opacity))
}
