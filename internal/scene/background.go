package scene

import (
	"image/color"
	"math/rand"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/fireworks"
)

const (
	heartPeakOpacity = 0.7
	heartFadeSpan    = 0.1 // fraction of the cycle spent fading in or out
	heartOvershoot   = 100.0
)

// floatingHeart loops from below the bottom edge to above the top.
type floatingHeart struct {
	x        float64 // fraction of viewport width
	size     float64
	duration float64 // seconds per cycle
	delay    float64 // seconds before the first cycle
	color    color.NRGBA
}

// state returns the heart's y and opacity at elapsed seconds, or ok=false
// before its first cycle starts.
func (h floatingHeart) state(elapsed, height float64) (y, alpha float64, ok bool) {
	t := elapsed - h.delay
	if t < 0 {
		return 0, 0, false
	}
	cycles := t / h.duration
	p := cycles - float64(int(cycles))

	y = height - p*(height+heartOvershoot)
	switch {
	case p < heartFadeSpan:
		alpha = p / heartFadeSpan * heartPeakOpacity
	case p > 1-heartFadeSpan:
		alpha = (1 - p) / heartFadeSpan * heartPeakOpacity
	default:
		alpha = heartPeakOpacity
	}
	return y, alpha, true
}

// Background draws decorative hearts drifting up behind the choice view.
type Background struct {
	hearts  []floatingHeart
	elapsed float64
}

func NewBackground(rng *rand.Rand, count int) *Background {
	palette := config.HeartSymbolPalette
	hearts := make([]floatingHeart, count)
	for i := range hearts {
		hearts[i] = floatingHeart{
			x:        rng.Float64(),
			size:     15 + rng.Float64()*25,
			duration: 8 + rng.Float64()*10,
			delay:    rng.Float64() * 5,
			color:    fireworks.ParseHex(palette[rng.Intn(len(palette))]),
		}
	}
	return &Background{hearts: hearts}
}

// Advance moves the animation clock forward by dt seconds.
func (b *Background) Advance(dt float64) {
	if dt > 0 {
		b.elapsed += dt
	}
}

func (b *Background) Render(s fireworks.Surface) {
	w, h := s.Size()
	for _, heart := range b.hearts {
		y, alpha, ok := heart.state(b.elapsed, h)
		if !ok {
			continue
		}
		s.FillHeart(heart.x*w, y, heart.size, fireworks.WithAlpha(heart.color, alpha))
	}
}
