package fireworks

import (
	"image/color"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
)

// Renderer paints a population over a translucent veil so earlier frames fade
// into trails instead of being cleared.
type Renderer struct {
	FadeAlpha float64
}

func NewRenderer() Renderer {
	return Renderer{FadeAlpha: config.FadeAlpha}
}

// Render fades the surface, then paints projectiles, sparks and emblems in
// that order.
func (r Renderer) Render(s Surface, p *Population) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h, color.NRGBA{A: alphaByte(r.FadeAlpha)})

	for i := range p.projectiles {
		p.projectiles[i].Render(s)
	}
	for i := range p.sparks {
		p.sparks[i].Render(s)
	}
	for i := range p.emblems {
		p.emblems[i].Render(s)
	}
}
