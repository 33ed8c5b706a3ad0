package fireworks

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
)

// Projectile rises from the bottom edge toward a target and bursts on arrival.
type Projectile struct {
	X, Y             float64
	TargetX, TargetY float64
	VX, VY           float64
	Hue              float64
	Brightness       float64
	Trail            Trail
	Terminated       bool
}

// NewProjectile launches from a random point on the bottom edge of a
// width×height surface toward (targetX, targetY) at constant speed.
func NewProjectile(rng *rand.Rand, width, height, targetX, targetY float64) Projectile {
	x := rng.Float64() * width
	y := height
	angle := math.Atan2(targetY-y, targetX-x)

	return Projectile{
		X:          x,
		Y:          y,
		TargetX:    targetX,
		TargetY:    targetY,
		VX:         math.Cos(angle) * config.ProjectileSpeed,
		VY:         math.Sin(angle) * config.ProjectileSpeed,
		Hue:        rng.Float64() * 360,
		Brightness: rng.Float64()*50 + 50,
	}
}

// RandomTarget picks a target in the upper half of the surface, away from the
// side edges.
func RandomTarget(rng *rand.Rand, width, height float64) (x, y float64) {
	x = rng.Float64()*(width-2*config.TargetMarginX) + config.TargetMarginX
	y = rng.Float64()*(height/2) + config.TargetMarginY
	return x, y
}

func (p *Projectile) Step() bool {
	if p.Terminated {
		return true
	}

	p.Trail.Push(Point{X: p.X, Y: p.Y})
	p.X += p.VX
	p.Y += p.VY

	// Velocity never changes, so VY >= 0 means it was never rising at all.
	dist := math.Hypot(p.TargetX-p.X, p.TargetY-p.Y)
	if dist < config.ProjectileArriveDist || p.VY >= 0 {
		p.Terminated = true
	}
	return p.Terminated
}

func (p *Projectile) Render(s Surface) {
	points := p.Trail.Points()
	for i, pt := range points {
		// older points are more transparent
		alpha := float64(i) / float64(len(points))
		s.FillRect(pt.X, pt.Y, 3, 3, hslColor(p.Hue, 100, p.Brightness, alpha))
	}
	s.FillRect(p.X, p.Y, 4, 4, hslColor(p.Hue, 100, p.Brightness, 1))
}
