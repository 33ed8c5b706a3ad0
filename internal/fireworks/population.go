package fireworks

import (
	"math/rand"
	"slices"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
)

// Population owns every live entity. Nothing outside this package holds on to
// an entity past a single tick or draw pass.
type Population struct {
	projectiles []Projectile
	sparks      []Spark
	emblems     []Emblem

	rng    *rand.Rand
	width  float64
	height float64
	limits config.LimitsConfig

	// OnExplode is called once for every projectile that bursts.
	OnExplode func(x, y, hue float64)
}

func NewPopulation(rng *rand.Rand, width, height float64) *Population {
	return &Population{
		rng:    rng,
		width:  width,
		height: height,
	}
}

// SetLimits installs soft caps; zero fields leave a collection unbounded.
func (p *Population) SetLimits(l config.LimitsConfig) {
	p.limits = l
	p.enforceLimits()
}

// Resize updates the surface bounds used by new launches.
func (p *Population) Resize(width, height float64) {
	p.width, p.height = width, height
}

// Launch adds a projectile aimed at a random point in the upper half.
func (p *Population) Launch() {
	x, y := RandomTarget(p.rng, p.width, p.height)
	p.LaunchAt(x, y)
}

// LaunchAt adds a projectile aimed at (x, y). The origin is still random along
// the bottom edge.
func (p *Population) LaunchAt(x, y float64) {
	p.projectiles = append(p.projectiles, NewProjectile(p.rng, p.width, p.height, x, y))
	p.enforceLimits()
}

// Tick advances every entity once and removes the ones that terminated.
// A projectile that terminates bursts exactly once, before it is removed.
func (p *Population) Tick() {
	for i := len(p.projectiles) - 1; i >= 0; i-- {
		pr := &p.projectiles[i]
		if !pr.Step() {
			continue
		}
		p.explode(pr.X, pr.Y, pr.Hue)
		p.projectiles = slices.Delete(p.projectiles, i, i+1)
	}

	p.sparks = reap(p.sparks)
	p.emblems = reap(p.emblems)
	p.enforceLimits()
}

// Clear drops every live entity.
func (p *Population) Clear() {
	p.projectiles = p.projectiles[:0]
	p.sparks = p.sparks[:0]
	p.emblems = p.emblems[:0]
}

// Counts reports the live population of each kind.
func (p *Population) Counts() (projectiles, sparks, emblems int) {
	return len(p.projectiles), len(p.sparks), len(p.emblems)
}

func (p *Population) explode(x, y, hue float64) {
	sparks, emblems := Explode(p.rng, x, y, hue, p.width, p.height)
	p.sparks = append(p.sparks, sparks...)
	p.emblems = append(p.emblems, emblems...)
	if p.OnExplode != nil {
		p.OnExplode(x, y, hue)
	}
}

func (p *Population) enforceLimits() {
	p.projectiles = evictOldest(p.projectiles, p.limits.Projectiles)
	p.sparks = evictOldest(p.sparks, p.limits.Sparks)
	p.emblems = evictOldest(p.emblems, p.limits.Emblems)
}

// reap steps every item in reverse index order and drops the terminated ones.
func reap[T any, PT interface {
	*T
	Entity
}](items []T) []T {
	for i := len(items) - 1; i >= 0; i-- {
		if PT(&items[i]).Step() {
			items = slices.Delete(items, i, i+1)
		}
	}
	return items
}

// evictOldest trims the front of items down to limit; limit <= 0 disables it.
func evictOldest[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return slices.Delete(items, 0, len(items)-limit)
}
