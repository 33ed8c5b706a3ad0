package fireworks

import (
	"math/rand"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
)

// Explode produces the burst for a projectile terminating at (x, y).
// Sparks inherit hue; emblems keep their own palette colour. An emblem that
// falls is discarded once it sinks EmblemEscapeMargin below where it spawned.
func Explode(rng *rand.Rand, x, y, hue, width, height float64) ([]Spark, []Emblem) {
	count := config.ExplosionMinSparks + rng.Intn(config.ExplosionMaxSparks-config.ExplosionMinSparks+1)
	sparks := make([]Spark, count)
	for i := range sparks {
		sparks[i] = NewSpark(rng, x, y, hue)
	}

	emblems := make([]Emblem, config.ExplosionEmblems)
	for i := range emblems {
		e := NewEmblem(rng, width, height)
		e.X = x + (rng.Float64()-0.5)*config.ExplosionEmblemArea
		e.Y = y + (rng.Float64()-0.5)*config.ExplosionEmblemArea
		e.Speed = (rng.Float64() - 0.5) * 4
		e.Floor = e.Y + config.EmblemEscapeMargin
		emblems[i] = e
	}
	return sparks, emblems
}
