package fireworks

import "github.com/iburimskiy/valentine-fireworks/internal/config"

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Trail records the last few positions of a projectile in a fixed ring so the
// renderer can draw a fading tail. It is a plain value and copies safely.
type Trail struct {
	buffer    [config.ProjectileTrailLength]Point
	nextIndex int
	size      int
}

// Push appends p, dropping the oldest entry once the ring is full.
func (t *Trail) Push(p Point) {
	t.buffer[t.nextIndex] = p
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.size < len(t.buffer) {
		t.size++
	}
}

// Len reports how many positions are stored.
func (t *Trail) Len() int { return t.size }

// Points returns the stored positions in chronological order (oldest first).
func (t *Trail) Points() []Point {
	out := make([]Point, 0, t.size)
	start := t.nextIndex - t.size
	if start < 0 {
		start += len(t.buffer)
	}
	for i := 0; i < t.size; i++ {
		out = append(out, t.buffer[(start+i)%len(t.buffer)])
	}
	return out
}
