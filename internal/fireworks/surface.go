// Package fireworks simulates and paints the celebration display: rising
// projectiles that burst into sparks and floating hearts.
package fireworks

import "image/color"

// Surface is the drawing target the entities paint onto.
type Surface interface {
	Size() (width, height float64)
	FillRect(x, y, width, height float64, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
	// FillHeart paints a heart glyph whose bounding box is size wide,
	// centred on (cx, cy).
	FillHeart(cx, cy, size float64, clr color.Color)
}

// Entity is the contract shared by the fixed set of entity kinds.
type Entity interface {
	// Step advances one tick and reports whether the entity has terminated.
	Step() bool
	// Render paints the current state without mutating it.
	Render(s Surface)
}

var (
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Spark)(nil)
	_ Entity = (*Emblem)(nil)
)
