// Package dodge moves a button away from the pointer whenever the pointer
// comes close to it.
package dodge

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/schedule"
)

// Dodger tracks the avoidance button's rectangle and its transient
// scale/rotation effect.
type Dodger struct {
	X, Y          float64 // top-left
	Width, Height float64
	Scale         float64
	Rotation      float64 // degrees

	threshold   float64
	padding     float64
	revertDelay time.Duration

	elem         config.Element
	viewW, viewH float64
	placed       bool // set once the button has left its layout slot

	queue  *schedule.Queue
	revert *schedule.Handle
	rng    *rand.Rand
	moves  int
}

// New places the button at its layout slot inside a viewW×viewH viewport.
func New(rng *rand.Rand, queue *schedule.Queue, cfg config.DodgeConfig, elem config.Element, viewW, viewH float64) *Dodger {
	d := &Dodger{
		Width:       elem.Width,
		Height:      elem.Height,
		Scale:       1,
		threshold:   cfg.Threshold,
		padding:     cfg.Padding,
		revertDelay: cfg.RevertDelay,
		elem:        elem,
		queue:       queue,
		rng:         rng,
	}
	d.Resize(viewW, viewH)
	return d
}

// Center returns the centre of the button.
func (d *Dodger) Center() (float64, float64) {
	return d.X + d.Width/2, d.Y + d.Height/2
}

// Contains reports whether (px, py) lies on the button.
func (d *Dodger) Contains(px, py float64) bool {
	return px >= d.X && px <= d.X+d.Width && py >= d.Y && py <= d.Y+d.Height
}

// Check relocates the button if (px, py) is closer than the threshold to its
// centre, and reports whether it moved.
func (d *Dodger) Check(px, py float64) bool {
	cx, cy := d.Center()
	if math.Hypot(px-cx, py-cy) >= d.threshold {
		return false
	}
	d.Relocate()
	return true
}

// Relocate jumps to a uniformly random spot that keeps the button padding
// away from every viewport edge, then tilts it briefly.
func (d *Dodger) Relocate() {
	d.X = randomIn(d.rng, d.padding, d.viewW-d.Width-d.padding)
	d.Y = randomIn(d.rng, d.padding, d.viewH-d.Height-d.padding)
	d.placed = true
	d.moves++

	d.Scale = config.DodgeScale
	d.Rotation = (d.rng.Float64() - 0.5) * 2 * config.DodgeMaxRotation

	// a newer move replaces any pending revert
	d.revert.Stop()
	d.revert = d.queue.After(d.revertDelay, func() {
		d.Scale = 1
		d.Rotation = 0
	})

	log.Printf("[Dodge] moved to (%.0f, %.0f)", d.X, d.Y)
}

// Resize updates the viewport. Until its first move the button follows its
// layout slot; afterwards it stays where it jumped to.
func (d *Dodger) Resize(viewW, viewH float64) {
	d.viewW, d.viewH = viewW, viewH
	if !d.placed {
		d.X, d.Y = d.elem.Rect(viewW, viewH)
	}
}

// Stop cancels a pending revert. The button keeps its current tilt.
func (d *Dodger) Stop() {
	d.revert.Stop()
	d.revert = nil
}

// Moves reports how many times the button has relocated.
func (d *Dodger) Moves() int { return d.moves }

// randomIn returns a uniform value in [lo, hi], or lo when the range is empty.
func randomIn(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return rng.Float64()*(hi-lo) + lo
}
