// Package audio synthesises the explosion sound effects.
package audio

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
)

// Player plays pops through the system speaker. When audio is disabled or the
// device cannot be opened every call is a no-op.
type Player struct {
	rate   beep.SampleRate
	volume float64
	ready  bool
	muted  bool
}

func NewPlayer(cfg config.AudioConfig) *Player {
	p := &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
	}
	if !cfg.Enabled {
		log.Printf("[Audio] disabled")
		return p
	}

	bufferSize := p.rate.N(time.Second / 20)
	if err := speaker.Init(p.rate, bufferSize); err != nil {
		log.Printf("[Audio] speaker unavailable, continuing without sound: %v", err)
		return p
	}
	p.ready = true
	log.Printf("[Audio] speaker ready at %d Hz", cfg.SampleRate)
	return p
}

// Pop plays one explosion sound.
func (p *Player) Pop() {
	if !p.ready || p.muted {
		return
	}
	speaker.Play(NewPop(p.rate, p.volume)...)
}

// ToggleMute flips muting and returns the new state. Muting also cuts any
// sounds already playing.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	if p.muted && p.ready {
		speaker.Clear()
	}
	return p.muted
}

func (p *Player) Muted() bool { return p.muted }

// Close releases the audio device.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
