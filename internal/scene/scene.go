// Package scene hosts the two views, the choice screen and the fireworks
// celebration, and switches between them by address.
package scene

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/schedule"
)

// Scene is one view. Only the active scene receives input, updates and draws.
type Scene interface {
	HandlePointer(ev PointerEvent)
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height float64)
	// Leave cancels the scene's timers before another scene takes over.
	Leave()
}

// Pausable scenes can freeze their animation.
type Pausable interface {
	TogglePause() bool
}

// Navigator switches the active scene.
type Navigator interface {
	Navigate(addr string) error
}

// Sound receives explosion cues.
type Sound interface {
	Pop()
}

// Env is everything a scene is built from.
type Env struct {
	Config  *config.Config
	Queue   *schedule.Queue
	Rand    *rand.Rand
	Nav     Navigator
	Sound   Sound
	Width   float64
	Height  float64
	Verbose bool
}

// Factory builds a scene. It fails when a required layout element is missing.
type Factory func(env Env) (Scene, error)

// Manager owns the active scene.
type Manager struct {
	env       Env
	factories map[string]Factory
	current   Scene
	addr      string
	err       error
}

func NewManager(env Env) *Manager {
	m := &Manager{
		env:       env,
		factories: make(map[string]Factory),
	}
	m.env.Nav = m
	return m
}

// Register binds a factory to an address.
func (m *Manager) Register(addr string, f Factory) {
	m.factories[addr] = f
}

// Navigate builds the scene for addr and makes it active. If construction
// fails the current scene stays active and the error is kept for Err.
func (m *Manager) Navigate(addr string) error {
	f, ok := m.factories[addr]
	if !ok {
		return m.fail(fmt.Errorf("navigate: unknown address %q", addr))
	}

	next, err := f(m.env)
	if err != nil {
		return m.fail(fmt.Errorf("navigate to %q: %w", addr, err))
	}

	if m.current != nil {
		m.current.Leave()
	}
	m.current = next
	m.addr = addr
	log.Printf("[Scene] switched to %q", addr)
	return nil
}

func (m *Manager) fail(err error) error {
	if m.err == nil {
		m.err = err
	}
	log.Printf("[Scene] %v", err)
	return err
}

// Err returns the first navigation failure.
func (m *Manager) Err() error { return m.err }

// Current returns the active scene and its address.
func (m *Manager) Current() (Scene, string) { return m.current, m.addr }

// Update dispatches input and advances the active scene. Input stops flowing
// to a scene once it has navigated away.
func (m *Manager) Update(events []PointerEvent) {
	if m.current == nil {
		return
	}
	cur := m.current
	for _, ev := range events {
		cur.HandlePointer(ev)
		if m.current != cur {
			break
		}
	}
	m.current.Update()
}

func (m *Manager) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}

// Resize records the viewport for future scenes and forwards it to the
// active one.
func (m *Manager) Resize(width, height float64) {
	m.env.Width, m.env.Height = width, height
	if m.current != nil {
		m.current.Resize(width, height)
	}
}

// TogglePause pauses the active scene if it supports pausing.
func (m *Manager) TogglePause() (paused bool, ok bool) {
	p, ok := m.current.(Pausable)
	if !ok {
		return false, false
	}
	return p.TogglePause(), true
}

var errNoConfig = errors.New("scene env has no config")

func lookup(env Env, ids ...string) ([]config.Element, error) {
	if env.Config == nil {
		return nil, errNoConfig
	}
	elems := make([]config.Element, len(ids))
	for i, id := range ids {
		e, err := env.Config.Layout.Element(id)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return elems, nil
}
