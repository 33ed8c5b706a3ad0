package scene

import (
	"math/rand"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/schedule"
)

var epoch = time.Date(2024, 2, 14, 18, 0, 0, 0, time.UTC)

type recordingNav struct {
	addrs []string
}

func (n *recordingNav) Navigate(addr string) error {
	n.addrs = append(n.addrs, addr)
	return nil
}

type countingSound struct{ pops int }

func (s *countingSound) Pop() { s.pops++ }

func newTestEnv(t *testing.T) (Env, *recordingNav) {
	t.Helper()
	nav := &recordingNav{}
	return Env{
		Config: config.Default(),
		Queue:  schedule.NewQueue(epoch),
		Rand:   rand.New(rand.NewSource(2)),
		Nav:    nav,
		Width:  800,
		Height: 600,
	}, nav
}

func withoutElement(cfg *config.Config, id string) *config.Config {
	var kept []config.Element
	for _, e := range cfg.Layout.Elements {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	cfg.Layout.Elements = kept
	return cfg
}

// stubScene records what the manager does to it.
type stubScene struct {
	name    string
	events  []PointerEvent
	updates int
	left    bool
	width   float64
	onPress func()
}

func (s *stubScene) HandlePointer(ev PointerEvent) {
	s.events = append(s.events, ev)
	if s.onPress != nil && ev.Kind == PointerPress {
		s.onPress()
	}
}
func (s *stubScene) Update() { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) Resize(w, h float64) { s.width = w }
func (s *stubScene) Leave() { s.left = true }
