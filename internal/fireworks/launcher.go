package fireworks

import (
	"log"
	"math/rand"
	"time"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/schedule"
)

// Launcher feeds projectiles into a population on wall-clock timers: a
// startup burst, then a recurring launch that fires with a fixed probability.
type Launcher struct {
	queue *schedule.Queue
	pop   *Population
	rng   *rand.Rand
	cfg   config.LaunchConfig

	interval *schedule.Handle
	bursts   []*schedule.Handle
}

func NewLauncher(queue *schedule.Queue, pop *Population, rng *rand.Rand, cfg config.LaunchConfig) *Launcher {
	return &Launcher{
		queue: queue,
		pop:   pop,
		rng:   rng,
		cfg:   cfg,
	}
}

// Start schedules the startup burst and the recurring launches.
func (l *Launcher) Start() {
	l.burst(l.cfg.StartupBurst, l.cfg.StartupBurstSpacing)
	l.startInterval()
}

// Replay clears the display, fires a larger burst and restarts the launch
// timers from scratch, startup burst included. Bursts already in flight keep
// firing.
func (l *Launcher) Replay() {
	l.pop.Clear()
	l.interval.Stop()
	l.burst(l.cfg.ReplayBurst, l.cfg.ReplayBurstSpacing)
	l.Start()
	log.Printf("[Launcher] replay: %d launches over %v", l.cfg.ReplayBurst, time.Duration(max(l.cfg.ReplayBurst-1, 0))*l.cfg.ReplayBurstSpacing)
}

// Stop cancels every pending launch.
func (l *Launcher) Stop() {
	l.interval.Stop()
	l.interval = nil
	for _, h := range l.bursts {
		h.Stop()
	}
	l.bursts = nil
}

// Running reports whether recurring launches are scheduled.
func (l *Launcher) Running() bool {
	return l.interval.Active()
}

func (l *Launcher) burst(count int, spacing time.Duration) {
	live := l.bursts[:0]
	for _, h := range l.bursts {
		if h.Active() {
			live = append(live, h)
		}
	}
	l.bursts = live

	for i := 0; i < count; i++ {
		l.bursts = append(l.bursts, l.queue.After(time.Duration(i)*spacing, l.pop.Launch))
	}
}

func (l *Launcher) startInterval() {
	l.interval = l.queue.Every(l.cfg.Interval, func() {
		if l.rng.Float64() < l.cfg.Probability {
			l.pop.Launch()
		}
	})
}
