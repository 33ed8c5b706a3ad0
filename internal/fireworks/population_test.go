package fireworks

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
	"github.com/iburimskiy/valentine-fireworks/internal/schedule"
)

func TestExplodeCounts(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		x, y, hue := rng.Float64()*800, rng.Float64()*600, rng.Float64()*360

		sparks, emblems := Explode(rng, x, y, hue, 800, 600)
		if len(sparks) < 50 || len(sparks) > 80 {
			t.Fatalf("seed %d: %d sparks, want [50,80]", seed, len(sparks))
		}
		if len(emblems) != 5 {
			t.Fatalf("seed %d: %d emblems, want 5", seed, len(emblems))
		}
		for _, s := range sparks {
			if s.Hue != hue || s.X != x || s.Y != y {
				t.Fatalf("seed %d: spark does not start at the burst with its hue", seed)
			}
		}
		for _, e := range emblems {
			if math.Abs(e.X-x) > 50 || math.Abs(e.Y-y) > 50 {
				t.Fatalf("seed %d: emblem at (%v,%v) outside 100-unit square around (%v,%v)", seed, e.X, e.Y, x, y)
			}
			if math.Abs(e.Speed) > 2 {
				t.Fatalf("seed %d: emblem speed %v outside [-2,2]", seed, e.Speed)
			}
		}
	}
}

// A falling burst emblem is discarded EmblemEscapeMargin below its own spawn
// point, not near the bottom of the surface.
func TestExplodeEmblemFloorFollowsSpawn(t *testing.T) {
	rng := newTestRand()
	_, emblems := Explode(rng, 400, 100, 30, 800, 600)

	for i, e := range emblems {
		spawnY := e.Y
		if e.Floor != spawnY+config.EmblemEscapeMargin {
			t.Fatalf("emblem %d: floor = %v, want %v", i, e.Floor, spawnY+config.EmblemEscapeMargin)
		}

		e.Speed = -1
		e.Sway = 0
		ticks := 0
		for !e.Step() {
			ticks++
			if ticks > 1000 {
				t.Fatalf("emblem %d never terminated", i)
			}
		}
		if drop := e.Y - spawnY; drop > config.EmblemEscapeMargin+1.5 {
			t.Errorf("emblem %d fell %vpx before terminating, want at most %v", i, drop, config.EmblemEscapeMargin+1)
		}
	}
}

func TestExplodeSparkCountCoversRange(t *testing.T) {
	rng := newTestRand()
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		sparks, _ := Explode(rng, 0, 0, 0, 800, 600)
		seen[len(sparks)] = true
	}
	if !seen[50] || !seen[80] {
		t.Errorf("expected both bounds to be reachable, saw 50=%v 80=%v", seen[50], seen[80])
	}
}

// Viewport 800×600, click at (400,100): the projectile aims at the click and
// bursts exactly once when it arrives.
func TestClickLaunchBurstsOnce(t *testing.T) {
	pop := NewPopulation(newTestRand(), 800, 600)

	var bursts []Point
	pop.OnExplode = func(x, y, hue float64) {
		bursts = append(bursts, Point{X: x, Y: y})
	}

	pop.LaunchAt(400, 100)
	pr := pop.projectiles[0]
	if pr.TargetX != 400 || pr.TargetY != 100 {
		t.Fatalf("target = (%v,%v), want (400,100)", pr.TargetX, pr.TargetY)
	}

	for tick := 0; tick < 200; tick++ {
		before := pop.projectiles
		var last Projectile
		if len(before) == 1 {
			last = before[0]
		}
		pop.Tick()

		n, sparks, emblems := pop.Counts()
		if n == 0 {
			if len(bursts) != 1 {
				t.Fatalf("bursts = %d, want 1", len(bursts))
			}
			// the burst happens where the projectile was after its final step
			wantX, wantY := last.X+last.VX, last.Y+last.VY
			if math.Abs(bursts[0].X-wantX) > 1e-9 || math.Abs(bursts[0].Y-wantY) > 1e-9 {
				t.Errorf("burst at %v, want (%v,%v)", bursts[0], wantX, wantY)
			}
			if math.Hypot(bursts[0].X-400, bursts[0].Y-100) >= config.ProjectileArriveDist {
				t.Errorf("burst at %v is not within %v of the target", bursts[0], config.ProjectileArriveDist)
			}
			if sparks < 50 || sparks > 80 || emblems != 5 {
				t.Errorf("after burst: %d sparks, %d emblems", sparks, emblems)
			}
			break
		}
		if len(bursts) != 0 {
			t.Fatal("burst reported while the projectile is still live")
		}
	}
	if len(bursts) != 1 {
		t.Fatalf("bursts = %d, want 1", len(bursts))
	}

	for i := 0; i < 500; i++ {
		pop.Tick()
	}
	if len(bursts) != 1 {
		t.Errorf("bursts = %d after further ticks, want 1", len(bursts))
	}
}

func TestTickLeavesNoTerminatedEntities(t *testing.T) {
	pop := NewPopulation(newTestRand(), 800, 600)
	for i := 0; i < 20; i++ {
		pop.Launch()
	}

	for tick := 0; tick < 400; tick++ {
		if tick%10 == 0 {
			pop.Launch()
		}
		pop.Tick()

		for _, p := range pop.projectiles {
			if p.Terminated {
				t.Fatalf("tick %d: terminated projectile left behind", tick)
			}
		}
		for _, s := range pop.sparks {
			if s.Terminated || s.Opacity <= 0 {
				t.Fatalf("tick %d: dead spark left behind", tick)
			}
		}
		for _, e := range pop.emblems {
			if e.Terminated {
				t.Fatalf("tick %d: terminated emblem left behind", tick)
			}
		}
	}
}

func TestPopulationDrainsWithoutLaunches(t *testing.T) {
	pop := NewPopulation(newTestRand(), 800, 600)
	for i := 0; i < 5; i++ {
		pop.Launch()
	}
	for i := 0; i < 2000; i++ {
		pop.Tick()
	}
	// slow emblems may linger; projectiles and sparks always run out
	if n, s, _ := pop.Counts(); n+s != 0 {
		t.Errorf("population did not drain: %d projectiles, %d sparks", n, s)
	}
}

func TestClear(t *testing.T) {
	pop := NewPopulation(newTestRand(), 800, 600)
	pop.projectiles = make([]Projectile, 3)
	pop.sparks = make([]Spark, 40)
	pop.emblems = make([]Emblem, 2)

	pop.Clear()
	if n, s, e := pop.Counts(); n+s+e != 0 {
		t.Errorf("Counts after Clear = %d, %d, %d", n, s, e)
	}
}

func TestLimitsEvictOldest(t *testing.T) {
	pop := NewPopulation(newTestRand(), 800, 600)
	pop.SetLimits(config.LimitsConfig{Projectiles: 2})

	pop.LaunchAt(100, 100)
	pop.LaunchAt(200, 100)
	pop.LaunchAt(300, 100)

	if len(pop.projectiles) != 2 {
		t.Fatalf("projectiles = %d, want 2", len(pop.projectiles))
	}
	if pop.projectiles[0].TargetX != 200 || pop.projectiles[1].TargetX != 300 {
		t.Errorf("expected the oldest launch to be evicted, targets = %v, %v",
			pop.projectiles[0].TargetX, pop.projectiles[1].TargetX)
	}
}

func TestUnboundedByDefault(t *testing.T) {
	pop := NewPopulation(newTestRand(), 800, 600)
	for i := 0; i < 1000; i++ {
		pop.LaunchAt(400, 100)
	}
	if n, _, _ := pop.Counts(); n != 1000 {
		t.Errorf("projectiles = %d, want 1000", n)
	}
}

func TestRendererOrder(t *testing.T) {
	pop := NewPopulation(newTestRand(), 800, 600)
	pop.projectiles = []Projectile{NewProjectile(newTestRand(), 800, 600, 400, 100)}
	pop.sparks = []Spark{NewSpark(newTestRand(), 10, 10, 30)}
	pop.emblems = []Emblem{NewEmblem(newTestRand(), 800, 600)}

	surface := newRecordingSurface(800, 600)
	NewRenderer().Render(surface, pop)

	if len(surface.calls) != 4 {
		t.Fatalf("calls = %d, want 4 (fade, projectile head, spark, emblem)", len(surface.calls))
	}

	fade := surface.calls[0]
	if fade.kind != "rect" || fade.x != 0 || fade.y != 0 || fade.size != 800 {
		t.Errorf("first call should cover the surface, got %+v", fade)
	}
	if fade.clr.R != 0 || fade.clr.G != 0 || fade.clr.B != 0 || fade.clr.A != 26 {
		t.Errorf("fade colour = %v, want translucent black", fade.clr)
	}

	wantKinds := []string{"rect", "rect", "circle", "heart"}
	for i, k := range wantKinds {
		if surface.calls[i].kind != k {
			t.Errorf("call %d kind = %s, want %s", i, surface.calls[i].kind, k)
		}
	}
}

func TestProjectileTrailFades(t *testing.T) {
	p := NewProjectile(newTestRand(), 800, 600, 400, 100)
	for i := 0; i < 6; i++ {
		p.Step()
	}

	surface := newRecordingSurface(800, 600)
	p.Render(surface)

	if len(surface.calls) != config.ProjectileTrailLength+1 {
		t.Fatalf("calls = %d, want %d", len(surface.calls), config.ProjectileTrailLength+1)
	}
	for i := 1; i < config.ProjectileTrailLength; i++ {
		if surface.calls[i].clr.A <= surface.calls[i-1].clr.A {
			t.Errorf("trail alpha should grow toward the head: %d then %d",
				surface.calls[i-1].clr.A, surface.calls[i].clr.A)
		}
	}
	head := surface.calls[len(surface.calls)-1]
	if head.clr.A != 255 || head.size != 4 {
		t.Errorf("head = %+v, want opaque 4-unit square", head)
	}
}

func TestFrameDriver(t *testing.T) {
	pop := NewPopulation(newTestRand(), 800, 600)
	pop.Launch()
	d := NewFrameDriver(pop, NewRenderer())
	surface := newRecordingSurface(800, 600)

	if !d.Frame(surface) {
		t.Fatal("running driver should render")
	}
	if d.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", d.Frames())
	}

	d.Stop()
	calls := len(surface.calls)
	if d.Frame(surface) {
		t.Error("stopped driver should not render")
	}
	if len(surface.calls) != calls {
		t.Error("stopped driver painted")
	}

	d.Start()
	if !d.Frame(surface) || d.Frames() != 2 {
		t.Errorf("restarted driver: Frames = %d, want 2", d.Frames())
	}
}

var launchEpoch = time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC)

func TestLauncherStartupBurst(t *testing.T) {
	q := schedule.NewQueue(launchEpoch)
	pop := NewPopulation(newTestRand(), 800, 600)
	cfg := config.Default().Launch
	cfg.Probability = 0
	l := NewLauncher(q, pop, newTestRand(), cfg)
	l.Start()

	wantAt := map[int]int{0: 1, 299: 1, 300: 2, 600: 3, 900: 4, 1200: 5, 5000: 5}
	for _, ms := range []int{0, 299, 300, 600, 900, 1200, 5000} {
		q.Advance(launchEpoch.Add(time.Duration(ms) * time.Millisecond))
		if n, _, _ := pop.Counts(); n != wantAt[ms] {
			t.Errorf("at %dms: %d projectiles, want %d", ms, n, wantAt[ms])
		}
	}
	if !l.Running() {
		t.Error("recurring launches should be scheduled")
	}
}

func TestLauncherRecurringProbability(t *testing.T) {
	q := schedule.NewQueue(launchEpoch)
	pop := NewPopulation(newTestRand(), 800, 600)
	cfg := config.Default().Launch
	cfg.StartupBurst = 0
	cfg.Probability = 1
	l := NewLauncher(q, pop, newTestRand(), cfg)
	l.Start()

	for ms := 100; ms <= 4000; ms += 100 {
		q.Advance(launchEpoch.Add(time.Duration(ms) * time.Millisecond))
	}
	if n, _, _ := pop.Counts(); n != 5 {
		t.Errorf("projectiles = %d, want 5 (one per 800ms)", n)
	}
}

func TestLauncherRecurringSkipsSome(t *testing.T) {
	q := schedule.NewQueue(launchEpoch)
	pop := NewPopulation(newTestRand(), 800, 600)
	cfg := config.Default().Launch
	cfg.StartupBurst = 0
	l := NewLauncher(q, pop, newTestRand(), cfg)
	l.Start()

	const intervals = 1000
	for i := 1; i <= intervals; i++ {
		q.Advance(launchEpoch.Add(time.Duration(i) * cfg.Interval))
	}
	n, _, _ := pop.Counts()
	if n < 600 || n > 800 {
		t.Errorf("launched %d of %d intervals, want roughly 70%%", n, intervals)
	}
}

// Replay after the startup burst, while 3 projectiles, 40 sparks and 2 emblems
// are live: everything is cleared at once, then the 10-launch replay burst and
// a fresh 5-launch startup burst follow over the next 1800ms.
func TestLauncherReplay(t *testing.T) {
	q := schedule.NewQueue(launchEpoch)
	pop := NewPopulation(newTestRand(), 800, 600)
	cfg := config.Default().Launch
	cfg.Probability = 0
	l := NewLauncher(q, pop, newTestRand(), cfg)
	l.Start()

	replayAt := launchEpoch.Add(1200 * time.Millisecond)
	q.Advance(replayAt)
	if n, _, _ := pop.Counts(); n != cfg.StartupBurst {
		t.Fatalf("startup burst launched %d, want %d", n, cfg.StartupBurst)
	}

	pop.projectiles = make([]Projectile, 3)
	pop.sparks = make([]Spark, 40)
	pop.emblems = make([]Emblem, 2)
	oldInterval := l.interval

	l.Replay()
	if n, s, e := pop.Counts(); n+s+e != 0 {
		t.Fatalf("after replay: %d, %d, %d live, want empty", n, s, e)
	}
	if oldInterval.Active() {
		t.Error("previous interval should be stopped")
	}
	if !l.Running() {
		t.Error("a new interval should be running")
	}

	wantAt := map[int]int{0: 2, 1199: 10, 1200: 12, 1799: 14, 1800: 15, 5000: 15}
	for _, ms := range []int{0, 1199, 1200, 1799, 1800, 5000} {
		q.Advance(replayAt.Add(time.Duration(ms) * time.Millisecond))
		if n, _, _ := pop.Counts(); n != wantAt[ms] {
			t.Errorf("%dms after replay: %d projectiles, want %d", ms, n, wantAt[ms])
		}
	}
}

func TestLauncherStop(t *testing.T) {
	q := schedule.NewQueue(launchEpoch)
	pop := NewPopulation(newTestRand(), 800, 600)
	l := NewLauncher(q, pop, newTestRand(), config.Default().Launch)
	l.Start()
	l.Stop()

	q.Advance(launchEpoch.Add(10 * time.Second))
	if n, _, _ := pop.Counts(); n != 0 {
		t.Errorf("stopped launcher launched %d projectiles", n)
	}
	if q.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", q.Pending())
	}
}
