package fireworks

// FrameDriver performs one simulation tick followed by one render pass per
// display frame, until stopped.
type FrameDriver struct {
	pop      *Population
	renderer Renderer
	running  bool
	frames   uint64
}

func NewFrameDriver(pop *Population, renderer Renderer) *FrameDriver {
	return &FrameDriver{
		pop:      pop,
		renderer: renderer,
		running:  true,
	}
}

// Frame ticks and renders onto s. It reports false without doing anything
// while the driver is stopped.
func (d *FrameDriver) Frame(s Surface) bool {
	if !d.running {
		return false
	}
	d.pop.Tick()
	d.renderer.Render(s, d.pop)
	d.frames++
	return true
}

func (d *FrameDriver) Start() { d.running = true }
func (d *FrameDriver) Stop() { d.running = false }

func (d *FrameDriver) Running() bool { return d.running }
func (d *FrameDriver) Frames() uint64 { return d.frames }
