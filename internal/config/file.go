package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingElement is returned when a view asks the layout for an element id
// that is not declared.
var ErrMissingElement = errors.New("missing layout element")

// Config holds every tunable that can be overridden from a YAML file.
//
// Example:
//
//	window:
//	  width: 1024
//	  height: 768
//	launch:
//	  interval: 600ms
//	  probability: 0.9
//	audio:
//	  enabled: false
type Config struct {
	Window WindowConfig `yaml:"window"`
	Launch LaunchConfig `yaml:"launch"`
	Dodge  DodgeConfig  `yaml:"dodge"`
	Audio  AudioConfig  `yaml:"audio"`
	Limits LimitsConfig `yaml:"limits"`
	Layout Layout       `yaml:"layout"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LaunchConfig drives the launch timers of the celebration view.
type LaunchConfig struct {
	StartupBurst        int           `yaml:"startupBurst"`
	StartupBurstSpacing time.Duration `yaml:"startupBurstSpacing"`
	Interval            time.Duration `yaml:"interval"`
	Probability         float64       `yaml:"probability"`
	ReplayBurst         int           `yaml:"replayBurst"`
	ReplayBurstSpacing  time.Duration `yaml:"replayBurstSpacing"`
}

type DodgeConfig struct {
	Threshold   float64       `yaml:"threshold"`
	Padding     float64       `yaml:"padding"`
	RevertDelay time.Duration `yaml:"revertDelay"`
	AcceptDelay time.Duration `yaml:"acceptDelay"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"`
}

// LimitsConfig caps live entity counts. Zero means unbounded, which is the
// default; when a cap is hit the oldest entities are evicted first.
type LimitsConfig struct {
	Projectiles int `yaml:"projectiles"`
	Sparks      int `yaml:"sparks"`
	Emblems     int `yaml:"emblems"`
}

// Layout lists the interactive elements the views are built from.
type Layout struct {
	Elements []Element `yaml:"elements"`
}

// Element is a rectangular control anchored at a fraction of the viewport.
// AnchorX/AnchorY locate the element centre.
type Element struct {
	ID      string  `yaml:"id"`
	Label   string  `yaml:"label"`
	AnchorX float64 `yaml:"anchorX"`
	AnchorY float64 `yaml:"anchorY"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Rect returns the top-left corner for the given viewport size.
func (e Element) Rect(viewW, viewH float64) (x, y float64) {
	return viewW*e.AnchorX - e.Width/2, viewH*e.AnchorY - e.Height/2
}

// Element looks up an element by id.
func (l Layout) Element(id string) (Element, error) {
	for _, e := range l.Elements {
		if e.ID == id {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("%w: %q", ErrMissingElement, id)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Launch: LaunchConfig{
			StartupBurst:        StartupBurstCount,
			StartupBurstSpacing: StartupBurstSpacing,
			Interval:            LaunchInterval,
			Probability:         LaunchProbability,
			ReplayBurst:         ReplayBurstCount,
			ReplayBurstSpacing:  ReplayBurstSpacing,
		},
		Dodge: DodgeConfig{
			Threshold:   DodgeThreshold,
			Padding:     DodgePadding,
			RevertDelay: DodgeRevertDelay,
			AcceptDelay: AcceptDelay,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
		Layout: Layout{
			Elements: []Element{
				{ID: ElementYes, Label: "Yes", AnchorX: 0.4, AnchorY: 0.6, Width: 120, Height: 48},
				{ID: ElementNo, Label: "No", AnchorX: 0.6, AnchorY: 0.6, Width: 120, Height: 48},
				{ID: ElementReplay, Label: "Replay", AnchorX: 0.4, AnchorY: 0.92, Width: 140, Height: 40},
				{ID: ElementBack, Label: "Back", AnchorX: 0.6, AnchorY: 0.92, Width: 140, Height: 40},
			},
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the timers and geometry cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Launch.Interval <= 0 {
		return fmt.Errorf("launch interval must be positive, got %v", c.Launch.Interval)
	}
	if c.Launch.StartupBurstSpacing < 0 || c.Launch.ReplayBurstSpacing < 0 {
		return errors.New("burst spacing must not be negative")
	}
	if c.Launch.StartupBurst < 0 || c.Launch.ReplayBurst < 0 {
		return errors.New("burst counts must not be negative")
	}
	if c.Launch.Probability < 0 || c.Launch.Probability > 1 {
		return fmt.Errorf("launch probability must be within [0,1], got %.2f", c.Launch.Probability)
	}
	if c.Dodge.Threshold <= 0 {
		return fmt.Errorf("dodge threshold must be positive, got %.1f", c.Dodge.Threshold)
	}
	if c.Dodge.Padding < 0 {
		return fmt.Errorf("dodge padding must not be negative, got %.1f", c.Dodge.Padding)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 {
		return fmt.Errorf("audio volume must not be negative, got %.2f", c.Audio.Volume)
	}
	if c.Limits.Projectiles < 0 || c.Limits.Sparks < 0 || c.Limits.Emblems < 0 {
		return errors.New("limits must not be negative")
	}

	seen := make(map[string]bool, len(c.Layout.Elements))
	for _, e := range c.Layout.Elements {
		if e.ID == "" {
			return errors.New("layout element without id")
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate layout element %q", e.ID)
		}
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("layout element %q must have a positive size", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
