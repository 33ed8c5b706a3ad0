package config

import "time"

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Will you be my Valentine?"

	// Projectile
	ProjectileSpeed       = 8.0
	ProjectileTrailLength = 5
	ProjectileArriveDist  = 10.0
	TargetMarginX         = 50.0
	TargetMarginY         = 50.0

	// Spark
	SparkFriction   = 0.95
	SparkGravity    = 0.1
	SparkMinSpeed   = 2.0
	SparkSpeedRange = 5.0
	SparkMinDecay   = 0.01
	SparkDecayRange = 0.015
	SparkRadius     = 3.0

	// Explosion
	ExplosionMinSparks  = 50
	ExplosionMaxSparks  = 80
	ExplosionEmblems    = 5
	ExplosionEmblemArea = 100.0

	// Emblem
	EmblemMinSize      = 15.0
	EmblemSizeRange    = 20.0
	EmblemEscapeMargin = 50.0

	// Renderer
	FadeAlpha = 0.1

	// Avoidance button
	DodgeThreshold   = 120.0
	DodgePadding     = 20.0
	DodgeScale       = 0.9
	DodgeMaxRotation = 10.0 // degrees
	DodgeRevertDelay = 200 * time.Millisecond

	// Affirmative button
	AcceptScale = 1.3
	AcceptDelay = 400 * time.Millisecond

	// Background hearts on the choice view
	BackgroundHearts = 15
)

// Launch timing
const (
	StartupBurstCount   = 5
	StartupBurstSpacing = 300 * time.Millisecond
	LaunchInterval      = 800 * time.Millisecond
	LaunchProbability   = 0.7
	ReplayBurstCount    = 10
	ReplayBurstSpacing  = 200 * time.Millisecond
)

// Navigation addresses
const (
	AddrChoice      = "index"
	AddrCelebration = "yes"
)

// Element ids the views look up in the layout.
const (
	ElementNo     = "no-btn"
	ElementYes    = "yes-btn"
	ElementReplay = "replay-btn"
	ElementBack   = "back-btn"
)

// EmblemPalette is the fixed colour set for floating hearts. Explosions never
// tint emblems with their own hue.
var EmblemPalette = []string{"#ff6b9d", "#e91e63", "#ff1744", "#f50057"}

// HeartSymbolPalette colours the decorative hearts behind the choice view.
var HeartSymbolPalette = []string{"#ff6b9d", "#ff8fab", "#ffb3c6", "#f06292", "#ec407a", "#e91e63", "#ffc2d1"}
