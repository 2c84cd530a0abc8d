// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the runner simulation.
package config

import "time"

// RunnerConfig contains every tunable of the runner simulation.
type RunnerConfig struct {
	Physics   Physics       `yaml:"physics"`
	Speed     Speed         `yaml:"speed"`
	Spawner   Spawner       `yaml:"spawner"`
	Obstacles ObstacleKinds `yaml:"obstacles"`
	Runner    Runner        `yaml:"runner"`
	Timing    Timing        `yaml:"timing"`
	Render    Render        `yaml:"render"`
}

// Physics defines the runner's vertical motion.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`        // Per-tick acceleration, negative
	JumpForce     float64 `yaml:"jump_force"`     // Velocity set by a jump, positive
	Ground        float64 `yaml:"ground"`         // Ground line offset
	JumpTolerance float64 `yaml:"jump_tolerance"` // Height above ground that still allows a jump
}

// Speed defines the world scroll speed curve.
type Speed struct {
	Start        float64 `yaml:"start"`
	Max          float64 `yaml:"max"`
	Acceleration float64 `yaml:"acceleration"` // Added every frame tick
}

// Spawner defines obstacle placement and the difficulty curve.
type Spawner struct {
	InitialGap           float64 `yaml:"initial_gap"`
	FlyerStartScore      int     `yaml:"flyer_start_score"`
	FlyerBaseProbability float64 `yaml:"flyer_base_probability"`
	FlyerMaxProbability  float64 `yaml:"flyer_max_probability"`
	FlyerRampScore       int     `yaml:"flyer_ramp_score"`
	ReactionBase         float64 `yaml:"reaction_base"`
	ReactionPerSpeed     float64 `yaml:"reaction_per_speed"`
	Variance             float64 `yaml:"variance"`
	BreatherChance       float64 `yaml:"breather_chance"`
	BreatherMin          float64 `yaml:"breather_min"`
	BreatherRange        float64 `yaml:"breather_range"`
	VarianceShrinkScore  int     `yaml:"variance_shrink_score"` // Score at which shrink reaches its cap
	VarianceShrinkMax    float64 `yaml:"variance_shrink_max"`
	DespawnMargin        float64 `yaml:"despawn_margin"`
}

// ObstacleKinds holds the fixed geometry of each obstacle kind.
type ObstacleKinds struct {
	Ground Shape `yaml:"ground"`
	Flying Shape `yaml:"flying"`
}

// Shape is the geometry and collision padding of one obstacle kind.
type Shape struct {
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// Runner holds the runner's hitbox and sprite bounds.
type Runner struct {
	Hitbox Box `yaml:"hitbox"` // Y is relative to the runner's offset
	Sprite Box `yaml:"sprite"`
}

// Box is a rectangle in world units.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Timing defines the two independent clocks.
type Timing struct {
	FrameRate     int           `yaml:"frame_rate"`
	ScoreInterval time.Duration `yaml:"score_interval"`
	FlapInterval  time.Duration `yaml:"flap_interval"`
}

// Render defines how world units map onto terminal cells.
type Render struct {
	UnitsPerCol float64 `yaml:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row"`
	CardHeight  float64 `yaml:"card_height"` // World units visible above the ground line
}

// FramesPerScoreTick returns how many frame ticks fit in one score interval.
// Used by hosts that drive both clocks from a single loop.
func (t Timing) FramesPerScoreTick() int {
	if t.FrameRate <= 0 || t.ScoreInterval <= 0 {
		return 1
	}
	n := int(t.ScoreInterval * time.Duration(t.FrameRate) / time.Second)
	return max(n, 1)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string onto a preset. Unknown or empty strings
// yield "" which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
