package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded YAML
// cannot be decoded.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			Gravity:       -0.45,
			JumpForce:     8.8,
			Ground:        0,
			JumpTolerance: 1,
		},
		Speed: Speed{
			Start:        3.5,
			Max:          11,
			Acceleration: 0.0005,
		},
		Spawner: Spawner{
			InitialGap:           100,
			FlyerStartScore:      20,
			FlyerBaseProbability: 0.4,
			FlyerMaxProbability:  0.7,
			FlyerRampScore:       1000,
			ReactionBase:         80,
			ReactionPerSpeed:     8,
			Variance:             400,
			BreatherChance:       0.15,
			BreatherMin:          300,
			BreatherRange:        200,
			VarianceShrinkScore:  3000,
			VarianceShrinkMax:    0.5,
			DespawnMargin:        50,
		},
		Obstacles: ObstacleKinds{
			Ground: Shape{Y: 0, Width: 26, Height: 36, Padding: 6},
			Flying: Shape{Y: 56, Width: 48, Height: 34, Padding: 8},
		},
		Runner: Runner{
			Hitbox: Box{X: 24, Y: 4, Width: 16, Height: 20},
			Sprite: Box{X: 20, Y: 0, Width: 30, Height: 30},
		},
		Timing: Timing{
			FrameRate:     60,
			ScoreInterval: 100 * time.Millisecond,
			FlapInterval:  150 * time.Millisecond,
		},
		Render: Render{
			UnitsPerCol: 6,
			UnitsPerRow: 12,
			CardHeight:  100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
