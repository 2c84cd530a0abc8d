package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.biorunner/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// An unreadable or invalid custom path is an error; the other locations are
// skipped when missing or broken.
func LoadRunner(customPath string) (RunnerConfig, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultRunnerConfig(), SourceCustom, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".biorunner", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Max = min(cfg.Speed.Max, 8)
		cfg.Speed.Acceleration *= 0.6
		cfg.Spawner.FlyerStartScore = max(cfg.Spawner.FlyerStartScore, 60)
		cfg.Spawner.BreatherChance = max(cfg.Spawner.BreatherChance, 0.25)
	case DifficultyHard:
		cfg.Speed.Start = min(cfg.Speed.Start+1.5, cfg.Speed.Max)
		cfg.Speed.Acceleration *= 1.6
		cfg.Spawner.FlyerStartScore = min(cfg.Spawner.FlyerStartScore, 10)
		cfg.Spawner.BreatherChance *= 0.5
	}
}

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity < 0, "physics.gravity must be negative, got %g", c.Physics.Gravity)
	check(c.Physics.JumpForce > 0, "physics.jump_force must be positive, got %g", c.Physics.JumpForce)
	check(c.Physics.JumpTolerance >= 0, "physics.jump_tolerance must not be negative, got %g", c.Physics.JumpTolerance)

	check(c.Speed.Start > 0, "speed.start must be positive, got %g", c.Speed.Start)
	check(c.Speed.Max >= c.Speed.Start, "speed.max (%g) must be >= speed.start (%g)", c.Speed.Max, c.Speed.Start)
	check(c.Speed.Acceleration >= 0, "speed.acceleration must not be negative, got %g", c.Speed.Acceleration)

	s := c.Spawner
	check(s.FlyerBaseProbability >= 0 && s.FlyerBaseProbability <= 1, "spawner.flyer_base_probability must be in [0,1], got %g", s.FlyerBaseProbability)
	check(s.FlyerMaxProbability >= 0 && s.FlyerMaxProbability <= 1, "spawner.flyer_max_probability must be in [0,1], got %g", s.FlyerMaxProbability)
	check(s.BreatherChance >= 0 && s.BreatherChance <= 1, "spawner.breather_chance must be in [0,1], got %g", s.BreatherChance)
	check(s.Variance >= 0, "spawner.variance must not be negative, got %g", s.Variance)
	check(s.VarianceShrinkMax >= 0 && s.VarianceShrinkMax <= 1, "spawner.variance_shrink_max must be in [0,1], got %g", s.VarianceShrinkMax)
	check(s.DespawnMargin >= 0, "spawner.despawn_margin must not be negative, got %g", s.DespawnMargin)

	for _, kind := range []struct {
		name  string
		shape Shape
	}{{"ground", c.Obstacles.Ground}, {"flying", c.Obstacles.Flying}} {
		check(kind.shape.Width > 0 && kind.shape.Height > 0, "obstacles.%s must have a positive size", kind.name)
		check(2*kind.shape.Padding < kind.shape.Width && 2*kind.shape.Padding < kind.shape.Height,
			"obstacles.%s.padding (%g) leaves no hit area", kind.name, kind.shape.Padding)
	}
	check(c.Runner.Hitbox.Width > 0 && c.Runner.Hitbox.Height > 0, "runner.hitbox must have a positive size")

	check(c.Timing.FrameRate > 0, "timing.frame_rate must be positive, got %d", c.Timing.FrameRate)
	check(c.Timing.ScoreInterval > 0, "timing.score_interval must be positive, got %s", c.Timing.ScoreInterval)
	check(c.Timing.FlapInterval > 0, "timing.flap_interval must be positive, got %s", c.Timing.FlapInterval)
	check(c.Render.UnitsPerCol > 0 && c.Render.UnitsPerRow > 0, "render units per cell must be positive")
	check(c.Render.CardHeight > 0, "render.card_height must be positive, got %g", c.Render.CardHeight)

	return errors.Join(errs...)
}
