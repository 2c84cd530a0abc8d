package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultRunnerConfig() diverge:\nyaml: %+v\ncode: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, src, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg.Physics.JumpForce != 8.8 {
		t.Errorf("JumpForce = %g, expected 8.8", cfg.Physics.JumpForce)
	}
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	writeFile(t, filepath.Join(work, "configs", "runner.yaml"), "speed:\n  max: 9\n")

	cfg, src, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if src != SourceLocal || cfg.Speed.Max != 9 {
		t.Errorf("expected local config (max 9), got source %q max %g", src, cfg.Speed.Max)
	}

	// User config takes precedence over ./configs
	writeFile(t, filepath.Join(home, ".biorunner", "runner.yaml"), "speed:\n  max: 10\n")

	cfg, src, err = LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if src != SourceUser || cfg.Speed.Max != 10 {
		t.Errorf("expected user config (max 10), got source %q max %g", src, cfg.Speed.Max)
	}
}

func TestLoadRunnerCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, path, "physics:\n  jump_force: 9.5\ntiming:\n  score_interval: 250ms\n")

	cfg, src, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner(%s) failed: %v", path, err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Physics.JumpForce != 9.5 {
		t.Errorf("JumpForce = %g, expected 9.5", cfg.Physics.JumpForce)
	}
	if cfg.Timing.ScoreInterval != 250*time.Millisecond {
		t.Errorf("ScoreInterval = %s, expected 250ms", cfg.Timing.ScoreInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != -0.45 {
		t.Errorf("Gravity = %g, expected default -0.45", cfg.Physics.Gravity)
	}
}

func TestLoadRunnerCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "physics: [not, a, map\n")
	if _, _, err := LoadRunner(broken); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "physics:\n  gravity: 0.45\n")
	_, _, err := LoadRunner(invalid)
	if err == nil || !strings.Contains(err.Error(), "gravity") {
		t.Errorf("expected gravity validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunnerConfig)
		wantErr string
	}{
		{"defaults", func(*RunnerConfig) {}, ""},
		{"positive gravity", func(c *RunnerConfig) { c.Physics.Gravity = 1 }, "gravity"},
		{"zero jump", func(c *RunnerConfig) { c.Physics.JumpForce = 0 }, "jump_force"},
		{"max below start", func(c *RunnerConfig) { c.Speed.Max = 1 }, "speed.max"},
		{"probability above one", func(c *RunnerConfig) { c.Spawner.FlyerMaxProbability = 1.5 }, "flyer_max_probability"},
		{"padding swallows obstacle", func(c *RunnerConfig) { c.Obstacles.Flying.Padding = 20 }, "obstacles.flying.padding"},
		{"zero frame rate", func(c *RunnerConfig) { c.Timing.FrameRate = 0 }, "frame_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	easy := DefaultRunnerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Speed.Max >= base.Speed.Max {
		t.Errorf("easy should lower max speed, got %g", easy.Speed.Max)
	}
	if easy.Spawner.FlyerStartScore <= base.Spawner.FlyerStartScore {
		t.Errorf("easy should delay flyers, got %d", easy.Spawner.FlyerStartScore)
	}

	hard := DefaultRunnerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Speed.Start <= base.Speed.Start || hard.Speed.Acceleration <= base.Speed.Acceleration {
		t.Errorf("hard should start faster and accelerate harder, got %+v", hard.Speed)
	}

	normal := DefaultRunnerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}

	for _, cfg := range []RunnerConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestRamp(t *testing.T) {
	r := DefaultRunnerConfig().Spawner.FlyerRamp()

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.4},
		{20, 0.4},
		{520, 0.55},
		{1020, 0.7},
		{5000, 0.7},
	}
	for _, tc := range tests {
		if got := r.At(tc.score); !approx(got, tc.want) {
			t.Errorf("At(%d) = %g, expected %g", tc.score, got, tc.want)
		}
	}

	if got := (Ramp{From: 1, To: 2, Span: 0}).At(5); got != 2 {
		t.Errorf("zero span should jump to To, got %g", got)
	}
}

func TestVarianceShrink(t *testing.T) {
	s := DefaultRunnerConfig().Spawner

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{300, 0.1},
		{1500, 0.5},
		{3000, 0.5},
		{90000, 0.5},
	}
	for _, tc := range tests {
		if got := s.VarianceShrink(tc.score); !approx(got, tc.want) {
			t.Errorf("VarianceShrink(%d) = %g, expected %g", tc.score, got, tc.want)
		}
	}
}

func TestFramesPerScoreTick(t *testing.T) {
	tm := DefaultRunnerConfig().Timing
	if got := tm.FramesPerScoreTick(); got != 6 {
		t.Errorf("FramesPerScoreTick() = %d, expected 6", got)
	}

	tm.ScoreInterval = time.Millisecond
	if got := tm.FramesPerScoreTick(); got != 1 {
		t.Errorf("sub-frame interval should round up to 1, got %d", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore Chdir(%q): %v", prev, err)
		}
	})
}
