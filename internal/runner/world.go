package runner

import (
	"github.com/vovakirdan/bio-runner/internal/config"
	"github.com/vovakirdan/bio-runner/internal/core"
)

// Phase is the lifecycle state of a world.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first interaction
	PhasePlaying               // Clock running
	PhaseGameOver              // Frozen after a collision
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// StepResult describes what happened during one frame tick.
type StepResult struct {
	Skipped  bool // Nothing advanced: not playing or no viewport yet
	Jumped   bool // A jump impulse was applied this tick
	Spawned  bool // A new obstacle entered at the right edge
	Removed  int  // Obstacles pruned behind the left edge
	GameOver bool // A collision ended the session this tick
}

// World is the complete mutable state of one runner card.
// It is owned by a single goroutine; hosts read it through Snapshot.
type World struct {
	cfg       config.RunnerConfig
	runner    RunnerState
	obstacles *Sequence
	spawner   *Spawner

	phase     Phase
	score     int
	highScore int
	speed     float64
	tick      uint64
	cleared   int
	topSpeed  float64
	viewportW float64
	nextID    uint64
}

// NewWorld creates an idle world. rng feeds every spawn decision.
func NewWorld(cfg config.RunnerConfig, rng Random) *World {
	w := &World{
		cfg:       cfg,
		obstacles: NewSequence(),
		spawner:   NewSpawner(cfg, rng),
	}
	w.clear()
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}

// SetViewport updates the visible width in world units.
// Zero or negative widths make Step skip until a real size arrives.
func (w *World) SetViewport(width float64) {
	w.viewportW = width
}

// Viewport returns the visible width in world units.
func (w *World) Viewport() float64 {
	return w.viewportW
}

// Reset starts a fresh session. Everything but the high score is zeroed.
func (w *World) Reset() {
	w.clear()
	w.phase = PhasePlaying
}

// Stop abandons the running session and returns to idle.
// The score reached so far still counts toward the high score.
func (w *World) Stop() {
	if w.phase == PhasePlaying {
		w.recordHighScore()
	}
	w.phase = PhaseIdle
}

func (w *World) clear() {
	w.runner = RunnerState{Offset: w.cfg.Physics.Ground}
	w.obstacles.Clear()
	w.spawner.Reset()
	w.score = 0
	w.speed = w.cfg.Speed.Start
	w.topSpeed = w.speed
	w.tick = 0
	w.cleared = 0
}

// Jump applies the jump impulse if the session is running and the runner
// is grounded.
func (w *World) Jump() bool {
	if w.phase != PhasePlaying {
		return false
	}
	return w.runner.Jump(w.cfg.Physics)
}

// Step advances the world by one frame tick.
// The order is fixed: input, speed, runner physics, obstacle motion,
// pruning, spawning, collision.
func (w *World) Step(in core.InputFrame) StepResult {
	if w.phase != PhasePlaying || w.viewportW <= 0 {
		return StepResult{Skipped: true}
	}

	var res StepResult
	if in.Has(core.ActionInteract) {
		res.Jumped = w.runner.Jump(w.cfg.Physics)
	}

	w.tick++
	w.speed = min(w.speed+w.cfg.Speed.Acceleration, w.cfg.Speed.Max)
	w.topSpeed = max(w.topSpeed, w.speed)

	w.runner.Advance(w.cfg.Physics)

	w.obstacles.Shift(w.speed)
	res.Removed = w.obstacles.Prune(w.cfg.Spawner.DespawnMargin)
	w.cleared += res.Removed

	if w.spawner.ShouldSpawn(w.obstacles, w.viewportW) {
		w.nextID++
		w.obstacles.Push(w.spawner.Spawn(w.nextID, w.viewportW, w.score, w.speed))
		res.Spawned = true
	}

	if w.colliding() {
		w.phase = PhaseGameOver
		w.recordHighScore()
		res.GameOver = true
	}

	return res
}

// ScoreTick adds one point while the session is running.
// Driven by the host's fixed-interval score timer.
func (w *World) ScoreTick() bool {
	if w.phase != PhasePlaying {
		return false
	}
	w.score++
	return true
}

// RunnerHitbox returns the runner's collision box at its current height.
func (w *World) RunnerHitbox() core.Rect {
	hb := w.cfg.Runner.Hitbox
	return core.NewRect(hb.X, w.runner.Offset+hb.Y, hb.Width, hb.Height)
}

// HitBounds returns the obstacle's collision box, inset by its kind's padding.
func (w *World) HitBounds(o Obstacle) core.Rect {
	return o.Bounds().Inset(shapeFor(w.cfg.Obstacles, o.Kind).Padding)
}

func (w *World) colliding() bool {
	hitbox := w.RunnerHitbox()
	for _, o := range w.obstacles.Items() {
		if hitbox.Intersects(w.HitBounds(o)) {
			return true
		}
	}
	return false
}

// SeedHighScore raises the high score to at least n, for hosts that keep
// scores from earlier worlds.
func (w *World) SeedHighScore(n int) {
	w.highScore = max(w.highScore, n)
}

func (w *World) recordHighScore() {
	w.highScore = max(w.highScore, w.score)
}

// Phase returns the lifecycle state.
func (w *World) Phase() Phase { return w.phase }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// HighScore returns the best score of this world's lifetime.
func (w *World) HighScore() int { return w.highScore }

// Speed returns the current scroll speed.
func (w *World) Speed() float64 { return w.speed }

// Runner returns the runner state.
func (w *World) Runner() RunnerState { return w.runner }

// Obstacles returns the live obstacle sequence. Callers must not modify it.
func (w *World) Obstacles() *Sequence { return w.obstacles }

// Spawner returns the world's spawner.
func (w *World) Spawner() *Spawner { return w.spawner }
