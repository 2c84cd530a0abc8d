package runner

import "github.com/vovakirdan/bio-runner/internal/config"

// Random is the source of uniform draws in [0, 1) used by the spawner.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Random interface {
	Float64() float64
}

// Spawner decides when and what to spawn and owns the gap threshold that
// governs the next decision.
type Spawner struct {
	cfg        config.Spawner
	physics    config.Physics
	shapes     config.ObstacleKinds
	flyerRamp  config.Ramp
	rng        Random
	nextGap    float64
	lastFlying bool
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.RunnerConfig, rng Random) *Spawner {
	s := &Spawner{
		cfg:       cfg.Spawner,
		physics:   cfg.Physics,
		shapes:    cfg.Obstacles,
		flyerRamp: cfg.Spawner.FlyerRamp(),
		rng:       rng,
	}
	s.Reset()
	return s
}

// Reset restores the initial gap and forgets the previous spawn.
func (s *Spawner) Reset() {
	s.nextGap = s.cfg.InitialGap
	s.lastFlying = false
}

// NextGap returns the current spawn gap threshold.
func (s *Spawner) NextGap() float64 {
	return s.nextGap
}

// MinSafeGap returns the smallest gap a full jump is guaranteed to clear at
// the given speed, including the speed-scaled reaction buffer.
func (s *Spawner) MinSafeGap(speed float64) float64 {
	jumpDistance := AirTime(s.physics) * speed
	reaction := s.cfg.ReactionBase + speed*s.cfg.ReactionPerSpeed
	return jumpDistance + reaction
}

// FlyerProbability returns the chance that an eligible spawn is Flying.
func (s *Spawner) FlyerProbability(score int) float64 {
	return s.flyerRamp.At(score)
}

// FlyersUnlocked reports whether score has passed the flying threshold.
func (s *Spawner) FlyersUnlocked(score int) bool {
	return score > s.cfg.FlyerStartScore
}

// ShouldSpawn reports whether a new obstacle fits at the right edge.
// Only the most recent obstacle is inspected.
func (s *Spawner) ShouldSpawn(seq *Sequence, viewportW float64) bool {
	last, ok := seq.Last()
	if !ok {
		return true
	}
	return viewportW-last.Right() > s.nextGap
}

// Spawn builds an obstacle at the right edge of the viewport and
// recomputes the gap threshold for the next decision.
func (s *Spawner) Spawn(id uint64, viewportW float64, score int, speed float64) Obstacle {
	kind := s.chooseKind(score)
	shape := shapeFor(s.shapes, kind)

	s.lastFlying = kind == KindFlying
	s.nextGap = s.computeGap(score, speed)

	return Obstacle{
		ID:   id,
		Kind: kind,
		X:    viewportW,
		Y:    shape.Y,
		W:    shape.Width,
		H:    shape.Height,
	}
}

// chooseKind picks Flying only when unlocked and the previous spawn was
// not Flying. The random draw is skipped when Flying is not eligible.
func (s *Spawner) chooseKind(score int) Kind {
	if !s.FlyersUnlocked(score) || s.lastFlying {
		return KindGround
	}
	if s.rng.Float64() < s.FlyerProbability(score) {
		return KindFlying
	}
	return KindGround
}

// computeGap returns minSafeGap plus a score-shrunk random variance.
func (s *Spawner) computeGap(score int, speed float64) float64 {
	minSafe := s.MinSafeGap(speed)

	variance := s.rng.Float64() * s.cfg.Variance
	if s.rng.Float64() < s.cfg.BreatherChance {
		variance += s.cfg.BreatherMin + s.rng.Float64()*s.cfg.BreatherRange
	}

	variance *= 1 - s.cfg.VarianceShrink(score)
	variance = max(variance, 0)

	return minSafe + variance
}
