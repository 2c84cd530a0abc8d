// Package runner implements the endless runner simulation: runner physics,
// the obstacle spawner, the world stepper and the score/difficulty driver.
//
// The package is host-agnostic. A host owns a Session, feeds it frame and
// score ticks, routes the player's "interact" input to it and renders the
// read-only Snapshot it exposes.
package runner

import "github.com/vovakirdan/bio-runner/internal/config"

// RunnerState is the player-controlled actor. It only moves vertically.
type RunnerState struct {
	Offset   float64 // Height above the ground line, never negative
	Velocity float64 // Positive is upward
}

// Grounded reports whether the runner is close enough to the ground to jump.
func (r RunnerState) Grounded(p config.Physics) bool {
	return r.Offset <= p.Ground+p.JumpTolerance
}

// Jump sets the jump impulse when the runner is grounded.
// Returns false (and changes nothing) while airborne.
func (r *RunnerState) Jump(p config.Physics) bool {
	if !r.Grounded(p) {
		return false
	}
	r.Velocity = p.JumpForce
	return true
}

// Advance applies one tick of gravity and clamps the runner to the ground.
// There is no sub-tick interpolation.
func (r *RunnerState) Advance(p config.Physics) {
	r.Velocity += p.Gravity
	r.Offset += r.Velocity

	if r.Offset < p.Ground {
		r.Offset = p.Ground
		r.Velocity = 0
	}
}

// AirTime returns the number of ticks a full jump spends in the air.
func AirTime(p config.Physics) float64 {
	if p.Gravity == 0 {
		return 0
	}
	t := p.JumpForce / p.Gravity
	if t < 0 {
		t = -t
	}
	return 2 * t
}
