package runner

import "github.com/vovakirdan/bio-runner/internal/core"

// Epoch identifies one armed generation of a session's clocks. Every frame
// and score callback a host schedules carries the epoch it was armed for;
// bumping the epoch cancels all of them at once.
type Epoch uint64

// Session drives a World from two host clocks: the frame clock and the
// fixed-interval score clock. It is not safe for concurrent use; hosts call
// it from their single event loop.
type Session struct {
	world *World
	epoch Epoch
}

// NewSession wraps an idle world.
func NewSession(world *World) *Session {
	return &Session{world: world}
}

// World returns the underlying world.
func (s *Session) World() *World {
	return s.world
}

// Epoch returns the current clock generation.
func (s *Session) Epoch() Epoch {
	return s.epoch
}

// Active reports whether callbacks armed for e should still run.
func (s *Session) Active(e Epoch) bool {
	return e == s.epoch && s.world.Phase() == PhasePlaying
}

// Start begins a fresh session, restarting if one is already running.
// Callbacks from the previous epoch are invalidated before the world is
// reinitialised. The host arms both clocks with the returned epoch.
func (s *Session) Start() Epoch {
	s.epoch++
	s.world.Reset()
	return s.epoch
}

// Reset is an alias of Start.
func (s *Session) Reset() Epoch {
	return s.Start()
}

// Stop halts the clocks and returns the world to idle.
func (s *Session) Stop() {
	s.epoch++
	s.world.Stop()
}

// Interact is the single player input: it starts a session from idle or
// game over and jumps while playing. With a non-nil next frame the jump is
// buffered into it and applied at the start of the following Step;
// otherwise it is applied at once. started reports whether the host must
// arm new clocks with the returned epoch.
func (s *Session) Interact(next *core.InputFrame) (epoch Epoch, started bool) {
	if s.world.Phase() != PhasePlaying {
		return s.Start(), true
	}
	if next != nil {
		next.Set(core.ActionInteract)
	} else {
		s.Jump()
	}
	return s.epoch, false
}

// Jump forwards a jump to the world.
func (s *Session) Jump() bool {
	return s.world.Jump()
}

// Frame runs one frame tick armed for epoch e. Stale epochs are ignored.
// rearm reports whether the host should schedule the next frame; it is
// false after the tick that ended the session.
func (s *Session) Frame(e Epoch, in core.InputFrame) (res StepResult, rearm bool) {
	if !s.Active(e) {
		return StepResult{Skipped: true}, false
	}

	res = s.world.Step(in)
	if res.GameOver {
		s.epoch++
		return res, false
	}
	return res, true
}

// Score runs one score tick armed for epoch e and reports whether the
// host should schedule the next one.
func (s *Session) Score(e Epoch) bool {
	if !s.Active(e) {
		return false
	}
	s.world.ScoreTick()
	return true
}

// Snapshot returns the world's render view.
func (s *Session) Snapshot() Snapshot {
	return s.world.Snapshot()
}
