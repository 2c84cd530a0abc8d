package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/bio-runner/internal/config"
	"github.com/vovakirdan/bio-runner/internal/core"
)

func newTestSession(width float64) *Session {
	w := NewWorld(config.DefaultRunnerConfig(), rand.New(rand.NewSource(42)))
	w.SetViewport(width)
	return NewSession(w)
}

func TestSessionInteract(t *testing.T) {
	s := newTestSession(600)

	if s.Active(s.Epoch()) {
		t.Fatal("idle session should have no active clocks")
	}

	e, started := s.Interact(nil)
	if !started {
		t.Fatal("interact from idle should start a session")
	}
	if !s.Active(e) || s.World().Phase() != PhasePlaying {
		t.Fatalf("session not playing after start, phase %s", s.World().Phase())
	}

	e2, started := s.Interact(nil)
	if started || e2 != e {
		t.Errorf("interact while playing should not restart (started=%v, epoch %d -> %d)", started, e, e2)
	}
	if v := s.World().Runner().Velocity; v != 8.8 {
		t.Errorf("interact while playing should jump, velocity = %g", v)
	}
}

func TestSessionInteractBuffersJump(t *testing.T) {
	s := newTestSession(600)
	next := core.NewInputFrame()

	e, started := s.Interact(&next)
	if !started {
		t.Fatal("interact from idle should start a session")
	}
	if next.Has(core.ActionInteract) {
		t.Error("starting a session should not buffer a jump")
	}

	if _, started := s.Interact(&next); started {
		t.Fatal("interact while playing should not restart")
	}
	if !next.Has(core.ActionInteract) {
		t.Fatal("jump should be buffered into the next frame")
	}
	if v := s.World().Runner().Velocity; v != 0 {
		t.Errorf("buffered jump applied early, velocity = %g", v)
	}

	s.Frame(e, next)
	if s.World().Runner().Offset <= 0 {
		t.Error("buffered jump was not applied by the next frame")
	}
}

func TestSessionRestartInvalidatesOldClocks(t *testing.T) {
	s := newTestSession(600)

	old := s.Start()
	s.Frame(old, noInput())
	s.Score(old)

	current := s.Reset()
	if current == old {
		t.Fatal("reset should bump the epoch")
	}

	res, rearm := s.Frame(old, noInput())
	if !res.Skipped || rearm {
		t.Errorf("stale frame ran: res=%+v rearm=%v", res, rearm)
	}
	if s.Score(old) {
		t.Error("stale score tick should not rearm")
	}
	if snap := s.Snapshot(); snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("stale callbacks mutated the new session: score=%d tick=%d", snap.Score, snap.Tick)
	}

	if _, rearm := s.Frame(current, noInput()); !rearm {
		t.Error("current frame should rearm")
	}
	if !s.Score(current) || s.Snapshot().Score != 1 {
		t.Errorf("current score tick should count, score = %d", s.Snapshot().Score)
	}
}

func TestSessionStop(t *testing.T) {
	s := newTestSession(600)
	e := s.Start()
	for i := 0; i < 7; i++ {
		s.Score(e)
	}

	s.Stop()

	if s.World().Phase() != PhaseIdle {
		t.Errorf("phase after Stop = %s, expected idle", s.World().Phase())
	}
	if _, rearm := s.Frame(e, noInput()); rearm {
		t.Error("frame clock should be halted after Stop")
	}
	if s.Score(e) {
		t.Error("score clock should be halted after Stop")
	}
	if s.Snapshot().HighScore != 7 {
		t.Errorf("high score = %d, expected 7", s.Snapshot().HighScore)
	}
}

func TestSessionGameOverHaltsClocks(t *testing.T) {
	s := newTestSession(600)
	e := s.Start()

	var res StepResult
	for ticks := 0; ; ticks++ {
		if ticks > 10000 {
			t.Fatal("session never ended")
		}
		var rearm bool
		res, rearm = s.Frame(e, noInput())
		if !rearm {
			break
		}
	}

	if !res.GameOver {
		t.Fatalf("frame clock stopped without game over: %+v", res)
	}
	if s.Epoch() == e {
		t.Error("game over should retire the epoch")
	}
	if s.Score(e) {
		t.Error("score clock should stop at game over")
	}
	if !s.Snapshot().IsGameOver {
		t.Error("snapshot should report game over")
	}

	next, started := s.Interact(nil)
	if !started || next == e || !s.Active(next) {
		t.Errorf("interact after game over should restart (started=%v epoch=%d)", started, next)
	}
}
