package runner

import (
	"github.com/vovakirdan/bio-runner/internal/config"
	"github.com/vovakirdan/bio-runner/internal/core"
)

// defaultLeadTicks is how many ticks before contact the autopilot jumps.
// A full jump clears a ground obstacle from about tick 4 to tick 34.
const defaultLeadTicks = 7

// Autopilot is a deterministic player used by the headless simulator.
// It jumps over ground obstacles and ignores flyers.
type Autopilot struct {
	hitbox    config.Box
	shapes    config.ObstacleKinds
	LeadTicks float64
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.RunnerConfig) *Autopilot {
	return &Autopilot{
		hitbox:    cfg.Runner.Hitbox,
		shapes:    cfg.Obstacles,
		LeadTicks: defaultLeadTicks,
	}
}

// Decide reports whether to jump this tick.
func (a *Autopilot) Decide(snap Snapshot) bool {
	if !snap.IsPlaying {
		return false
	}

	front := a.hitbox.X + a.hitbox.Width
	lookahead := snap.Speed * a.LeadTicks

	for _, o := range snap.Obstacles {
		if o.Kind != KindGround {
			continue
		}
		pad := shapeFor(a.shapes, o.Kind).Padding
		if o.X+o.W-pad <= a.hitbox.X {
			continue // Already behind the runner
		}
		dist := o.X + pad - front
		return dist <= lookahead
	}
	return false
}

// Play runs one fresh session on w under a virtual clock: a frame per
// step and a score tick every perScore frames. It returns the final
// snapshot after game over, or after maxTicks frames when maxTicks > 0.
func (a *Autopilot) Play(w *World, maxTicks uint64, perScore int) Snapshot {
	perScore = max(perScore, 1)
	w.Reset()

	in := core.NewInputFrame()
	for frame := uint64(1); maxTicks == 0 || frame <= maxTicks; frame++ {
		in.Clear()
		if a.Decide(w.Snapshot()) {
			in.Set(core.ActionInteract)
		}

		res := w.Step(in)
		if res.GameOver || res.Skipped {
			break
		}
		if frame%uint64(perScore) == 0 {
			w.ScoreTick()
		}
	}
	return w.Snapshot()
}
