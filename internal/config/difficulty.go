package config

import "github.com/vovakirdan/bio-runner/internal/core"

// Ramp is a linear difficulty curve over score: it holds From until score
// passes Start, then moves toward To, reaching it Span points later.
type Ramp struct {
	From  float64
	To    float64
	Start int
	Span  int
}

// At returns the ramp value for the given score.
func (r Ramp) At(score int) float64 {
	span := float64(r.Span)
	if span <= 0 {
		span = 1 // Prevent division by zero
	}
	progress := core.ClampF(float64(score-r.Start)/span, 0, 1)
	return r.From + progress*(r.To-r.From)
}

// FlyerRamp returns the flying obstacle probability curve.
func (s Spawner) FlyerRamp() Ramp {
	return Ramp{
		From:  s.FlyerBaseProbability,
		To:    s.FlyerMaxProbability,
		Start: s.FlyerStartScore,
		Span:  s.FlyerRampScore,
	}
}

// VarianceShrink returns the fraction removed from the random gap
// variance at the given score: score/VarianceShrinkScore, capped at
// VarianceShrinkMax.
func (s Spawner) VarianceShrink(score int) float64 {
	if s.VarianceShrinkScore <= 0 || score <= 0 {
		return 0
	}
	return core.ClampF(float64(score)/float64(s.VarianceShrinkScore), 0, s.VarianceShrinkMax)
}
