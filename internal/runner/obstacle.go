package runner

import (
	"github.com/vovakirdan/bio-runner/internal/config"
	"github.com/vovakirdan/bio-runner/internal/core"
)

// Kind identifies the obstacle variety.
type Kind int

const (
	KindGround Kind = iota // Sits on the ground line, must be jumped
	KindFlying             // Hovers above the runner's standing hitbox
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// shapeFor returns the configured geometry of a kind.
func shapeFor(kinds config.ObstacleKinds, k Kind) config.Shape {
	if k == KindFlying {
		return kinds.Flying
	}
	return kinds.Ground
}

// Obstacle is a hazard scrolling toward the runner.
type Obstacle struct {
	ID   uint64
	Kind Kind
	X    float64 // Left edge, decreases every tick
	Y    float64 // Fixed per kind
	W, H float64
}

// Bounds returns the obstacle's full rectangle.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Right returns the trailing (right) edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Sequence holds live obstacles in spawn order, oldest first.
type Sequence struct {
	items []Obstacle
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{items: make([]Obstacle, 0, 8)}
}

// Push appends a newly spawned obstacle.
func (s *Sequence) Push(o Obstacle) {
	s.items = append(s.items, o)
}

// Last returns the most recently spawned live obstacle.
func (s *Sequence) Last() (Obstacle, bool) {
	if len(s.items) == 0 {
		return Obstacle{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of live obstacles.
func (s *Sequence) Len() int {
	return len(s.items)
}

// Items returns the live obstacles. Callers must not modify the slice.
func (s *Sequence) Items() []Obstacle {
	return s.items
}

// Shift moves every obstacle left by dx.
func (s *Sequence) Shift(dx float64) {
	for i := range s.items {
		s.items[i].X -= dx
	}
}

// Prune drops obstacles whose trailing edge is at least margin units behind
// the left edge of the viewport. Returns the number removed.
func (s *Sequence) Prune(margin float64) int {
	kept := s.items[:0]
	for _, o := range s.items {
		if o.Right() > -margin {
			kept = append(kept, o)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	return removed
}

// Clear removes every obstacle.
func (s *Sequence) Clear() {
	s.items = s.items[:0]
}
