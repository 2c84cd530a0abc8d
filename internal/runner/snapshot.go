package runner

// ObstacleView is the render-facing copy of an obstacle.
type ObstacleView struct {
	ID   uint64
	Kind Kind
	X, Y float64
	W, H float64
}

// Snapshot is a read-only copy of the world for one rendered frame.
type Snapshot struct {
	RunnerOffset float64
	Obstacles    []ObstacleView
	Score        int
	HighScore    int
	Speed        float64
	TopSpeed     float64
	NextGap      float64
	Tick         uint64
	Cleared      int
	Phase        Phase
	IsPlaying    bool
	IsGameOver   bool
	Viewport     float64
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	items := w.obstacles.Items()
	views := make([]ObstacleView, len(items))
	for i, o := range items {
		views[i] = ObstacleView{ID: o.ID, Kind: o.Kind, X: o.X, Y: o.Y, W: o.W, H: o.H}
	}

	return Snapshot{
		RunnerOffset: w.runner.Offset,
		Obstacles:    views,
		Score:        w.score,
		HighScore:    w.highScore,
		Speed:        w.speed,
		TopSpeed:     w.topSpeed,
		NextGap:      w.spawner.NextGap(),
		Tick:         w.tick,
		Cleared:      w.cleared,
		Phase:        w.phase,
		IsPlaying:    w.phase == PhasePlaying,
		IsGameOver:   w.phase == PhaseGameOver,
		Viewport:     w.viewportW,
	}
}
