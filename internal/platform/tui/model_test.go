package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bio-runner/internal/config"
	"github.com/vovakirdan/bio-runner/internal/core"
	"github.com/vovakirdan/bio-runner/internal/runner"
	"github.com/vovakirdan/bio-runner/internal/storage"
)

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Config:  config.DefaultRunnerConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 7},
		Theme:   DarkTheme(),
		Store:   store,
		Logger:  log.New(io.Discard),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t, nil)

	if m.Session().World().Phase() != runner.PhaseIdle {
		t.Errorf("phase = %s, expected idle", m.Session().World().Phase())
	}
	if m.Session().World().Viewport() != 588 {
		t.Errorf("viewport = %g, expected 588", m.Session().World().Viewport())
	}
	if !strings.Contains(m.View(), "Press Space to play") {
		t.Error("idle view should prompt to play")
	}
}

func TestModelInteractStartsAndJumps(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, spaceKey)
	if cmd == nil {
		t.Fatal("starting a run should arm the clocks")
	}
	if m.Session().World().Phase() != runner.PhasePlaying {
		t.Fatalf("phase = %s, expected playing", m.Session().World().Phase())
	}

	m, cmd = update(t, m, spaceKey)
	if cmd != nil {
		t.Error("jumping should not arm new clocks")
	}
	if !m.input.Has(core.ActionInteract) {
		t.Fatal("jump should be buffered for the next frame")
	}

	m, cmd = update(t, m, FrameMsg{Epoch: m.Session().Epoch()})
	if cmd == nil {
		t.Error("frame should rearm while playing")
	}
	if m.Session().World().Runner().Offset <= 0 {
		t.Error("buffered jump was not applied")
	}
	if m.input.Has(core.ActionInteract) {
		t.Error("input should be cleared after the frame")
	}
}

func TestModelMouseClickStarts(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	if m.Session().World().Phase() != runner.PhaseIdle {
		t.Error("right click should not start a run")
	}

	m, cmd := update(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if cmd == nil || m.Session().World().Phase() != runner.PhasePlaying {
		t.Error("left click should start a run")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, spaceKey)
	stale := m.Session().Epoch()
	m, _ = update(t, m, escKey)
	m, _ = update(t, m, spaceKey)

	m, cmd := update(t, m, FrameMsg{Epoch: stale})
	if cmd != nil {
		t.Error("stale frame should not rearm")
	}
	m, cmd = update(t, m, ScoreMsg{Epoch: stale})
	if cmd != nil {
		t.Error("stale score tick should not rearm")
	}

	snap := m.Session().Snapshot()
	if snap.Tick != 0 || snap.Score != 0 {
		t.Errorf("stale ticks advanced the new run: tick=%d score=%d", snap.Tick, snap.Score)
	}

	m, cmd = update(t, m, ScoreMsg{Epoch: m.Session().Epoch()})
	if cmd == nil || m.Session().Snapshot().Score != 1 {
		t.Error("current score tick should count and rearm")
	}
}

func TestModelGameOverSavesRun(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, spaceKey)
	e := m.Session().Epoch()

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, ScoreMsg{Epoch: e})
	}

	var cmd tea.Cmd
	for frames := 0; ; frames++ {
		if frames > 10000 {
			t.Fatal("run never ended")
		}
		m, cmd = update(t, m, FrameMsg{Epoch: e})
		if cmd == nil {
			break
		}
	}

	if !m.Session().Snapshot().IsGameOver {
		t.Fatal("frame clock stopped without game over")
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Error("view should show the game over overlay")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Mode != "play" || runs[0].Score != 5 || runs[0].Seed != 7 {
		t.Errorf("saved run = %+v", runs[0])
	}

	// Retry starts a fresh epoch
	m, cmd = update(t, m, spaceKey)
	if cmd == nil || m.Session().Epoch() == e || m.Session().Snapshot().Score != 0 {
		t.Error("interact after game over should start a new run")
	}
}

func TestModelHistoryToggle(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.RunRecord{Mode: "play", Score: 77})

	m := newTestModel(t, store)
	m, _ = update(t, m, tabKey)

	view := m.View()
	if !strings.Contains(view, "RUN HISTORY") || !strings.Contains(view, "77") {
		t.Errorf("history view missing runs:\n%s", view)
	}

	m, _ = update(t, m, spaceKey)
	if m.Session().World().Phase() != runner.PhaseIdle {
		t.Error("space in the history view should not start a run")
	}

	m, _ = update(t, m, tabKey)
	if strings.Contains(m.View(), "RUN HISTORY") {
		t.Error("tab should close the history view")
	}
}

func TestModelHistoryStopsRunningSession(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, spaceKey)
	e := m.Session().Epoch()
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, ScoreMsg{Epoch: e})
	}

	m, _ = update(t, m, tabKey)
	if m.Session().World().Phase() != runner.PhaseIdle {
		t.Fatalf("phase = %s, opening history should stop the run", m.Session().World().Phase())
	}

	m, cmd := update(t, m, FrameMsg{Epoch: e})
	if cmd != nil {
		t.Error("frame clock should be halted while history is shown")
	}
	if m.Session().Snapshot().Tick != 0 {
		t.Errorf("world advanced behind the history view, tick = %d", m.Session().Snapshot().Tick)
	}
	if _, cmd = update(t, m, ScoreMsg{Epoch: e}); cmd != nil {
		t.Error("score clock should be halted while history is shown")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 3 {
		t.Errorf("expected the abandoned run to be logged with score 3, got %+v", runs)
	}
	if !strings.Contains(m.View(), "RUN HISTORY") {
		t.Error("history view should be shown")
	}
}

func TestModelQuitMidRunSavesRun(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, ScoreMsg{Epoch: m.Session().Epoch()})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if m.Session().World().Phase() != runner.PhaseIdle {
		t.Errorf("phase = %s, quitting should stop the run", m.Session().World().Phase())
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 1 {
		t.Errorf("expected the quit run to be logged with score 1, got %+v", runs)
	}

	// Quitting from idle logs nothing more
	m2 := newTestModel(t, store)
	update(t, m2, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if runs, _ = store.RecentRuns(10); len(runs) != 1 {
		t.Errorf("idle quit should not log a run, got %d runs", len(runs))
	}
}

func TestModelSeedsHighScoreFromStore(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.RunRecord{Mode: "sim", Score: 321})

	m := newTestModel(t, store)
	if got := m.Session().Snapshot().HighScore; got != 321 {
		t.Errorf("high score = %d, expected 321 from the run log", got)
	}
	if !strings.Contains(m.View(), "HI 00321") {
		t.Error("HUD should show the logged high score")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
