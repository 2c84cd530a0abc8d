// Package tui hosts the runner card in a terminal through Bubble Tea.
// It owns the session clocks, routes input to the session and renders
// each frame from the session snapshot.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bio-runner/internal/runner"
)

// FrameMsg triggers one simulation step for the epoch it was armed for.
type FrameMsg struct {
	Epoch runner.Epoch
}

// ScoreMsg triggers one score tick for the epoch it was armed for.
type ScoreMsg struct {
	Epoch runner.Epoch
}

// FlapMsg advances the sprite animation frame.
type FlapMsg time.Time

// frameCmd schedules the next frame tick at the given rate.
func frameCmd(e runner.Epoch, fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{Epoch: e}
	})
}

// scoreCmd schedules the next score tick.
func scoreCmd(e runner.Epoch, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ScoreMsg{Epoch: e}
	})
}

func flapCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FlapMsg(t)
	})
}
