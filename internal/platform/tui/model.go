package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bio-runner/internal/config"
	"github.com/vovakirdan/bio-runner/internal/core"
	"github.com/vovakirdan/bio-runner/internal/runner"
	"github.com/vovakirdan/bio-runner/internal/storage"
)

// Options configures the host surface.
type Options struct {
	Config     config.RunnerConfig
	Runtime    core.RuntimeConfig
	Difficulty string
	Theme      Theme
	Store      *storage.Store // Optional run log
	Logger     *log.Logger
}

// Model is the Bubble Tea model hosting one runner card.
type Model struct {
	session    *runner.Session
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	difficulty string
	store      *storage.Store
	logger     *log.Logger

	keys    KeyMap
	help    help.Model
	theme   Theme
	screen  *core.Screen
	layout  cardLayout
	history History

	input       core.InputFrame
	frame       int
	startedAt   time.Time
	showHistory bool
	quitting    bool
}

// NewModel creates the host model with an idle session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.Timing.FrameRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Theme.Name == "" {
		opts.Theme = DarkTheme()
	}

	world := runner.NewWorld(opts.Config, rand.New(rand.NewSource(opts.Runtime.Seed)))

	m := Model{
		session:    runner.NewSession(world),
		cfg:        opts.Config,
		runtime:    opts.Runtime,
		difficulty: opts.Difficulty,
		store:      opts.Store,
		logger:     opts.Logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      opts.Theme,
		screen:     core.NewScreen(0, 0),
		history:    NewHistory(opts.Store, opts.Theme, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		input:      core.NewInputFrame(),
	}
	if opts.Store != nil {
		high, err := opts.Store.HighScore()
		if err != nil {
			opts.Logger.Warn("cannot load high score", "err", err)
		}
		world.SeedHighScore(high)
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Session returns the hosted session.
func (m Model) Session() *runner.Session {
	return m.session
}

// Init starts the sprite animation. The simulation clocks stay disarmed
// until the first interaction.
func (m Model) Init() tea.Cmd {
	return flapCmd(m.cfg.Timing.FlapInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showHistory && MouseAction(msg) == core.ActionInteract {
			return m.interact()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)

	case ScoreMsg:
		if m.session.Score(msg.Epoch) {
			return m, scoreCmd(msg.Epoch, m.cfg.Timing.ScoreInterval)
		}
		return m, nil

	case FlapMsg:
		if m.session.World().Phase() == runner.PhasePlaying {
			m.frame++
		}
		return m, flapCmd(m.cfg.Timing.FlapInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.stop("quit")
		return m, tea.Quit

	case core.ActionHistory:
		m.showHistory = !m.showHistory
		if m.showHistory {
			// The card is hidden, so a running session cannot be played.
			m.stop("stopped")
			m.history.Reload()
		}
		return m, nil

	case core.ActionStop:
		m.stop("stopped")
		return m, nil

	case core.ActionInteract:
		if !m.showHistory {
			return m.interact()
		}
	}

	if m.showHistory {
		if key.Matches(msg, m.keys.Sort) {
			m.history.ToggleOrder()
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}
	return m, nil
}

// interact starts a session from idle or game over, or buffers a jump for
// the next frame while playing.
func (m Model) interact() (tea.Model, tea.Cmd) {
	e, started := m.session.Interact(&m.input)
	if !started {
		return m, nil
	}

	m.startedAt = time.Now()
	m.input.Clear()
	m.logger.Debug("run started", "epoch", e, "viewport", m.session.World().Viewport())

	return m, tea.Batch(
		frameCmd(e, m.runtime.TickRate),
		scoreCmd(e, m.cfg.Timing.ScoreInterval),
	)
}

// stop abandons a running session and logs it. No-op unless playing.
func (m Model) stop(reason string) {
	if m.session.World().Phase() != runner.PhasePlaying {
		return
	}
	m.session.Stop()
	m.saveRun(reason)
}

// handleFrame processes simulation ticks.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	res, rearm := m.session.Frame(msg.Epoch, m.input)
	if res.Skipped && !rearm {
		return m, nil
	}
	m.input.Clear()

	if res.GameOver {
		m.saveRun("collision")
		return m, nil
	}
	if !rearm {
		return m, nil
	}
	return m, frameCmd(msg.Epoch, m.runtime.TickRate)
}

// saveRun records the finished session. Best effort: play continues
// regardless of storage errors.
func (m Model) saveRun(reason string) {
	snap := m.session.Snapshot()
	m.logger.Info("run finished",
		"reason", reason,
		"score", snap.Score,
		"high", snap.HighScore,
		"ticks", snap.Tick,
		"speed", snap.TopSpeed,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		Mode:       "play",
		Difficulty: m.difficulty,
		Score:      snap.Score,
		Ticks:      snap.Tick,
		Obstacles:  snap.Cleared,
		MaxSpeed:   snap.TopSpeed,
		Duration:   time.Since(m.startedAt),
		Seed:       m.runtime.Seed,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// resize fits the card to the terminal and updates the world viewport.
func (m *Model) resize(width, height int) {
	m.runtime.ScreenW = width
	m.runtime.ScreenH = height
	m.layout = newCardLayout(width, m.cfg.Render)
	m.screen.Resize(width, m.layout.height)
	m.session.World().SetViewport(m.layout.viewport())
	m.history.SetSize(width, height)
	m.help.Width = width
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View() + "\n" + m.theme.Help.Render(m.help.View(historyHelp{m.keys}))
	}

	drawCard(m.screen, m.layout, m.session.Snapshot(), m.cfg, m.frame)
	return RenderScreen(m.screen, m.theme) + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// historyHelp narrows the help line to the keys that work in the history view.
type historyHelp struct {
	keys KeyMap
}

func (h historyHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.History, h.keys.Sort, h.keys.Quit}
}

func (h historyHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks start and jump
	)

	_, err := p.Run()
	return err
}
