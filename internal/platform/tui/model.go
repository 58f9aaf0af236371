package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Mode selects who drives the falling piece.
type Mode int

const (
	ModePlay Mode = iota // the player, with gravity
	ModeAuto             // the move-search AI
)

// String returns the score-table mode name.
func (m Mode) String() string {
	if m == ModeAuto {
		return storage.ModeAuto
	}
	return storage.ModeNormal
}

// Options configures a game screen.
type Options struct {
	Mode     Mode
	Seed     int64 // 0 picks a time-based seed
	Config   config.TetrisConfig
	Genome   ai.Genome
	Store    *storage.Store // optional
	Logger   *log.Logger    // optional
	TickRate int            // redraws per second
}

// driverDoneMsg reports that a gravity or autopilot loop returned.
type driverDoneMsg struct {
	err error
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	opts       Options
	seed       int64
	session    *tetris.Session
	ctx        context.Context
	cancel     context.CancelFunc
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	highScore  int
	scoreSaved bool // score already saved for the current game over
	quitting   bool
}

// NewModel creates a game screen. Call Close (or quit) to stop its driver.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		opts:    opts,
		seed:    opts.Seed,
		session: tetris.NewSession(tetris.New(opts.Seed)),
		ctx:     ctx,
		cancel:  cancel,
		screen:  core.NewScreen(ScreenW, ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
	m.highScore = m.loadHighScore()
	return m
}

// Init starts the redraw ticker and the driver.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "mode", m.opts.Mode, "seed", m.seed)
	return tea.Batch(tickCmd(m.opts.TickRate), m.driverCmd())
}

// driverCmd runs the gravity or autopilot loop for the current game until it
// ends, is replaced by a restart or the model quits.
func (m Model) driverCmd() tea.Cmd {
	s, ctx, opts := m.session, m.ctx, m.opts
	return func() tea.Msg {
		var err error
		if opts.Mode == ModeAuto {
			genome := opts.Genome
			decide := func(g *tetris.Game) *tetris.Game { return ai.BestPlacement(g, genome) }
			err = s.RunAutopilot(ctx, decide, opts.Config.AutoplayInterval())
		} else {
			err = s.RunGravity(ctx, opts.Config.GravityInterval)
		}
		return driverDoneMsg{err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.checkGameOver()
		return m, tickCmd(m.opts.TickRate)

	case driverDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, tetris.ErrGameOver) && !errors.Is(msg.err, context.Canceled) {
			m.logger.Error("driver stopped", "err", msg.err)
		}
		m.checkGameOver()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if m.opts.Mode == ModeAuto && action.Mutates() {
		return m, nil
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case core.ActionRestart:
		return m.restart()
	}

	if err := m.session.Apply(action); err != nil && !errors.Is(err, tetris.ErrGameOver) {
		m.logger.Error("apply failed", "action", action, "err", err)
	}
	m.checkGameOver()
	return m, nil
}

// restart installs a fresh game and a driver for it. The previous driver
// notices the swap and exits on its own.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed = time.Now().UnixNano()
	m.session.Reset(tetris.New(m.seed))
	m.scoreSaved = false
	m.logger.Info("game restarted", "mode", m.opts.Mode, "seed", m.seed)
	return m, m.driverCmd()
}

// checkGameOver saves the score once per finished game.
func (m *Model) checkGameOver() {
	snap := m.session.Snapshot()
	if !snap.GameOver || m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.highScore = max(m.highScore, snap.Score)
	m.logger.Info("game over", "mode", m.opts.Mode, "score", snap.Score, "lines", snap.Lines)

	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.opts.Mode.String(), snap.Score, snap.Lines); err != nil {
		m.logger.Error("save score", "err", err)
	}
}

func (m Model) loadHighScore() int {
	if m.opts.Store == nil {
		return 0
	}
	hs, err := m.opts.Store.HighScore(m.opts.Mode.String())
	if err != nil {
		m.logger.Warn("load high score", "err", err)
		return 0
	}
	return hs
}

// Close stops the driver.
func (m Model) Close() {
	m.cancel()
}

// Snapshot returns the current game state.
func (m Model) Snapshot() tetris.Snapshot {
	return m.session.Snapshot()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := "T E T R I S"
	if m.opts.Mode == ModeAuto {
		title = "T E T R I S  (auto)"
	}
	DrawSnapshot(m.screen, m.session.Snapshot(), HUD{
		Title:     title,
		HighScore: m.highScore,
		Paused:    m.session.Paused(),
	})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.helpKeys())))
	return b.String()
}

func (m Model) helpKeys() help.KeyMap {
	if m.opts.Mode == ModeAuto {
		return AutoplayHelp{m.keys}
	}
	return m.keys
}

// Run starts the Bubble Tea program for a game and blocks until it quits.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
