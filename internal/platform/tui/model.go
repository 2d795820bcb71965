package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ScoreStore is the persistence the model needs. *storage.Store satisfies it.
type ScoreStore interface {
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
	SaveScore(gameID, runID string, score int) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	Stats(gameID string) (*storage.GameStats, error)
}

type view int

const (
	viewGame view = iota
	viewScores
)

// Model is the Bubble Tea model for one Snake session.
type Model struct {
	engine     *snake.Engine
	renderer   snake.Renderer
	screen     *core.Screen
	store      ScoreStore
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	scoreboard ScoreboardModel
	view       view
	interval   time.Duration
	gen        int    // Current timer generation
	runID      string // Identifies the game in progress
	scoreSaved bool   // Whether the score has been saved for the current game over
	showHelp   bool   // Whether the window has a spare row for the help footer
	quitting   bool
}

// NewModel creates a session model. store may be nil to play without
// persistence; logger may be nil to discard logs.
func NewModel(cfg config.SnakeConfig, rt core.RuntimeConfig, store ScoreStore, logger *log.Logger) (Model, error) {
	palette, err := cfg.Palette.Resolve()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	interval := rt.TickInterval
	if interval <= 0 {
		interval = cfg.TickInterval()
	}

	best := 0
	if store != nil {
		if best, err = store.HighScore(snake.GameID); err != nil {
			logger.Warn("could not load high score", "error", err)
			best = 0
		}
	}

	engine := snake.NewEngine(cfg.Grid.Width, cfg.Grid.Height,
		snake.WithSeed(rt.Seed),
		snake.WithFoodPoints(cfg.Scoring.FoodPoints),
		snake.WithHighScore(best),
	)

	m := Model{
		engine:     engine,
		renderer:   snake.NewRenderer(palette),
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		scoreboard: NewScoreboardModel(store, rt.ScreenW, rt.ScreenH),
		interval:   interval,
	}
	m.resize(rt.ScreenW, rt.ScreenH)

	logger.Debug("session ready",
		"grid", fmt.Sprintf("%dx%d", engine.Width(), engine.Height()),
		"tick", interval,
		"seed", rt.Seed,
		"best", best,
	)
	return m, nil
}

// Init waits for the player; the timer starts on Start.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if m.view == viewScores {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input on the game view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if m.engine.Start() {
			m.beginRun()
			return m, m.startTimer()
		}

	case core.ActionRestart:
		if m.engine.Running() {
			m.logger.Debug("game abandoned", "run", m.runID, "score", m.engine.Score())
		}
		m.engine.Restart()
		m.beginRun()
		return m, m.startTimer()

	case core.ActionScoreboard:
		// Scores are only reachable while no game is running.
		if !m.engine.Running() {
			m.scoreboard.Reload()
			m.view = viewScores
		}

	default:
		if dir, ok := snake.DirectionFor(action); ok {
			m.engine.SetDirection(dir)
		}
	}

	return m, nil
}

// updateScoreboard forwards input to the scoreboard view.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewGame
	}
	return m, cmd
}

// handleTick advances the engine if the tick belongs to the live timer.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.engine.Running() {
		return m, nil
	}

	result := m.engine.Tick()
	if result.NewHighScore {
		m.persistHighScore(result.HighScore)
	}
	if result.GameOver {
		m.finishRun(result)
		return m, nil
	}

	return m, tickCmd(m.interval, m.gen)
}

// startTimer replaces any running timer with a fresh one.
func (m *Model) startTimer() tea.Cmd {
	m.gen++
	return tickCmd(m.interval, m.gen)
}

// beginRun tags a newly started game.
func (m *Model) beginRun() {
	m.runID = storage.NewRunID()
	m.scoreSaved = false
	m.logger.Info("game started", "run", m.runID, "best", m.engine.HighScore())
}

// persistHighScore writes a new best through to the store.
func (m *Model) persistHighScore(score int) {
	if m.store == nil {
		return
	}
	if err := m.store.SetHighScore(snake.GameID, score); err != nil {
		m.logger.Warn("could not save high score", "score", score, "error", err)
	}
}

// finishRun records a finished game once.
func (m *Model) finishRun(result snake.TickResult) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	m.logger.Info("game over",
		"run", m.runID,
		"score", result.Score,
		"cause", result.Cause,
		"ticks", m.engine.Ticks(),
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(snake.GameID, m.runID, result.Score); err != nil {
		m.logger.Warn("could not save score", "run", m.runID, "error", err)
	}
}

// resize fits the screen buffer to the window, reserving a help row when it fits.
func (m *Model) resize(width, height int) {
	_, needH := snake.RequiredSize(m.engine.Width(), m.engine.Height())
	m.showHelp = height > needH

	screenH := height
	if m.showHelp {
		screenH--
	}
	m.screen.Resize(width, screenH)
	m.help.Width = width
	m.scoreboard.SetSize(width, height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScores {
		return m.scoreboard.View()
	}

	m.renderer.Render(m.engine, m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Engine exposes the session's engine for inspection.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.SnakeConfig, rt core.RuntimeConfig, store ScoreStore, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, store, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
