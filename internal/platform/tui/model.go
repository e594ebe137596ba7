package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/number-catcher/internal/core"
	"github.com/vovakirdan/number-catcher/internal/games/catcher"
	"github.com/vovakirdan/number-catcher/internal/storage"
)

// helpRows is the space kept below the game screen for the help line.
const helpRows = 1

// Options configures the terminal front end.
type Options struct {
	Store         *storage.Store // nil disables score recording
	Logger        *log.Logger    // nil discards
	ScreenshotDir string         // empty means ~/.catcher/screenshots
	FirstHold     time.Duration  // zero means DefaultFirstHold
	RepeatHold    time.Duration  // zero means DefaultRepeatHold
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *catcher.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	scores     Scoreboard
	inputFrame core.InputFrame
	gameState  core.GameState
	shotDir    string
	status     string // One-line notice shown in place of help, e.g. screenshot path
	showScores bool
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.Seed is used as given; callers pick a random one if they want it.
func NewModel(game *catcher.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	first, repeat := opts.FirstHold, opts.RepeatHold
	if first <= 0 {
		first = DefaultFirstHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}

	game.SetLogger(logger)
	playfield := cfg
	playfield.ScreenH = max(cfg.ScreenH-helpRows, 0)
	game.Reset(playfield)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(playfield.ScreenW, playfield.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		holds:      NewHoldTracker(first, repeat),
		scores:     NewScoreboard(opts.Store, cfg.ScreenW, cfg.ScreenH),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		shotDir:    opts.ScreenshotDir,
		now:        time.Now,
	}
}

// Init starts the tick loop. The game was reset in NewModel because Init
// runs on a value receiver and cannot keep state.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		m.toggleScores()
		return m, nil
	}

	if m.showScores {
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg, m.keys)
		return m, cmd
	}

	a := m.keys.Action(msg)
	switch {
	case a.IsDirection():
		m.holds.Press(a, m.now())
	case a != core.ActionNone:
		m.inputFrame.Set(a)
	}
	m.status = ""

	return m, nil
}

// toggleScores shows or hides the scoreboard. A live round is paused first
// so the player does not lose the ship while reading.
func (m *Model) toggleScores() {
	m.showScores = !m.showScores
	if !m.showScores {
		return
	}
	if m.game.Mode() == catcher.ModeRunning && !m.gameState.Paused {
		m.game.HandlePress(core.ActionPause)
		m.gameState = m.game.State()
	}
	m.holds.Reset()
	m.scores.Refresh()
}

// handleResize processes window resize events. The playfield has a fixed
// logical size, so the game keeps its state and only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.scores.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.inputFrame, m.now())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.record(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// record stores round and game outcomes. Storage failures are logged, the
// game continues regardless.
func (m *Model) record(events []core.Event) {
	for _, ev := range events {
		if m.store == nil {
			continue
		}
		if err := m.store.Record(ev); err != nil {
			m.logger.Warn("could not record event", "kind", ev.Kind, "error", err)
		}
	}
}

// quit saves a game in progress so it shows up in the session summary.
func (m *Model) quit() {
	m.quitting = true
	if m.store == nil || m.gameState.GameOver || m.game.RoundsPlayed() == 0 {
		return
	}
	entry := storage.GameEntry{Score: m.gameState.Score, RoundsPlayed: m.game.RoundsPlayed()}
	if _, err := m.store.SaveGame(entry); err != nil {
		m.logger.Warn("could not save unfinished game", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not find home directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".catcher", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.showScores {
		b.WriteString(m.scores.View())
	} else {
		m.game.Render(m.screen)
		b.WriteString(RenderScreen(m.screen))
	}

	b.WriteString("\n")
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.status != "" {
		b.WriteString(footer.Render(m.status))
	} else {
		b.WriteString(footer.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Run starts the Bubble Tea program for the game and blocks until the player quits.
func Run(game *catcher.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
