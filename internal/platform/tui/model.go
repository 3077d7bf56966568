package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ScoreRecorder stores finished games. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(gameID string, score, lines int) (int64, error)
}

var _ ScoreRecorder = (*storage.Store)(nil)

// Options wires a Model to its collaborators. Only Game is required.
type Options struct {
	Game    *tetris.Game
	Sounds  audio.Player
	History ScoreRecorder
	Logger  *log.Logger
	Keys    KeyMap
	Config  core.RuntimeConfig
}

// GameSummary describes one finished game.
type GameSummary struct {
	Score        int
	NewHighScore bool
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game       *tetris.Game
	sounds     audio.Player
	history    ScoreRecorder
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	newHigh    bool // The last game over set a new high score
	games      []GameSummary
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(opts Options) Model {
	if opts.Sounds == nil {
		opts.Sounds = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       opts.Game,
		sounds:     opts.Sounds,
		history:    opts.History,
		logger:     opts.Logger,
		keys:       opts.Keys,
		help:       help.New(),
		screen:     core.NewScreen(opts.Config.ScreenW, screenRows(opts.Config.ScreenH)),
		config:     opts.Config,
		inputFrame: core.NewInputFrame(),
		gameState:  opts.Game.State(),
	}
}

// screenRows leaves the last terminal row for the help footer.
func screenRows(height int) int {
	return max(height-1, 0)
}

// Init starts the tick loop.
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the bound action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Push(m.keys.Action(msg))
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one engine step with the queued actions and reacts to
// what happened during it.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame, now)
	m.inputFrame.Clear()
	m.gameState = result.State

	if result.Quit {
		m.quitting = true
		m.sounds.StopMusic()
		return m, tea.Quit
	}

	if result.Started {
		m.newHigh = false
		if result.FirstStart {
			m.sounds.StartMusic()
		}
	}
	if result.LinesCleared > 0 {
		m.sounds.PlayLineClear(result.LinesCleared)
	}
	if result.Ended {
		m.newHigh = result.NewHighScore
		m.games = append(m.games, GameSummary{Score: result.State.Score, NewHighScore: result.NewHighScore})
		m.recordScore()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore appends the finished game to the history.
func (m Model) recordScore() {
	if m.history == nil || !m.gameState.GameOver() || m.gameState.Score <= 0 {
		return
	}
	snap := m.game.Snapshot()
	if _, err := m.history.SaveScore(storage.GameID, snap.Score, snap.Lines); err != nil {
		m.logger.Warn("cannot record score", "score", snap.Score, "error", err)
	}
}

// Games returns the games finished during the session, in order.
// A game quit while playing is not included.
func (m Model) Games() []GameSummary {
	return m.games
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.game.Snapshot(), m.newHigh)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and returns the final model.
func Run(opts Options) (Model, error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}
