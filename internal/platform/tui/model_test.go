package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

type fakeSounds struct {
	lineClears []int
	started    int
	stopped    int
}

func (f *fakeSounds) PlayLineClear(lines int) { f.lineClears = append(f.lineClears, lines) }
func (f *fakeSounds) StartMusic()             { f.started++ }
func (f *fakeSounds) StopMusic()              { f.stopped++ }
func (f *fakeSounds) Cleanup()                {}

type savedScore struct {
	gameID string
	score  int
	lines  int
}

type fakeHistory struct {
	saved []savedScore
	err   error
}

func (f *fakeHistory) SaveScore(gameID string, score, lines int) (int64, error) {
	f.saved = append(f.saved, savedScore{gameID, score, lines})
	return int64(len(f.saved)), f.err
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(sounds *fakeSounds, history *fakeHistory) Model {
	opts := Options{
		Game:   tetris.New(tetris.Options{Seed: 7}),
		Sounds: sounds,
		Config: core.RuntimeConfig{ScreenW: 60, ScreenH: 25, TickRate: 60},
	}
	if history != nil {
		opts.History = history
	}
	return NewModel(opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelStartsOnTick(t *testing.T) {
	sounds := &fakeSounds{}
	m := newTestModel(sounds, nil)

	m, _ = update(t, m, spaceKey)
	if m.gameState.Phase != core.PhaseNotStarted {
		t.Fatal("key press changed the game before the tick")
	}

	m, cmd := update(t, m, TickMsg(t0))
	if m.gameState.Phase != core.PhasePlaying {
		t.Fatalf("Phase = %v, want Playing", m.gameState.Phase)
	}
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if sounds.started != 1 {
		t.Errorf("music started %d times, want 1", sounds.started)
	}
	if len(m.inputFrame.Actions) != 0 {
		t.Errorf("input frame not cleared: %v", m.inputFrame.Actions)
	}
}

func TestModelQuit(t *testing.T) {
	sounds := &fakeSounds{}
	m := newTestModel(sounds, nil)

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg(t0))

	if cmd == nil {
		t.Fatal("quit tick returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit tick did not return tea.Quit")
	}
	if sounds.stopped != 1 {
		t.Errorf("music stopped %d times, want 1", sounds.stopped)
	}
	if m.View() != "" {
		t.Error("View not empty after quit")
	}
}

// playUntilGameOver soft-drops every piece straight down the middle
// columns, which never completes a row.
func playUntilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, spaceKey)
	now := t0
	m, _ = update(t, m, TickMsg(now))

	for range 10000 {
		if m.gameState.Phase == core.PhaseGameOver {
			return m
		}
		now = now.Add(tetris.FallInterval)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(t, m, TickMsg(now))
	}
	t.Fatal("game did not end")
	return m
}

func TestModelRecordsScoreOnGameOver(t *testing.T) {
	sounds := &fakeSounds{}
	history := &fakeHistory{}
	m := newTestModel(sounds, history)

	m = playUntilGameOver(t, m)

	st := m.gameState
	if st.Score <= 0 {
		t.Fatalf("Score = %d, want > 0 after soft drops", st.Score)
	}
	if len(history.saved) != 1 {
		t.Fatalf("saved %d scores, want 1", len(history.saved))
	}
	got := history.saved[0]
	if got.gameID != "tetris" || got.score != st.Score || got.lines != 0 {
		t.Errorf("saved %+v, want tetris/%d/0", got, st.Score)
	}
	if !m.newHigh || st.HighScore != st.Score {
		t.Errorf("NewHighScore = %v, high = %d, want new record %d", m.newHigh, st.HighScore, st.Score)
	}
	if len(sounds.lineClears) != 0 {
		t.Errorf("line clear sounds = %v, want none", sounds.lineClears)
	}

	// Further ticks on the game-over screen do not record again.
	m, _ = update(t, m, TickMsg(t0.Add(time.Hour)))
	if len(history.saved) != 1 {
		t.Errorf("saved %d scores after idle tick, want 1", len(history.saved))
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view does not show game over")
	}
}

func TestModelRestartClearsNewHigh(t *testing.T) {
	sounds := &fakeSounds{}
	history := &fakeHistory{err: errors.New("disk full")}
	m := newTestModel(sounds, history)

	m = playUntilGameOver(t, m)
	if !m.newHigh {
		t.Fatal("first game did not set a high score")
	}

	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg(t0.Add(time.Hour)))

	if m.gameState.Phase != core.PhasePlaying {
		t.Fatalf("Phase = %v, want Playing after restart", m.gameState.Phase)
	}
	if m.newHigh {
		t.Error("new high score flag kept after restart")
	}
	if sounds.started != 1 {
		t.Errorf("music started %d times, want 1 (restart keeps it running)", sounds.started)
	}
}

func TestModelQuitWhilePlayingReportsNoGame(t *testing.T) {
	sounds := &fakeSounds{}
	history := &fakeHistory{}
	m := newTestModel(sounds, history)

	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Millisecond)))
	if m.gameState.Phase != core.PhasePlaying || m.gameState.Score == 0 {
		t.Fatalf("state = %+v, want Playing with a soft-drop point", m.gameState)
	}

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	if cmd == nil {
		t.Fatal("quit tick returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit tick did not return tea.Quit")
	}

	if games := m.Games(); len(games) != 0 {
		t.Errorf("Games() = %+v, want none for a game quit while playing", games)
	}
	if len(history.saved) != 0 {
		t.Errorf("saved %d scores, want 0", len(history.saved))
	}
}

func TestModelGamesKeepEachGameOver(t *testing.T) {
	m := newTestModel(&fakeSounds{}, nil)

	m = playUntilGameOver(t, m)
	first := m.gameState.Score

	// Restarting clears the on-screen marker but not the finished game.
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg(t0.Add(time.Hour)))
	if m.newHigh {
		t.Error("new high score marker kept after restart")
	}

	games := m.Games()
	if len(games) != 1 {
		t.Fatalf("Games() = %+v, want one finished game", games)
	}
	if games[0].Score != first || !games[0].NewHighScore {
		t.Errorf("Games()[0] = %+v, want score %d with a new high score", games[0], first)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(&fakeSounds{}, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window not reported")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if !strings.Contains(m.View(), "Press SPACE to Start") {
		t.Error("title screen not shown after growing the window")
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{Game: tetris.New(tetris.Options{})})

	if m.config.TickRate != core.DefaultConfig().TickRate {
		t.Errorf("TickRate = %d, want default", m.config.TickRate)
	}
	if m.keys.Action(runeKey('q')) != core.ActionQuit {
		t.Error("default key map not applied")
	}
	if m.Init() == nil {
		t.Error("Init returned no tick command")
	}
}
