package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform uses the screen size for layout; the engine uses Seed for
// reproducible piece sequences.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level mode of a game session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Title screen, waiting for Start
	PhasePlaying                 // A piece is falling
	PhaseGameOver                // Spawn collided; waiting for Start
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int   // Current score
	HighScore int   // Best score across sessions
	Phase     Phase // Current phase
}

// GameOver reports whether the session is in the game-over phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State        GameState
	LinesCleared int  // Lines removed by locks during this tick
	Started      bool // A new game was started this tick
	FirstStart   bool // The start left the title screen (not a restart)
	Ended        bool // The session entered the game-over phase this tick
	NewHighScore bool // Ended with a score above the previous high score
	Quit         bool // A quit action was received
}
