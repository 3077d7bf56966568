package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the configuration so players can rebind them.
type KeyMap struct {
	Start    key.Binding
	Left     key.Binding
	Right    key.Binding
	SoftDrop key.Binding
	Rotate   key.Binding
	Quit     key.Binding
}

// NewKeyMap builds the bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Start:    binding(cfg.Start, "start"),
		Left:     binding(cfg.Left, "left"),
		Right:    binding(cfg.Right, "right"),
		SoftDrop: binding(cfg.SoftDrop, "drop"),
		Rotate:   binding(cfg.Rotate, "rotate"),
		Quit:     binding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders key names for the help footer.
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case " ":
			names = append(names, "space")
		case "left":
			names = append(names, "←")
		case "right":
			names = append(names, "→")
		case "up":
			names = append(names, "↑")
		case "down":
			names = append(names, "↓")
		default:
			names = append(names, k)
		}
	}
	return strings.Join(names, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.SoftDrop},
		{k.Start, k.Quit},
	}
}

// Action returns the game action bound to msg, or ActionNone.
// Quit is checked first so it cannot be shadowed by a rebinding.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	}
	return core.ActionNone
}
