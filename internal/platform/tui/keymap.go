package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMap defines the key bindings for a running game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "run left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Keys without a game action map to core.ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	}
	return core.ActionNone
}

// KeyLatch turns key presses into held buttons.
// Terminals report presses and auto-repeats but never releases, so a
// button counts as held until hold has passed since its last press.
type KeyLatch struct {
	hold    time.Duration
	expires map[core.Action]time.Time
}

// NewKeyLatch creates a latch holding each press for the given duration.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	return &KeyLatch{
		hold:    hold,
		expires: make(map[core.Action]time.Time),
	}
}

// Press records a press of a at now.
// Pressing one horizontal direction releases the other.
func (l *KeyLatch) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft:
		delete(l.expires, core.ActionRight)
	case core.ActionRight:
		delete(l.expires, core.ActionLeft)
	}
	l.expires[a] = now.Add(l.hold)
}

// Frame returns the buttons held at now and forgets expired ones.
func (l *KeyLatch) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range l.expires {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(l.expires, a)
		}
	}
	return frame
}

// Release drops every held button.
func (l *KeyLatch) Release() {
	clear(l.expires)
}
