package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortvis/internal/present"
)

type KeyMap struct {
	Quit    key.Binding
	Toggle  key.Binding
	Pause   key.Binding
	Reset   key.Binding
	Shuffle key.Binding
	Prev    key.Binding
	Next    key.Binding
	Faster  key.Binding
	Slower  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Shuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Prev:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev algo")),
		Next:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next algo")),
		Faster:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "faster")),
		Slower:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "slower")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Pause, k.Reset, k.Shuffle, k.Prev, k.Next, k.Faster, k.Slower, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Pause, k.Reset, k.Shuffle},
		{k.Prev, k.Next, k.Faster, k.Slower},
		{k.Quit},
	}
}

// Resolve translates a terminal key press into the shared key set.
func (k KeyMap) Resolve(msg tea.KeyMsg) present.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return present.KeyEscape
	case key.Matches(msg, k.Toggle):
		return present.KeySpace
	case key.Matches(msg, k.Pause):
		return present.KeyP
	case key.Matches(msg, k.Reset):
		return present.KeyR
	case key.Matches(msg, k.Shuffle):
		return present.KeyS
	case key.Matches(msg, k.Prev):
		return present.KeyLeft
	case key.Matches(msg, k.Next):
		return present.KeyRight
	case key.Matches(msg, k.Faster):
		return present.KeyUp
	case key.Matches(msg, k.Slower):
		return present.KeyDown
	}
	return present.KeyNone
}
