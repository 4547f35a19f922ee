package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortvis/internal/present"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Toggle", km.Toggle},
		{"Pause", km.Pause},
		{"Reset", km.Reset},
		{"Shuffle", km.Shuffle},
		{"Prev", km.Prev},
		{"Next", km.Next},
		{"Faster", km.Faster},
		{"Slower", km.Slower},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have help text", b.name)
			}
		})
	}
}

func TestKeyMapResolve(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want present.Key
	}{
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, present.KeyEscape},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, present.KeyEscape},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, present.KeyEscape},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, present.KeySpace},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, present.KeyP},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, present.KeyR},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, present.KeyS},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, present.KeyLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, present.KeyRight},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, present.KeyUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, present.KeyDown},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, present.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Resolve(tt.msg); got != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 9 {
		t.Errorf("expected 9 short help entries, got %d", len(km.ShortHelp()))
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 9 {
		t.Errorf("expected 9 full help entries, got %d", total)
	}
}
