package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"j", runeKey('j'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{"i", runeKey('i'), core.ActionRotateCW},
		{"x", runeKey('x'), core.ActionRotateCW},
		{"z", runeKey('z'), core.ActionRotateCCW},
		{"k", runeKey('k'), core.ActionRotateCCW},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop},
		{"r", runeKey('r'), core.ActionRedraw},
		{"s", runeKey('s'), core.ActionStart},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"unbound key", runeKey('m'), core.ActionNone},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(tt.msg)
		if action != tt.want {
			t.Errorf("%s: action = %v, want %v", tt.name, action, tt.want)
		}
		if isQuit {
			t.Errorf("%s: should not be a quit request", tt.name)
		}
	}
}

func TestKeyMapperQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		runeKey('q'),
	} {
		action, isQuit := km.MapKey(msg)
		if !isQuit || action != core.ActionQuit {
			t.Errorf("%s: expected quit request, got %v/%v", msg.String(), action, isQuit)
		}
	}
}
