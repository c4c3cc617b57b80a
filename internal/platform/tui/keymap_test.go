package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"enter submits", tea.KeyMsg{Type: tea.KeyEnter}, ActionSubmit},
		{"ctrl+r restarts", tea.KeyMsg{Type: tea.KeyCtrlR}, ActionRestart},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, ActionScreenshot},
		{"letters go to input", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, ActionNone},
		{"r goes to input", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, ActionNone},
		{"backspace goes to input", tea.KeyMsg{Type: tea.KeyBackspace}, ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %d, want %d", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{
		120: "2:00",
		61:  "1:01",
		9:   "0:09",
		0:   "0:00",
		-3:  "0:00",
	}
	for secs, want := range tests {
		if got := formatClock(secs); got != want {
			t.Errorf("formatClock(%d) = %q, want %q", secs, got, want)
		}
	}
}
