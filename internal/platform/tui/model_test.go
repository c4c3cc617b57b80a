package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/word-zapp/internal/core"
	"github.com/vovakirdan/word-zapp/internal/dictionary"
	"github.com/vovakirdan/word-zapp/internal/game"
	"github.com/vovakirdan/word-zapp/internal/storage"
)

// newTestModel returns a model whose game deals the whole alphabet, so any
// dictionary word is playable, and runs one second per tick.
func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()

	settings := game.Settings{
		LetterCount: 26,
		WordLimit:   3,
		TimeLimit:   3 * time.Second,
	}
	dict := dictionary.NewSet("rats", "stare", "tsar", "cart")
	g := game.New(settings, dict)

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1, Seed: 7}
	return NewModel(g, store, cfg, WithPlayer("tester"))
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func submit(t *testing.T, m Model, word string) Model {
	t.Helper()
	m.input.SetValue(word)
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModelSubmit(t *testing.T) {
	m := newTestModel(t, nil)

	m = submit(t, m, "rats")
	if got := m.game.Submitted(); len(got) != 1 || got[0] != "RATS" {
		t.Fatalf("Submitted = %v, want [RATS]", got)
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after submit")
	}

	m = submit(t, m, "rats")
	if m.Message() != "Already submitted." {
		t.Errorf("Message = %q, want %q", m.Message(), "Already submitted.")
	}

	m = submit(t, m, "xyzzy")
	if m.Message() != "Unrecognized word." {
		t.Errorf("Message = %q, want %q", m.Message(), "Unrecognized word.")
	}

	m = submit(t, m, "ab")
	if m.Message() != "Must be at least 3 letters long." {
		t.Errorf("Message = %q", m.Message())
	}
}

func TestModelTypingGoesToInput(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("tsar")})
	if m.input.Value() != "tsar" {
		t.Fatalf("input = %q, want %q", m.input.Value(), "tsar")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.game.Submitted()) != 1 {
		t.Errorf("Submitted = %v, want one word", m.game.Submitted())
	}
}

func TestModelTimeUp(t *testing.T) {
	m := newTestModel(t, nil)
	m = submit(t, m, "stare")

	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}

	if !m.GameOver() {
		t.Fatal("game should be over after the time limit")
	}
	if m.Message() != "Game over! Total words: 1" {
		t.Errorf("Message = %q", m.Message())
	}
	if !strings.Contains(m.View(), "Game over! Total words: 1") {
		t.Error("View should show the final tally")
	}

	// Input is disabled after game over
	m = submit(t, m, "rats")
	if len(m.game.Submitted()) != 1 {
		t.Errorf("submission accepted after game over: %v", m.game.Submitted())
	}
	before := m.input.Value()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.input.Value() != before {
		t.Errorf("typing should be ignored after game over, input = %q", m.input.Value())
	}
}

func TestModelWordLimit(t *testing.T) {
	m := newTestModel(t, nil)

	for _, w := range []string{"rats", "stare", "tsar"} {
		m = submit(t, m, w)
	}

	if !m.GameOver() {
		t.Fatal("game should be over at the word limit")
	}
	if m.game.Reason() != game.ReasonWordLimit {
		t.Errorf("Reason = %v, want word_limit", m.game.Reason())
	}
	if m.Message() != "Game over! Total words: 3" {
		t.Errorf("Message = %q", m.Message())
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t, nil)

	// Restart is ignored while playing
	firstRun := m.game.RunID()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.game.RunID() != firstRun {
		t.Fatal("restart should be ignored while the game is running")
	}

	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if m.GameOver() {
		t.Error("game should be running after restart")
	}
	if m.game.RunID() == firstRun {
		t.Error("restart should start a new round")
	}
	if len(m.game.Submitted()) != 0 {
		t.Error("restart should clear submissions")
	}
}

func TestModelQuitEndsGame(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.game.Reason() != game.ReasonQuit {
		t.Errorf("Reason = %v, want quit", m.game.Reason())
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = submit(t, m, "cart")

	// Extra ticks after game over must not save again
	for i := 0; i < 6; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 saved result, got %d", len(results))
	}

	r := results[0]
	if r.GameID != m.game.RunID() || r.Player != "tester" || r.Tally != 1 {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.Reason != "time_up" || r.Duration != 3 {
		t.Errorf("Reason/Duration = %q/%d, want time_up/3", r.Reason, r.Duration)
	}
	if len(r.Letters) != 26 {
		t.Errorf("Letters = %q, want the full alphabet", r.Letters)
	}
}

func TestScoreboardLoadsResults(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(storage.Result{GameID: "a", Letters: "ABC", Tally: 2, Reason: "time_up"})
	store.SaveResult(storage.Result{GameID: "b", Letters: "ABC", Tally: 5, Reason: "word_limit"})

	sb := NewScoreboardModel(store, 100, 30, 10)
	results := sb.Results()
	if len(results) != 2 || results[0].Tally != 5 {
		t.Fatalf("unexpected results: %+v", results)
	}
	if !strings.Contains(sb.View(), "2 games") {
		t.Error("View should show the stats summary")
	}

	empty := NewScoreboardModel(nil, 40, 20, 0)
	if !strings.Contains(empty.View(), "No games recorded yet.") {
		t.Error("View should show the empty message without a store")
	}
}
