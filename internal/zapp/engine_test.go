package zapp

import (
	"errors"
	"math/rand"
	"testing"
)

type testDict map[string]bool

func (d testDict) Contains(word string) bool { return d[word] }

func scenarioEngine() *Engine {
	return NewEngine([]rune("AERTSNLO"), testDict{"RATS": true, "STARE": true}, DefaultWordLimit)
}

func TestSubmitScenario(t *testing.T) {
	e := scenarioEngine()

	if err := e.Submit("rats"); err != nil {
		t.Fatalf("Submit(rats) failed: %v", err)
	}
	if got := e.Submitted(); len(got) != 1 || got[0] != "RATS" {
		t.Fatalf("Submitted() = %v, want [RATS]", got)
	}

	steps := []struct {
		word string
		want error
	}{
		{"RATS", ErrAlreadySubmitted},
		{"cat", ErrInvalidLetters},
		{"no", ErrTooShort},
	}
	for _, s := range steps {
		if err := e.Submit(s.word); !errors.Is(err, s.want) {
			t.Errorf("Submit(%q) = %v, want %v", s.word, err, s.want)
		}
	}

	if !e.Zap("RATS") {
		t.Fatal("Zap(RATS) = false, want true")
	}
	if got := e.Submitted(); len(got) != 0 {
		t.Errorf("Submitted() after zap = %v, want empty", got)
	}
	if got := e.Zapped(); len(got) != 1 || got[0] != "RATS" {
		t.Errorf("Zapped() = %v, want [RATS]", got)
	}

	if err := e.Submit("rats"); !errors.Is(err, ErrAlreadyZapped) {
		t.Errorf("Submit(rats) after zap = %v, want %v", err, ErrAlreadyZapped)
	}
}

func TestSubmitRuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		word  string
		want  Kind
	}{
		{
			name:  "locked beats too short",
			setup: func(e *Engine) { e.End() },
			word:  "x",
			want:  KindGameLocked,
		},
		{
			name: "too short beats invalid letters",
			word: "zz",
			want: KindTooShort,
		},
		{
			name: "invalid letters beats dictionary",
			word: "zebra",
			want: KindInvalidLetters,
		},
		{
			name: "invalid letters even when in dictionary",
			word: "CART",
			want: KindInvalidLetters,
		},
		{
			name: "not in dictionary",
			word: "tsar",
			want: KindNotInDictionary,
		},
		{
			name:  "already submitted beats dictionary",
			setup: func(e *Engine) { _ = e.Submit("stare") },
			word:  "STARE",
			want:  KindAlreadySubmitted,
		},
		{
			name: "non letter characters",
			word: "RAT!",
			want: KindInvalidLetters,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine([]rune("AERTSNLO"), testDict{"RATS": true, "STARE": true, "CART": true}, DefaultWordLimit)
			if tc.setup != nil {
				tc.setup(e)
			}
			before := len(e.Submitted())

			err := e.Submit(tc.word)
			if got := KindOf(err); got != tc.want {
				t.Errorf("Submit(%q) kind = %v, want %v", tc.word, got, tc.want)
			}
			if after := len(e.Submitted()); after != before {
				t.Errorf("failed submit changed Submitted size: %d -> %d", before, after)
			}
		})
	}
}

func TestSubmitTrimsAndUppercases(t *testing.T) {
	e := scenarioEngine()
	if err := e.Submit("  StArE \n"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if got := e.Submitted(); got[0] != "STARE" {
		t.Errorf("stored word = %q, want STARE", got[0])
	}
}

func TestRepeatedLettersAllowed(t *testing.T) {
	// Validation is set membership only, so a letter may repeat.
	e := NewEngine([]rune("AERTSNLO"), testDict{"TOTS": true}, DefaultWordLimit)
	if err := e.Submit("tots"); err != nil {
		t.Errorf("Submit(tots) = %v, want nil", err)
	}
}

func TestWordLimitLocks(t *testing.T) {
	words := []string{"RAT", "RATS", "STAR", "TARS", "ARTS", "SEAT", "EATS", "TEAS", "EAST"}
	dict := testDict{}
	for _, w := range words {
		dict[w] = true
	}
	e := NewEngine([]rune("AERTSNLO"), dict, 8)

	for i, w := range words[:8] {
		if e.Locked() {
			t.Fatalf("locked early after %d submissions", i)
		}
		if err := e.Submit(w); err != nil {
			t.Fatalf("Submit(%q) failed: %v", w, err)
		}
	}

	if !e.Locked() {
		t.Fatal("engine should be locked after 8 submissions")
	}
	if err := e.Submit(words[8]); !errors.Is(err, ErrGameLocked) {
		t.Errorf("9th Submit = %v, want %v", err, ErrGameLocked)
	}
	if e.Tally() != 8 {
		t.Errorf("Tally() = %d, want 8", e.Tally())
	}
}

func TestZapAbsentWord(t *testing.T) {
	e := scenarioEngine()
	if e.Zap("RATS") {
		t.Error("Zap of never-submitted word should return false")
	}
	if len(e.Zapped()) != 0 {
		t.Error("Zap of absent word should not touch Zapped")
	}

	_ = e.Submit("rats")
	if !e.Zap("RATS") {
		t.Fatal("first Zap should succeed")
	}
	if e.Zap("RATS") {
		t.Error("second Zap of the same word should return false")
	}
	if got := e.Zapped(); len(got) != 1 {
		t.Errorf("Zapped() = %v, want one entry", got)
	}
}

func TestZapAfterLock(t *testing.T) {
	e := scenarioEngine()
	_ = e.Submit("stare")
	e.End()
	if !e.Zap("STARE") {
		t.Error("Zap should still work once locked")
	}
	if e.Tally() != 0 {
		t.Errorf("Tally() = %d, want 0", e.Tally())
	}
}

func TestZapRandom(t *testing.T) {
	e := NewEngine([]rune("AERTSNLO"), testDict{"RATS": true, "STARE": true}, DefaultWordLimit)
	rng := rand.New(rand.NewSource(7))

	if _, ok := e.ZapRandom(rng); ok {
		t.Error("ZapRandom on empty list should return false")
	}

	_ = e.Submit("rats")
	_ = e.Submit("stare")

	first, ok := e.ZapRandom(rng)
	if !ok {
		t.Fatal("ZapRandom should succeed with two words")
	}
	second, ok := e.ZapRandom(rng)
	if !ok {
		t.Fatal("ZapRandom should succeed with one word left")
	}
	if first == second {
		t.Errorf("ZapRandom picked %q twice", first)
	}
	if e.Tally() != 0 || len(e.Zapped()) != 2 {
		t.Errorf("after two zaps: tally=%d zapped=%v", e.Tally(), e.Zapped())
	}
}

func TestSubmittedAndZappedDisjoint(t *testing.T) {
	e := NewEngine([]rune("AERTSNLO"), testDict{"RATS": true, "STARE": true, "TONE": true}, 0)
	_ = e.Submit("rats")
	_ = e.Submit("stare")
	_ = e.Submit("tone")
	e.Zap("STARE")

	zapped := map[string]bool{}
	for _, w := range e.Zapped() {
		zapped[w] = true
	}
	for _, w := range e.Submitted() {
		if zapped[w] {
			t.Errorf("%q is both submitted and zapped", w)
		}
	}
}

func TestNewEngineDedupesLetters(t *testing.T) {
	e := NewEngine([]rune("aabc"), testDict{}, 0)
	if got := string(e.Letters()); got != "ABC" {
		t.Errorf("Letters() = %q, want ABC", got)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(nil) != 0 {
		t.Error("KindOf(nil) should be 0")
	}
	if KindOf(errors.New("other")) != 0 {
		t.Error("KindOf(non-validation) should be 0")
	}
	err := &ValidationError{Kind: KindNotInDictionary, Word: "XYZ"}
	if KindOf(err) != KindNotInDictionary {
		t.Error("KindOf should extract the kind")
	}
	if err.Error() != "Unrecognized word." {
		t.Errorf("Error() = %q", err.Error())
	}
	if errors.Is(err, ErrTooShort) {
		t.Error("error should not match an unrelated sentinel")
	}
}
