// Package zapp implements the word-zapp game state engine: letter selection,
// submission validation, and the zap/eviction rule.
//
// The engine is pure state. Timing (the countdown and the adversary) lives in
// the game package, which drives an Engine through its exported operations.
package zapp

import (
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Defaults for a standard game.
const (
	DefaultLetterCount       = 8
	DefaultWordLimit         = 8
	DefaultTimeLimit         = 120 * time.Second
	DefaultHardCap           = 10
	DefaultAdversaryInterval = 10 * time.Second
	DefaultAdversaryJitter   = 15 * time.Second

	// MinWordLength is the shortest accepted submission.
	MinWordLength = 3
)

// Dictionary is the membership oracle consulted by Submit.
// Words passed to Contains are already uppercase.
type Dictionary interface {
	Contains(word string) bool
}

// Engine owns the state of one game. All methods are safe for concurrent use.
// An Engine is not reused across games.
type Engine struct {
	mu sync.Mutex

	letters   []rune
	letterSet map[rune]struct{}
	dict      Dictionary
	wordLimit int

	submitted []string // Insertion order, used for adversary indexing
	inPlay    map[string]struct{}
	zapped    []string
	zappedSet map[string]struct{}
	locked    bool
}

// NewEngine creates an engine over a dealt set of letters.
// Letters are stored uppercase; wordLimit <= 0 disables the auto-lock.
func NewEngine(letters []rune, dict Dictionary, wordLimit int) *Engine {
	e := &Engine{
		letters:   make([]rune, 0, len(letters)),
		letterSet: make(map[rune]struct{}, len(letters)),
		dict:      dict,
		wordLimit: wordLimit,
		inPlay:    make(map[string]struct{}),
		zappedSet: make(map[string]struct{}),
	}
	for _, r := range strings.ToUpper(string(letters)) {
		if _, dup := e.letterSet[r]; dup {
			continue
		}
		e.letterSet[r] = struct{}{}
		e.letters = append(e.letters, r)
	}
	return e
}

// Deal draws letterCount letters with rng and returns a fresh engine.
func Deal(rng *rand.Rand, letterCount int, dict Dictionary, wordLimit int) *Engine {
	return NewEngine(PickLetters(rng, letterCount), dict, wordLimit)
}

// Normalize converts raw player input to the form stored by the engine.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Submit validates raw and records it as an accepted word.
// Rules are checked in order and the first failure is returned as a
// *ValidationError; a failed submission changes nothing. Reaching the word
// limit locks the engine.
func (e *Engine) Submit(raw string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	word := Normalize(raw)

	if e.locked {
		return reject(KindGameLocked, word)
	}
	if utf8.RuneCountInString(word) < MinWordLength {
		return reject(KindTooShort, word)
	}
	for _, r := range word {
		if _, ok := e.letterSet[r]; !ok {
			return reject(KindInvalidLetters, word)
		}
	}
	if _, ok := e.inPlay[word]; ok {
		return reject(KindAlreadySubmitted, word)
	}
	if _, ok := e.zappedSet[word]; ok {
		return reject(KindAlreadyZapped, word)
	}
	if e.dict == nil || !e.dict.Contains(word) {
		return reject(KindNotInDictionary, word)
	}

	e.submitted = append(e.submitted, word)
	e.inPlay[word] = struct{}{}

	if e.wordLimit > 0 && len(e.submitted) == e.wordLimit {
		e.locked = true
	}
	return nil
}

// Zap moves word from the submitted list to the zapped list.
// Returns false, changing nothing, if word is not currently submitted.
// Zap is still honored after the engine locks.
func (e *Engine) Zap(word string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zapLocked(word)
}

// ZapRandom zaps a uniformly chosen word from the current submitted list.
// Selection and removal happen under one lock, so the choice always reflects
// the list as it is at call time. Returns false when nothing is submitted.
func (e *Engine) ZapRandom(rng *rand.Rand) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.submitted) == 0 {
		return "", false
	}
	word := e.submitted[rng.Intn(len(e.submitted))]
	return word, e.zapLocked(word)
}

func (e *Engine) zapLocked(word string) bool {
	if _, ok := e.inPlay[word]; !ok {
		return false
	}
	delete(e.inPlay, word)
	for i, w := range e.submitted {
		if w == word {
			e.submitted = append(e.submitted[:i], e.submitted[i+1:]...)
			break
		}
	}
	e.zapped = append(e.zapped, word)
	e.zappedSet[word] = struct{}{}
	return true
}

// End locks the engine. It is terminal and idempotent.
func (e *Engine) End() {
	e.mu.Lock()
	e.locked = true
	e.mu.Unlock()
}

// Locked reports whether the engine no longer accepts submissions.
func (e *Engine) Locked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locked
}

// Letters returns the dealt letters in draw order.
func (e *Engine) Letters() []rune {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]rune, len(e.letters))
	copy(out, e.letters)
	return out
}

// Submitted returns the currently counted words in submission order.
func (e *Engine) Submitted() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.submitted...)
}

// Zapped returns the evicted words in the order they were zapped.
func (e *Engine) Zapped() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.zapped...)
}

// Tally is the number of words currently counted.
func (e *Engine) Tally() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.submitted)
}

// WordLimit returns the submission count that locks the engine.
func (e *Engine) WordLimit() int {
	return e.wordLimit
}
