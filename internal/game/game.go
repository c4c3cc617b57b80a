// Package game runs one round of word zapp: the engine plus the countdown
// and the zapper, both driven by a virtual-clock scheduler.
//
// Game contains pure logic with no terminal dependencies. The platform calls
// Step once per tick and Submit for each entered word, then drains events.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/word-zapp/internal/core"
	"github.com/vovakirdan/word-zapp/internal/dictionary"
	"github.com/vovakirdan/word-zapp/internal/scheduler"
	"github.com/vovakirdan/word-zapp/internal/zapp"
)

// ID is the identifier used for score storage.
const ID = "zapp"

// Settings are the limits fixed at game start.
type Settings struct {
	LetterCount int
	WordLimit   int           // Submissions that lock the engine
	TimeLimit   time.Duration // Countdown length
	HardCap     int           // Secondary cap checked by the countdown

	AdversaryEnabled  bool
	AdversaryInterval time.Duration // Base recurring interval
	AdversaryJitter   time.Duration // Extra delay, uniform in [0, jitter)
}

// DefaultSettings returns the standard game limits.
func DefaultSettings() Settings {
	return Settings{
		LetterCount:       zapp.DefaultLetterCount,
		WordLimit:         zapp.DefaultWordLimit,
		TimeLimit:         zapp.DefaultTimeLimit,
		HardCap:           zapp.DefaultHardCap,
		AdversaryEnabled:  true,
		AdversaryInterval: zapp.DefaultAdversaryInterval,
		AdversaryJitter:   zapp.DefaultAdversaryJitter,
	}
}

const countdownInterval = time.Second

// Game is a single round. Reset starts a new one.
type Game struct {
	settings Settings
	dict     dictionary.Dictionary
	logger   *log.Logger

	rng       *rand.Rand
	runID     string
	engine    *zapp.Engine
	sched     *scheduler.Scheduler
	countdown *scheduler.Task
	adversary *scheduler.Task

	timeLeft time.Duration
	over     bool
	reason   EndReason
	events   []Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for zaps and game-over reports.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game. Call Reset before use.
func New(settings Settings, dict dictionary.Dictionary, opts ...Option) *Game {
	g := &Game{
		settings: settings,
		dict:     dict,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Word Zapp"
}

// Reset deals new letters and restarts both timers.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.sched != nil {
		g.sched.CancelAll()
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.runID = uuid.NewString()
	g.engine = zapp.Deal(g.rng, g.settings.LetterCount, g.dict, g.settings.WordLimit)
	g.sched = scheduler.New()
	g.timeLeft = g.settings.TimeLimit
	g.over = false
	g.reason = ReasonNone
	g.events = nil
	g.adversary = nil

	g.countdown = g.sched.Every("countdown", countdownInterval, g.onCountdown)
	if g.settings.AdversaryEnabled && g.settings.AdversaryInterval > 0 {
		g.adversary = g.sched.Every("zapper", g.settings.AdversaryInterval, g.onAdversary)
	}

	g.emit(LettersDealtEvent{
		Letters:   g.engine.Letters(),
		TimeLimit: g.secondsLeft(),
	})
	g.logger.Debug("letters dealt", "run", g.runID, "letters", string(g.engine.Letters()))
}

// Step advances the round by dt of game time.
func (g *Game) Step(dt time.Duration) core.StepResult {
	if !g.over {
		g.sched.Advance(dt)
	}
	return core.StepResult{State: g.State(), Events: len(g.events)}
}

// Submit offers a word to the engine. The returned error is a
// *zapp.ValidationError when the word is rejected.
func (g *Game) Submit(raw string) error {
	word := zapp.Normalize(raw)

	if err := g.engine.Submit(raw); err != nil {
		g.emit(SubmitRejectedEvent{Word: word, Kind: zapp.KindOf(err)})
		return err
	}

	g.emit(SubmitAcceptedEvent{Word: word, Tally: g.engine.Tally()})

	if g.engine.Locked() {
		g.finish(ReasonWordLimit)
	}
	return nil
}

// Zap evicts word directly. Returns false if it is not currently counted.
func (g *Game) Zap(word string) bool {
	if !g.engine.Zap(word) {
		return false
	}
	g.emit(WordZappedEvent{Word: word, Tally: g.engine.Tally()})
	return true
}

// End finishes the round early.
func (g *Game) End() {
	g.finish(ReasonQuit)
}

func (g *Game) onCountdown() {
	g.timeLeft -= countdownInterval
	if g.timeLeft < 0 {
		g.timeLeft = 0
	}
	g.emit(TimerEvent{SecondsLeft: g.secondsLeft()})

	switch {
	case g.timeLeft <= 0:
		g.finish(ReasonTimeUp)
	case g.settings.HardCap > 0 && g.engine.Tally() >= g.settings.HardCap:
		g.finish(ReasonHardCap)
	}
}

// onAdversary schedules one delayed zap. The target is chosen when the
// delayed task fires, not now, since the list may change in between.
func (g *Game) onAdversary() {
	var delay time.Duration
	if g.settings.AdversaryJitter > 0 {
		delay = time.Duration(g.rng.Int63n(int64(g.settings.AdversaryJitter)))
	}
	g.sched.After(g.adversary, "zap", delay, g.zapRandom)
}

func (g *Game) zapRandom() {
	word, ok := g.engine.ZapRandom(g.rng)
	if !ok {
		return
	}
	g.emit(WordZappedEvent{Word: word, Tally: g.engine.Tally()})
	g.logger.Debug("zapped", "run", g.runID, "word", word, "tally", g.engine.Tally())
}

// finish locks the engine and stops both timers. Only the first call has
// any effect.
func (g *Game) finish(reason EndReason) {
	if g.over {
		return
	}
	g.over = true
	g.reason = reason
	g.engine.End()

	g.countdown.Cancel()
	if g.adversary != nil {
		g.adversary.Cancel()
	}
	g.sched.CancelAll()

	g.emit(GameOverEvent{
		Reason:    reason,
		Tally:     g.engine.Tally(),
		Submitted: g.engine.Submitted(),
		Zapped:    g.engine.Zapped(),
	})
	g.logger.Info("game over",
		"run", g.runID,
		"reason", reason,
		"tally", g.engine.Tally(),
		"zapped", len(g.engine.Zapped()),
	)
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Drain returns and clears the queued events.
func (g *Game) Drain() []Event {
	out := g.events
	g.events = nil
	return out
}

// Flush delivers queued events to p in order.
func (g *Game) Flush(p Presenter) {
	for _, e := range g.Drain() {
		p.Present(e)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Tally(),
		TimeLeft: g.secondsLeft(),
		GameOver: g.over,
	}
}

func (g *Game) secondsLeft() int {
	return int((g.timeLeft + time.Second - 1) / time.Second)
}

// Letters returns the dealt letters.
func (g *Game) Letters() []rune { return g.engine.Letters() }

// Submitted returns the counted words in submission order.
func (g *Game) Submitted() []string { return g.engine.Submitted() }

// Zapped returns the evicted words in zap order.
func (g *Game) Zapped() []string { return g.engine.Zapped() }

// Reason returns why the round ended, or ReasonNone while it runs.
func (g *Game) Reason() EndReason { return g.reason }

// RunID identifies this round; it changes on every Reset.
func (g *Game) RunID() string { return g.runID }

// Elapsed returns the game time played so far.
func (g *Game) Elapsed() time.Duration { return g.sched.Elapsed() }

// Settings returns the limits this game was created with.
func (g *Game) Settings() Settings { return g.settings }
