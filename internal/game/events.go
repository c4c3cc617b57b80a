package game

import "github.com/vovakirdan/word-zapp/internal/zapp"

// Event is a notification for the presentation layer.
type Event interface {
	gameEvent()
}

// LettersDealtEvent is sent once when a game starts.
type LettersDealtEvent struct {
	Letters   []rune
	TimeLimit int // Seconds
}

func (LettersDealtEvent) gameEvent() {}

// SubmitAcceptedEvent is sent when a word is counted.
type SubmitAcceptedEvent struct {
	Word  string
	Tally int
}

func (SubmitAcceptedEvent) gameEvent() {}

// SubmitRejectedEvent is sent when a submission fails validation.
type SubmitRejectedEvent struct {
	Word string
	Kind zapp.Kind
}

func (SubmitRejectedEvent) gameEvent() {}

// Message returns the user-facing rejection text.
func (e SubmitRejectedEvent) Message() string {
	return e.Kind.String()
}

// WordZappedEvent is sent when the adversary (or a caller) evicts a word.
type WordZappedEvent struct {
	Word  string
	Tally int
}

func (WordZappedEvent) gameEvent() {}

// TimerEvent is sent on every countdown tick.
type TimerEvent struct {
	SecondsLeft int
}

func (TimerEvent) gameEvent() {}

// GameOverEvent is sent exactly once per game.
type GameOverEvent struct {
	Reason    EndReason
	Tally     int
	Submitted []string
	Zapped    []string
}

func (GameOverEvent) gameEvent() {}

// EndReason describes why a game finished.
type EndReason int

const (
	ReasonNone      EndReason = iota
	ReasonWordLimit           // Engine locked after WordLimit submissions
	ReasonTimeUp              // Countdown reached zero
	ReasonHardCap             // Countdown saw HardCap submissions
	ReasonQuit                // Ended by the player or host
)

func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWordLimit:
		return "word_limit"
	case ReasonTimeUp:
		return "time_up"
	case ReasonHardCap:
		return "hard_cap"
	case ReasonQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Presenter receives game events in order.
type Presenter interface {
	Present(Event)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Event)

// Present calls f(e).
func (f PresenterFunc) Present(e Event) {
	f(e)
}
