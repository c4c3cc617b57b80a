package zapp

import "errors"

// Kind classifies why a submission was rejected.
type Kind int

const (
	KindGameLocked Kind = iota + 1
	KindTooShort
	KindInvalidLetters
	KindAlreadySubmitted
	KindAlreadyZapped
	KindNotInDictionary
)

// String returns the user-facing message for the rejection kind.
func (k Kind) String() string {
	switch k {
	case KindGameLocked:
		return "Game is locked."
	case KindTooShort:
		return "Must be at least 3 letters long."
	case KindInvalidLetters:
		return "Invalid letters."
	case KindAlreadySubmitted:
		return "Already submitted."
	case KindAlreadyZapped:
		return "Word was zapped."
	case KindNotInDictionary:
		return "Unrecognized word."
	default:
		return "Unknown error."
	}
}

// Sentinel errors, one per Kind. A *ValidationError matches its sentinel
// with errors.Is.
var (
	ErrGameLocked       = errors.New("zapp: game is locked")
	ErrTooShort         = errors.New("zapp: word too short")
	ErrInvalidLetters   = errors.New("zapp: invalid letters")
	ErrAlreadySubmitted = errors.New("zapp: already submitted")
	ErrAlreadyZapped    = errors.New("zapp: word was zapped")
	ErrNotInDictionary  = errors.New("zapp: not in dictionary")
)

var sentinels = map[Kind]error{
	KindGameLocked:       ErrGameLocked,
	KindTooShort:         ErrTooShort,
	KindInvalidLetters:   ErrInvalidLetters,
	KindAlreadySubmitted: ErrAlreadySubmitted,
	KindAlreadyZapped:    ErrAlreadyZapped,
	KindNotInDictionary:  ErrNotInDictionary,
}

// ValidationError is returned by Engine.Submit when a word is rejected.
type ValidationError struct {
	Kind Kind
	Word string // Normalized submission
}

func (e *ValidationError) Error() string {
	return e.Kind.String()
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ValidationError) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// KindOf extracts the rejection kind from err.
// Returns 0 if err is not a *ValidationError.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}

func reject(kind Kind, word string) error {
	return &ValidationError{Kind: kind, Word: word}
}
