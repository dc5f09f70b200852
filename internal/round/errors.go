package round

import "errors"

var (
	// ErrInvalidLevel reports a non-positive or non-numeric level selection.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrInvalidGuess reports guess text that does not parse or lies outside [1, level].
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrInvalidState reports an operation on a round that is no longer in progress.
	ErrInvalidState = errors.New("invalid state")
	// ErrNoActiveRound reports a hint request without a round in progress.
	ErrNoActiveRound = errors.New("no active round")
)
