package round

import "time"

// Status is the lifecycle state of a round.
type Status int

const (
	InProgress Status = iota
	Won
	GaveUp
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case GaveUp:
		return "gave_up"
	default:
		return "unknown"
	}
}

// Direction places a guess relative to the target.
type Direction int

const (
	Low Direction = iota
	High
	Correct
)

func (d Direction) String() string {
	switch d {
	case Low:
		return "low"
	case High:
		return "high"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Proximity is the Hot/Warm/Cold feedback for a submitted guess.
type Proximity int

const (
	Hot Proximity = iota
	Warm
	Cold
)

func (p Proximity) String() string {
	switch p {
	case Hot:
		return "hot"
	case Warm:
		return "warm"
	case Cold:
		return "cold"
	default:
		return "unknown"
	}
}

// Closeness is the finer-grained category reported by a hint.
type Closeness int

const (
	VeryClose Closeness = iota
	Close
	SomewhatClose
	NotClose
)

func (c Closeness) String() string {
	switch c {
	case VeryClose:
		return "very_close"
	case Close:
		return "close"
	case SomewhatClose:
		return "somewhat_close"
	case NotClose:
		return "not_close"
	default:
		return "unknown"
	}
}

// Parity of the hidden target.
type Parity int

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}
	return "even"
}

// GuessResult is the feedback for one validated guess.
type GuessResult struct {
	Direction Direction
	Proximity Proximity
	Attempts  int
}

// HintResult is the read-only feedback for the currently entered guess.
type HintResult struct {
	Direction Direction
	Closeness Closeness
	Parity    Parity
}

// Outcome is produced exactly once when a round terminates.
type Outcome struct {
	Level   int
	Score   int
	Elapsed time.Duration
	Won     bool
}

// ElapsedSeconds returns the round duration in seconds.
func (o Outcome) ElapsedSeconds() float64 {
	return o.Elapsed.Seconds()
}
