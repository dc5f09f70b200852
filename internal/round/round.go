// Package round implements the lifecycle of a single guessing round.
package round

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock supplies timestamps for elapsed-time measurement.
type Clock interface {
	Now() time.Time
}

// Source supplies uniform random integers in [0, n).
type Source interface {
	Intn(n int) int
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// Round is the state of one guessing session from target selection to termination.
type Round struct {
	level     int
	target    int
	attempts  int
	startedAt time.Time
	status    Status
	outcome   Outcome
}

// Level returns the inclusive upper bound of the guess range.
func (r *Round) Level() int { return r.level }

// Attempts returns the number of validated guesses so far.
func (r *Round) Attempts() int { return r.attempts }

// StartedAt returns when the round began.
func (r *Round) StartedAt() time.Time { return r.startedAt }

// Status returns the current lifecycle state.
func (r *Round) Status() Status { return r.status }

// Active reports whether the round accepts guesses.
func (r *Round) Active() bool { return r != nil && r.status == InProgress }

// Answer reveals the target once the round has terminated.
func (r *Round) Answer() (int, bool) {
	if r == nil || r.status == InProgress {
		return 0, false
	}
	return r.target, true
}

// Outcome returns the terminal outcome once the round has terminated.
func (r *Round) Outcome() (Outcome, bool) {
	if r == nil || r.status == InProgress {
		return Outcome{}, false
	}
	return r.outcome, true
}

// Engine starts rounds and applies guesses, give-ups and hints to them.
type Engine struct {
	clock      Clock
	source     Source
	thresholds Thresholds
	hints      HintThresholds
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithThresholds overrides the Hot/Warm cut points.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) { e.thresholds = t }
}

// WithHintThresholds overrides the hint cut points.
func WithHintThresholds(h HintThresholds) Option {
	return func(e *Engine) { e.hints = h }
}

// NewEngine returns an Engine drawing targets from src.
func NewEngine(src Source, opts ...Option) *Engine {
	e := &Engine{
		clock:      ClockFunc(time.Now),
		source:     src,
		thresholds: DefaultThresholds(),
		hints:      DefaultHintThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParseLevel converts a level selection into a positive integer.
func ParseLevel(raw string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidLevel, raw)
	}
	if level <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidLevel, level)
	}
	return level, nil
}

// Start begins a new round with a target drawn uniformly from [1, level].
func (e *Engine) Start(level int) (*Round, error) {
	if level <= 0 {
		return nil, fmt.Errorf("%w: %d is not positive", ErrInvalidLevel, level)
	}
	return &Round{
		level:     level,
		target:    e.pick(level),
		startedAt: e.clock.Now(),
		status:    InProgress,
	}, nil
}

func (e *Engine) pick(level int) int {
	n := e.source.Intn(level) % level
	if n < 0 {
		n += level
	}
	return n + 1
}

// Guess validates raw and applies it to r. Invalid input leaves r unchanged.
func (e *Engine) Guess(r *Round, raw string) (GuessResult, error) {
	if !r.Active() {
		return GuessResult{}, fmt.Errorf("%w: round is not in progress", ErrInvalidState)
	}
	guess, err := parseGuess(raw, r.level)
	if err != nil {
		return GuessResult{}, err
	}

	r.attempts++
	diff := abs(guess - r.target)
	result := GuessResult{
		Direction: direction(guess, r.target),
		Proximity: e.thresholds.classify(diff, r.level),
		Attempts:  r.attempts,
	}
	if result.Direction == Correct {
		r.finish(Won, r.attempts, e.clock.Now())
	}
	return result, nil
}

// GiveUp terminates r with the level as its score.
func (e *Engine) GiveUp(r *Round) (Outcome, error) {
	if !r.Active() {
		return Outcome{}, fmt.Errorf("%w: round is not in progress", ErrInvalidState)
	}
	r.finish(GaveUp, r.level, e.clock.Now())
	return r.outcome, nil
}

// Hint classifies raw against the target without mutating r.
func (e *Engine) Hint(r *Round, raw string) (HintResult, error) {
	if !r.Active() {
		return HintResult{}, ErrNoActiveRound
	}
	guess, err := parseGuess(raw, r.level)
	if err != nil {
		return HintResult{}, err
	}
	parity := Even
	if r.target%2 != 0 {
		parity = Odd
	}
	return HintResult{
		Direction: direction(guess, r.target),
		Closeness: e.hints.classify(abs(guess-r.target), r.level),
		Parity:    parity,
	}, nil
}

func (r *Round) finish(status Status, score int, now time.Time) {
	elapsed := now.Sub(r.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	r.status = status
	r.outcome = Outcome{
		Level:   r.level,
		Score:   score,
		Elapsed: elapsed,
		Won:     status == Won,
	}
}

func parseGuess(raw string, level int) (int, error) {
	guess, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidGuess, raw)
	}
	if guess < 1 || guess > level {
		return 0, fmt.Errorf("%w: %d is outside 1-%d", ErrInvalidGuess, guess, level)
	}
	return guess, nil
}

func direction(guess, target int) Direction {
	switch {
	case guess < target:
		return Low
	case guess > target:
		return High
	default:
		return Correct
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
