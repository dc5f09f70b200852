// Package session binds a player, the active round and the session statistics.
package session

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/stats"
)

// DefaultPlayer addresses a player who has not entered a name.
const DefaultPlayer = "Player"

// ErrInvalidName reports an empty player name.
var ErrInvalidName = errors.New("invalid name")

// Session owns one player's active round and statistics. It is not safe for concurrent use.
type Session struct {
	engine  *round.Engine
	stats   *stats.Statistics
	player  string
	current *round.Round
}

// Report describes the effect of a session operation for presentation.
type Report struct {
	Message  string
	Guess    round.GuessResult
	Finished bool
	Outcome  round.Outcome
	Answer   int
	Summary  stats.Summary
}

// New returns a Session with a clean statistics slate.
func New(engine *round.Engine, st *stats.Statistics, player string) *Session {
	s := &Session{engine: engine, stats: st, player: DefaultPlayer}
	if name, err := NormalizeName(player); err == nil {
		s.player = name
	}
	s.stats.Reset()
	return s
}

// NormalizeName trims raw and capitalises it as "Alice".
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:]), nil
}

// SetPlayer stores a normalised player name.
func (s *Session) SetPlayer(raw string) (string, error) {
	name, err := NormalizeName(raw)
	if err != nil {
		return "", err
	}
	s.player = name
	return name, nil
}

// Player returns the current player name.
func (s *Session) Player() string { return s.player }

// Round returns the active round, or the most recently finished one.
func (s *Session) Round() *round.Round { return s.current }

// Active reports whether a round is in progress.
func (s *Session) Active() bool { return s.current.Active() }

// Play starts a new round at level.
func (s *Session) Play(level int) (Report, error) {
	if s.current.Active() {
		return Report{}, fmt.Errorf("%w: a round is already in progress", round.ErrInvalidState)
	}
	r, err := s.engine.Start(level)
	if err != nil {
		return Report{}, err
	}
	s.current = r
	return Report{
		Message: fmt.Sprintf("%s, guess a number between 1 and %d", s.player, level),
		Summary: s.stats.Summary(),
	}, nil
}

// Guess submits raw as a guess for the active round.
// A winning guess records the outcome before returning.
func (s *Session) Guess(raw string) (Report, error) {
	res, err := s.engine.Guess(s.current, raw)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Guess: res}
	switch res.Direction {
	case round.Low:
		rep.Message = fmt.Sprintf("%s, too low (%s!). Guess again! (Try #%d)", s.player, proximityLabel(res.Proximity), res.Attempts)
		rep.Summary = s.stats.Summary()
	case round.High:
		rep.Message = fmt.Sprintf("%s, too high (%s!). Guess again! (Try #%d)", s.player, proximityLabel(res.Proximity), res.Attempts)
		rep.Summary = s.stats.Summary()
	case round.Correct:
		s.finish(&rep)
		rep.Message = fmt.Sprintf("CORRECT!!! It took %d tries and %s s. (%s!)",
			rep.Outcome.Score, stats.Valid(rep.Outcome.ElapsedSeconds()), rep.Summary.LastTier)
	}
	return rep, nil
}

// GiveUp ends the active round with the level as its score.
func (s *Session) GiveUp() (Report, error) {
	if _, err := s.engine.GiveUp(s.current); err != nil {
		return Report{}, err
	}
	var rep Report
	s.finish(&rep)
	rep.Message = fmt.Sprintf("%s, you gave up! The answer was %d (%s!)", s.player, rep.Answer, rep.Summary.LastTier)
	return rep, nil
}

// Hint describes how close raw is to the target without using an attempt.
func (s *Session) Hint(raw string) (round.HintResult, string, error) {
	res, err := s.engine.Hint(s.current, raw)
	if err != nil {
		return round.HintResult{}, "", err
	}
	return res, describeHint(res), nil
}

// Summary returns the current statistics snapshot.
func (s *Session) Summary() stats.Summary { return s.stats.Summary() }

// Reset clears the statistics. An active round is left running.
func (s *Session) Reset() stats.Summary {
	s.stats.Reset()
	return s.stats.Summary()
}

func (s *Session) finish(rep *Report) {
	out, _ := s.current.Outcome()
	answer, _ := s.current.Answer()
	rep.Finished = true
	rep.Outcome = out
	rep.Answer = answer
	rep.Summary = s.stats.Record(out)
}

// MessageFor maps a session error to the text shown to the player.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, round.ErrInvalidGuess):
		return "INVALID!"
	case errors.Is(err, round.ErrInvalidLevel):
		return "Please select a valid level!"
	case errors.Is(err, ErrInvalidName):
		return "Please enter a valid name!"
	case errors.Is(err, round.ErrNoActiveRound):
		return "No round in progress. Select a level and play!"
	case errors.Is(err, round.ErrInvalidState):
		return "That is not possible right now. Select a level and play!"
	default:
		return err.Error()
	}
}

func proximityLabel(p round.Proximity) string {
	switch p {
	case round.Hot:
		return "Hot"
	case round.Warm:
		return "Warm"
	default:
		return "Cold"
	}
}

func describeHint(h round.HintResult) string {
	var closeness string
	switch h.Closeness {
	case round.VeryClose:
		closeness = "very close"
	case round.Close:
		closeness = "close"
	case round.SomewhatClose:
		closeness = "somewhat close"
	default:
		closeness = "not close"
	}
	var dir string
	switch h.Direction {
	case round.Low:
		dir = ", go higher"
	case round.High:
		dir = ", go lower"
	default:
		dir = ", that is the number"
	}
	return fmt.Sprintf("Hint: you are %s%s. The number is %s.", closeness, dir, h.Parity)
}
