package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/stats"
)

type fixedSource struct {
	n int
}

func (f fixedSource) Intn(int) int { return f.n }

func newSession(target int) *Session {
	now := time.Unix(0, 0)
	clock := round.ClockFunc(func() time.Time {
		now = now.Add(2 * time.Second)
		return now
	})
	engine := round.NewEngine(fixedSource{n: target - 1}, round.WithClock(clock))
	return New(engine, stats.New(stats.DefaultLeaderboardSize), "alice")
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"alice":    "Alice",
		"  bOB  ":  "Bob",
		"élodie":   "Élodie",
		"x":        "X",
		"MARY ann": "Mary ann",
	}
	for raw, want := range cases {
		got, err := NormalizeName(raw)
		if err != nil {
			t.Fatalf("%q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %q, got %q", raw, want, got)
		}
	}
	if _, err := NormalizeName("   "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestNewFallsBackToDefaultPlayer(t *testing.T) {
	s := New(round.NewEngine(fixedSource{}), stats.New(0), "")
	if s.Player() != DefaultPlayer {
		t.Fatalf("expected default player, got %q", s.Player())
	}
	if _, err := s.SetPlayer(""); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if s.Player() != DefaultPlayer {
		t.Fatalf("failed rename must keep previous name")
	}
}

func TestWinScenario(t *testing.T) {
	s := newSession(7)
	rep, err := s.Play(10)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if rep.Message != "Alice, guess a number between 1 and 10" {
		t.Fatalf("unexpected start message: %q", rep.Message)
	}

	rep, err = s.Guess("3")
	if err != nil {
		t.Fatalf("guess 3: %v", err)
	}
	if rep.Finished {
		t.Fatalf("round must continue after a wrong guess")
	}
	if rep.Message != "Alice, too low (Cold!). Guess again! (Try #1)" {
		t.Fatalf("unexpected low message: %q", rep.Message)
	}

	rep, err = s.Guess("7")
	if err != nil {
		t.Fatalf("guess 7: %v", err)
	}
	if !rep.Finished || !rep.Outcome.Won || rep.Outcome.Score != 2 {
		t.Fatalf("unexpected outcome: %+v", rep.Outcome)
	}
	if rep.Message != "CORRECT!!! It took 2 tries and 2.00 s. (Great!)" {
		t.Fatalf("unexpected win message: %q", rep.Message)
	}
	if rep.Summary.TotalWins != 1 || rep.Summary.Streak != 1 || rep.Summary.BestPerLevel[10] != 2 {
		t.Fatalf("outcome not recorded: %+v", rep.Summary)
	}
	if s.Active() {
		t.Fatalf("session must have no active round after a win")
	}
	if _, err := s.Guess("7"); !errors.Is(err, round.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState after win, got %v", err)
	}
	if got := s.Summary().TotalWins; got != 1 {
		t.Fatalf("outcome must be recorded exactly once, got %d", got)
	}
}

func TestGiveUpScenario(t *testing.T) {
	s := newSession(4)
	if _, err := s.Play(10); err != nil {
		t.Fatalf("play: %v", err)
	}
	rep, err := s.GiveUp()
	if err != nil {
		t.Fatalf("give up: %v", err)
	}
	if rep.Outcome.Score != 10 || rep.Outcome.Won {
		t.Fatalf("unexpected outcome: %+v", rep.Outcome)
	}
	if rep.Message != "Alice, you gave up! The answer was 4 (Ok!)" {
		t.Fatalf("unexpected give up message: %q", rep.Message)
	}
	if rep.Summary.Streak != 0 {
		t.Fatalf("expected streak 0, got %d", rep.Summary.Streak)
	}
	if _, err := s.GiveUp(); !errors.Is(err, round.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on second give up, got %v", err)
	}
	if got := s.Summary().TotalWins; got != 1 {
		t.Fatalf("expected one recorded outcome, got %d", got)
	}
}

func TestPlayWhileActiveFails(t *testing.T) {
	s := newSession(2)
	if _, err := s.Play(10); err != nil {
		t.Fatalf("play: %v", err)
	}
	if _, err := s.Play(100); !errors.Is(err, round.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if s.Round().Level() != 10 {
		t.Fatalf("active round must be untouched")
	}
	if _, err := s.Play(0); !errors.Is(err, round.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState before level validation, got %v", err)
	}
}

func TestInvalidInputsLeaveStateUntouched(t *testing.T) {
	s := newSession(5)
	if _, err := s.Guess("3"); !errors.Is(err, round.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState without round, got %v", err)
	}
	if _, _, err := s.Hint("3"); !errors.Is(err, round.ErrNoActiveRound) {
		t.Fatalf("expected ErrNoActiveRound, got %v", err)
	}
	if _, err := s.Play(-1); !errors.Is(err, round.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := s.Play(10); err != nil {
		t.Fatalf("play: %v", err)
	}
	if _, err := s.Guess("abc"); !errors.Is(err, round.ErrInvalidGuess) {
		t.Fatalf("expected ErrInvalidGuess, got %v", err)
	}
	if s.Round().Attempts() != 0 {
		t.Fatalf("invalid guess must not count")
	}
	if got := MessageFor(round.ErrInvalidGuess); got != "INVALID!" {
		t.Fatalf("unexpected invalid message: %q", got)
	}
}

func TestHintMessage(t *testing.T) {
	s := newSession(50)
	if _, err := s.Play(100); err != nil {
		t.Fatalf("play: %v", err)
	}
	res, msg, err := s.Hint("47")
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if res.Closeness != round.VeryClose || res.Parity != round.Even {
		t.Fatalf("unexpected hint: %+v", res)
	}
	if msg != "Hint: you are very close, go higher. The number is even." {
		t.Fatalf("unexpected hint message: %q", msg)
	}
	if s.Round().Attempts() != 0 {
		t.Fatalf("hint must not use an attempt")
	}
}

func TestResetClearsStatistics(t *testing.T) {
	s := newSession(1)
	if _, err := s.Play(3); err != nil {
		t.Fatalf("play: %v", err)
	}
	if _, err := s.Guess("1"); err != nil {
		t.Fatalf("guess: %v", err)
	}
	sum := s.Reset()
	if sum.TotalWins != 0 || sum.Streak != 0 {
		t.Fatalf("expected clean statistics, got %+v", sum)
	}
}

func TestMessageForUnknownError(t *testing.T) {
	err := errors.New("boom")
	if got := MessageFor(err); !strings.Contains(got, "boom") {
		t.Fatalf("expected passthrough message, got %q", got)
	}
	if MessageFor(nil) != "" {
		t.Fatalf("expected empty message for nil")
	}
}
