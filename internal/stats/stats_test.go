package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuiguess/internal/round"
)

func win(level, score int, elapsed time.Duration) round.Outcome {
	return round.Outcome{Level: level, Score: score, Elapsed: elapsed, Won: true}
}

func giveUp(level int, elapsed time.Duration) round.Outcome {
	return round.Outcome{Level: level, Score: level, Elapsed: elapsed}
}

func TestEmptySummaryReportsNotAvailable(t *testing.T) {
	sum := New(DefaultLeaderboardSize).Summary()
	if sum.TotalWins != 0 || sum.Streak != 0 {
		t.Fatalf("unexpected counters: %+v", sum)
	}
	for name, m := range map[string]Metric{
		"average score": sum.AverageScore,
		"average time":  sum.AverageTime,
		"fastest time":  sum.FastestTime,
	} {
		if m.Valid {
			t.Fatalf("%s should be absent", name)
		}
		if m.String() != "N/A" || m.Seconds() != "N/A" {
			t.Fatalf("%s: expected N/A, got %q / %q", name, m.String(), m.Seconds())
		}
	}
	if len(sum.Leaderboard) != 0 || sum.LastTier != TierNone {
		t.Fatalf("expected empty leaderboard and no tier, got %+v", sum)
	}
}

func TestStreakCountsConsecutiveWins(t *testing.T) {
	s := New(0)
	for i := 1; i <= 5; i++ {
		sum := s.Record(win(10, 4, time.Second))
		if sum.Streak != i {
			t.Fatalf("after %d wins expected streak %d, got %d", i, i, sum.Streak)
		}
	}
	if sum := s.Record(giveUp(10, time.Second)); sum.Streak != 0 {
		t.Fatalf("give up must reset streak, got %d", sum.Streak)
	}
	if sum := s.Record(win(10, 2, time.Second)); sum.Streak != 1 {
		t.Fatalf("expected streak 1 after a new win, got %d", sum.Streak)
	}
}

func TestBestPerLevelKeepsMinimum(t *testing.T) {
	s := New(0)
	for _, score := range []int{5, 3, 7} {
		s.Record(win(10, score, time.Second))
	}
	s.Record(win(100, 9, time.Second))
	s.Record(giveUp(3, time.Second))

	sum := s.Summary()
	if sum.BestPerLevel[10] != 3 {
		t.Fatalf("expected best 3 at level 10, got %d", sum.BestPerLevel[10])
	}
	if sum.BestPerLevel[100] != 9 {
		t.Fatalf("expected best 9 at level 100, got %d", sum.BestPerLevel[100])
	}
	if _, ok := sum.BestPerLevel[3]; ok {
		t.Fatalf("give up must not set a best score")
	}
	if got := sum.Levels(); len(got) != 2 || got[0] != 10 || got[1] != 100 {
		t.Fatalf("unexpected levels: %v", got)
	}
}

func TestSummaryAggregates(t *testing.T) {
	s := New(3)
	s.Record(win(10, 4, 2*time.Second))
	s.Record(win(10, 2, 4*time.Second))
	s.Record(giveUp(10, 9*time.Second))
	sum := s.Record(win(10, 5, 1*time.Second))

	if sum.TotalWins != 4 {
		t.Fatalf("expected 4 recorded outcomes, got %d", sum.TotalWins)
	}
	if got := sum.AverageScore.String(); got != "5.25" {
		t.Fatalf("expected average score 5.25, got %s", got)
	}
	if got := sum.AverageTime.Seconds(); got != "4.00s" {
		t.Fatalf("expected average time 4.00s, got %s", got)
	}
	if got := sum.FastestTime.Seconds(); got != "1.00s" {
		t.Fatalf("expected fastest 1.00s, got %s", got)
	}
	want := []int{2, 4, 5}
	if len(sum.Leaderboard) != len(want) {
		t.Fatalf("expected leaderboard %v, got %v", want, sum.Leaderboard)
	}
	for i := range want {
		if sum.Leaderboard[i] != want[i] {
			t.Fatalf("expected leaderboard %v, got %v", want, sum.Leaderboard)
		}
	}
	if sum.LastScore != 5 || sum.LastTier != TierGood {
		t.Fatalf("expected last score 5 (Good), got %d (%s)", sum.LastScore, sum.LastTier)
	}
	if len(sum.Scores) != 4 || sum.Scores[2] != 10 {
		t.Fatalf("expected chronological scores, got %v", sum.Scores)
	}
}

func TestSummaryIsSnapshot(t *testing.T) {
	s := New(0)
	s.Record(win(10, 3, time.Second))
	sum := s.Summary()
	sum.BestPerLevel[10] = 1
	sum.Scores[0] = 99
	again := s.Summary()
	if again.BestPerLevel[10] != 3 || again.Scores[0] != 3 {
		t.Fatalf("summary mutation leaked into statistics: %+v", again)
	}
}

func TestReset(t *testing.T) {
	s := New(0)
	s.Record(win(10, 3, time.Second))
	s.Record(win(10, 4, time.Second))
	s.Reset()
	sum := s.Summary()
	if sum.TotalWins != 0 || sum.Streak != 0 || len(sum.BestPerLevel) != 0 || sum.AverageScore.Valid {
		t.Fatalf("expected clean slate after reset, got %+v", sum)
	}
}

func TestTierFor(t *testing.T) {
	cases := map[int]Tier{
		1:   TierGreat,
		3:   TierGreat,
		4:   TierGood,
		6:   TierGood,
		7:   TierOk,
		10:  TierOk,
		11:  TierBad,
		100: TierBad,
	}
	for score, want := range cases {
		if got := TierFor(score); got != want {
			t.Fatalf("score %d: expected %s, got %s", score, want, got)
		}
	}
}

func TestMetricRounding(t *testing.T) {
	if got := Valid(2.675).String(); got != "2.68" {
		t.Fatalf("expected half-up rounding to 2.68, got %s", got)
	}
	if got := Valid(3).String(); got != "3.00" {
		t.Fatalf("expected 3.00, got %s", got)
	}
}

func TestSparklineAndTrend(t *testing.T) {
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
	flat := Sparkline([]float64{2, 2, 2})
	if len(flat) != 3 || strings.Trim(flat, "+") != "" {
		t.Fatalf("expected flat sparkline, got %q", flat)
	}
	line := Sparkline([]float64{1, 5, 10})
	if line[0] != ' ' || line[2] != '@' {
		t.Fatalf("unexpected sparkline extremes: %q", line)
	}
	trend := ScoreTrend([]int{2, 4, 6}, 2)
	if len(trend) != 3 || trend[0] != 2 || trend[1] != 3 || trend[2] != 5 {
		t.Fatalf("unexpected trend: %v", trend)
	}
}

func TestRenderSummary(t *testing.T) {
	s := New(3)
	s.Record(win(10, 3, 2*time.Second))
	s.Record(giveUp(100, time.Second))

	var buf bytes.Buffer
	if err := RenderSummary(&buf, s.Summary()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Total wins: 2",
		"Average Score: 51.50",
		"Avg Time: 1.50s | Fastest: 1.00s",
		"Streak: 0",
		"Last score: 100 (Bad!)",
		"Leaderboard",
		"Best per level",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderSummary(&buf, New(3).Summary()); err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if !strings.Contains(buf.String(), "Average Score: N/A") || !strings.Contains(buf.String(), "Leaderboard is empty.") {
		t.Fatalf("unexpected empty summary:\n%s", buf.String())
	}
}
