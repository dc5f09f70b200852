// Package stats aggregates completed round outcomes into summary statistics.
package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/tuiguess/internal/round"
)

const sparkChars = " .:-=+*#%@"

// DefaultLeaderboardSize is the number of leaderboard slots shown by default.
const DefaultLeaderboardSize = 3

// Statistics holds cumulative state for one session. It has no persistence.
type Statistics struct {
	capacity int
	scores   []int
	times    []float64
	streak   int
	best     map[int]int
}

// New returns empty Statistics whose leaderboard keeps at most capacity entries.
// A capacity of 0 keeps every score.
func New(capacity int) *Statistics {
	if capacity < 0 {
		capacity = 0
	}
	return &Statistics{capacity: capacity, best: map[int]int{}}
}

// Record folds a terminated round's outcome into the statistics and returns the new summary.
func (s *Statistics) Record(o round.Outcome) Summary {
	s.scores = append(s.scores, o.Score)
	s.times = append(s.times, o.ElapsedSeconds())
	if o.Won {
		s.streak++
		if prev, ok := s.best[o.Level]; !ok || o.Score < prev {
			s.best[o.Level] = o.Score
		}
	} else {
		s.streak = 0
	}
	return s.Summary()
}

// Reset clears all histories, the streak and best-per-level records.
func (s *Statistics) Reset() {
	s.scores = nil
	s.times = nil
	s.streak = 0
	s.best = map[int]int{}
}

// Summary computes display values from the recorded outcomes.
func (s *Statistics) Summary() Summary {
	sum := Summary{
		TotalWins:    len(s.scores),
		Streak:       s.streak,
		BestPerLevel: make(map[int]int, len(s.best)),
		Scores:       append([]int(nil), s.scores...),
	}
	for level, score := range s.best {
		sum.BestPerLevel[level] = score
	}
	if len(s.scores) == 0 {
		return sum
	}

	total := 0
	for _, v := range s.scores {
		total += v
	}
	sum.AverageScore = Valid(float64(total) / float64(len(s.scores)))

	sorted := append([]int(nil), s.scores...)
	sort.Ints(sorted)
	if s.capacity > 0 && len(sorted) > s.capacity {
		sorted = sorted[:s.capacity]
	}
	sum.Leaderboard = sorted

	var totalTime float64
	fastest := math.Inf(1)
	for _, t := range s.times {
		totalTime += t
		if t < fastest {
			fastest = t
		}
	}
	sum.AverageTime = Valid(totalTime / float64(len(s.times)))
	sum.FastestTime = Valid(fastest)

	sum.LastScore = s.scores[len(s.scores)-1]
	sum.LastTier = TierFor(sum.LastScore)
	return sum
}

// Summary is a read-only snapshot of Statistics.
type Summary struct {
	// TotalWins counts every recorded outcome, give-ups included.
	TotalWins    int
	AverageScore Metric
	Leaderboard  []int
	AverageTime  Metric
	FastestTime  Metric
	Streak       int
	BestPerLevel map[int]int
	LastScore    int
	LastTier     Tier
	Scores       []int
}

// Levels returns the levels with a best score, ascending.
func (s Summary) Levels() []int {
	levels := make([]int, 0, len(s.BestPerLevel))
	for level := range s.BestPerLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// ScoreTrend returns the moving average of scores as floats.
func ScoreTrend(scores []int, window int) []float64 {
	values := make([]float64, len(scores))
	for i, v := range scores {
		values[i] = float64(v)
	}
	return MovingAverage(values, window)
}
