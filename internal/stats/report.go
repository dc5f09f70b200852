package stats

import (
	"fmt"
	"io"
	"strconv"
)

// RenderSummary prints the summary, leaderboard and best-per-level tables.
func RenderSummary(w io.Writer, sum Summary) error {
	lines := []string{
		"Summary",
		fmt.Sprintf("Total wins: %d", sum.TotalWins),
		fmt.Sprintf("Average Score: %s", sum.AverageScore),
		fmt.Sprintf("Avg Time: %s | Fastest: %s", sum.AverageTime.Seconds(), sum.FastestTime.Seconds()),
		fmt.Sprintf("Streak: %d", sum.Streak),
	}
	if sum.LastTier != TierNone {
		lines = append(lines, fmt.Sprintf("Last score: %d (%s!)", sum.LastScore, sum.LastTier))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if err := RenderLeaderboard(w, sum); err != nil {
		return err
	}
	return RenderBestPerLevel(w, sum)
}

// RenderLeaderboard prints the ascending leaderboard.
func RenderLeaderboard(w io.Writer, sum Summary) error {
	if len(sum.Leaderboard) == 0 {
		_, err := fmt.Fprintln(w, "Leaderboard is empty.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Leaderboard"); err != nil {
		return err
	}
	tbl := newTextTable(column{title: "Rank"}, column{title: "Score", right: true})
	for i, score := range sum.Leaderboard {
		tbl.add(strconv.Itoa(i+1), strconv.Itoa(score))
	}
	return writeLines(w, tbl.lines())
}

// RenderBestPerLevel prints the best score recorded for each level.
func RenderBestPerLevel(w io.Writer, sum Summary) error {
	levels := sum.Levels()
	if len(levels) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Best per level"); err != nil {
		return err
	}
	tbl := newTextTable(column{title: "Level", right: true}, column{title: "Best", right: true})
	for _, level := range levels {
		tbl.add(strconv.Itoa(level), strconv.Itoa(sum.BestPerLevel[level]))
	}
	return writeLines(w, tbl.lines())
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
