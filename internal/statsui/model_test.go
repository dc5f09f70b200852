package statsui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/stats"
)

func sampleSummary() stats.Summary {
	st := stats.New(3)
	for _, o := range []round.Outcome{
		{Level: 10, Score: 4, Elapsed: 2 * time.Second, Won: true},
		{Level: 10, Score: 2, Elapsed: time.Second, Won: true},
		{Level: 100, Score: 7, Elapsed: 5 * time.Second, Won: true},
	} {
		st.Record(o)
	}
	return st.Summary()
}

func TestOverviewShowsCards(t *testing.T) {
	out := renderOverview(sampleSummary(), 120)
	for _, want := range []string{"Total wins", "3", "Average score", "4.33", "Streak", "Fastest", "1.00s", "7 (Ok!)", "Trend"} {
		if !strings.Contains(out, want) {
			t.Fatalf("overview missing %q:\n%s", want, out)
		}
	}
}

func TestOverviewEmpty(t *testing.T) {
	out := renderOverview(stats.New(3).Summary(), 40)
	if !strings.Contains(out, "N/A") {
		t.Fatalf("expected N/A for empty metrics:\n%s", out)
	}
	if strings.Contains(out, "Trend") {
		t.Fatalf("expected no trend without scores")
	}
}

func TestRows(t *testing.T) {
	sum := sampleSummary()
	board := leaderboardRows(sum)
	if len(board) != 3 || board[0][1] != "2" || board[2][1] != "7" {
		t.Fatalf("unexpected leaderboard rows %v", board)
	}
	best := bestRows(sum)
	if len(best) != 2 || best[0][0] != "10" || best[0][1] != "2" || best[0][2] != "Great" {
		t.Fatalf("unexpected best rows %v", best)
	}
}

func TestViewFitsWindow(t *testing.T) {
	m := NewModel(sampleSummary())
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 20})
	for tab := 0; tab < 3; tab++ {
		view := m.View()
		lines := strings.Split(view, "\n")
		if len(lines) != 20 {
			t.Fatalf("tab %d: expected 20 lines, got %d", tab, len(lines))
		}
		for _, line := range lines {
			if w := lipgloss.Width(line); w < 90 {
				t.Fatalf("tab %d: expected padded line, got width %d", tab, w)
			}
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.activeTab != tabOverview {
		t.Fatalf("expected tabs to wrap around, got %d", m.activeTab)
	}
}

func TestEmptyTabs(t *testing.T) {
	m := NewModel(stats.New(3).Summary())
	m.SetSize(60, 12)
	m.moveTab(1)
	if !strings.Contains(m.View(), "Leaderboard is empty.") {
		t.Fatalf("expected empty leaderboard message")
	}
	m.moveTab(1)
	if !strings.Contains(m.View(), "No wins yet.") {
		t.Fatalf("expected empty best message")
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateLine("ab", 6); got != "ab" {
		t.Fatalf("unexpected short line %q", got)
	}
}
