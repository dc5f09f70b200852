package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNameStageWhenNoPlayer(t *testing.T) {
	m := newTestModel(7, "")
	if m.stage != stageName {
		t.Fatalf("expected name prompt, got stage %d", m.stage)
	}
	press(m, tea.KeyEnter)
	if m.stage != stageName || !m.isError {
		t.Fatalf("empty name should be rejected")
	}
	typeText(m, "zoe")
	press(m, tea.KeyEnter)
	if m.stage != stageLevel || m.sess.Player() != "Zoe" {
		t.Fatalf("expected level stage for Zoe, got %d %q", m.stage, m.sess.Player())
	}
}

func TestPlayWinFlow(t *testing.T) {
	m := newTestModel(7, "ann")
	if m.stage != stageLevel || m.levelIdx != 1 {
		t.Fatalf("expected preselected level 10, got stage %d idx %d", m.stage, m.levelIdx)
	}
	press(m, tea.KeyRight)
	press(m, tea.KeyLeft)
	press(m, tea.KeyEnter)
	if m.stage != stagePlay || m.sess.Round().Level() != 10 {
		t.Fatalf("expected round at level 10")
	}

	typeText(m, "3")
	press(m, tea.KeyEnter)
	if !strings.Contains(m.message, "too low (Cold!)") || len(m.trail) != 1 {
		t.Fatalf("unexpected message %q", m.message)
	}

	typeText(m, "7")
	cmd := press(m, tea.KeyEnter)
	if cmd == nil || m.confettiLeft != confettiFrames || len(m.confettiLines) != confettiRows {
		t.Fatalf("expected confetti after a win")
	}
	if m.stage != stageLevel || !strings.HasPrefix(m.message, "CORRECT!!! It took 2 tries") {
		t.Fatalf("unexpected state after win: %d %q", m.stage, m.message)
	}
	for i := 0; i < confettiFrames; i++ {
		m.Update(confettiMsg{})
	}
	if m.confettiLeft != 0 || m.confettiLines != nil {
		t.Fatalf("confetti should stop")
	}
}

func TestHintAndGiveUp(t *testing.T) {
	m := newTestModel(4, "ann")
	press(m, tea.KeyEnter)
	typeText(m, "5")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.message != "Hint: you are close, go lower. The number is even." {
		t.Fatalf("unexpected hint %q", m.message)
	}
	if m.sess.Round().Attempts() != 0 || m.input.Value() != "5" {
		t.Fatalf("hint should not consume input or attempts")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.message != "Ann, you gave up! The answer was 4 (Ok!)" || m.stage != stageLevel {
		t.Fatalf("unexpected give up state %q", m.message)
	}
}

func TestInvalidGuessKeepsRound(t *testing.T) {
	m := newTestModel(4, "ann")
	press(m, tea.KeyEnter)
	typeText(m, "99")
	press(m, tea.KeyEnter)
	if m.message != "INVALID!" || !m.isError || m.sess.Round().Attempts() != 0 {
		t.Fatalf("expected invalid guess, got %q", m.message)
	}
}

func TestStatsToggleAndReset(t *testing.T) {
	m := newTestModel(4, "ann")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	press(m, tea.KeyEnter)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})

	press(m, tea.KeyTab)
	if !m.showStats || !strings.Contains(m.View(), "Overview") {
		t.Fatalf("expected stats panel")
	}
	press(m, tea.KeyEsc)
	if m.showStats {
		t.Fatalf("esc should close stats")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.sess.Summary().TotalWins != 0 || m.message != "Statistics cleared." {
		t.Fatalf("expected cleared stats")
	}
}

func TestViewIncludesDate(t *testing.T) {
	m := newTestModel(4, "ann")
	m.Update(tickMsg(fixedNow))
	if !strings.Contains(m.View(), "October 19th, 2026 - 3:04:05 PM") {
		t.Fatalf("expected date line in view")
	}
}
