package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuiguess/internal/generator"
	"github.com/verte-zerg/tuiguess/internal/model"
	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/session"
	"github.com/verte-zerg/tuiguess/internal/stats"
)

type fixedSource struct{ n int }

func (f fixedSource) Intn(int) int { return f.n }

func newTestModel(target int, player string) *Model {
	cfg := model.Config{Player: player, Levels: []int{3, 10, 100}, Level: 10, Leaderboard: 3}
	engine := round.NewEngine(fixedSource{n: target - 1})
	sess := session.New(engine, stats.New(cfg.Leaderboard), cfg.Player)
	return NewModel(cfg, sess, generator.NewSeeded(1))
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

var fixedNow = time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC)
