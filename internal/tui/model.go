// Package tui provides the Bubble Tea game interface.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiguess/internal/generator"
	"github.com/verte-zerg/tuiguess/internal/model"
	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/session"
	"github.com/verte-zerg/tuiguess/internal/statsui"
)

type stage int

const (
	stageName stage = iota
	stageLevel
	stagePlay
)

const (
	confettiFrames  = 18
	confettiRows    = 3
	confettiDensity = 0.35
	confettiEvery   = 90 * time.Millisecond
)

type confettiMsg struct{}

// Model implements the Bubble Tea game UI.
type Model struct {
	config model.Config
	sess   *session.Session
	gen    *generator.Generator

	input textinput.Model
	help  help.Model
	stats *statsui.Model

	stage     stage
	levelIdx  int
	showStats bool
	message   string
	isError   bool
	trail     []trailItem

	confettiLeft  int
	confettiLines []string

	now time.Time

	width  int
	height int
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	hotStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	warmStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14"))
	coldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#40A9FF"))
	levelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

	confettiPalette = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#40A9FF")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#B37FEB")),
	}
)

// NewModel constructs the game UI for sess. A configured player name skips the
// name prompt and a configured level preselects that level.
func NewModel(cfg model.Config, sess *session.Session, gen *generator.Generator) *Model {
	input := textinput.New()
	input.CharLimit = 32
	input.Width = 24
	input.Focus()

	m := &Model{
		config:   cfg,
		sess:     sess,
		gen:      gen,
		input:    input,
		help:     help.New(),
		stats:    statsui.NewModel(sess.Summary()),
		levelIdx: cfg.LevelIndex(cfg.Level),
		now:      time.Now(),
	}
	if sess.Player() == session.DefaultPlayer {
		m.enterName()
	} else {
		m.enterLevel()
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.stats.SetSize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	case confettiMsg:
		return m, m.stepConfetti()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Stats):
		m.toggleStats()
		return m, nil
	}
	if m.showStats {
		if key.Matches(msg, keys.Back) {
			m.toggleStats()
			return m, nil
		}
		_, cmd := m.stats.Update(msg)
		return m, cmd
	}
	if key.Matches(msg, keys.Reset) && m.stage != stagePlay {
		m.stats.SetSummary(m.sess.Reset())
		m.setMessage("Statistics cleared.", false)
		return m, nil
	}

	switch m.stage {
	case stageName:
		if key.Matches(msg, keys.Submit) {
			m.submitName()
			return m, nil
		}
	case stageLevel:
		switch {
		case key.Matches(msg, keys.Prev):
			m.moveLevel(-1)
		case key.Matches(msg, keys.Next):
			m.moveLevel(1)
		case key.Matches(msg, keys.Submit):
			m.startRound()
		}
		return m, nil
	case stagePlay:
		switch {
		case key.Matches(msg, keys.Submit):
			return m, m.submitGuess()
		case key.Matches(msg, keys.Hint):
			m.askHint()
			return m, nil
		case key.Matches(msg, keys.GiveUp):
			m.giveUp()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showStats && m.width > 0 && m.height > 0 {
		return m.stats.View()
	}
	content := m.renderContent()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderContent() string {
	lines := []string{
		dateStyle.Render(FormatDate(m.now)),
		"",
		titleStyle.Render("Guess the number"),
		labelStyle.Render("Player: ") + m.sess.Player(),
		"",
	}
	switch m.stage {
	case stageName:
		lines = append(lines, labelStyle.Render("What is your name?"), m.input.View())
	case stageLevel:
		lines = append(lines, labelStyle.Render("Choose a level"), m.renderLevels())
	case stagePlay:
		r := m.sess.Round()
		lines = append(lines,
			labelStyle.Render(fmt.Sprintf("Range 1-%d  Tries %d", r.Level(), r.Attempts())),
			m.input.View(),
		)
		if len(m.trail) > 0 {
			lines = append(lines, wrapStyledRunes(buildTrail(m.trail), m.contentWidth()))
		}
	}
	if m.message != "" {
		style := messageStyle
		if m.isError {
			style = errorStyle
		}
		lines = append(lines, "", style.Render(m.message))
	}
	if m.confettiLeft > 0 {
		lines = append(lines, "")
		lines = append(lines, m.confettiLines...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderLevels() string {
	parts := make([]string, 0, len(m.config.Levels))
	for i, level := range m.config.Levels {
		label := "1-" + strconv.Itoa(level)
		if i == m.levelIdx {
			parts = append(parts, selectedStyle.Render(label))
		} else {
			parts = append(parts, levelStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *Model) renderFooter() string {
	sum := m.sess.Summary()
	segments := []string{
		fmt.Sprintf("Wins %d", sum.TotalWins),
		fmt.Sprintf("Streak %d", sum.Streak),
		fmt.Sprintf("Avg %s", sum.AverageScore),
	}
	if len(sum.Leaderboard) > 0 {
		segments = append(segments, fmt.Sprintf("Best %d", sum.Leaderboard[0]))
	}
	var keyHelp string
	if m.stage == stagePlay {
		keyHelp = m.help.View(playKeys{keys})
	} else {
		keyHelp = m.help.View(menuKeys{keys})
	}
	return footerStyle.Render(strings.Join(segments, "  ")) + "   " + keyHelp
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		return 40
	}
	return w
}

func (m *Model) enterName() {
	m.stage = stageName
	m.input.Reset()
	m.input.Placeholder = "Your name"
	m.input.CharLimit = 32
}

func (m *Model) enterLevel() {
	m.stage = stageLevel
	m.input.Reset()
	m.input.Placeholder = ""
}

func (m *Model) enterPlay(level int) {
	m.stage = stagePlay
	m.trail = nil
	m.input.Reset()
	m.input.Placeholder = "Your guess"
	m.input.CharLimit = len(strconv.Itoa(level))
}

func (m *Model) setMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

func (m *Model) toggleStats() {
	m.showStats = !m.showStats
	if m.showStats {
		m.stats.SetSummary(m.sess.Summary())
	}
}

func (m *Model) moveLevel(delta int) {
	count := len(m.config.Levels)
	if count == 0 {
		return
	}
	m.levelIdx = (m.levelIdx + delta + count) % count
}

func (m *Model) submitName() {
	name, err := m.sess.SetPlayer(m.input.Value())
	if err != nil {
		m.setMessage(session.MessageFor(err), true)
		return
	}
	m.setMessage(fmt.Sprintf("Welcome, %s!", name), false)
	m.enterLevel()
}

func (m *Model) startRound() {
	if len(m.config.Levels) == 0 {
		m.setMessage(session.MessageFor(round.ErrInvalidLevel), true)
		return
	}
	level := m.config.Levels[m.levelIdx]
	rep, err := m.sess.Play(level)
	if err != nil {
		m.setMessage(session.MessageFor(err), true)
		return
	}
	m.confettiLeft = 0
	m.setMessage(rep.Message, false)
	m.enterPlay(level)
}

func (m *Model) submitGuess() tea.Cmd {
	raw := m.input.Value()
	rep, err := m.sess.Guess(raw)
	m.input.Reset()
	if err != nil {
		m.setMessage(session.MessageFor(err), true)
		return nil
	}
	guess, _ := strconv.Atoi(strings.TrimSpace(raw))
	m.trail = append(m.trail, trailItem{guess: guess, direction: rep.Guess.Direction, proximity: rep.Guess.Proximity})
	m.setMessage(rep.Message, false)
	if !rep.Finished {
		return nil
	}
	m.stats.SetSummary(rep.Summary)
	m.enterLevel()
	m.confettiLeft = confettiFrames
	m.refreshConfetti()
	return confettiStep()
}

func (m *Model) askHint() {
	_, msg, err := m.sess.Hint(m.input.Value())
	if err != nil {
		m.setMessage(session.MessageFor(err), true)
		return
	}
	m.setMessage(msg, false)
}

func (m *Model) giveUp() {
	rep, err := m.sess.GiveUp()
	if err != nil {
		m.setMessage(session.MessageFor(err), true)
		return
	}
	m.stats.SetSummary(rep.Summary)
	m.setMessage(rep.Message, false)
	m.enterLevel()
}

func confettiStep() tea.Cmd {
	return tea.Tick(confettiEvery, func(time.Time) tea.Msg { return confettiMsg{} })
}

func (m *Model) stepConfetti() tea.Cmd {
	if m.confettiLeft <= 0 {
		return nil
	}
	m.confettiLeft--
	if m.confettiLeft == 0 {
		m.confettiLines = nil
		return nil
	}
	m.refreshConfetti()
	return confettiStep()
}

func (m *Model) refreshConfetti() {
	width := m.contentWidth()
	m.confettiLines = m.confettiLines[:0]
	for i := 0; i < confettiRows; i++ {
		glyphs, colors := m.gen.Confetti(width, confettiDensity, len(confettiPalette))
		m.confettiLines = append(m.confettiLines, renderStyledRunes(buildConfetti(glyphs, colors)))
	}
}
