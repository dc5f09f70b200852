// Package statsui provides the Bubble Tea statistics panel.
package statsui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiguess/internal/stats"
)

const (
	tabOverview = iota
	tabLeaderboard
	tabBestPerLevel
)

const trendWindow = 3

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	trendStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Model renders a statistics summary in three tabs.
type Model struct {
	summary stats.Summary

	tabs      []string
	activeTab int
	overview  viewport.Model
	board     table.Model
	best      table.Model

	width  int
	height int
}

// NewModel constructs a stats panel for sum.
func NewModel(sum stats.Summary) *Model {
	m := &Model{
		tabs:     []string{"Overview", "Leaderboard", "Best per level"},
		overview: viewport.New(0, 0),
		board:    newTable(leaderboardColumns(), nil),
		best:     newTable(bestColumns(), nil),
	}
	m.SetSummary(sum)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSummary replaces the displayed statistics.
func (m *Model) SetSummary(sum stats.Summary) {
	m.summary = sum
	m.board.SetRows(leaderboardRows(sum))
	m.best.SetRows(bestRows(sum))
	m.renderOverview()
}

// SetSize resizes the panel.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = width
	m.overview.Height = bodyHeight
	for _, t := range []*table.Model{&m.board, &m.best} {
		t.SetWidth(width)
		t.SetHeight(maxInt(1, bodyHeight-1))
	}
	m.renderOverview()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, nil
		case "right", "l":
			m.moveTab(1)
			return m, nil
		}
		var cmd tea.Cmd
		switch m.activeTab {
		case tabLeaderboard:
			m.board, cmd = m.board.Update(msg)
		case tabBestPerLevel:
			m.best, cmd = m.best.Update(msg)
		default:
			m.overview, cmd = m.overview.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(padLines(m.renderTabs(), m.width), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderHelp(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = lipgloss.Height(activeNavStyle.Render("X"))
	if headerHeight < 1 {
		headerHeight = 1
	}
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.board.Blur()
	m.best.Blur()
	switch m.activeTab {
	case tabLeaderboard:
		m.board.Focus()
	case tabBestPerLevel:
		m.best.Focus()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHelp() string {
	return headerStyle.Render(truncateLine("Nav: left/right  Scroll: up/down  Back: tab/esc  Quit: ctrl+c", m.width))
}

func (m *Model) renderBody() string {
	switch m.activeTab {
	case tabLeaderboard:
		if len(m.summary.Leaderboard) == 0 {
			return "Leaderboard is empty."
		}
		return tableMutedStyle.Render(m.board.View())
	case tabBestPerLevel:
		if len(m.summary.BestPerLevel) == 0 {
			return "No wins yet."
		}
		return tableMutedStyle.Render(m.best.View())
	default:
		return m.overview.View()
	}
}

func (m *Model) renderOverview() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.overview.SetContent(renderOverview(m.summary, width))
}

func renderOverview(sum stats.Summary, width int) string {
	cards := summaryCards(sum)
	var body string
	if width < 80 {
		body = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...)
		body = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	if trend := renderTrend(sum.Scores, width); trend != "" {
		body += "\n\n" + trend
	}
	return strings.TrimRight(body, "\n")
}

func summaryCards(sum stats.Summary) []string {
	last := "-"
	if sum.LastTier != stats.TierNone {
		last = fmt.Sprintf("%d (%s!)", sum.LastScore, sum.LastTier)
	}
	return []string{
		metricCard("Total wins", strconv.Itoa(sum.TotalWins)),
		metricCard("Average score", sum.AverageScore.String()),
		metricCard("Streak", strconv.Itoa(sum.Streak)),
		metricCard("Avg time", sum.AverageTime.Seconds()),
		metricCard("Fastest", sum.FastestTime.Seconds()),
		metricCard("Last score", last),
	}
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

// renderTrend draws the moving average of recent scores, newest on the right.
func renderTrend(scores []int, width int) string {
	if len(scores) < 2 {
		return ""
	}
	trend := stats.ScoreTrend(scores, trendWindow)
	limit := maxInt(1, width-len("Trend "))
	if len(trend) > limit {
		trend = trend[len(trend)-limit:]
	}
	return headerStyle.Render("Trend ") + trendStyle.Render(stats.Sparkline(trend))
}

func leaderboardColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
	}
}

func leaderboardRows(sum stats.Summary) []table.Row {
	rows := make([]table.Row, 0, len(sum.Leaderboard))
	for i, score := range sum.Leaderboard {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), strconv.Itoa(score)})
	}
	return rows
}

func bestColumns() []table.Column {
	return []table.Column{
		{Title: "Level", Width: 7},
		{Title: "Best", Width: 6},
		{Title: "Tier", Width: 6},
	}
}

func bestRows(sum stats.Summary) []table.Row {
	levels := sum.Levels()
	rows := make([]table.Row, 0, len(levels))
	for _, level := range levels {
		best := sum.BestPerLevel[level]
		rows = append(rows, table.Row{strconv.Itoa(level), strconv.Itoa(best), stats.TierFor(best).String()})
	}
	return rows
}

func newTable(cols []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(1),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
