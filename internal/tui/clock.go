package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// FormatDate renders t as "October 19th, 2026 - 3:04:05 PM".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d - %s", t.Month(), Ordinal(t.Day()), t.Year(), t.Format("3:04:05 PM"))
}

// Ordinal appends the English ordinal suffix to n.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
