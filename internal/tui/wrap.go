package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuiguess/internal/round"
)

// styledRune is one rendered cell group with its display width.
type styledRune struct {
	s       string
	width   int
	isSpace bool
}

type trailItem struct {
	guess     int
	direction round.Direction
	proximity round.Proximity
}

func trailLabel(item trailItem) string {
	arrow := ""
	switch item.direction {
	case round.Low:
		arrow = "↑"
	case round.High:
		arrow = "↓"
	case round.Correct:
		arrow = "✓"
	}
	return strconv.Itoa(item.guess) + arrow
}

func proximityStyle(p round.Proximity) lipgloss.Style {
	switch p {
	case round.Hot:
		return hotStyle
	case round.Warm:
		return warmStyle
	default:
		return coldStyle
	}
}

// buildTrail renders previous guesses as space separated chips coloured by proximity.
func buildTrail(items []trailItem) []styledRune {
	out := make([]styledRune, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, styledRune{s: " ", width: 1, isSpace: true})
		}
		label := trailLabel(item)
		style := proximityStyle(item.proximity)
		if item.direction == round.Correct {
			style = correctStyle
		}
		out = append(out, styledRune{
			s:     style.Render(label),
			width: runewidth.StringWidth(label),
		})
	}
	return out
}

// buildConfetti colours glyphs by palette index. Negative indexes are blanks.
func buildConfetti(glyphs []rune, colors []int) []styledRune {
	out := make([]styledRune, 0, len(glyphs))
	for i, g := range glyphs {
		if colors[i] < 0 || g == ' ' {
			out = append(out, styledRune{s: " ", width: 1, isSpace: true})
			continue
		}
		style := confettiPalette[colors[i]%len(confettiPalette)]
		out = append(out, styledRune{
			s:     style.Render(string(g)),
			width: runewidth.RuneWidth(g),
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks runes into lines no wider than width, preferring spaces.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
