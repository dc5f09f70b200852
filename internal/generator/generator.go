// Package generator supplies randomness for round targets and celebration effects.
package generator

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const confettiGlyphs = "*+o.~^%#"

// Generator is a seeded random source safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0, n). It implements round.Source.
func (g *Generator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

// Confetti builds a line of scattered glyphs with the given density (0-1).
// Each returned rune is either a space or a glyph, and palette indexes are chosen per glyph.
func (g *Generator) Confetti(width int, density float64, paletteSize int) ([]rune, []int) {
	if width <= 0 {
		return nil, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	glyphs := []rune(confettiGlyphs)
	runes := make([]rune, width)
	colors := make([]int, width)
	for i := 0; i < width; i++ {
		if g.rnd.Float64() > density {
			runes[i] = ' '
			colors[i] = -1
			continue
		}
		runes[i] = glyphs[g.rnd.Intn(len(glyphs))]
		if paletteSize > 0 {
			colors[i] = g.rnd.Intn(paletteSize)
		}
	}
	return runes, colors
}

// ConfettiLine renders an uncoloured confetti line.
func (g *Generator) ConfettiLine(width int, density float64) string {
	runes, _ := g.Confetti(width, density, 0)
	return strings.TrimRight(string(runes), " ")
}
