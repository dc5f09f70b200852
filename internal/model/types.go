// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/tuiguess/internal/round"
)

// Config defines play settings.
type Config struct {
	Player      string
	Levels      []int
	Level       int
	Leaderboard int
	Feedback    round.Thresholds
	Hints       round.HintThresholds
}

// ServeConfig defines HTTP server settings.
type ServeConfig struct {
	Addr         string
	SessionTTL   time.Duration
	ClientOrigin string
	Secret       []byte
}

// LevelIndex returns the position of level in the configured set, or 0.
func (c Config) LevelIndex(level int) int {
	for i, l := range c.Levels {
		if l == level {
			return i
		}
	}
	return 0
}
