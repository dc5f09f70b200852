package session

import (
	"github.com/verte-zerg/tuiguess/internal/model"
	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/stats"
)

// Factory builds sessions sharing one engine configuration.
type Factory struct {
	engine *round.Engine
	cfg    model.Config
}

// NewFactory returns a Factory whose sessions draw targets from src.
func NewFactory(cfg model.Config, src round.Source, opts ...round.Option) *Factory {
	opts = append([]round.Option{
		round.WithThresholds(cfg.Feedback),
		round.WithHintThresholds(cfg.Hints),
	}, opts...)
	return &Factory{engine: round.NewEngine(src, opts...), cfg: cfg}
}

// New returns a fresh session for the configured player.
func (f *Factory) New() *Session {
	return New(f.engine, stats.New(f.cfg.Leaderboard), f.cfg.Player)
}
