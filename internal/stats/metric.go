package stats

import "github.com/shopspring/decimal"

// NotAvailable is shown for metrics over an empty history.
const NotAvailable = "N/A"

// Metric is an optional value that renders as "N/A" when absent.
type Metric struct {
	Value float64
	Valid bool
}

// Valid wraps a computed value.
func Valid(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// String renders the value rounded half-up to two decimals, or "N/A".
func (m Metric) String() string {
	if !m.Valid {
		return NotAvailable
	}
	return decimal.NewFromFloat(m.Value).StringFixed(2)
}

// Seconds renders the metric as a duration label such as "4.25s".
func (m Metric) Seconds() string {
	if !m.Valid {
		return NotAvailable
	}
	return m.String() + "s"
}

// Tier is the qualitative label for a single score.
type Tier int

const (
	TierNone Tier = iota
	TierGreat
	TierGood
	TierOk
	TierBad
)

// TierFor classifies a score: <=3 Great, <=6 Good, <=10 Ok, otherwise Bad.
func TierFor(score int) Tier {
	switch {
	case score <= 3:
		return TierGreat
	case score <= 6:
		return TierGood
	case score <= 10:
		return TierOk
	default:
		return TierBad
	}
}

func (t Tier) String() string {
	switch t {
	case TierGreat:
		return "Great"
	case TierGood:
		return "Good"
	case TierOk:
		return "Ok"
	case TierBad:
		return "Bad"
	default:
		return ""
	}
}
