package round

import "fmt"

// Thresholds are fractions of the level used to classify guess proximity.
// A guess is Hot when diff <= level*Hot, Warm when diff <= level*Warm, otherwise Cold.
type Thresholds struct {
	Hot  float64
	Warm float64
}

// HintThresholds are diff/level ratio cut points for hint categories.
type HintThresholds struct {
	VeryClose     float64
	Close         float64
	SomewhatClose float64
}

// DefaultThresholds returns the standard Hot/Warm cut points.
func DefaultThresholds() Thresholds {
	return Thresholds{Hot: 0.10, Warm: 0.20}
}

// DefaultHintThresholds returns the standard hint cut points.
func DefaultHintThresholds() HintThresholds {
	return HintThresholds{VeryClose: 0.05, Close: 0.15, SomewhatClose: 0.35}
}

// Validate checks that cut points are non-negative and ordered.
func (t Thresholds) Validate() error {
	if t.Hot < 0 || t.Warm < 0 {
		return fmt.Errorf("feedback thresholds must be >= 0")
	}
	if t.Hot > t.Warm {
		return fmt.Errorf("hot threshold (%.2f) must not exceed warm threshold (%.2f)", t.Hot, t.Warm)
	}
	return nil
}

// Validate checks that cut points are non-negative and ordered.
func (h HintThresholds) Validate() error {
	if h.VeryClose < 0 || h.Close < 0 || h.SomewhatClose < 0 {
		return fmt.Errorf("hint thresholds must be >= 0")
	}
	if h.VeryClose > h.Close || h.Close > h.SomewhatClose {
		return fmt.Errorf("hint thresholds must be ordered very-close <= close <= somewhat-close")
	}
	return nil
}

func (t Thresholds) classify(diff, level int) Proximity {
	d := float64(diff)
	l := float64(level)
	switch {
	case d <= l*t.Hot:
		return Hot
	case d <= l*t.Warm:
		return Warm
	default:
		return Cold
	}
}

func (h HintThresholds) classify(diff, level int) Closeness {
	ratio := float64(diff) / float64(level)
	switch {
	case ratio <= h.VeryClose:
		return VeryClose
	case ratio <= h.Close:
		return Close
	case ratio <= h.SomewhatClose:
		return SomewhatClose
	default:
		return NotClose
	}
}
