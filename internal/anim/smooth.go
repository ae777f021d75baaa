package anim

import "math"

// Smoothing and decay constants shared by every animated scalar.
const (
	retain = 0.86
	attack = 0.14

	SpectrumPeakDecay = 0.010
	MeterPeakDecay    = 0.020
)

// Tracker is one smoothed level with a peak-hold marker.
// Peak is never below Level.
type Tracker struct {
	Level float64
	Peak  float64
}

// Step advances the tracker one frame toward target. The peak falls by decay
// per frame but snaps to the level when the level passes it.
func (t *Tracker) Step(target, decay float64) {
	t.Level = clamp01(t.Level*retain + clamp01(target)*attack)
	t.Peak = clamp01(max(t.Level, t.Peak-decay))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
