package anim

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source produces the instantaneous goal level for every spectrum bar. The
// engine consumes targets only; swapping the demo oscillator for a real audio
// level input means providing another Source.
type Source interface {
	Targets(now time.Time, dst []float64)
}

// Demo oscillator constants.
const (
	demoPeriodSeconds = 0.6
	demoPhaseStep     = 0.35
	demoFloor         = 0.35
	demoMaxDrift      = 0.18
)

// DemoSource is a phase-shifted sine with bounded random jitter. It has no
// relation to receiver state.
type DemoSource struct {
	rng   *rand.Rand
	epoch time.Time
}

// NewDemoSource returns a demo generator. A nil rng uses a time-seeded one.
// Phase is measured from epoch; pass the zero time to use wall-clock seconds.
func NewDemoSource(rng *rand.Rand, epoch time.Time) *DemoSource {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &DemoSource{rng: rng, epoch: epoch}
}

// Targets fills dst with one target per bar.
func (d *DemoSource) Targets(now time.Time, dst []float64) {
	seconds := d.seconds(now)
	for i := range dst {
		drift := d.rng.Float64() * demoMaxDrift
		dst[i] = demoTarget(seconds, i, drift)
	}
}

func (d *DemoSource) seconds(now time.Time) float64 {
	if d.epoch.IsZero() {
		return float64(now.UnixNano()) / float64(time.Second)
	}
	return now.Sub(d.epoch).Seconds()
}

func demoTarget(seconds float64, bar int, drift float64) float64 {
	phase := seconds/demoPeriodSeconds + float64(bar)*demoPhaseStep
	return (math.Sin(phase)*0.5 + 0.5) * (demoFloor + drift)
}
