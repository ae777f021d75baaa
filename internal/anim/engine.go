package anim

import (
	"time"

	"github.com/five82/signet-rx/internal/receiver"
)

// Bars is the fixed number of spectrum bars.
const Bars = 32

// Spectrum is the per-bar level/peak state of the analyzer.
type Spectrum [Bars]Tracker

// Meter is the animated state of one S-meter. Target is the unsmoothed
// fraction from the latest receiver state.
type Meter struct {
	Tracker
	Target float64
}

// Engine owns all local animation state. It is advanced once per frame from
// the render loop and is not safe for concurrent use.
type Engine struct {
	source  Source
	targets [Bars]float64

	Spectrum Spectrum
	RX       Meter
	WX       Meter
	Frames   uint64
}

// NewEngine returns an engine fed by source, with every level at zero.
func NewEngine(source Source) *Engine {
	if source == nil {
		source = NewDemoSource(nil, time.Time{})
	}
	return &Engine{source: source}
}

// Step advances the spectrum and both meters one frame. st may be nil.
func (e *Engine) Step(now time.Time, st *receiver.State) {
	e.source.Targets(now, e.targets[:])
	for i := range e.Spectrum {
		e.Spectrum[i].Step(e.targets[i], SpectrumPeakDecay)
	}

	e.RX.Target = SMeterToFrac(st.RxStrength(), st.RxOver())
	e.RX.Step(e.RX.Target, MeterPeakDecay)
	e.WX.Target = SMeterToFrac(st.WxStrength(), st.WxOver())
	e.WX.Step(e.WX.Target, MeterPeakDecay)

	e.Frames++
}

// Reset zeroes all animation state, as at startup.
func (e *Engine) Reset() {
	e.Spectrum = Spectrum{}
	e.RX = Meter{}
	e.WX = Meter{}
	e.Frames = 0
}
