package anim

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/signet-rx/internal/receiver"
)

// scriptedSource feeds the same target to every bar, one value per frame.
type scriptedSource struct {
	values []float64
	frame  int
}

func (s *scriptedSource) Targets(_ time.Time, dst []float64) {
	v := 0.0
	if s.frame < len(s.values) {
		v = s.values[s.frame]
	}
	s.frame++
	for i := range dst {
		dst[i] = v
	}
}

func TestTracker_SmoothingLaw(t *testing.T) {
	var tr Tracker
	tr.Step(1, SpectrumPeakDecay)
	assert.InDelta(t, 0.14, tr.Level, 1e-12)
	assert.InDelta(t, 0.14, tr.Peak, 1e-12)

	tr.Step(1, SpectrumPeakDecay)
	assert.InDelta(t, 0.14*0.86+0.14, tr.Level, 1e-12)
}

func TestTracker_PeakDecaysLinearly(t *testing.T) {
	tr := Tracker{Level: 0, Peak: 0.5}
	tr.Step(0, SpectrumPeakDecay)
	assert.InDelta(t, 0.49, tr.Peak, 1e-12)

	m := Tracker{Level: 0, Peak: 0.5}
	m.Step(0, MeterPeakDecay)
	assert.InDelta(t, 0.48, m.Peak, 1e-12)
}

func TestTracker_ClampsOutOfRangeTargets(t *testing.T) {
	var tr Tracker
	for i := 0; i < 200; i++ {
		tr.Step(5, MeterPeakDecay)
	}
	assert.LessOrEqual(t, tr.Level, 1.0)
	assert.LessOrEqual(t, tr.Peak, 1.0)

	tr.Step(math.NaN(), MeterPeakDecay)
	assert.False(t, math.IsNaN(tr.Level))

	for i := 0; i < 500; i++ {
		tr.Step(-3, MeterPeakDecay)
	}
	assert.GreaterOrEqual(t, tr.Level, 0.0)
	assert.GreaterOrEqual(t, tr.Peak, 0.0)
}

func TestTracker_PeakNeverBelowLevel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, decay := range []float64{SpectrumPeakDecay, MeterPeakDecay} {
		var tr Tracker
		for i := 0; i < 5000; i++ {
			prevPeak := tr.Peak
			tr.Step(rng.Float64(), decay)
			require.GreaterOrEqual(t, tr.Peak, tr.Level, "frame %d", i)
			if tr.Peak > prevPeak {
				// Only allowed when the level rose past the old peak, and then
				// the peak equals the level exactly.
				require.Equal(t, tr.Level, tr.Peak, "frame %d overshoot", i)
			}
		}
	}
}

func TestDemoSource_TargetsStayInRange(t *testing.T) {
	src := NewDemoSource(rand.New(rand.NewPCG(7, 9)), time.Unix(0, 0))
	dst := make([]float64, Bars)
	now := time.Unix(0, 0)
	for frame := 0; frame < 600; frame++ {
		src.Targets(now, dst)
		for i, v := range dst {
			require.GreaterOrEqual(t, v, 0.0, "bar %d", i)
			require.LessOrEqual(t, v, demoFloor+demoMaxDrift, "bar %d", i)
		}
		now = now.Add(16 * time.Millisecond)
	}
}

func TestDemoTarget_Formula(t *testing.T) {
	// sin(0) = 0 -> half amplitude.
	assert.InDelta(t, 0.5*0.35, demoTarget(0, 0, 0), 1e-12)
	assert.InDelta(t, 0.5*(0.35+0.18), demoTarget(0, 0, 0.18), 1e-12)
	want := (math.Sin(1.2/0.6+3*0.35)*0.5 + 0.5) * 0.4
	assert.InDelta(t, want, demoTarget(1.2, 3, 0.05), 1e-12)
}

func TestEngine_StepAdvancesSpectrumAndMeters(t *testing.T) {
	e := NewEngine(&scriptedSource{values: []float64{1, 1, 0}})
	st := &receiver.State{RxS: receiver.Ptr(7.0), RxOverDB: receiver.Ptr(10.0)}

	e.Step(time.Now(), st)
	for i, bar := range e.Spectrum {
		assert.InDelta(t, 0.14, bar.Level, 1e-12, "bar %d", i)
	}
	assert.InDelta(t, 0.6458, e.RX.Target, 1e-4)
	assert.InDelta(t, e.RX.Target*0.14, e.RX.Level, 1e-12)
	assert.Equal(t, 0.0, e.WX.Target)
	assert.Equal(t, uint64(1), e.Frames)

	e.Step(time.Now(), nil)
	assert.Equal(t, 0.0, e.RX.Target, "nil state reads as S1 with no over")
	assert.GreaterOrEqual(t, e.RX.Peak, e.RX.Level)
}

func TestEngine_Reset(t *testing.T) {
	e := NewEngine(&scriptedSource{values: []float64{1}})
	e.Step(time.Now(), nil)
	e.Reset()
	assert.Equal(t, Spectrum{}, e.Spectrum)
	assert.Equal(t, uint64(0), e.Frames)
}
