package demo

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/five82/signet-rx/internal/receiver"
)

// Alternate radio text shown by the demo station.
const (
	radioTextNowPlaying = "Now playing: Retro hi-fi vibes"
	radioTextDemo       = "SIGNET-RX demo mode (no SDR)"
	radioTextPeriod     = 12
)

// Profile names the receiver front-end preset the generator emulates.
type Profile int

const (
	// Broadcast tunes a wideband FM station with RDS.
	Broadcast Profile = iota
	// Manual tunes a narrowband amateur channel with manual controls.
	Manual
)

// Generator produces the demo backend's receiver snapshots. It is not safe
// for concurrent use; the server calls it from its publish loop only.
type Generator struct {
	rng     *rand.Rand
	profile Profile
	mode    string
	text    string
	rxS     float64
	wxS     float64
}

// NewGenerator builds a generator for the given profile and mode name
// (FM_WX, WX_LIVE, WX_ALERT or SAME_ONLY). A nil rng uses a time seed.
func NewGenerator(rng *rand.Rand, profile Profile, mode string) *Generator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if mode == "" {
		mode = "FM_WX"
	}
	return &Generator{
		rng:     rng,
		profile: profile,
		mode:    mode,
		text:    "Classical music for Pittsburgh",
		rxS:     7,
		wxS:     5,
	}
}

// Snapshot advances the simulated receiver to now and returns a fresh state.
func (g *Generator) Snapshot(now time.Time) *receiver.State {
	switch now.Unix() % radioTextPeriod {
	case 0:
		g.text = radioTextNowPlaying
	case radioTextPeriod / 2:
		g.text = radioTextDemo
	}

	g.rxS = walk(g.rng, g.rxS, 1, 9)
	g.wxS = walk(g.rng, g.wxS, 2, 7)
	rxOver := 0.0
	if g.rxS >= 9 {
		rxOver = round1(g.rng.Float64() * 20)
	}

	st := &receiver.State{
		Version:     receiver.Ptr("1-alpha"),
		Mode:        receiver.Ptr(g.mode),
		AudioOutput: receiver.Ptr("HDMI"),
		Volume:      receiver.Ptr(0.60),
		RxS:         receiver.Ptr(round1(g.rxS)),
		RxOverDB:    receiver.Ptr(rxOver),

		WxFreqMHz:     receiver.Ptr(162.55),
		WxMod:         receiver.Ptr("NFM"),
		WxBwKHz:       receiver.Ptr(16.0),
		WxStatus:      receiver.Ptr("MONITORING"),
		WxS:           receiver.Ptr(round1(g.wxS)),
		WxOverDB:      receiver.Ptr(0.0),
		LastAlert:     receiver.Ptr(receiver.NoAlert),
		LastAlertTime: receiver.Ptr(""),
	}

	switch g.profile {
	case Manual:
		st.RxFreqMHz = receiver.Ptr(146.52)
		st.RxMod = receiver.Ptr("NFM")
		st.RxBwKHz = receiver.Ptr(12.0)
		st.RxStepKHz = receiver.Ptr(12.5)
		st.RxSql = receiver.Ptr(35.0)
		st.RxProfile = receiver.Ptr("MANUAL_RX")
		st.Stereo = receiver.Ptr(false)
	default:
		st.RxFreqMHz = receiver.Ptr(89.3)
		st.RxMod = receiver.Ptr("WFM")
		st.RxBwKHz = receiver.Ptr(200.0)
		st.RxStepKHz = receiver.Ptr(100.0)
		st.RxSql = receiver.Ptr(0.0)
		st.RxProfile = receiver.Ptr("FM_BROADCAST")
		st.Stereo = receiver.Ptr(true)
		st.RDSStation = receiver.Ptr("WQED-FM")
		st.RDSText = receiver.Ptr(g.text)
	}

	if g.mode == "WX_ALERT" {
		st.WxStatus = receiver.Ptr("ALERT")
		st.LastAlert = receiver.Ptr("Severe Thunderstorm Warning")
		st.LastAlertTime = receiver.Ptr(now.Format("15:04"))
	}
	return st
}

// walk nudges v by up to ±1 S-unit, keeping it inside [lo, hi].
func walk(rng *rand.Rand, v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v+rng.Float64()*2-1))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
