package ui

import (
	"fmt"
	"strings"

	"github.com/five82/signet-rx/internal/anim"
	"github.com/five82/signet-rx/internal/config"
	"github.com/five82/signet-rx/internal/receiver"
	"github.com/five82/signet-rx/internal/view"
)

const betaBlockHeight = 10

// betaLayout is the RX/WX block dashboard with S-meters. Its visualization
// area shows the spectrum for broadcast FM and the manual controls otherwise.
type betaLayout struct{}

func (betaLayout) Name() string { return config.LayoutBeta }

func (betaLayout) ExtendedDetails() bool { return true }

func (betaLayout) SupportsFullView() bool { return false }

func (betaLayout) Arrange(a arrangement) regions {
	a.FullView = false
	r, viz := stack(a, betaBlockHeight)
	if a.Mode.ShowsSpectrum() {
		r.Spectrum = viz
	} else {
		r.Manual = viz
	}
	return r
}

func (betaLayout) Block(b view.Block, f frame, t Theme, r rect) string {
	s := t.Styles()
	d := f.display
	iw, _ := r.inner()

	if b == view.BlockWX {
		alert := d.LastAlert
		if d.LastAlertTime != "" {
			alert += " @ " + d.LastAlertTime
		}
		body := joinLines(
			s.Readout.Render(d.WxFreq)+"  "+s.Text.Render(d.WxMod)+"  "+s.MutedText.Render(d.WxBw),
			led("WX", d.LEDs.WX, t)+"  "+led("ALERT", d.LEDs.Alert, t),
			field(s, "Status", orDash(d.WxStatus)),
			field(s, "Alert ", alert),
			meterBar(f.wx, iw, t),
			s.FaintText.Render(meterScale(iw)),
			field(s, "Signal", d.WxSignal),
		)
		return panel(t, r, "WX", body, d.LEDs.Alert)
	}

	body := joinLines(
		s.Readout.Render(d.RxFreq)+"  "+s.Text.Render(d.RxMod)+"  "+s.MutedText.Render(d.RxBw),
		led("STEREO", d.LEDs.Stereo, t)+"  "+led("RDS", d.LEDs.RDS, t),
		field(s, "Station", orDash(d.Station)),
		field(s, "Text   ", truncate(orDash(d.RadioText), iw-8)),
		meterBar(f.rx, iw, t),
		s.FaintText.Render(meterScale(iw)),
		field(s, "Signal ", d.RxSignal)+"  "+field(s, "Step", d.RxStep),
	)
	return panel(t, r, "RX", body, false)
}

// manualPanel is the read-only manual tuning surface.
func manualPanel(f frame, t Theme, r rect) string {
	s := t.Styles()
	d := f.display
	iw, _ := r.inner()

	body := joinLines(
		field(s, "Frequency ", d.RxFreq),
		field(s, "Modulation", d.RxMod),
		field(s, "Bandwidth ", d.RxBw),
		field(s, "Step      ", d.RxStep),
		field(s, "Squelch   ", d.RxSql)+"  "+squelchBar(f.state, max(iw-len("Squelch   ")-6-len(d.RxSql), 0), t),
		field(s, "Profile   ", d.RxProfile),
		"",
		s.FaintText.Render(fmt.Sprintf("signal %s  audio %s  vol %s", d.RxSignal, d.Output, d.Volume)),
	)
	return panel(t, r, "MANUAL CONTROLS", body, false)
}

// squelchBar shows the squelch setting (0..100) as a level bar.
func squelchBar(st *receiver.State, width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	frac := st.RxSquelch() / 100
	return meterBar(anim.Meter{Tracker: anim.Tracker{Level: frac}}, width, t)
}

func field(s Styles, label, value string) string {
	return s.MutedText.Render(label) + " " + s.Text.Render(value)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return view.Placeholder
	}
	return v
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
