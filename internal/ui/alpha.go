package ui

import (
	"github.com/five82/signet-rx/internal/config"
	"github.com/five82/signet-rx/internal/view"
)

const alphaBlockHeight = 8

// alphaLayout is the FM + WX panel dashboard with a spectrum that can be
// switched to full view.
type alphaLayout struct{}

func (alphaLayout) Name() string { return config.LayoutAlpha }

func (alphaLayout) ExtendedDetails() bool { return false }

func (alphaLayout) SupportsFullView() bool { return true }

func (alphaLayout) Arrange(a arrangement) regions {
	a.Blocks = view.BlockOrder{Primary: view.BlockRX, Secondary: view.BlockWX}
	r, viz := stack(a, alphaBlockHeight)
	r.Spectrum = viz
	return r
}

func (alphaLayout) Block(b view.Block, f frame, t Theme, r rect) string {
	s := t.Styles()
	d := f.display
	iw, _ := r.inner()
	if b == view.BlockWX {
		body := joinLines(
			s.Readout.Render(d.WxFreq)+"  "+s.MutedText.Render("NOAA"),
			// The alpha receiver always monitors NOAA, so its WX light stays lit.
			led("WX", true, t)+"  "+led("ALERT", d.LEDs.Alert, t),
			field(s, "Status", orDash(d.WxStatus)),
			field(s, "Alert ", d.LastAlert),
			field(s, "Mode  ", d.Mode),
		)
		return panel(t, r, "WX", body, d.LEDs.Alert)
	}
	body := joinLines(
		s.Readout.Render(d.RxFreq)+"  "+s.MutedText.Render("FM"),
		led("STEREO", d.LEDs.Stereo, t)+"  "+led("RDS", d.LEDs.RDS, t),
		field(s, "Station", orDash(d.Station)),
		field(s, "Text   ", truncate(orDash(d.RadioText), iw-8)),
		field(s, "Output ", d.Output)+"  "+field(s, "Vol", d.Volume),
	)
	return panel(t, r, "FM", body, false)
}
