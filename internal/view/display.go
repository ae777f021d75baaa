package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/five82/signet-rx/internal/receiver"
)

// Placeholder is shown for absent text fields that must not render blank.
const Placeholder = "--"

// Display is the text and indicator content of every display element for
// one frame. It is a pure function of the receiver state.
type Display struct {
	Mode   string
	Output string
	Volume string

	RxFreq    string
	RxMod     string
	RxBw      string
	RxStep    string
	RxSql     string
	RxProfile string
	RxSignal  string
	Station   string
	RadioText string

	WxFreq        string
	WxMod         string
	WxBw          string
	WxStatus      string
	WxSignal      string
	LastAlert     string
	LastAlertTime string

	LEDs   Indicators
	Banner Banner
}

// Indicators are the boolean indicator lights.
type Indicators struct {
	Stereo bool
	RDS    bool
	WX     bool
	Alert  bool
}

// Banner is the weather alert banner.
type Banner struct {
	Visible bool
	Text    string
}

// Sync maps a receiver state onto display content, substituting defaults
// for every absent field. st may be nil.
func Sync(st *receiver.State) Display {
	hasAlert := st.HasAlert()
	return Display{
		Mode:   orPlaceholder(st.ModeName()),
		Output: orPlaceholder(st.Output()),
		Volume: fmt.Sprintf("%d", int(math.Round(st.VolumeLevel()*100))),

		RxFreq:    fmt.Sprintf("%.1f MHz", st.RxFrequency()),
		RxMod:     orPlaceholder(strings.ToUpper(st.RxModulation())),
		RxBw:      fmt.Sprintf("%.0f kHz", st.RxBandwidth()),
		RxStep:    fmt.Sprintf("%.1f kHz", st.RxStep()),
		RxSql:     fmt.Sprintf("%.0f", st.RxSquelch()),
		RxProfile: orPlaceholder(st.Profile()),
		RxSignal:  SignalReadout(st.RxStrength(), st.RxOver()),
		Station:   st.Station(),
		RadioText: st.RadioText(),

		WxFreq:        fmt.Sprintf("%.3f MHz", st.WxFrequency()),
		WxMod:         orPlaceholder(strings.ToUpper(st.WxModulation())),
		WxBw:          fmt.Sprintf("%.0f kHz", st.WxBandwidth()),
		WxStatus:      st.WxStatusText(),
		WxSignal:      SignalReadout(st.WxStrength(), st.WxOver()),
		LastAlert:     alertOrNone(st.Alert()),
		LastAlertTime: st.AlertTime(),

		LEDs: Indicators{
			Stereo: st.IsStereo(),
			RDS:    st.Station() != "",
			WX:     st.WxFrequency() > 0 || strings.TrimSpace(st.WxStatusText()) != "",
			Alert:  hasAlert,
		},
		Banner: banner(st, hasAlert),
	}
}

// SignalReadout formats strength the way a ham S-meter is read: "S7", or
// "S9+20" once the signal is over S9.
func SignalReadout(s, overDB float64) string {
	n := int(math.Round(math.Max(1, math.Min(9, s))))
	over := int(math.Round(math.Max(0, math.Min(30, overDB))))
	if n == 9 && over > 0 {
		return fmt.Sprintf("S9+%d", over)
	}
	return fmt.Sprintf("S%d", n)
}

func banner(st *receiver.State, hasAlert bool) Banner {
	if !hasAlert {
		return Banner{}
	}
	text := strings.TrimSpace(st.Alert())
	if when := strings.TrimSpace(st.AlertTime()); when != "" {
		text += " • " + when
	}
	return Banner{Visible: true, Text: text}
}

func alertOrNone(alert string) string {
	if strings.TrimSpace(alert) == "" {
		return receiver.NoAlert
	}
	return alert
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return Placeholder
	}
	return v
}
