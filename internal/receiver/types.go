package receiver

import (
	"math"
	"strings"
)

// NoAlert is the sentinel the backend sends when no weather alert is active.
const NoAlert = "None"

// Envelope mirrors the payload of a "state" push event.
type Envelope struct {
	Timestamp string `json:"ts"`
	State     *State `json:"state"`
}

// State is one receiver snapshot as pushed by the backend. Every field is
// optional on the wire; use the accessor methods to read values with their
// documented defaults.
type State struct {
	Version     *string  `json:"version,omitempty"`
	Mode        *string  `json:"mode,omitempty"`
	AudioOutput *string  `json:"audio_output,omitempty"`
	Volume      *float64 `json:"volume,omitempty"`

	RxFreqMHz *float64 `json:"rx_freq_mhz,omitempty"`
	FMFreqMHz *float64 `json:"fm_freq_mhz,omitempty"`
	RxMod     *string  `json:"rx_mod,omitempty"`
	RxBwKHz   *float64 `json:"rx_bw_khz,omitempty"`
	RxStepKHz *float64 `json:"rx_step_khz,omitempty"`
	RxSql     *float64 `json:"rx_sql,omitempty"`
	RxProfile *string  `json:"rx_profile,omitempty"`
	RxS       *float64 `json:"rx_s,omitempty"`
	RxOverDB  *float64 `json:"rx_over_db,omitempty"`
	Stereo    *bool    `json:"stereo,omitempty"`

	RDSStation *string `json:"rds_station,omitempty"`
	RDSText    *string `json:"rds_text,omitempty"`

	WxFreqMHz     *float64 `json:"wx_freq_mhz,omitempty"`
	WxMod         *string  `json:"wx_mod,omitempty"`
	WxBwKHz       *float64 `json:"wx_bw_khz,omitempty"`
	WxStatus      *string  `json:"wx_status,omitempty"`
	WxS           *float64 `json:"wx_s,omitempty"`
	WxOverDB      *float64 `json:"wx_over_db,omitempty"`
	LastAlert     *string  `json:"last_alert,omitempty"`
	LastAlertTime *string  `json:"last_alert_time,omitempty"`
}

// Accessors are nil-safe: a nil *State reads as all defaults.

func (s *State) ModeName() string { return str(s, func(s *State) *string { return s.Mode }) }
func (s *State) Output() string { return str(s, func(s *State) *string { return s.AudioOutput }) }
func (s *State) VolumeLevel() float64 { return num(s, func(s *State) *float64 { return s.Volume }) }

// RxFrequency returns rx_freq_mhz, falling back to the older fm_freq_mhz.
func (s *State) RxFrequency() float64 {
	if s != nil && s.RxFreqMHz == nil && s.FMFreqMHz != nil {
		return finite(*s.FMFreqMHz)
	}
	return num(s, func(s *State) *float64 { return s.RxFreqMHz })
}

func (s *State) RxModulation() string { return str(s, func(s *State) *string { return s.RxMod }) }
func (s *State) RxBandwidth() float64 { return num(s, func(s *State) *float64 { return s.RxBwKHz }) }
func (s *State) RxStep() float64 { return num(s, func(s *State) *float64 { return s.RxStepKHz }) }
func (s *State) RxSquelch() float64 { return num(s, func(s *State) *float64 { return s.RxSql }) }
func (s *State) Profile() string { return str(s, func(s *State) *string { return s.RxProfile }) }
func (s *State) RxStrength() float64 { return num(s, func(s *State) *float64 { return s.RxS }) }
func (s *State) RxOver() float64 { return num(s, func(s *State) *float64 { return s.RxOverDB }) }
func (s *State) Station() string { return str(s, func(s *State) *string { return s.RDSStation }) }
func (s *State) RadioText() string { return str(s, func(s *State) *string { return s.RDSText }) }

func (s *State) IsStereo() bool {
	if s == nil || s.Stereo == nil {
		return false
	}
	return *s.Stereo
}

func (s *State) WxFrequency() float64 { return num(s, func(s *State) *float64 { return s.WxFreqMHz }) }
func (s *State) WxModulation() string { return str(s, func(s *State) *string { return s.WxMod }) }
func (s *State) WxBandwidth() float64 { return num(s, func(s *State) *float64 { return s.WxBwKHz }) }
func (s *State) WxStatusText() string { return str(s, func(s *State) *string { return s.WxStatus }) }
func (s *State) WxStrength() float64 { return num(s, func(s *State) *float64 { return s.WxS }) }
func (s *State) WxOver() float64 { return num(s, func(s *State) *float64 { return s.WxOverDB }) }
func (s *State) Alert() string { return str(s, func(s *State) *string { return s.LastAlert }) }
func (s *State) AlertTime() string { return str(s, func(s *State) *string { return s.LastAlertTime }) }

// HasAlert reports whether last_alert carries a real alert.
func (s *State) HasAlert() bool {
	alert := strings.TrimSpace(s.Alert())
	return alert != "" && alert != NoAlert
}

func str(s *State, field func(*State) *string) string {
	if s == nil {
		return ""
	}
	if v := field(s); v != nil {
		return *v
	}
	return ""
}

func num(s *State, field func(*State) *float64) float64 {
	if s == nil {
		return 0
	}
	if v := field(s); v != nil {
		return finite(*v)
	}
	return 0
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
