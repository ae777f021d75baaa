package receiver

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ErrMalformed marks a push payload that could not be turned into a State.
var ErrMalformed = errors.New("malformed state payload")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeEnvelope parses a "state" event payload and returns its inner state.
// Only invalid JSON or a missing state object is malformed. A field whose
// value has the wrong type reads as absent, so its accessor returns the
// default and the rest of the snapshot is kept.
func DecodeEnvelope(data []byte) (*State, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}
	root := json.Get(data)
	if root.ValueType() != jsoniter.ObjectValue {
		return nil, fmt.Errorf("%w: payload is not an object", ErrMalformed)
	}
	obj := root.Get("state")
	if obj.ValueType() != jsoniter.ObjectValue {
		return nil, fmt.Errorf("%w: missing state object", ErrMalformed)
	}
	return decodeState(obj), nil
}

func decodeState(obj jsoniter.Any) *State {
	return &State{
		Version:     text(obj, "version"),
		Mode:        text(obj, "mode"),
		AudioOutput: text(obj, "audio_output"),
		Volume:      number(obj, "volume"),

		RxFreqMHz: number(obj, "rx_freq_mhz"),
		FMFreqMHz: number(obj, "fm_freq_mhz"),
		RxMod:     text(obj, "rx_mod"),
		RxBwKHz:   number(obj, "rx_bw_khz"),
		RxStepKHz: number(obj, "rx_step_khz"),
		RxSql:     number(obj, "rx_sql"),
		RxProfile: text(obj, "rx_profile"),
		RxS:       number(obj, "rx_s"),
		RxOverDB:  number(obj, "rx_over_db"),
		Stereo:    flag(obj, "stereo"),

		RDSStation: text(obj, "rds_station"),
		RDSText:    text(obj, "rds_text"),

		WxFreqMHz:     number(obj, "wx_freq_mhz"),
		WxMod:         text(obj, "wx_mod"),
		WxBwKHz:       number(obj, "wx_bw_khz"),
		WxStatus:      text(obj, "wx_status"),
		WxS:           number(obj, "wx_s"),
		WxOverDB:      number(obj, "wx_over_db"),
		LastAlert:     text(obj, "last_alert"),
		LastAlertTime: text(obj, "last_alert_time"),
	}
}

func text(obj jsoniter.Any, key string) *string {
	v := obj.Get(key)
	if v.ValueType() != jsoniter.StringValue {
		return nil
	}
	return Ptr(v.ToString())
}

func number(obj jsoniter.Any, key string) *float64 {
	v := obj.Get(key)
	if v.ValueType() != jsoniter.NumberValue {
		return nil
	}
	return Ptr(v.ToFloat64())
}

func flag(obj jsoniter.Any, key string) *bool {
	v := obj.Get(key)
	if v.ValueType() != jsoniter.BoolValue {
		return nil
	}
	return Ptr(v.ToBool())
}

// EncodeEnvelope renders a state as a push payload.
func EncodeEnvelope(ts string, s *State) ([]byte, error) {
	data, err := json.Marshal(Envelope{Timestamp: ts, State: s})
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Ptr returns a pointer to v. It keeps state literals short.
func Ptr[T any](v T) *T {
	return &v
}
