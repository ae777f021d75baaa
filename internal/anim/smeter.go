package anim

// S-meter travel: S1..S9 fill the first 75%, 0..30 dB over S9 the rest.
const (
	sMin      = 1
	sMax      = 9
	overMaxDB = 30
	sShare    = 0.75
	overShare = 0.25
)

// SMeterToFrac maps a signal strength (S1..S9) and its excess over S9 in dB
// onto the meter's 0..1 fill fraction. Inputs are clamped to their ranges.
func SMeterToFrac(s, overDB float64) float64 {
	sClamped := clamp(s, sMin, sMax)
	overClamped := clamp(overDB, 0, overMaxDB)
	base := (sClamped - sMin) / (sMax - sMin)
	return clamp01(base*sShare + (overClamped/overMaxDB)*overShare)
}
