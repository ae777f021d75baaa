package spectrum

import colorful "github.com/lucasb-eyer/go-colorful"

// Palette holds the analyzer colors.
type Palette struct {
	Background colorful.Color
	Grid       colorful.Color
	Unlit      colorful.Color
	Low        colorful.Color
	Mid        colorful.Color
	High       colorful.Color
	Peak       colorful.Color
}

// Relative stack heights where the color bands change.
const (
	midBand  = 0.55
	highBand = 0.82
)

// DefaultPalette is the retro hi-fi LED look.
func DefaultPalette() Palette {
	return Palette{
		Background: mustHex("#0b0f14"),
		Grid:       mustHex("#1b2430"),
		Unlit:      mustHex("#1a2a1f"),
		Low:        mustHex("#5bff89"),
		Mid:        mustHex("#32d4ff"),
		High:       mustHex("#ffc857"),
		Peak:       mustHex("#ffc857"),
	}
}

// WithBackground returns a copy using bg as the clear color.
func (p Palette) WithBackground(hex string) Palette {
	if c, err := colorful.Hex(hex); err == nil {
		p.Background = c
	}
	return p
}

// segmentColor returns the lit color for segment s of count.
func (p Palette) segmentColor(s, count int) colorful.Color {
	t := float64(s) / float64(count)
	switch {
	case t < midBand:
		return p.Low
	case t < highBand:
		return p.Mid
	default:
		return p.High
	}
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
