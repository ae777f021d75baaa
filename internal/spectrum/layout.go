package spectrum

// Geometry is the fixed sizing of the LED stack, in surface pixels.
type Geometry struct {
	Bars       int
	BarGap     int
	SegHeight  int
	SegGap     int
	Inset      int // vertical space reserved outside the segment stack
	Bottom     int // distance from the bottom edge to the first segment
	PeakHeight int
	GridRows   int
}

// PixelGeometry matches the canvas rendition: 6px segments with 2px gaps.
func PixelGeometry(bars int) Geometry {
	return Geometry{
		Bars:       bars,
		BarGap:     2,
		SegHeight:  6,
		SegGap:     2,
		Inset:      8,
		Bottom:     4,
		PeakHeight: 2,
		GridRows:   5,
	}
}

// CellGeometry is the terminal rendition on a half-block canvas, where one
// text row holds two pixels. Bars touch when the terminal is too narrow for
// gaps.
func CellGeometry(bars, width int) Geometry {
	gap := 1
	if width < bars*2-1 {
		gap = 0
	}
	return Geometry{
		Bars:       bars,
		BarGap:     gap,
		SegHeight:  1,
		SegGap:     1,
		PeakHeight: 1,
		GridRows:   5,
	}
}

// Layout is the geometry resolved against a surface size. It is recomputed
// whenever the surface is resized.
type Layout struct {
	Geometry
	Width    int
	Height   int
	BarWidth int
	SegCount int
}

// NewLayout derives bar width and segment count from the surface size.
func NewLayout(g Geometry, width, height int) Layout {
	l := Layout{Geometry: g, Width: width, Height: height}
	if g.Bars > 0 {
		l.BarWidth = (width - (g.Bars-1)*g.BarGap) / g.Bars
	}
	if pitch := g.SegHeight + g.SegGap; pitch > 0 {
		l.SegCount = (height - g.Inset) / pitch
	}
	return l
}

// Matches reports whether the layout was computed for this size.
func (l Layout) Matches(width, height int) bool {
	return l.Width == width && l.Height == height
}

// Drawable is false for surfaces too small to hold a single bar segment.
func (l Layout) Drawable() bool {
	return l.Bars > 0 && l.BarWidth > 0 && l.SegCount > 0 && l.Width > 0 && l.Height > 0
}

// barX is the left edge of bar i.
func (l Layout) barX(i int) int {
	return i * (l.BarWidth + l.BarGap)
}

// segY is the top edge of segment s, counting from the bottom.
func (l Layout) segY(s int) int {
	return l.Height - l.Bottom - (s+1)*(l.SegHeight+l.SegGap)
}
