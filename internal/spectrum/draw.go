package spectrum

import (
	"math"

	"github.com/five82/signet-rx/internal/anim"
)

const (
	gridAlpha = 0.25
	peakAlpha = 0.95
)

// Draw renders one analyzer frame: clear, guide lines, segmented bars and a
// peak marker per bar. A layout that is not drawable leaves only the clear.
// bars beyond the layout's bar count are ignored.
func Draw(s Surface, l Layout, bars []anim.Tracker, p Palette) {
	s.Clear(p.Background)
	if !l.Drawable() {
		return
	}

	for r := 1; r < l.GridRows; r++ {
		y := int(math.Round(float64(l.Height) * float64(r) / float64(l.GridRows)))
		s.FillRect(0, y, l.Width, 1, p.Grid, gridAlpha)
	}

	n := min(len(bars), l.Bars)
	for i := 0; i < n; i++ {
		drawBar(s, l, i, bars[i], p)
	}
}

func drawBar(s Surface, l Layout, i int, bar anim.Tracker, p Palette) {
	x := l.barX(i)
	lit := l.LitSegments(bar.Level)
	for seg := 0; seg < l.SegCount; seg++ {
		c := p.Unlit
		if seg < lit {
			c = p.segmentColor(seg, l.SegCount)
		}
		s.FillRect(x, l.segY(seg), l.BarWidth, l.SegHeight, c, 1)
	}

	peakSeg := min(l.SegCount-1, int(math.Floor(bar.Peak*float64(l.SegCount))))
	s.FillRect(x, l.segY(peakSeg), l.BarWidth, l.PeakHeight, p.Peak, peakAlpha)
}

// LitSegments reports how many segments a level lights in the layout.
func (l Layout) LitSegments(level float64) int {
	if !l.Drawable() {
		return 0
	}
	return int(math.Floor(level * float64(l.SegCount)))
}
