package ui

import (
	"github.com/five82/signet-rx/internal/view"
)

// Minimum sizes below which a region is dropped rather than squeezed.
const (
	minVizHeight = 4
	footerHeight = 1
	headerHeight = 1
	bannerHeight = 1
	compactWidth = 80
)

// rect is a screen region in terminal cells.
type rect struct {
	X, Y, W, H int
}

func (r rect) empty() bool { return r.W <= 0 || r.H <= 0 }

func (r rect) contains(x, y int) bool {
	return !r.empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// inner is the content size inside a one-cell border.
func (r rect) inner() (int, int) {
	return max(r.W-2, 0), max(r.H-2, 0)
}

// regions is the screen arrangement for one frame. Empty rects are hidden.
type regions struct {
	Header    rect
	Banner    rect
	Primary   rect
	Secondary rect
	Spectrum  rect
	Manual    rect
	Footer    rect

	PrimaryBlock   view.Block
	SecondaryBlock view.Block
}

// blockAt maps a click position to the block under it.
func (r regions) blockAt(x, y int) (view.Block, bool) {
	switch {
	case r.Primary.contains(x, y):
		return r.PrimaryBlock, true
	case r.Secondary.contains(x, y):
		return r.SecondaryBlock, true
	}
	return 0, false
}

// arrangement is everything a Layout needs to place the regions.
type arrangement struct {
	Width    int
	Height   int
	Banner   bool
	Mode     view.Mode
	Blocks   view.BlockOrder
	FullView bool
}

// Layout is one dashboard variant. Layouts only place regions and fill
// block panels; the model owns state and composition.
type Layout interface {
	Name() string
	Arrange(a arrangement) regions
	Block(b view.Block, f frame, t Theme, r rect) string
	// ExtendedDetails selects the detail overlay variant with tuning fields.
	ExtendedDetails() bool
	SupportsFullView() bool
}

// layouts in cycle order.
var layouts = []Layout{betaLayout{}, alphaLayout{}}

// layoutByName returns the named layout, defaulting to beta.
func layoutByName(name string) Layout {
	for _, l := range layouts {
		if l.Name() == name {
			return l
		}
	}
	return layouts[0]
}

// nextLayout cycles to the following layout.
func nextLayout(current Layout) Layout {
	for i, l := range layouts {
		if l.Name() == current.Name() {
			return layouts[(i+1)%len(layouts)]
		}
	}
	return layouts[0]
}

// stack places the header, banner, block row and footer shared by both
// layouts, returning the regions and the rows left for the visualization.
func stack(a arrangement, blockHeight int) (regions, rect) {
	var r regions
	y := 0
	r.Header = rect{X: 0, Y: y, W: a.Width, H: headerHeight}
	y += headerHeight
	if a.Banner {
		r.Banner = rect{X: 0, Y: y, W: a.Width, H: bannerHeight}
		y += bannerHeight
	}
	bottom := a.Height - footerHeight
	if bottom > y {
		r.Footer = rect{X: 0, Y: bottom, W: a.Width, H: footerHeight}
	} else {
		bottom = a.Height
	}

	r.PrimaryBlock, r.SecondaryBlock = a.Blocks.Primary, a.Blocks.Secondary
	if !a.FullView {
		h := min(blockHeight, bottom-y)
		if h >= 3 {
			left := a.Width / 2
			r.Primary = rect{X: 0, Y: y, W: left, H: h}
			r.Secondary = rect{X: left, Y: y, W: a.Width - left, H: h}
			y += h
		}
	}

	viz := rect{X: 0, Y: y, W: a.Width, H: bottom - y}
	if viz.H < minVizHeight {
		viz = rect{}
	}
	return r, viz
}
