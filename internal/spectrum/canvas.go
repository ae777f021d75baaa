package spectrum

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Canvas is an in-memory pixel buffer implementing Surface. It can be
// exported as an image or rendered as terminal half-block characters.
type Canvas struct {
	width  int
	height int
	px     []colorful.Color
}

// NewCanvas allocates a canvas. Negative sizes are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{width: width, height: height, px: make([]colorful.Color, width*height)}
}

// Resize reallocates the canvas when the size changed.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}
	*c = *NewCanvas(width, height)
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

func (c *Canvas) Clear(bg colorful.Color) {
	for i := range c.px {
		c.px[i] = bg
	}
}

func (c *Canvas) FillRect(x, y, w, h int, col colorful.Color, alpha float64) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.width), min(y+h, c.height)
	if x0 >= x1 || y0 >= y1 || alpha <= 0 {
		return
	}
	for yy := y0; yy < y1; yy++ {
		row := c.px[yy*c.width:]
		for xx := x0; xx < x1; xx++ {
			if alpha >= 1 {
				row[xx] = col
				continue
			}
			row[xx] = row[xx].BlendRgb(col, alpha).Clamped()
		}
	}
}

// At returns the pixel color at (x, y).
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return colorful.Color{}
	}
	return c.px[y*c.width+x]
}

// Image converts the canvas to an RGBA image.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := c.px[y*c.width+x].RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

const halfBlock = "▀"

// Cells renders the canvas as text, two pixel rows per line: the upper pixel
// is the glyph foreground and the lower one the cell background. Runs of
// identical cells share one styled span.
func (c *Canvas) Cells() string {
	if c.width == 0 || c.height == 0 {
		return ""
	}
	rows := (c.height + 1) / 2
	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		runStart := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.cellPair(x, r) == c.cellPair(runStart, r) {
				continue
			}
			span := c.cellPair(runStart, r)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(span.top.Hex())).
				Background(lipgloss.Color(span.bottom.Hex())).
				Render(strings.Repeat(halfBlock, x-runStart)))
			runStart = x
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

type cell struct {
	top    colorful.Color
	bottom colorful.Color
}

func (c *Canvas) cellPair(x, row int) cell {
	top := c.At(x, row*2)
	bottom := top
	if row*2+1 < c.height {
		bottom = c.At(x, row*2+1)
	}
	return cell{top: top, bottom: bottom}
}
