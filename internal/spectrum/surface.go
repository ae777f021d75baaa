package spectrum

import colorful "github.com/lucasb-eyer/go-colorful"

// Surface is a 2D drawing target addressed in pixels, origin top-left.
type Surface interface {
	Size() (width, height int)
	Clear(bg colorful.Color)
	// FillRect blends c over the rectangle with the given opacity (0..1).
	// Parts outside the surface are ignored.
	FillRect(x, y, w, h int, c colorful.Color, alpha float64)
}
