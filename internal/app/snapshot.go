package app

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/five82/signet-rx/internal/anim"
	"github.com/five82/signet-rx/internal/config"
	"github.com/five82/signet-rx/internal/spectrum"
)

// SnapshotOptions control an offline spectrum render.
type SnapshotOptions struct {
	Width  int
	Height int
	Frames int    // engine steps before drawing
	Seed   uint64 // demo jitter seed
	Step   time.Duration
}

const (
	defaultSnapshotWidth  = 640
	defaultSnapshotHeight = 240
	defaultSnapshotFrames = 90
)

func (o SnapshotOptions) withDefaults() SnapshotOptions {
	if o.Width <= 0 {
		o.Width = defaultSnapshotWidth
	}
	if o.Height <= 0 {
		o.Height = defaultSnapshotHeight
	}
	if o.Frames <= 0 {
		o.Frames = defaultSnapshotFrames
	}
	if o.Step <= 0 {
		o.Step = time.Second / 30
	}
	return o
}

// RenderSnapshot runs the demo spectrum for the requested number of frames
// on a fixed clock and draws the result with the pixel geometry. The same
// options always produce the same image.
func RenderSnapshot(opts SnapshotOptions) *image.RGBA {
	opts = opts.withDefaults()

	epoch := time.Unix(0, 0).UTC()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed>>1|1))
	engine := anim.NewEngine(anim.NewDemoSource(rng, epoch))
	now := epoch
	for range opts.Frames {
		now = now.Add(opts.Step)
		engine.Step(now, nil)
	}

	canvas := spectrum.NewCanvas(opts.Width, opts.Height)
	layout := spectrum.NewLayout(spectrum.PixelGeometry(anim.Bars), opts.Width, opts.Height)
	spectrum.Draw(canvas, layout, engine.Spectrum[:], spectrum.DefaultPalette())
	return canvas.Image()
}

// WriteSnapshot renders a snapshot and writes it to path as PNG.
func WriteSnapshot(path string, opts SnapshotOptions) error {
	if path == "" {
		return errors.New("snapshot output path is required")
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("snapshot path: %w", err)
	}
	img := RenderSnapshot(opts)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return file.Close()
}
