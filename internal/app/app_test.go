package app

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/signet-rx/internal/config"
	"github.com/five82/signet-rx/internal/logtail"
	"github.com/five82/signet-rx/internal/prefs"
	"github.com/five82/signet-rx/internal/spectrum"
)

func TestResolvePrecedence(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name       string
		prefs      prefs.Prefs
		opts       Options
		wantLayout string
		wantFPS    int
		wantTheme  string
	}{
		{"config only", prefs.Prefs{}, Options{}, config.LayoutBeta, 30, prefs.DefaultTheme()},
		{"prefs layout", prefs.Prefs{Theme: "Ice", Layout: "alpha"}, Options{}, config.LayoutAlpha, 30, "Ice"},
		{"bad prefs layout ignored", prefs.Prefs{Layout: "gamma"}, Options{}, config.LayoutBeta, 30, prefs.DefaultTheme()},
		{"flag beats prefs", prefs.Prefs{Layout: "alpha"}, Options{Layout: "BETA"}, config.LayoutBeta, 30, prefs.DefaultTheme()},
		{"fps flag clamped", prefs.Prefs{}, Options{FPS: 500}, config.LayoutBeta, 120, prefs.DefaultTheme()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve(cfg, tt.prefs, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLayout, got.cfg.Layout)
			assert.Equal(t, tt.wantFPS, got.cfg.FPS)
			assert.Equal(t, tt.wantTheme, got.theme)
		})
	}
}

func TestResolveRejectsUnknownLayoutFlag(t *testing.T) {
	_, err := resolve(config.Default(), prefs.Prefs{}, Options{Layout: "gamma"})
	assert.Error(t, err)
}

func TestOpenLogWritesParsableLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "signet-rx.log")
	logger, closeLog, err := OpenLog(path, "debug")
	require.NoError(t, err)

	logger.WithField("component", "push").Info("stream connected")
	logger.Debug("frame")
	closeLog()

	lines, err := logtail.Read(path, 10)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	entry, ok := logtail.Parse(lines[0])
	require.True(t, ok)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "stream connected", entry.Message)
	assert.Equal(t, []logtail.Field{{Key: "component", Value: "push"}}, entry.Fields)
}

func TestOpenLogEmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := OpenLog("", "info")
	require.NoError(t, err)
	defer closeLog()
	logger.Info("nowhere")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, parseLevel("debug"))
	assert.Equal(t, log.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, log.InfoLevel, parseLevel("chatty"))
	assert.Equal(t, log.InfoLevel, parseLevel(""))
}

func TestRenderSnapshotIsDeterministic(t *testing.T) {
	opts := SnapshotOptions{Width: 320, Height: 120, Frames: 40, Seed: 7}
	a := RenderSnapshot(opts)
	b := RenderSnapshot(opts)
	assert.Equal(t, 320, a.Bounds().Dx())
	assert.Equal(t, 120, a.Bounds().Dy())
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRenderSnapshotLightsBars(t *testing.T) {
	img := RenderSnapshot(SnapshotOptions{Width: 320, Height: 120, Frames: 60, Seed: 1})
	r, g, b := spectrum.DefaultPalette().Low.RGB255()
	lit := 0
	for x := 0; x < img.Bounds().Dx(); x++ {
		// Row 110 falls inside the bottom segment of every bar.
		c := img.RGBAAt(x, 110)
		if c.R == r && c.G == g && c.B == b {
			lit++
		}
	}
	assert.Positive(t, lit)
}

func TestWriteSnapshotEncodesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "spectrum.png")
	require.NoError(t, WriteSnapshot(path, SnapshotOptions{Width: 200, Height: 80, Seed: 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestWriteSnapshotRequiresPath(t *testing.T) {
	assert.Error(t, WriteSnapshot("", SnapshotOptions{}))
}
