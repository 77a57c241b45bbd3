package render

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/adc-dimming/dsp/adc"
	"github.com/cwbudde/adc-dimming/dsp/window"
	"github.com/cwbudde/adc-dimming/internal/testutil"
	"github.com/cwbudde/adc-dimming/measure/analysis"
	"github.com/cwbudde/adc-dimming/measure/sweep"
)

func smallOptions(dir string) Options {
	opts := DefaultOptions()
	opts.Dir = dir
	opts.WidthIn = 6
	opts.HeightIn = 4
	opts.DPI = 20
	return opts
}

func frames(t *testing.T, n int) []sweep.Frame {
	t.Helper()

	raw := testutil.Sine32(3, 900, 2048, n)
	var c sweep.Collector
	s := &sweep.Sweep{Analyzer: analysis.New()}
	_, err := s.Run(context.Background(), raw, adc.Normalize(raw), &c)
	require.NoError(t, err)

	return c.Frames
}

func TestNewValidates(t *testing.T) {
	dir := t.TempDir()

	opts := smallOptions(dir)
	opts.DPI = 0
	_, err := New(opts)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	opts = smallOptions(dir)
	opts.HeightIn = 0
	_, err = New(opts)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	opts = smallOptions(dir)
	opts.Prefix = ""
	_, err = New(opts)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "png")
	_, err := New(smallOptions(dir))
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	r, err := New(smallOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "ADC0Data-12.png"), r.Path(12))
}

func TestFigureTitles(t *testing.T) {
	r, err := New(smallOptions(t.TempDir()))
	require.NoError(t, err)

	fs := frames(t, 16)
	plots, err := r.Figure(fs[1])
	require.NoError(t, err)

	require.Len(t, plots, 2)
	require.Len(t, plots[0], 3)
	require.Len(t, plots[1], 3)

	assert.Equal(t, "ADC0 Measurements", plots[0][0].Title.Text)
	assert.Equal(t, "Normalized ADC0 Measurements", plots[0][1].Title.Text)
	assert.Equal(t, "After dimming [25%]", plots[0][2].Title.Text)
	assert.Equal(t, "After applying Hamming Window", plots[1][0].Title.Text)
	assert.Equal(t, "FFT Freq Spectrum", plots[1][1].Title.Text)
	assert.Equal(t, "Hamming Window Coefficients", plots[1][2].Title.Text)
}

func TestFigureWindowTitle(t *testing.T) {
	opts := smallOptions(t.TempDir())
	opts.Window = window.TypeBlackmanHarris4Term
	r, err := New(opts)
	require.NoError(t, err)

	plots, err := r.Figure(frames(t, 8)[0])
	require.NoError(t, err)
	assert.Equal(t, "After applying Blackman Harris Window", plots[1][0].Title.Text)
}

func TestDimmingTitle(t *testing.T) {
	assert.Equal(t, "After dimming [0%]", dimmingTitle(0))
	assert.Equal(t, "After dimming [6.25%]", dimmingTitle(6.25))
}

func TestRenderPNG(t *testing.T) {
	r, err := New(smallOptions(t.TempDir()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, frames(t, 64)[3]))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.InDelta(t, 120, cfg.Width, 1)
	assert.InDelta(t, 80, cfg.Height, 1)
}

func TestEmitWritesOneFilePerFrame(t *testing.T) {
	dir := t.TempDir()
	r, err := New(smallOptions(dir))
	require.NoError(t, err)

	for _, f := range frames(t, 12) {
		require.NoError(t, r.Emit(f))
	}

	for _, cnt := range []int{0, 4, 8} {
		assert.FileExists(t, filepath.Join(dir, "ADC0Data-"+strconv.Itoa(cnt)+".png"))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestEmitSilentFrame(t *testing.T) {
	dir := t.TempDir()
	r, err := New(smallOptions(dir))
	require.NoError(t, err)

	raw := testutil.Const32(1000, 64)
	var c sweep.Collector
	_, err = (&sweep.Sweep{Analyzer: analysis.New()}).Run(context.Background(), raw, adc.Normalize(raw), &c)
	require.NoError(t, err)

	require.NoError(t, r.Emit(c.Frames[0]))
	assert.FileExists(t, r.Path(0))
}

func TestEmitFailsForMissingDir(t *testing.T) {
	r, err := New(smallOptions(t.TempDir()))
	require.NoError(t, err)
	r.opts.Dir = filepath.Join(t.TempDir(), "missing")

	assert.Error(t, r.Emit(frames(t, 8)[0]))
}
