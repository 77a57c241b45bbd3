// Package render draws one 2x3 PNG figure per sweep frame with gonum/plot.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/adc-dimming/dsp/window"
	"github.com/cwbudde/adc-dimming/measure/sweep"
)

// ErrInvalidOptions is wrapped by New for unusable options.
var ErrInvalidOptions = errors.New("render: invalid options")

// Options configures a Renderer.
type Options struct {
	Dir    string
	Prefix string
	// Figure size in inches and resolution.
	WidthIn  float64
	HeightIn float64
	DPI      int
	// Window is the analysis window, used for panel titles and the
	// coefficient panel.
	Window window.Type
}

// DefaultOptions returns an 18x12 inch, 300 dpi figure written as
// TestData/ADC0Data-<count>.png.
func DefaultOptions() Options {
	return Options{
		Dir:      "TestData",
		Prefix:   "ADC0Data",
		WidthIn:  18,
		HeightIn: 12,
		DPI:      300,
		Window:   window.TypeHamming,
	}
}

var (
	rawColor      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	centeredColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	dimmedColor   = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	windowedColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	spectrumColor = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	coeffColor    = color.RGBA{R: 127, G: 127, B: 127, A: 255}
)

// Renderer is a sweep.Sink writing one PNG per frame.
type Renderer struct {
	opts        Options
	windowTitle string
	windows     *window.Cache
}

// New validates opts and creates the output directory.
func New(opts Options) (*Renderer, error) {
	if opts.WidthIn <= 0 || opts.HeightIn <= 0 {
		return nil, fmt.Errorf("%w: size %gx%g in", ErrInvalidOptions, opts.WidthIn, opts.HeightIn)
	}
	if opts.DPI < 1 {
		return nil, fmt.Errorf("%w: dpi %d", ErrInvalidOptions, opts.DPI)
	}
	if opts.Prefix == "" {
		return nil, fmt.Errorf("%w: empty file prefix", ErrInvalidOptions)
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	slug := strings.ReplaceAll(window.Info(opts.Window).Slug, "-", " ")

	return &Renderer{
		opts:        opts,
		windowTitle: cases.Title(language.English).String(slug),
		windows:     window.NewCache(opts.Window),
	}, nil
}

// Path returns the image path for the frame with the given dimming count.
func (r *Renderer) Path(count int) string {
	return filepath.Join(r.opts.Dir, r.opts.Prefix+"-"+strconv.Itoa(count)+".png")
}

// Emit renders f to Path(f.Count).
func (r *Renderer) Emit(f sweep.Frame) (err error) {
	file, err := os.Create(r.Path(f.Count))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(file)
	if err := r.Render(w, f); err != nil {
		return err
	}

	return w.Flush()
}

// Render writes the PNG figure for f to w.
func (r *Renderer) Render(w io.Writer, f sweep.Frame) error {
	plots, err := r.Figure(f)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.opts.WidthIn)*vg.Inch, vg.Length(r.opts.HeightIn)*vg.Inch),
		vgimg.UseDPI(r.opts.DPI),
	)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      3,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

// Figure builds the six panels for f:
//
//	raw           | normalized | dimmed
//	windowed      | spectrum   | window coefficients
func (r *Renderer) Figure(f sweep.Frame) ([][]*plot.Plot, error) {
	n := f.Len()

	raw, err := linePlot("ADC0 Measurements", "Sample", "ADC counts", rawColor,
		n, func(i int) float64 { return float64(f.Raw[i]) })
	if err != nil {
		return nil, err
	}

	centered, err := linePlot("Normalized ADC0 Measurements", "Sample", "Value", centeredColor,
		n, func(i int) float64 { return f.Normalized[i] })
	if err != nil {
		return nil, err
	}

	dimmed, err := linePlot(dimmingTitle(f.Percent), "Sample", "Value", dimmedColor,
		n, func(i int) float64 { return f.Dimmed[i] })
	if err != nil {
		return nil, err
	}

	windowed, err := linePlot("After applying "+r.windowTitle+" Window", "Sample", "Value", windowedColor,
		n, func(i int) float64 { return f.Windowed[i] })
	if err != nil {
		return nil, err
	}

	spectrumPlot, err := barPlot("FFT Freq Spectrum", f.Spectrum)
	if err != nil {
		return nil, err
	}

	coeffs := r.windows.Get(n)
	win, err := linePlot(r.windowTitle+" Window Coefficients", "Sample", "Weight", coeffColor,
		len(coeffs), func(i int) float64 { return coeffs[i] })
	if err != nil {
		return nil, err
	}

	return [][]*plot.Plot{
		{raw, centered, dimmed},
		{windowed, spectrumPlot, win},
	}, nil
}

func dimmingTitle(percent float64) string {
	return "After dimming [" + strconv.FormatFloat(percent, 'g', -1, 64) + "%]"
}

// linePlot plots y(i) against sample numbers 1..n.
func linePlot(title, xLabel, yLabel string, c color.Color, n int, y func(i int) float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = float64(i + 1)
		pts[i].Y = y(i)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	line.Color = c
	line.Width = vg.Points(1)
	p.Add(line)

	return p, nil
}

func barPlot(title string, bins []int64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Bin"
	p.Y.Label.Text = "Magnitude"
	p.Add(plotter.NewGrid())

	vals := make(plotter.Values, len(bins))
	for i, v := range bins {
		vals[i] = float64(v)
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(4))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	bars.Color = spectrumColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	return p, nil
}
