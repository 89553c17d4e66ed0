package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Point struct {
	X, Y float64
}

// Points zips two coordinate slices. The shorter one sets the length.
func Points(xs, ys []float64) []Point {
	n := min(len(xs), len(ys))
	pts := make([]Point, n)
	for i := range n {
		pts[i] = Point{xs[i], ys[i]}
	}
	return pts
}

type Line struct {
	Label string
	// Color is a hex string such as "#440154".
	Color  string
	Points []Point
}

type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
}

// Line appends a labelled line and returns the panel for chaining.
func (p *Panel) Line(label, color string, pts []Point) *Panel {
	p.Lines = append(p.Lines, Line{Label: label, Color: color, Points: pts})
	return p
}

// Bounds returns the extent of every finite point in the panel.
func (p *Panel) Bounds() (b Bounds, ok bool) {
	b = Bounds{MinX: math.Inf(1), MaxX: math.Inf(-1), MinY: math.Inf(1), MaxY: math.Inf(-1)}
	for _, l := range p.Lines {
		for _, pt := range l.Points {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
				continue
			}
			b.MinX = math.Min(b.MinX, pt.X)
			b.MaxX = math.Max(b.MaxX, pt.X)
			b.MinY = math.Min(b.MinY, pt.Y)
			b.MaxY = math.Max(b.MaxY, pt.Y)
			ok = true
		}
	}
	return b, ok
}

type Figure struct {
	Title      string
	Rows, Cols int
	// TickStep spaces major ticks on both axes. Zero picks ticks
	// automatically.
	TickStep float64
	// EqualAspect keeps one data unit the same length on both axes.
	EqualAspect bool

	panels []*Panel
}

func NewFigure(title string, rows, cols int) *Figure {
	f := &Figure{Title: title, Rows: rows, Cols: cols, panels: make([]*Panel, rows*cols)}
	for i := range f.panels {
		f.panels[i] = &Panel{}
	}
	return f
}

// Panel returns the subplot at (row, col). It panics when out of range.
func (f *Figure) Panel(row, col int) *Panel {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		panic(fmt.Sprintf("plot: panel (%d, %d) outside %dx%d figure", row, col, f.Rows, f.Cols))
	}
	return f.panels[row*f.Cols+col]
}

// Panels lists the subplots in row-major order.
func (f *Figure) Panels() []*Panel { return f.panels }

type Renderer interface {
	Render(w io.Writer, fig *Figure) error
}

// Options sizes rendered output.
type Options struct {
	WidthIn  float64
	HeightIn float64
	DPI      int
}

func DefaultOptions() Options {
	return Options{WidthIn: 14, HeightIn: 12, DPI: 300}
}

// NewRenderer picks a renderer by format name: png, svg, pdf, lite-svg or
// term.
func NewRenderer(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(format) {
	case "png", "svg", "pdf":
		return &Gonum{Format: strings.ToLower(format), Options: opts}, nil
	case "lite-svg":
		return &SVG{Width: int(opts.WidthIn * 96), Height: int(opts.HeightIn * 96)}, nil
	case "term", "terminal":
		return &Terminal{PanelWidth: 40, PanelHeight: 14}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want png, svg, pdf, lite-svg or term)", format)
}

// FormatFromPath guesses the format from a file extension, falling back to
// png.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "svg"
	case ".pdf":
		return "pdf"
	}
	return "png"
}

// ParseColor reads a hex colour. Empty strings are black.
func ParseColor(hex string) (color.Color, error) {
	if hex == "" {
		return color.Black, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", hex, err)
	}
	return c, nil
}
