package plot

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Gonum renders a figure with gonum.org/v1/plot as png, svg or pdf.
type Gonum struct {
	Format  string
	Options Options
}

var gridStyle = draw.LineStyle{
	Color:  color.Gray{Y: 190},
	Width:  vg.Points(0.5),
	Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
}

func (g *Gonum) Render(w io.Writer, fig *Figure) error {
	width := vg.Length(g.Options.WidthIn) * vg.Inch
	height := vg.Length(g.Options.HeightIn) * vg.Inch
	if width <= 0 || height <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g in", g.Options.WidthIn, g.Options.HeightIn)
	}

	var (
		canvas vg.CanvasSizer
		write  func() error
	)
	switch g.Format {
	case "", "png":
		dpi := g.Options.DPI
		if dpi <= 0 {
			dpi = 96
		}
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
		canvas = c
		write = func() error {
			png := vgimg.PngCanvas{Canvas: c}
			_, err := png.WriteTo(w)
			return err
		}
	case "svg":
		c := vgsvg.New(width, height)
		canvas = c
		write = func() error {
			_, err := c.WriteTo(w)
			return err
		}
	case "pdf":
		c := vgpdf.New(width, height)
		canvas = c
		write = func() error {
			_, err := c.WriteTo(w)
			return err
		}
	default:
		return fmt.Errorf("gonum renderer: unsupported format %q", g.Format)
	}

	dc := draw.New(canvas)
	body := dc
	if fig.Title != "" {
		titleHeight := vg.Points(40)
		drawSuptitle(dc, fig.Title)
		body = draw.Crop(dc, 0, 0, 0, -titleHeight)
	}

	plots := make([][]*gplot.Plot, fig.Rows)
	for row := range fig.Rows {
		plots[row] = make([]*gplot.Plot, fig.Cols)
		for col := range fig.Cols {
			p, err := buildPlot(fig.Panel(row, col), fig.TickStep)
			if err != nil {
				return fmt.Errorf("panel (%d, %d): %w", row, col, err)
			}
			plots[row][col] = p
		}
	}

	tiles := draw.Tiles{
		Rows:      fig.Rows,
		Cols:      fig.Cols,
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := gplot.Align(plots, tiles, body)
	for row := range fig.Rows {
		for col := range fig.Cols {
			p := plots[row][col]
			if fig.EqualAspect {
				size := canvases[row][col].Size()
				if size.X > 0 && size.Y > 0 {
					equalizeAxes(p, float64(size.X/size.Y))
				}
			}
			p.Draw(canvases[row][col])
		}
	}

	return write()
}

func drawSuptitle(dc draw.Canvas, title string) {
	style := text.Style{
		Color:   color.Black,
		Font:    font.From(gplot.DefaultFont, vg.Points(16)),
		XAlign:  text.XCenter,
		YAlign:  text.YTop,
		Handler: gplot.DefaultTextHandler,
	}
	dc.FillText(style, vg.Point{X: dc.Center().X, Y: dc.Max.Y - vg.Points(8)}, title)
}

func buildPlot(panel *Panel, tickStep float64) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical = gridStyle
	grid.Horizontal = gridStyle
	p.Add(grid)

	for _, l := range panel.Lines {
		xys := make(plotter.XYs, len(l.Points))
		for i, pt := range l.Points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", l.Label, err)
		}
		c, err := ParseColor(l.Color)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = c
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		if l.Label != "" {
			p.Legend.Add(l.Label, line)
		}
	}

	b, ok := panel.Bounds()
	if !ok {
		b = Bounds{-1, 1, -1, 1}
	}
	b = b.Pad(0.05)
	p.X.Min, p.X.Max = b.MinX, b.MaxX
	p.Y.Min, p.Y.Max = b.MinY, b.MaxY

	ticker := stepTicker{step: tickStep}
	p.X.Tick.Marker = ticker
	p.Y.Tick.Marker = ticker
	return p, nil
}

// equalizeAxes widens the data range to the tile's proportions. Ranges
// that are not finite are left alone.
func equalizeAxes(p *gplot.Plot, ratio float64) {
	if !finite(p.X.Min) || !finite(p.X.Max) || !finite(p.Y.Min) || !finite(p.Y.Max) {
		return
	}
	b := Bounds{p.X.Min, p.X.Max, p.Y.Min, p.Y.Max}.Aspect(ratio)
	p.X.Min, p.X.Max = b.MinX, b.MaxX
	p.Y.Min, p.Y.Max = b.MinY, b.MaxY
}

type stepTicker struct {
	step float64
}

func (s stepTicker) Ticks(lo, hi float64) []gplot.Tick {
	if !finite(lo) || !finite(hi) || !(hi > lo) {
		return nil
	}
	values := StepTicks(lo, hi, s.step)
	if values == nil {
		return gplot.DefaultTicks{}.Ticks(lo, hi)
	}
	ticks := make([]gplot.Tick, len(values))
	for i, v := range values {
		ticks[i] = gplot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ticks
}
