package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/magtraj/internal/viz"
)

// Terminal draws each panel on a braille canvas and lays the panels out
// in the figure's grid.
type Terminal struct {
	// PanelWidth and PanelHeight are in terminal cells.
	PanelWidth  int
	PanelHeight int
	Styles      *viz.Styles
}

func (t *Terminal) Render(w io.Writer, fig *Figure) error {
	styles := viz.DefaultStyles
	if t.Styles != nil {
		styles = *t.Styles
	}
	pw, ph := t.PanelWidth, t.PanelHeight
	if pw <= 0 || ph <= 0 {
		pw, ph = 40, 14
	}

	rows := make([]string, 0, fig.Rows)
	for row := range fig.Rows {
		cells := make([]string, 0, fig.Cols)
		for col := range fig.Cols {
			cells = append(cells, renderPanel(fig.Panel(row, col), pw, ph, fig.EqualAspect, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var out strings.Builder
	if fig.Title != "" {
		out.WriteString(styles.Header.Render(fig.Title))
		out.WriteByte('\n')
	}
	out.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	out.WriteByte('\n')
	_, err := io.WriteString(w, out.String())
	return err
}

func renderPanel(p *Panel, width, height int, equal bool, styles viz.Styles) string {
	canvas := viz.NewCanvas(width, height)

	var body []string
	if b, ok := p.Bounds(); ok {
		b = b.Pad(0.05)
		if equal {
			// A braille dot is about as wide as it is tall, so the dot grid
			// sets the aspect.
			dw, dh := canvas.Dots()
			b = b.Aspect(float64(dw) / float64(dh))
		}
		vp := viz.Viewport{MinX: b.MinX, MaxX: b.MaxX, MinY: b.MinY, MaxY: b.MaxY}
		for _, l := range p.Lines {
			xs := make([]float64, len(l.Points))
			ys := make([]float64, len(l.Points))
			for i, pt := range l.Points {
				xs[i], ys[i] = pt.X, pt.Y
			}
			canvas.Pen(l.Color)
			canvas.Polyline(xs, ys, vp)
		}
		body = append(body, styles.Subtle.Render(fmt.Sprintf("x %.3g..%.3g  y %.3g..%.3g", b.MinX, b.MaxX, b.MinY, b.MaxY)))
	}

	legend := make([]string, 0, len(p.Lines))
	for _, l := range p.Lines {
		if l.Label == "" {
			continue
		}
		swatch := "━━"
		if l.Color != "" {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Render(swatch)
		}
		legend = append(legend, swatch+" "+l.Label)
	}

	parts := []string{styles.PanelTitle.Render(p.Title), canvas.Render()}
	parts = append(parts, body...)
	parts = append(parts, legend...)
	return styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
