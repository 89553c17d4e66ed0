package plot

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// SVG writes a figure as plain SVG paths, one cell per panel. Text uses the
// viewer's default sans-serif font.
type SVG struct {
	Width, Height int
}

func (s *SVG) Render(w io.Writer, fig *Figure) error {
	width, height := s.Width, s.Height
	if width <= 0 || height <= 0 {
		width, height = 1344, 1152
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	top := 0.0
	if fig.Title != "" {
		top = 40
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="28" font-size="20" text-anchor="middle">%s</text>
`, float64(width)/2, html.EscapeString(fig.Title)))
	}

	cellW := float64(width) / float64(fig.Cols)
	cellH := (float64(height) - top) / float64(fig.Rows)
	for row := range fig.Rows {
		for col := range fig.Cols {
			x0 := float64(col) * cellW
			y0 := top + float64(row)*cellH
			writePanelSVG(&sb, fig.Panel(row, col), x0, y0, cellW, cellH, fig.EqualAspect)
		}
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writePanelSVG(sb *strings.Builder, p *Panel, x0, y0, w, h float64, equal bool) {
	const margin = 50.0
	plotX, plotY := x0+margin, y0+margin
	plotW, plotH := w-2*margin, h-2*margin

	sb.WriteString(fmt.Sprintf(`<g>
<text x="%.1f" y="%.1f" font-size="16" text-anchor="middle">%s</text>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000000"/>
`, x0+w/2, y0+margin-12, html.EscapeString(p.Title), plotX, plotY, plotW, plotH))
	if p.XLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="12" text-anchor="middle">%s</text>
`, plotX+plotW/2, plotY+plotH+28, html.EscapeString(p.XLabel)))
	}
	if p.YLabel != "" {
		cx, cy := x0+margin-28, plotY+plotH/2
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="12" text-anchor="middle" transform="rotate(-90 %.1f %.1f)">%s</text>
`, cx, cy, cx, cy, html.EscapeString(p.YLabel)))
	}

	b, ok := p.Bounds()
	if !ok {
		sb.WriteString("</g>\n")
		return
	}
	b = b.Pad(0.1)
	if equal {
		b = b.Aspect(plotW / plotH)
	}

	for i, l := range p.Lines {
		if len(l.Points) < 2 {
			continue
		}
		stroke := l.Color
		if stroke == "" {
			stroke = "#000000"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for j, pt := range l.Points {
			x := plotX + (pt.X-b.MinX)/b.Width()*plotW
			y := plotY + plotH - (pt.Y-b.MinY)/b.Height()*plotH
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		if l.Label != "" {
			ly := plotY + 16 + float64(i)*16
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="11" text-anchor="end" fill="%s">%s</text>
`, plotX+plotW-6, ly, stroke, html.EscapeString(l.Label)))
		}
	}
	sb.WriteString("</g>\n")
}
