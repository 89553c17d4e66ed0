package scenario

import (
	"fmt"

	"github.com/san-kum/magtraj/internal/plot"
	"github.com/san-kum/magtraj/internal/trajectory"
)

// View controls how trajectories are laid onto a figure.
type View struct {
	Plane trajectory.Plane
	// Scale multiplies positions; 100 plots centimetres.
	Scale    float64
	TickStep float64
}

func DefaultView() View {
	return View{Plane: trajectory.PlaneXY, Scale: 100, TickStep: 5}
}

// Unit names the length unit a scale factor produces.
func Unit(scale float64) string {
	switch scale {
	case 1:
		return "m"
	case 100:
		return "cm"
	case 1e3:
		return "mm"
	case 1e6:
		return "µm"
	}
	return fmt.Sprintf("m×%g", scale)
}

// Figure lays the results out two panels per row, in order.
func Figure(title string, results []PanelResult, v View) *plot.Figure {
	const cols = 2
	rows := (len(results) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}
	fig := plot.NewFigure(title, rows, cols)
	fig.TickStep = v.TickStep
	fig.EqualAspect = true

	plane := v.Plane.String()
	unit := Unit(v.Scale)
	for i, pr := range results {
		panel := fig.Panel(i/cols, i%cols)
		panel.Title = pr.Panel.Title
		panel.XLabel = fmt.Sprintf("%c position (%s)", plane[0], unit)
		panel.YLabel = fmt.Sprintf("%c position (%s)", plane[1], unit)
		for _, s := range pr.Series {
			xs, ys := s.Trajectory.Project(v.Plane, v.Scale)
			panel.Line(s.Label, s.Color, plot.Points(xs, ys))
		}
	}
	return fig
}
