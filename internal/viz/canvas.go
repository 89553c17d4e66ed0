package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot grid. Width and Height count terminal cells; the
// dot resolution is twice the width by four times the height.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	// Ink is the colour last used in each cell, empty for the default.
	Ink [][]string

	pen string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Ink:    make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]string, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Dots returns the dot resolution of the canvas.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// Pen sets the colour for subsequent dots.
func (c *Canvas) Pen(color string) { c.pen = color }

// Set lights the dot at (x, y), with y growing downwards. Dots outside the
// canvas are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
	c.Ink[row][col] = c.pen
}

// DrawLine joins two dots with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Viewport maps data coordinates onto the canvas. Y points up.
type Viewport struct {
	MinX, MaxX, MinY, MaxY float64
}

func (v Viewport) toDots(x, y float64, w, h int) (int, int) {
	px := (x - v.MinX) / (v.MaxX - v.MinX) * float64(w-1)
	py := (v.MaxY - y) / (v.MaxY - v.MinY) * float64(h-1)
	return int(px + 0.5), int(py + 0.5)
}

// Polyline draws the points xs[i], ys[i] joined in order.
func (c *Canvas) Polyline(xs, ys []float64, v Viewport) {
	if v.MaxX <= v.MinX || v.MaxY <= v.MinY {
		return
	}
	w, h := c.Dots()
	n := min(len(xs), len(ys))
	for i := range n {
		x, y := v.toDots(xs[i], ys[i], w, h)
		if i == 0 {
			c.Set(x, y)
			continue
		}
		px, py := v.toDots(xs[i-1], ys[i-1], w, h)
		c.DrawLine(px, py, x, y)
	}
}

// String renders the grid without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render renders the grid with each cell in its ink colour.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			ink := c.Ink[i][j]
			if ink == "" || r == brailleBlank {
				b.WriteRune(r)
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ink)).Render(string(r)))
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
