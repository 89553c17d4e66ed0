// Package plot turns labelled point sequences into figures.
//
// A [Figure] is a grid of [Panel]s; each panel holds [Line]s drawn from
// ordered (x, y) points. Renderers write a figure to an io.Writer:
//
//   - [Gonum]: PNG, SVG or PDF through gonum.org/v1/plot
//   - [SVG]: a light SVG writer with no font handling
//   - [Terminal]: braille canvases laid out with lipgloss
package plot
