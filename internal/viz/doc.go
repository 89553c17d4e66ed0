// Package viz draws trajectories in the terminal.
//
// [Canvas] is a braille dot grid: each cell packs 2x4 dots, so a 40x14
// cell panel resolves 80x56 points. Styles hold the lipgloss styles used
// by the command line for headings, tables and status lines.
package viz
