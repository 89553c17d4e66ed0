package main

import (
	"github.com/spf13/cobra"

	"github.com/san-kum/magtraj/internal/plot"
	"github.com/san-kum/magtraj/internal/scenario"
)

var (
	previewWidth  int
	previewHeight int
)

func newPreviewCmd() *cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "draw the comparison grid in the terminal",
		Args:  cobra.NoArgs,
		RunE:  previewScenarios,
	}
	previewCmd.Flags().IntVar(&previewWidth, "width", 40, "panel width in cells")
	previewCmd.Flags().IntVar(&previewHeight, "height", 14, "panel height in cells")
	return previewCmd
}

func previewScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	view, err := scenario.ViewFromConfig(cfg)
	if err != nil {
		return err
	}

	grid, results, err := simulate(cmd, cfg)
	if err != nil {
		return err
	}

	st := styles()
	term := &plot.Terminal{PanelWidth: previewWidth, PanelHeight: previewHeight, Styles: &st}
	return term.Render(cmd.OutOrStdout(), scenario.Figure(grid.Title, results, view))
}
