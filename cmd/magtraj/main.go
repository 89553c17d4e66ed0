package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/magtraj/internal/config"
	"github.com/san-kum/magtraj/internal/metrics"
	"github.com/san-kum/magtraj/internal/plot"
	"github.com/san-kum/magtraj/internal/scenario"
	"github.com/san-kum/magtraj/internal/viz"
)

var (
	configFile string
	preset     string
	outPath    string
	format     string
	scheme     string
	workers    int
	themeName  string
)

// main runs the comparison grid when no subcommand is given and exits
// with status 1 on any error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "magtraj",
		Short:        "charged particle trajectories in uniform magnetic fields",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runScenarios,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "simulation preset (see 'magtraj presets')")
	pf.StringVar(&scheme, "scheme", config.DefaultScheme, "integration scheme")
	pf.IntVar(&workers, "workers", 0, "concurrent integrations (0 = unbounded)")
	pf.StringVar(&themeName, "theme", "default", "terminal colour theme")

	rootCmd.Flags().StringVarP(&outPath, "out", "o", config.DefaultOutput, "output file")
	rootCmd.Flags().StringVar(&format, "format", "", "png, svg, pdf, lite-svg or term (default from --out)")

	rootCmd.AddCommand(
		newRunCmd(),
		newAnalyzeCmd(),
		newCompareCmd(),
		newPreviewCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// loadConfig layers defaults, the config file, MAGTRAJ_* variables, the
// preset flag and finally explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if flags.Changed("scheme") {
		cfg.Simulation.Scheme = scheme
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("out") {
		cfg.Output.Path = outPath
		if !flags.Changed("format") {
			cfg.Output.Format = plot.FormatFromPath(outPath)
		}
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = plot.FormatFromPath(cfg.Output.Path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func styles() viz.Styles {
	t, _ := viz.GetTheme(themeName)
	return viz.NewStyles(t)
}

// simulate runs the configured grid, printing progress to the command's
// output.
func simulate(cmd *cobra.Command, cfg *config.Config) (scenario.Grid, []scenario.PanelResult, error) {
	grid, err := scenario.FromConfig(cfg)
	if err != nil {
		return grid, nil, err
	}

	runner := &scenario.Runner{
		Options:    scenario.OptionsFromConfig(cfg),
		Workers:    cfg.Workers,
		NewMetrics: metrics.Defaults,
		Log:        cmd.OutOrStdout(),
	}
	results, err := runner.Run(cmd.Context(), grid)
	return grid, results, err
}

func runScenarios(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := styles()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	view, err := scenario.ViewFromConfig(cfg)
	if err != nil {
		return err
	}
	renderer, err := plot.NewRenderer(cfg.Output.Format, plot.Options{
		WidthIn:  cfg.Output.WidthIn,
		HeightIn: cfg.Output.HeightIn,
		DPI:      cfg.Output.DPI,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	grid, results, err := simulate(cmd, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fig := scenario.Figure(grid.Title, results, view)
	if _, ok := renderer.(*plot.Terminal); ok {
		return renderer.Render(out, fig)
	}

	if err := writeFigure(cfg.Output.Path, renderer, fig); err != nil {
		return err
	}

	truncated := 0
	for _, pr := range results {
		for _, s := range pr.Series {
			if s.Trajectory.Truncated {
				truncated++
			}
		}
	}
	if truncated > 0 {
		fmt.Fprintln(out, st.Subtle.Render(fmt.Sprintf("%d trajectories left the %g m cutoff early", truncated, cfg.Simulation.Cutoff)))
	}
	fmt.Fprintln(out, st.Subtle.Render(fmt.Sprintf("integrated in %v (%s, dt=%g s, %d steps)", elapsed.Round(time.Millisecond), cfg.Simulation.Scheme, cfg.Simulation.Dt, cfg.Simulation.Steps)))
	fmt.Fprintf(out, "%s Results saved to %s\n", st.OK.Render("Simulation complete."), cfg.Output.Path)
	return nil
}

// writeFigure renders in memory first so a failed render leaves any
// existing file at path untouched.
func writeFigure(path string, r plot.Renderer, fig *plot.Figure) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, fig); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
