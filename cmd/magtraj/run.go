package main

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/magtraj/internal/metrics"
	"github.com/san-kum/magtraj/internal/physics"
	"github.com/san-kum/magtraj/internal/trajectory"
)

var runParticle particleFlags

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate one particle and plot it in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runSingle,
	}
	runParticle.register(runCmd, 5000)
	return runCmd
}

func runSingle(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := styles()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	particle, field, opts, err := runParticle.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	opts.Metrics = metrics.Defaults()

	start := time.Now()
	tr, err := trajectory.IntegrateContext(cmd.Context(), particle, field, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	final := tr.Final()
	radius := physics.NewLorentz(particle.Charge, particle.Mass, field.B).Radius(particle.Velocity)

	fmt.Fprintln(out, st.Header.Render("trajectory"))
	fmt.Fprintln(out, st.Metric("scheme", tr.Scheme))
	fmt.Fprintln(out, st.Metric("samples", fmt.Sprintf("%d (truncated: %v)", tr.Len(), tr.Truncated)))
	fmt.Fprintln(out, st.Metric("elapsed", elapsed.String()))
	fmt.Fprintln(out, st.Metric("final position", fmt.Sprintf("(%.4g, %.4g, %.4g) m", final.Position.X, final.Position.Y, final.Position.Z)))
	fmt.Fprintln(out, st.Metric("cyclotron radius", fmt.Sprintf("%.4g m", radius)))
	for _, name := range []string{"speed_drift", "max_extent"} {
		fmt.Fprintln(out, st.Metric(name, fmt.Sprintf("%.6g", tr.Metrics[name])))
	}
	fmt.Fprintln(out)

	_, ys := tr.Project(trajectory.PlaneXY, 100)
	fmt.Fprintln(out, asciigraph.Plot(downsample(ys, 400),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("y position (cm) vs step"),
	))
	fmt.Fprintln(out)

	speeds := tr.Speeds()
	drift := make([]float64, len(speeds))
	for i, v := range speeds {
		if speeds[0] != 0 {
			drift[i] = (v - speeds[0]) / speeds[0]
		}
	}
	fmt.Fprintln(out, asciigraph.Plot(downsample(drift, 400),
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("relative speed drift vs step"),
	))
	return nil
}

// downsample keeps at most n evenly spaced values, always including the
// last one.
func downsample(values []float64, n int) []float64 {
	if len(values) <= n || n < 2 {
		return values
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}
