package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/magtraj/internal/analysis"
	"github.com/san-kum/magtraj/internal/physics"
	"github.com/san-kum/magtraj/internal/trajectory"
)

var analyzeParticle particleFlags

func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "compare a trajectory with cyclotron theory",
		Args:  cobra.NoArgs,
		RunE:  analyzeSingle,
	}
	analyzeParticle.register(analyzeCmd, 1<<14)
	return analyzeCmd
}

func analyzeSingle(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := styles()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	particle, field, opts, err := analyzeParticle.resolve(cmd, cfg)
	if err != nil {
		return err
	}

	tr, err := trajectory.IntegrateContext(cmd.Context(), particle, field, opts)
	if err != nil {
		return err
	}

	lorentz := physics.NewLorentz(particle.Charge, particle.Mass, field.B)
	theoryR := lorentz.Radius(particle.Velocity)
	theoryF := physics.GyroFrequency(particle.Charge, field.B.Norm(), particle.Mass) / (2 * math.Pi)

	fmt.Fprintln(out, st.Header.Render("cyclotron analysis"))
	fmt.Fprintln(out, st.Metric("scheme", fmt.Sprintf("%s, dt=%g s, %d samples", tr.Scheme, tr.Dt, tr.Len())))

	xs, ys := tr.Project(trajectory.PlaneXY, 1)
	circle, err := analysis.FitCircle(xs, ys)
	switch {
	case err == nil:
		fmt.Fprintln(out, st.Metric("fitted radius", fmt.Sprintf("%.6g m (theory %.6g m, error %.3g%%)", circle.R, theoryR, relErr(circle.R, theoryR)*100)))
		fmt.Fprintln(out, st.Metric("centre", fmt.Sprintf("(%.4g, %.4g) m", circle.CX, circle.CY)))
	case errors.Is(err, analysis.ErrCollinear):
		fmt.Fprintln(out, st.Metric("fitted radius", "straight line"))
	default:
		return err
	}

	sense := analysis.Rotation(xs, ys)
	fmt.Fprintln(out, st.Metric("rotation", sense.String()))
	fmt.Fprintln(out, st.Metric("speed drift", fmt.Sprintf("%.3g", analysis.SpeedDrift(tr.Speeds()))))

	// A drifting x series without gyration still has a spectral peak.
	if sense == analysis.None {
		fmt.Fprintln(out, st.Metric("gyrofrequency", "no oscillation"))
		return nil
	}

	freq, err := analysis.DominantFrequency(xs, tr.Dt)
	switch {
	case err == nil:
		fmt.Fprintln(out, st.Metric("gyrofrequency", fmt.Sprintf("%.6g Hz (theory %.6g Hz, error %.3g%%)", freq, theoryF, relErr(freq, theoryF)*100)))
		fmt.Fprintln(out, st.Metric("period", fmt.Sprintf("%.4g s", 1/freq)))
	case errors.Is(err, analysis.ErrNoSignal), errors.Is(err, analysis.ErrTooFewPoints):
		fmt.Fprintln(out, st.Metric("gyrofrequency", "no oscillation"))
		return nil
	default:
		return err
	}
	fmt.Fprintln(out)

	ps := analysis.PowerSpectrum(xs)
	plotData := ps[:max(len(ps)/8, 2)]
	fmt.Fprintln(out, asciigraph.Plot(downsample(plotData, 160),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum of x"),
	))
	return nil
}

func relErr(got, want float64) float64 {
	if want == 0 || math.IsInf(want, 0) {
		return math.NaN()
	}
	return math.Abs(got-want) / math.Abs(want)
}
