package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/magtraj/internal/analysis"
	"github.com/san-kum/magtraj/internal/dynamo"
	"github.com/san-kum/magtraj/internal/integrators"
	"github.com/san-kum/magtraj/internal/physics"
	"github.com/san-kum/magtraj/internal/trajectory"
)

var compareParticle particleFlags

func newCompareCmd() *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare [scheme...]",
		Short: "compare integration schemes on the same particle",
		RunE:  compareSchemes,
	}
	compareParticle.register(compareCmd, 5000)
	return compareCmd
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := styles()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	particle, field, opts, err := compareParticle.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	if err := trajectory.Validate(particle, field, opts); err != nil {
		return err
	}

	schemes := args
	if len(schemes) == 0 {
		schemes = integrators.Names()
	}
	theoryR := physics.NewLorentz(particle.Charge, particle.Mass, field.B).Radius(particle.Velocity)

	fmt.Fprintln(out, st.Header.Render(fmt.Sprintf("comparing schemes (dt=%g s, %d steps)", opts.Dt, opts.Steps)))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tSAMPLES\tSPEED_DRIFT\tRADIUS\tRADIUS_ERR\tTIME_MS")

	for _, name := range schemes {
		opts.Scheme = name
		start := time.Now()
		tr, err := trajectory.IntegrateContext(cmd.Context(), particle, field, opts)
		elapsed := time.Since(start)
		var perr *dynamo.ParameterError
		switch {
		case errors.As(err, &perr) && perr.Name == "scheme":
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\t\n", name, err)
			continue
		case err != nil:
			return err
		}

		xs, ys := tr.Project(trajectory.PlaneXY, 1)
		radius := "-"
		radiusErr := "-"
		if c, err := analysis.FitCircle(xs, ys); err == nil {
			radius = fmt.Sprintf("%.6g", c.R)
			radiusErr = fmt.Sprintf("%.2e", relErr(c.R, theoryR))
		}

		fmt.Fprintf(w, "%s\t%d\t%.2e\t%s\t%s\t%.2f\n",
			name, tr.Len(), analysis.SpeedDrift(tr.Speeds()), radius, radiusErr, float64(elapsed.Microseconds())/1000)
	}

	return w.Flush()
}
