package scenario_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/magtraj/internal/config"
	"github.com/san-kum/magtraj/internal/dynamo"
	"github.com/san-kum/magtraj/internal/metrics"
	"github.com/san-kum/magtraj/internal/physics"
	"github.com/san-kum/magtraj/internal/scenario"
	"github.com/san-kum/magtraj/internal/trajectory"
)

func quickOptions() trajectory.Options {
	return trajectory.Options{Dt: 1e-11, Steps: 200, Scheme: "euler-cromer", Cutoff: 20}
}

var _ = Describe("Panels", func() {
	It("reproduces the four standard comparisons", func() {
		panels := scenario.DefaultPanels()
		Expect(panels).To(HaveLen(4))

		titles := make([]string, len(panels))
		for i, p := range panels {
			titles[i] = p.Title
		}
		Expect(titles).To(Equal([]string{
			"Varying Magnetic Field Strength",
			"Varying Kinetic Energy",
			"Varying Particle Mass",
			"Charge Sign Comparison",
		}))
		Expect(panels[0].Values).To(Equal([]float64{1e-3, 2e-3, 5e-3}))
		Expect(panels[1].Values).To(Equal([]float64{10, 20, 40}))
		Expect(panels[2].Values).To(Equal([]float64{1, 2, 4}))
		Expect(panels[3].Values).To(Equal([]float64{-1, 1}))
	})

	DescribeTable("legend labels",
		func(v scenario.Vary, value float64, want string) {
			Expect(v.Label(value)).To(Equal(want))
		},
		Entry("field", scenario.VaryField, 1e-3, "B = 1.0 mT"),
		Entry("strong field", scenario.VaryField, 5e-3, "B = 5.0 mT"),
		Entry("energy", scenario.VaryEnergy, 10.0, "E = 10 eV"),
		Entry("fractional energy", scenario.VaryEnergy, 12.5, "E = 12.5 eV"),
		Entry("mass", scenario.VaryMass, 4.0, "m = 4.0mₑ"),
		Entry("electron", scenario.VaryCharge, -1.0, "Electron (q=-e)"),
		Entry("positron", scenario.VaryCharge, 1.0, "Positron (q=+e)"),
		Entry("other charge", scenario.VaryCharge, 2.0, "q = +2e"),
	)

	It("derives the launch speed from each particle's own mass", func() {
		series, err := scenario.DefaultPanels()[2].Series(scenario.DefaultDefaults())
		Expect(err).NotTo(HaveOccurred())
		Expect(series).To(HaveLen(3))

		v1 := series[0].Particle.Velocity.X
		Expect(v1).To(BeNumerically("~", physics.SpeedFromKineticEnergy(20, physics.ElectronMass), 1e-6))
		Expect(series[2].Particle.Velocity.X).To(BeNumerically("~", v1/2, v1*1e-12))
		Expect(series[2].Particle.Mass).To(Equal(4 * physics.ElectronMass))
		for _, s := range series {
			Expect(s.Particle.Charge).To(Equal(-physics.ElementaryCharge))
			Expect(s.Field.B).To(Equal(dynamo.Vec3{Z: 2e-3}))
		}
	})

	It("colours sweeps with viridis and charges blue and red", func() {
		Expect(scenario.Viridis(3)).To(Equal([]string{"#440154", "#2a788e", "#7ad151"}))
		Expect(scenario.Viridis(1)).To(Equal([]string{"#440154"}))
		Expect(scenario.Viridis(5)).To(HaveLen(5))

		series, err := scenario.DefaultPanels()[3].Series(scenario.DefaultDefaults())
		Expect(err).NotTo(HaveOccurred())
		Expect(series[0].Color).To(Equal("#0000ff"))
		Expect(series[1].Color).To(Equal("#ff0000"))
		Expect(series[1].Particle.Charge).To(Equal(physics.ElementaryCharge))
	})

	It("rejects malformed panels", func() {
		d := scenario.DefaultDefaults()

		_, err := scenario.Panel{Vary: "temperature", Values: []float64{1}}.Series(d)
		Expect(errors.Is(err, dynamo.ErrInvalidParameter)).To(BeTrue())

		_, err = scenario.Panel{Vary: scenario.VaryMass}.Series(d)
		Expect(errors.Is(err, dynamo.ErrInvalidParameter)).To(BeTrue())

		_, err = scenario.Panel{Vary: scenario.VaryMass, Values: []float64{1, 2}, Colors: []string{"#000000"}}.Series(d)
		Expect(errors.Is(err, dynamo.ErrInvalidParameter)).To(BeTrue())

		_, err = scenario.Panel{Vary: scenario.VaryEnergy, Values: []float64{-5}}.Series(d)
		var perr *dynamo.ParameterError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Name).To(Equal("energy"))
	})
})

var _ = Describe("Runner", func() {
	var (
		log    bytes.Buffer
		runner *scenario.Runner
	)

	BeforeEach(func() {
		log.Reset()
		runner = &scenario.Runner{
			Options:    quickOptions(),
			Workers:    3,
			NewMetrics: metrics.Defaults,
			Log:        &log,
		}
	})

	It("returns results in panel and series order", func() {
		results, err := runner.Run(context.Background(), scenario.DefaultGrid())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))

		Expect(results[0].Series[0].Label).To(Equal("B = 1.0 mT"))
		Expect(results[0].Series[2].Label).To(Equal("B = 5.0 mT"))
		Expect(results[1].Series[1].Label).To(Equal("E = 20 eV"))
		Expect(results[3].Series[1].Label).To(Equal("Positron (q=+e)"))

		for _, pr := range results {
			for _, s := range pr.Series {
				Expect(s.Trajectory).NotTo(BeNil())
				Expect(s.Trajectory.Len()).To(Equal(201))
				Expect(s.Trajectory.Metrics).To(HaveKey("speed_drift"))
			}
		}
	})

	It("reports progress once per panel in order", func() {
		_, err := runner.Run(context.Background(), scenario.DefaultGrid())
		Expect(err).NotTo(HaveOccurred())

		lines := strings.Split(strings.TrimSpace(log.String()), "\n")
		Expect(lines).To(Equal([]string{
			"Simulating magnetic field variations...",
			"Simulating energy variations...",
			"Simulating mass variations...",
			"Simulating charge sign comparison...",
		}))
	})

	It("mirrors the electron and positron about the x axis", func() {
		results, err := runner.Run(context.Background(), scenario.DefaultGrid())
		Expect(err).NotTo(HaveOccurred())

		electron := results[3].Series[0].Trajectory
		positron := results[3].Series[1].Trajectory
		for i := range electron.Samples {
			pe, pp := electron.Samples[i].Position, positron.Samples[i].Position
			Expect(pp.X).To(Equal(pe.X))
			Expect(pp.Y).To(Equal(-pe.Y))
		}
		Expect(electron.Final().Position.Y).To(BeNumerically(">", 0))
	})

	It("gives the same trajectories whatever the worker count", func() {
		parallel, err := runner.Run(context.Background(), scenario.DefaultGrid())
		Expect(err).NotTo(HaveOccurred())

		runner.Workers = 1
		serial, err := runner.Run(context.Background(), scenario.DefaultGrid())
		Expect(err).NotTo(HaveOccurred())

		for i := range serial {
			for j := range serial[i].Series {
				Expect(parallel[i].Series[j].Trajectory.Samples).To(Equal(serial[i].Series[j].Trajectory.Samples))
			}
		}
	})

	It("shrinks the orbit as the field grows", func() {
		runner.Options.Steps = 3000
		results, err := runner.Run(context.Background(), scenario.Grid{
			Defaults: scenario.DefaultDefaults(),
			Panels:   scenario.DefaultPanels()[:1],
		})
		Expect(err).NotTo(HaveOccurred())

		extents := make([]float64, 3)
		for i, s := range results[0].Series {
			extents[i] = s.Trajectory.Metrics["max_extent"]
		}
		Expect(extents[0]).To(BeNumerically(">", extents[1]))
		Expect(extents[1]).To(BeNumerically(">", extents[2]))
	})

	It("aborts on the first invalid parameter", func() {
		runner.Options.Steps = 0
		results, err := runner.Run(context.Background(), scenario.DefaultGrid())
		Expect(results).To(BeNil())
		Expect(errors.Is(err, dynamo.ErrInvalidParameter)).To(BeTrue())
	})

	It("rejects a non-physical mass before integrating", func() {
		grid := scenario.Grid{
			Defaults: scenario.DefaultDefaults(),
			Panels:   []scenario.Panel{{Title: "bad", Vary: scenario.VaryMass, Values: []float64{1, 0}}},
		}
		_, err := runner.Run(context.Background(), grid)
		var perr *dynamo.ParameterError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Name).To(Equal("mass"))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := runner.Run(ctx, scenario.DefaultGrid())
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})
})

var _ = Describe("Configuration", func() {
	It("falls back to the default panels", func() {
		grid, err := scenario.FromConfig(config.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(grid.Panels).To(Equal(scenario.DefaultPanels()))
		Expect(grid.Defaults).To(Equal(scenario.DefaultDefaults()))
		Expect(grid.Title).To(Equal(config.DefaultTitle))
	})

	It("builds declared panels", func() {
		cfg := config.DefaultConfig()
		cfg.Panels = []config.PanelConfig{
			{Vary: "energy", Values: []float64{5, 50}},
			{Title: "Heavy", Vary: "mass", Values: []float64{10}, Colors: []string{"#123456"}},
		}
		grid, err := scenario.FromConfig(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(grid.Panels).To(HaveLen(2))
		Expect(grid.Panels[0].Title).To(Equal("Varying Kinetic Energy"))
		Expect(grid.Panels[1].Colors).To(Equal([]string{"#123456"}))

		cfg.Panels[0].Vary = "spin"
		_, err = scenario.FromConfig(cfg)
		Expect(err).To(MatchError(ContainSubstring("panels[0]")))
	})

	It("maps simulation and output settings", func() {
		cfg := config.DefaultConfig()
		cfg.Output.Plane = "xz"

		opts := scenario.OptionsFromConfig(cfg)
		Expect(opts.Steps).To(Equal(config.DefaultSteps))
		Expect(opts.Cutoff).To(Equal(20.0))

		view, err := scenario.ViewFromConfig(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Plane).To(Equal(trajectory.PlaneXZ))
		Expect(view.Scale).To(Equal(100.0))

		cfg.Output.Plane = "uv"
		_, err = scenario.ViewFromConfig(cfg)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Figure", func() {
	It("lays panels out two per row in centimetres", func() {
		runner := &scenario.Runner{Options: quickOptions()}
		results, err := runner.Run(context.Background(), scenario.DefaultGrid())
		Expect(err).NotTo(HaveOccurred())

		fig := scenario.Figure("title", results, scenario.DefaultView())
		Expect(fig.Rows).To(Equal(2))
		Expect(fig.Cols).To(Equal(2))
		Expect(fig.TickStep).To(Equal(5.0))

		p := fig.Panel(1, 1)
		Expect(p.Title).To(Equal("Charge Sign Comparison"))
		Expect(p.XLabel).To(Equal("x position (cm)"))
		Expect(p.YLabel).To(Equal("y position (cm)"))
		Expect(p.Lines).To(HaveLen(2))

		first := results[3].Series[0].Trajectory.Samples[10].Position
		Expect(p.Lines[0].Points[10].X).To(BeNumerically("~", first.X*100, math.Abs(first.X)*1e-12))
	})

	It("names the plotted unit", func() {
		Expect(scenario.Unit(100)).To(Equal("cm"))
		Expect(scenario.Unit(1e3)).To(Equal("mm"))
		Expect(scenario.Unit(1)).To(Equal("m"))
	})
})
