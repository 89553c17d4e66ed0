package scenario

import (
	"fmt"

	"github.com/san-kum/magtraj/internal/config"
	"github.com/san-kum/magtraj/internal/trajectory"
)

// FromConfig builds the grid a configuration describes. Without declared
// panels it uses DefaultPanels.
func FromConfig(cfg *config.Config) (Grid, error) {
	grid := Grid{
		Title: cfg.Title,
		Defaults: Defaults{
			EnergyEV:    cfg.Defaults.KineticEnergyEV,
			FieldTesla:  cfg.Defaults.FieldTesla,
			MassUnits:   cfg.Defaults.MassUnits,
			ChargeUnits: cfg.Defaults.ChargeUnits,
		},
	}
	if len(cfg.Panels) == 0 {
		grid.Panels = DefaultPanels()
		return grid, nil
	}

	for i, pc := range cfg.Panels {
		vary, err := ParseVary(pc.Vary)
		if err != nil {
			return Grid{}, fmt.Errorf("panels[%d]: %w", i, err)
		}
		title := pc.Title
		if title == "" {
			title = vary.Title()
		}
		grid.Panels = append(grid.Panels, Panel{
			Title:  title,
			Vary:   vary,
			Values: pc.Values,
			Colors: pc.Colors,
		})
	}
	return grid, nil
}

// OptionsFromConfig returns the integration options of a configuration.
func OptionsFromConfig(cfg *config.Config) trajectory.Options {
	return trajectory.Options{
		Dt:     cfg.Simulation.Dt,
		Steps:  cfg.Simulation.Steps,
		Scheme: cfg.Simulation.Scheme,
		Cutoff: cfg.Simulation.Cutoff,
	}
}

// ViewFromConfig returns the figure layout of a configuration.
func ViewFromConfig(cfg *config.Config) (View, error) {
	plane, err := trajectory.ParsePlane(cfg.Output.Plane)
	if err != nil {
		return View{}, err
	}
	return View{Plane: plane, Scale: cfg.Output.LengthScale, TickStep: cfg.Output.TickStep}, nil
}
