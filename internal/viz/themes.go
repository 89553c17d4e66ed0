package viz

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour scheme of the command line output.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:    "default",
		Primary: lipgloss.Color("#00ccff"),
		Accent:  lipgloss.Color("#7ad151"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888899"),
		Border:  lipgloss.Color("#444466"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeViridis = Theme{
		Name:    "viridis",
		Primary: lipgloss.Color("#2a788e"),
		Accent:  lipgloss.Color("#fde725"),
		Text:    lipgloss.Color("#e0e0e0"),
		Muted:   lipgloss.Color("#414487"),
		Border:  lipgloss.Color("#440154"),
		Success: lipgloss.Color("#7ad151"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#666666"),
		Success: lipgloss.Color("#ffffff"),
		Error:   lipgloss.Color("#ffffff"),
	}
)

var themes = map[string]Theme{
	ThemeDefault.Name: ThemeDefault,
	ThemeViridis.Name: ThemeViridis,
	ThemeMono.Name:    ThemeMono,
}

// GetTheme looks a theme up by name, falling back to the default.
func GetTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	if !ok {
		return ThemeDefault, false
	}
	return t, true
}

func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
