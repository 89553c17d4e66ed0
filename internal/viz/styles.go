package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type Styles struct {
	Header      lipgloss.Style
	Subtle      lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	OK          lipgloss.Style
	Error       lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Subtle: lipgloss.NewStyle().Foreground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		MetricLabel: lipgloss.NewStyle().Foreground(t.Muted),
		MetricValue: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		OK:          lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}

// DefaultStyles uses ThemeDefault.
var DefaultStyles = NewStyles(ThemeDefault)

// Metric renders "label: value" with the metric styles.
func (s Styles) Metric(label, value string) string {
	return s.MetricLabel.Render(label+":") + " " + s.MetricValue.Render(value)
}

// GradientText colours each rune of text on a blend between two hex
// colours. Invalid colours leave the text plain.
func GradientText(text, start, end string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	c0, err0 := colorful.Hex(start)
	c1, err1 := colorful.Hex(end)
	if err0 != nil || err1 != nil {
		return text
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := c0.BlendLab(c1, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// Separator is a muted horizontal rule with a centre mark.
func (s Styles) Separator(width int) string {
	if width < 8 {
		return s.Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return s.Subtle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
