package report

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
)

// styles are bound to the renderer of one output, so colors are dropped
// when that output is not a terminal
type styles struct {
	title     lipgloss.Style
	section   lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	header    lipgloss.Style
	row       lipgloss.Style
	muted     lipgloss.Style
	separator lipgloss.Style
	notes     lipgloss.Style
	category  map[string]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(primaryColor),
		section:   r.NewStyle().Bold(true).Foreground(secondaryColor),
		label:     r.NewStyle().Foreground(mutedColor).Width(20),
		value:     r.NewStyle().Bold(true),
		header:    r.NewStyle().Foreground(primaryColor),
		row:       r.NewStyle(),
		muted:     r.NewStyle().Foreground(mutedColor),
		separator: r.NewStyle().Foreground(mutedColor),
		notes:     r.NewStyle().Bold(true),
		category: map[string]lipgloss.Style{
			"Elite":     r.NewStyle().Bold(true).Foreground(secondaryColor),
			"Excellent": r.NewStyle().Bold(true).Foreground(secondaryColor),
			"Good":      r.NewStyle().Bold(true).Foreground(primaryColor),
			"Fair":      r.NewStyle().Bold(true).Foreground(warningColor),
			"Poor":      r.NewStyle().Bold(true).Foreground(errorColor),
		},
	}
}

// metric renders a label and value on one line
func (s styles) metric(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		s.label.Render(label),
		s.value.Render(value),
	)
}

func (s styles) categoryStyle(category string) lipgloss.Style {
	if st, ok := s.category[category]; ok {
		return st
	}
	return s.value
}
