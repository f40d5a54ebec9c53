package commands

import "github.com/charmbracelet/lipgloss"

// theme defines the colors of the demo output.
type theme struct {
	Primary lipgloss.Color
	Dim     lipgloss.Color
}

var defaultTheme = theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Help  lipgloss.Style
}

func newStyles(t theme) styles {
	return styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Dim),
		Help:  lipgloss.NewStyle().Foreground(t.Dim).Italic(true),
	}
}
