package render

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(22)

	PriceStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	TotalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	OKStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)
