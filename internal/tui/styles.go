package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Violet
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorText    = lipgloss.Color("#F8FAFC") // Slate 50
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorBorder  = lipgloss.Color("#374151") // Dark Gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	ListPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	DetailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	ItemStyle = lipgloss.NewStyle().
			Foreground(colorText)

	CursorItemStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	DescStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
