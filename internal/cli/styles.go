package cli

import "github.com/charmbracelet/lipgloss"

const (
	// ColorPrimary is used for section titles.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is used for labels.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorError is used for failures.
	ColorError = lipgloss.Color("#EF4444")
)

var (
	// TitleStyle renders section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// LabelStyle renders field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(12)

	// ErrorStyle renders error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)
)
