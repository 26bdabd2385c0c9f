package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the blueprint theme
const (
	ColorBorder = "#2F3B45" // Slate

	// Text
	ColorPrimaryText   = "#E8EEF2"
	ColorSecondaryText = "#A9B6C0"
	ColorDisabledText  = "#66727C"
	ColorHelpText      = "240" // Dark grey

	// Accents (teal)
	ColorAccentMain   = "#0FA3B1"
	ColorAccentBright = "#5CE1E6"

	// State
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

// Shared styles
var (
	HeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	MutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	DisabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	AccentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	PanelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(ColorBorder))
	SelectedBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(ColorAccentMain)).Bold(true).Padding(0, 1)
)
