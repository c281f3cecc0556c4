package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Padding(1, 0)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorSubtle)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	NormalStyle = lipgloss.NewStyle().Foreground(ColorNormal)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(1, 0)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
)

// Dialog header styles
var (
	AppNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	TaglineStyle  = lipgloss.NewStyle().Foreground(ColorNormal)
	VersionStyle  = lipgloss.NewStyle().Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle     = lipgloss.NewStyle().Foreground(ColorSubtle)
	HelpGroupStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorHelpGroup).MarginTop(1)
	HelpKeyStyle      = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true).Width(25)
	HelpShortcutStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
)

// Session detail styles
var (
	MarkStyle           = lipgloss.NewStyle().Foreground(ColorMark).Bold(true)
	ModeNotesStyle      = lipgloss.NewStyle().Bold(true).Foreground(ColorNotesMode).Underline(true)
	ModeTranscriptStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorTranscriptMode).Underline(true)
	ModeInactiveStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	SavedStyle          = lipgloss.NewStyle().Foreground(ColorSuccess)
	SelectionStyle      = lipgloss.NewStyle().Foreground(ColorSubtle).Italic(true)
)

// Dashboard styles
var (
	PanelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1)
	SectionStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// SeverityColor maps a severity name to its color (muted for unknown values)
func SeverityColor(severity string) Color {
	switch severity {
	case "critical":
		return ColorCritical
	case "high":
		return ColorHigh
	case "medium":
		return ColorMedium
	case "low":
		return ColorLow
	}
	return ColorMuted
}

// SeverityStyle returns the style for a severity badge
func SeverityStyle(severity string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeverityColor(severity)).Bold(true)
}
