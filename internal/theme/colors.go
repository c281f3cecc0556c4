package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Severity colors, most to least severe
const (
	ColorCritical Color = "196" // Bright red
	ColorHigh     Color = "208" // Orange
	ColorMedium   Color = "214" // Amber
	ColorLow      Color = "106" // Olive
)

// Editor mode colors
const (
	ColorNotesMode      Color = "86"  // Cyan
	ColorTranscriptMode Color = "141" // Purple
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "2"   // Green - saved
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorMark      Color = "226" // Yellow - selection mark
	ColorSpinner   Color = "205" // Pink
)
