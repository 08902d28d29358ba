// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	SuccessStyle       lipgloss.Style
	InfoStyle          lipgloss.Style
	ErrorStyle         lipgloss.Style
	MutedStyle         lipgloss.Style

	// TUI shared styles.
	TitleStyle      lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HelpDescStyle   lipgloss.Style
	StatusStyle     lipgloss.Style
	StatusKeyStyle  lipgloss.Style
	EventTimeStyle  lipgloss.Style
	EventKindStyle  lipgloss.Style
	EventTextStyle  lipgloss.Style
	PanelStyle      lipgloss.Style
	BannerBaseStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	InfoStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDescStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Padding(0, 1)
	StatusKeyStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	EventTimeStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	EventKindStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Width(10)
	EventTextStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	BannerBaseStyle = lipgloss.NewStyle().Bold(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
