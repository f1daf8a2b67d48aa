package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("238")
	ColorHighlight = lipgloss.Color("213")
	ColorSpinner   = lipgloss.Color("205")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorBadge     = lipgloss.Color("22")

	// ColorManufacturing and ColorUsePhase are the two chart series.
	ColorManufacturing = lipgloss.Color("33")
	ColorUsePhase      = lipgloss.Color("208")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared across views.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle   = lipgloss.NewStyle().Italic(true).Foreground(ColorMuted)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorHeader)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	HelpStyle     = lipgloss.NewStyle().Foreground(ColorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	// FirstCardStyle highlights the lowest-emission vehicle.
	FirstCardStyle = CardStyle.BorderForeground(ColorOK)

	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(ColorBadge).
			Padding(0, 1)

	ErrorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorCritical).
			Padding(0, 1)

	FocusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)
	DisabledStyle = lipgloss.NewStyle().Foreground(ColorMuted).Strikethrough(true)
	ButtonStyle   = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(ColorHeader).
			Padding(0, 2)

	ManufacturingStyle = lipgloss.NewStyle().Foreground(ColorManufacturing)
	UsePhaseStyle      = lipgloss.NewStyle().Foreground(ColorUsePhase)
)
