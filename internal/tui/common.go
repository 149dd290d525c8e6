package tui

import "github.com/charmbracelet/lipgloss"

// Monochrome palette. The shop is black-and-white on purpose; the only
// accent is the warm highlight for selections.
var (
	ColorInk       = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"}
	ColorGray      = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
	ColorGreen     = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	ColorYellow    = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}
)

// Styles bundles the render styles for one resolved theme and
// accessibility preference set.
type Styles struct {
	Normal   lipgloss.Style
	Header   lipgloss.Style
	Help     lipgloss.Style
	Tag      lipgloss.Style
	Ok       lipgloss.Style
	Warn     lipgloss.Style
	Disabled lipgloss.Style
	Card     lipgloss.Style
	Border   lipgloss.Style
}

// NewStyles builds the style set. High contrast drops the gray scale to
// full ink; large text adds breathing room since a terminal cannot
// scale glyphs.
func NewStyles(dark, highContrast, largeText bool) Styles {
	help := lipgloss.NewStyle().Foreground(ColorGray)
	if highContrast {
		help = lipgloss.NewStyle().Foreground(ColorInk)
	}

	s := Styles{
		Normal:   lipgloss.NewStyle().Foreground(ColorInk),
		Header:   lipgloss.NewStyle().Foreground(ColorInk).Bold(true),
		Help:     help,
		Tag:      lipgloss.NewStyle().Foreground(ColorGray).Bold(highContrast),
		Ok:       lipgloss.NewStyle().Foreground(ColorGreen),
		Warn:     lipgloss.NewStyle().Foreground(ColorYellow),
		Disabled: lipgloss.NewStyle().Foreground(ColorGray).Faint(!highContrast),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1).
			Margin(0, 1, 0, 0),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray),
	}
	if largeText {
		s.Header = s.Header.Padding(1, 0)
		s.Card = s.Card.Padding(1, 2)
	}
	return s
}

// StyleHighlight marks the selected row in interactive lists.
var StyleHighlight = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

// StyleHelp is the hub's hint style.
var StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

// HasDarkBackground reports the detected terminal background, the
// ambient signal for the theme fallback.
func HasDarkBackground() bool {
	return lipgloss.HasDarkBackground()
}
