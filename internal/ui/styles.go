package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI.
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected tabs, focus borders
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorCode      = "229" // Pale yellow - for code samples
)

// Theme holds the configurable palette.
type Theme struct {
	Accent    string
	Highlight string
}

// DefaultTheme is used when no colors are configured.
var DefaultTheme = Theme{Accent: ColorAccent, Highlight: ColorHighlight}

// StyleSet contains shared style definitions used across sections.
type StyleSet struct {
	// Header
	Title   lipgloss.Style // Bold accent color - for the page title
	Tagline lipgloss.Style // Muted subtitle under the title

	// Sections
	Section     lipgloss.Style // Section heading (highlight color)
	SectionRule lipgloss.Style // Rule under a section heading

	// Concept cards
	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	CardImage    lipgloss.Style
	CardSubtitle lipgloss.Style

	// Tabs
	Tab         lipgloss.Style // Unselected tab button
	TabSelected lipgloss.Style // Selected tab button
	TabFocused  lipgloss.Style // Border color applied to the focused tab

	// Tab content
	Heading lipgloss.Style // Topic title
	Normal  lipgloss.Style // Description paragraph
	Code    lipgloss.Style // Preformatted code block
	Empty   lipgloss.Style // Placeholder prompt (muted, italic)
	Hint    lipgloss.Style // Footer hints
}

// NewStyles builds the style set for theme.
func NewStyles(theme Theme) StyleSet {
	accent := lipgloss.Color(theme.Accent)
	highlight := lipgloss.Color(theme.Highlight)
	return StyleSet{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Tagline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight),
		SectionRule: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorMuted)).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		CardImage: lipgloss.NewStyle().
			Foreground(highlight),
		CardSubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Tab: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorMuted)).
			Foreground(lipgloss.Color(ColorMuted)).
			Padding(0, 1),
		TabSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(accent).
			Bold(true).
			Padding(0, 1),
		TabFocused: lipgloss.NewStyle().
			BorderForeground(highlight),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Code: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorMuted)).
			Foreground(lipgloss.Color(ColorCode)).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			Italic(true),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
	}
}

// Styles is the active style set. SetTheme replaces it at startup, before the
// program runs.
var Styles = NewStyles(DefaultTheme)

// SetTheme rebuilds Styles from theme. Empty colors fall back to the defaults.
func SetTheme(theme Theme) {
	if theme.Accent == "" {
		theme.Accent = DefaultTheme.Accent
	}
	if theme.Highlight == "" {
		theme.Highlight = DefaultTheme.Highlight
	}
	Styles = NewStyles(theme)
}
