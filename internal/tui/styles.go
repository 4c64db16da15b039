package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the browse UI.
//
//nolint:gochecknoglobals // Styles are immutable and shared across views.
var (
	// HeaderStyle is used for section headings in detail views.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	// TabStyle renders an inactive entity tab.
	TabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("245"))

	// ActiveTabStyle renders the entity tab currently on screen.
	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	// TableHeaderStyle renders the column header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true)

	// TableSelectedStyle highlights the row under the cursor.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	// LabelStyle renders field names.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// ValueStyle renders field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// SubtleStyle renders status bars and key hints.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// InfoStyle renders transient informational banners.
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	// ErrorBannerStyle renders failure banners.
	ErrorBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("196")).
				Padding(0, 1)

	// SpinnerStyle colors the loading spinner.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	// BoxStyle frames detail views.
	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)
