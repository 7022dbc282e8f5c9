package tui

import "github.com/charmbracelet/lipgloss"

// Dashboard palette. Hex values follow the tailwind shades the panels are
// designed around so the banding reads the same across terminals.
const (
	ColorHealthy  = lipgloss.Color("#4ADE80") // green
	ColorWarning  = lipgloss.Color("#FDE047") // yellow
	ColorCritical = lipgloss.Color("#DC2626") // red

	ColorTitle     = lipgloss.Color("#BFDBFE") // pale blue
	ColorBorder    = lipgloss.Color("#374151") // gray
	ColorAxis      = lipgloss.Color("#4B5563") // darker gray
	ColorRowText   = lipgloss.Color("#9CA3AF") // muted gray
	ColorHeaderRow = lipgloss.Color("#FEF08A") // pale yellow
	ColorSelectBg  = lipgloss.Color("#1F2937") // near-black
	ColorMemGraph  = lipgloss.Color("#60A5FA") // blue
)

// Band thresholds for visual color coding. Purely cosmetic; nothing alerts
// on them.
const (
	bandWarn = 50.0
	bandCrit = 80.0
)

// BandColor maps a percentage to its severity color.
func BandColor(pct float64) lipgloss.Color {
	switch {
	case pct <= bandWarn:
		return ColorHealthy
	case pct <= bandCrit:
		return ColorWarning
	default:
		return ColorCritical
	}
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	titleStyle = lipgloss.NewStyle().
			Foreground(ColorTitle)

	headerStyle = lipgloss.NewStyle().
			Foreground(ColorTitle).
			Bold(true).
			Align(lipgloss.Center)

	axisStyle = lipgloss.NewStyle().
			Foreground(ColorAxis)

	rowStyle = lipgloss.NewStyle().
			Foreground(ColorRowText)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeaderRow)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorTitle).
				Background(ColorSelectBg)

	ifaceNameStyle = lipgloss.NewStyle().
			Foreground(ColorTitle)
)
