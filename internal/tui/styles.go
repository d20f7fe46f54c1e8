package tui

import "github.com/charmbracelet/lipgloss"

// palette is the semantic color set for the console. Values follow the
// CharmTone palette.
type palette struct {
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var colors = palette{
	Border:  lipgloss.Color("#4D4C57"),
	Muted:   lipgloss.Color("#858392"),
	Text:    lipgloss.Color("#DFDBDD"),
	Primary: lipgloss.Color("#6B50FF"),
	Success: lipgloss.Color("#00FFB2"),
	Warning: lipgloss.Color("#FFD300"),
	Error:   lipgloss.Color("#E94090"),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Primary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colors.Muted).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(colors.Text)

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Success)

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Warning)

	gainStyle = lipgloss.NewStyle().
			Foreground(colors.Success)

	lossStyle = lipgloss.NewStyle().
			Foreground(colors.Error)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 2)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Primary).
			Padding(1, 3)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Muted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colors.Muted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colors.Error)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colors.Success)

	focusStyle = lipgloss.NewStyle().
			Foreground(colors.Primary).
			Bold(true)
)

// statusStyle picks the badge style for a session status
func statusStyle(active bool) lipgloss.Style {
	if active {
		return activeStyle
	}
	return pausedStyle
}

// trendStyle picks gain or loss coloring from the sign of a raw value
func trendStyle(v *float64) lipgloss.Style {
	if v == nil {
		return valueStyle
	}
	if *v < 0 {
		return lossStyle
	}
	return gainStyle
}
