package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	Primary   = lipgloss.Color("#7C3AED") // Violet
	Secondary = lipgloss.Color("#00E5FF") // Electric Cyan
	Accent    = lipgloss.Color("#FFD600") // Gold
	Success   = lipgloss.Color("#00C853") // Emerald Green
	Warning   = lipgloss.Color("#FFAD00") // Orange
	ErrorCol  = lipgloss.Color("#FF1744") // Red
	Text      = lipgloss.Color("#FFFFFF") // Pure White
	Muted     = lipgloss.Color("#888888") // Medium Gray

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Padding(0, 2).
			MarginLeft(1).
			MarginTop(1)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(Muted).
			PaddingLeft(2).
			MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Muted).
			MarginLeft(2).
			Width(72)

	StatusLabelStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true)

	InfoKeyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(18)

	InfoValueStyle = lipgloss.NewStyle().
			Foreground(Text)

	InputLabelStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorCol).
			PaddingLeft(2)

	// ErrorBannerStyle frames the dismissible fetch-error banner.
	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(Text).
				Background(ErrorCol).
				Padding(0, 1).
				MarginLeft(2)

	NoticeSuccessStyle = lipgloss.NewStyle().
				Foreground(Success).
				Bold(true).
				PaddingLeft(2)

	NoticeErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorCol).
				Bold(true).
				PaddingLeft(2)

	FooterStyle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginTop(1).
			PaddingLeft(2).
			Faint(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true).
				MarginBottom(1)

	// Wizard step tabs
	StepActiveStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	StepDoneStyle = lipgloss.NewStyle().
			Foreground(Success).
			Padding(0, 1)

	StepPendingStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 1)

	// Table chrome
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(Muted).
				BorderBottom(true).
				Bold(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(Text).
				Background(Primary).
				Bold(false)
)

func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Success)
}
