package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaBackground = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	// Tab bar styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(DraculaBackground).
			Background(DraculaForeground).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaForeground).
			Padding(0, 2)
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DraculaComment).
				Padding(0, 2)

	// Card styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	SelectedCardStyle = CardStyle.
				BorderForeground(DraculaPink)
	ThumbnailStyle = lipgloss.NewStyle().
			Foreground(DraculaPurple)
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground).
			Bold(true)
	SelectedCardTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	CardDescStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	PriceStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen).
			Bold(true)
	RatingStyle = lipgloss.NewStyle().
			Foreground(DraculaOrange)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)
	EmptyStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
	LoaderStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan)
)
