package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const copyIcon = "⧉"
const copiedIcon = "✓"
const expandedIcon = "▼ "
const collapsedIcon = "► "

var accentColor = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#7D56F4"}

var mutedColor = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}

var mainTitle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230"))

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.AdaptiveColor{Light: "#C9C3D6", Dark: "#444444"}).
	Padding(0, 1)

var selectedCardStyle = cardStyle.
	BorderForeground(accentColor)

var cardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

var cardDescStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#bbbbbb"})

var cardLabelStyle = lipgloss.NewStyle().
	Foreground(mutedColor)

var copyStyle = lipgloss.NewStyle().
	Foreground(mutedColor)

var copiedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#51bd73", Dark: "#51bd73"})

var categoryHeadingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#000080", Dark: "#87CEFA"}).
	Padding(0, 0, 0, 1)

var chipStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#DDDDDD"}).
	Padding(0, 1)

var activeChipStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(accentColor).
	Padding(0, 1)

var disabledChipStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#C9C3D6", Dark: "#555555"}).
	Strikethrough(true).
	Padding(0, 1)

var focusedChipStyle = chipStyle.
	Underline(true)

var buttonStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("7")).
	Padding(0, 1)

var focusedButtonStyle = buttonStyle.
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("0"))

var inputBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(0, 1)

var placeholderStyle = lipgloss.NewStyle().
	Foreground(mutedColor).
	Padding(1, 2)

var scrollTopStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(accentColor).
	Padding(0, 1)

var questionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

var selectedQuestionStyle = questionStyle.
	Foreground(accentColor)

var followerStyle = lipgloss.NewStyle().
	Foreground(accentColor).
	Bold(true)

var pointerStyle = lipgloss.NewStyle().
	Foreground(mutedColor)
