package app

import (
	"strings"

	"commandsite/keys"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent() string
}

type helpTypeGeneral struct{}

type helpTypeCommands struct{}

// keyLines renders one aligned line per key in category.
func keyLines(category keys.HelpCategory) []string {
	var lines []string
	for _, keyName := range keys.GetKeysInCategory(category) {
		keyText := keys.GlobalkeyBindings[keyName].Help().Key
		padding := ""
		if padLen := 10 - lipgloss.Width(keyText); padLen > 0 {
			padding = strings.Repeat(" ", padLen)
		}
		lines = append(lines, keyStyle.Render(keyText)+padding+descStyle.Render("- "+keys.GetKeyHelp(keyName).Description))
	}
	return lines
}

func (h helpTypeGeneral) toContent() string {
	content := []string{
		titleStyle.Render("Commands"),
		"",
		"A reference for every bot command, with a searchable list and an FAQ.",
		"",
	}

	for _, category := range keys.GetAllCategories() {
		lines := keyLines(category)
		if len(lines) == 0 {
			continue
		}
		content = append(content, headerStyle.Render(string(category)+":"))
		content = append(content, lines...)
		content = append(content, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func (h helpTypeCommands) toContent() string {
	content := []string{
		titleStyle.Render("Reading the commands"),
		"",
		descStyle.Render("Each card shows a command, what it does, its arguments and the permissions it needs."),
		"",
		headerStyle.Render("Arguments:"),
		keyStyle.Render("name*") + descStyle.Render("        - required"),
		keyStyle.Render("name=value") + descStyle.Render("   - optional, defaults to value"),
		keyStyle.Render("None") + descStyle.Render("         - nothing to pass"),
		"",
		headerStyle.Render("Search:"),
		descStyle.Render("Matches names and descriptions, ignoring case. Subcommands match on"),
		descStyle.Render("their full name, like \"warn add\". Categories without matches are disabled."),
		"",
		headerStyle.Render(string(keys.HelpCategoryCommands) + ":"),
	}
	content = append(content, keyLines(keys.HelpCategoryCommands)...)
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#FFFFFF"})
)

// showHelpScreen displays a help screen. Nothing about it is remembered.
func (m *home) showHelpScreen(helpType helpText) (tea.Model, tea.Cmd) {
	m.helpContent = helpType.toContent()
	m.state = stateHelp
	return m, nil
}

// handleHelpState handles key events when in help state
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}
	// Any other key closes the help screen.
	m.state = stateDefault
	m.helpContent = ""
	return m, tea.WindowSize()
}
