package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchButtonLabel = "Search"

// SearchAction says what a key press did to the search box.
type SearchAction int

const (
	// SearchNone means the key changed nothing the caller needs to act on.
	SearchNone SearchAction = iota
	// SearchApply means the filter should be recomputed from Value.
	SearchApply
	// SearchExit means focus should leave the search box.
	SearchExit
)

// SearchBox is a single-line search input with a Search button.
type SearchBox struct {
	input      textinput.Model
	FocusIndex int // 0 for the input, 1 for the button
	focused    bool
	width      int

	buttonStart, buttonEnd int
}

// NewSearchBox creates an unfocused search box.
func NewSearchBox() *SearchBox {
	ti := textinput.New()
	ti.Placeholder = "Search commands (ctrl+k)"
	ti.Prompt = "⌕ "
	ti.CharLimit = 100
	return &SearchBox{input: ti}
}

// SetWidth sets the total width of the input and button row.
func (s *SearchBox) SetWidth(width int) {
	s.width = width
	// Button, gap, box border and padding, prompt and cursor.
	w := width - lipgloss.Width(buttonStyle.Render(searchButtonLabel)) - 1 - 4 - lipgloss.Width(s.input.Prompt) - 1
	if w < 10 {
		w = 10
	}
	s.input.Width = w
}

// Focus focuses the input.
func (s *SearchBox) Focus() tea.Cmd {
	s.focused = true
	s.FocusIndex = 0
	return s.input.Focus()
}

// Blur removes focus.
func (s *SearchBox) Blur() {
	s.focused = false
	s.FocusIndex = 0
	s.input.Blur()
}

// Focused reports whether the search box has focus.
func (s *SearchBox) Focused() bool {
	return s.focused
}

// Value returns the raw search term.
func (s *SearchBox) Value() string {
	return s.input.Value()
}

// SetValue replaces the search term.
func (s *SearchBox) SetValue(v string) {
	s.input.SetValue(v)
}

// HandleKeyPress processes a key press while focused.
func (s *SearchBox) HandleKeyPress(msg tea.KeyMsg) (SearchAction, tea.Cmd) {
	if !s.focused {
		return SearchNone, nil
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		// Toggle focus between input and button.
		s.FocusIndex = (s.FocusIndex + 1) % 2
		if s.FocusIndex == 0 {
			return SearchNone, s.input.Focus()
		}
		s.input.Blur()
		return SearchNone, nil
	case tea.KeyEsc:
		s.Blur()
		return SearchExit, nil
	case tea.KeyEnter:
		// Enter in the input and activating the button do the same thing.
		return SearchApply, nil
	}

	if s.FocusIndex != 0 {
		return SearchNone, nil
	}
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		return SearchApply, cmd
	}
	return SearchNone, cmd
}

// Update forwards non-key messages such as cursor blinks.
func (s *SearchBox) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// ButtonAt reports whether a cell of the last rendered view, relative to its
// top-left corner, is on the Search button.
func (s *SearchBox) ButtonAt(x, y int) bool {
	return y == 1 && x >= s.buttonStart && x < s.buttonEnd
}

// View renders the input box and the button side by side.
func (s *SearchBox) View() string {
	box := inputBoxStyle
	if !s.focused {
		box = box.BorderForeground(mutedColor)
	}
	input := box.Render(s.input.View())

	style := buttonStyle
	if s.focused && s.FocusIndex == 1 {
		style = focusedButtonStyle
	}
	button := style.Render(searchButtonLabel)

	s.buttonStart = lipgloss.Width(input) + 1
	s.buttonEnd = s.buttonStart + lipgloss.Width(button)

	return lipgloss.JoinHorizontal(lipgloss.Center, input, " ", button)
}
