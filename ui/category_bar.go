package ui

import (
	"fmt"
	"strings"

	"commandsite/browser"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// maxChipName bounds the label of a single category chip.
const maxChipName = 20

type chipHit struct {
	row, start, end int
	name            string
	disabled        bool
}

// CategoryBar renders the category buttons with their live counts.
type CategoryBar struct {
	width   int
	focused bool
	hits    []chipHit
}

// NewCategoryBar creates a new category bar component.
func NewCategoryBar() *CategoryBar {
	return &CategoryBar{}
}

// SetWidth sets the width available to the bar.
func (c *CategoryBar) SetWidth(width int) {
	c.width = width
}

// Focus marks the bar as the keyboard target.
func (c *CategoryBar) Focus() {
	c.focused = true
}

// Blur removes focus from the bar.
func (c *CategoryBar) Blur() {
	c.focused = false
}

// Focused reports whether the bar has focus.
func (c *CategoryBar) Focused() bool {
	return c.focused
}

func chipLabel(b browser.Button) string {
	return fmt.Sprintf("%s (%d)", runewidth.Truncate(b.Name, maxChipName, "…"), b.Count)
}

// View renders the buttons, wrapping onto more rows when they do not fit.
func (c *CategoryBar) View(buttons []browser.Button) string {
	c.hits = c.hits[:0]

	var rows []string
	var row strings.Builder
	col := 0
	for _, b := range buttons {
		style := chipStyle
		switch {
		case b.Selected:
			style = activeChipStyle
		case b.Disabled:
			style = disabledChipStyle
		case c.focused:
			style = focusedChipStyle
		}
		chip := style.Render(chipLabel(b))
		w := lipgloss.Width(chip)

		if col > 0 && c.width > 0 && col+1+w > c.width {
			rows = append(rows, row.String())
			row.Reset()
			col = 0
		}
		if col > 0 {
			row.WriteString(" ")
			col++
		}
		c.hits = append(c.hits, chipHit{
			row:      len(rows),
			start:    col,
			end:      col + w,
			name:     b.Name,
			disabled: b.Disabled,
		})
		row.WriteString(chip)
		col += w
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// ButtonAt returns the enabled category under a cell of the last rendered
// view, relative to the bar's top-left corner.
func (c *CategoryBar) ButtonAt(x, y int) (string, bool) {
	for _, h := range c.hits {
		if h.row == y && x >= h.start && x < h.end {
			if h.disabled {
				return "", false
			}
			return h.name, true
		}
	}
	return "", false
}
