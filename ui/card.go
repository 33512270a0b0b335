package ui

import (
	"strings"

	"commandsite/catalog"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// minCardWidth keeps cards legible in very narrow terminals.
const minCardWidth = 24

// CardRenderer turns command cards into boxed terminal blocks.
type CardRenderer struct {
	width int
}

// SetWidth sets the outer width of rendered cards.
func (r *CardRenderer) SetWidth(width int) {
	if width < minCardWidth {
		width = minCardWidth
	}
	r.width = width
}

// Width returns the outer card width.
func (r *CardRenderer) Width() int {
	if r.width == 0 {
		return minCardWidth
	}
	return r.width
}

// innerWidth is the text width inside border and padding.
func (r *CardRenderer) innerWidth() int {
	return r.Width() - 4
}

// Render renders one card. copied flips the copy affordance to a check mark.
func (r *CardRenderer) Render(card catalog.Card, selected, copied bool) string {
	inner := r.innerWidth()

	icon := copyStyle.Render(copyIcon)
	if copied {
		icon = copiedStyle.Render(copiedIcon)
	}
	nameWidth := inner - lipgloss.Width(icon) - 1
	name := runewidth.Truncate(card.Name, nameWidth, "…")
	gap := inner - runewidth.StringWidth(name) - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}
	header := cardTitleStyle.Render(name) + strings.Repeat(" ", gap) + icon

	lines := []string{
		header,
		cardDescStyle.Render(wrapText(card.Description, inner)),
		wrapText(cardLabelStyle.Render("Arguments: ")+card.Arguments, inner),
		wrapText(cardLabelStyle.Render("Permissions: ")+card.Permissions, inner),
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Width(r.Width() - 2).Render(strings.Join(lines, "\n"))
}

// wrapText word-wraps s to width, hard-wrapping words that do not fit.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}
