package ui

import (
	"strings"

	"commandsite/anim"
	"commandsite/faq"
	"commandsite/log"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// FAQ is an accordion where at most one answer is open. Opening and closing
// animate the answer's height; once fully open the answer follows its
// natural height.
type FAQ struct {
	entries []faq.Entry
	answers []string

	open     int
	closing  int
	auto     bool
	opening  anim.Transition
	closeOut anim.Transition

	selected int
	width    int
	dark     bool
	rows     []int
}

// NewFAQ creates a closed accordion.
func NewFAQ(entries []faq.Entry, fps int, dark bool) *FAQ {
	f := &FAQ{
		entries:  entries,
		open:     -1,
		closing:  -1,
		opening:  anim.NewTransition(fps),
		closeOut: anim.NewTransition(fps),
		width:    80,
		dark:     dark,
	}
	f.renderAnswers()
	return f
}

// SetWidth re-renders the answers for a new width.
func (f *FAQ) SetWidth(width int) {
	if width == f.width {
		return
	}
	f.width = width
	f.renderAnswers()
}

// SetDark re-renders the answers for the theme.
func (f *FAQ) SetDark(dark bool) {
	if dark == f.dark {
		return
	}
	f.dark = dark
	f.renderAnswers()
}

func (f *FAQ) renderAnswers() {
	wrap := f.width - 4
	if wrap < 20 {
		wrap = 20
	}
	style := "light"
	if f.dark {
		style = "dark"
	}

	f.answers = make([]string, len(f.entries))
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		log.ErrorLog.Printf("failed to create markdown renderer: %v", err)
	}
	for i, e := range f.entries {
		f.answers[i] = f.renderAnswer(r, e.Answer, wrap)
	}

	// A transition in flight targets the old height.
	if f.open >= 0 && f.opening.Active() {
		f.opening.Animate(f.opening.Value(), float64(f.measure(f.open)))
	}
}

func (f *FAQ) renderAnswer(r *glamour.TermRenderer, answer string, wrap int) string {
	if r != nil {
		out, err := r.Render(answer)
		if err == nil {
			return strings.Trim(out, "\n")
		}
		log.ErrorLog.Printf("failed to render faq answer: %v", err)
	}
	return "  " + strings.ReplaceAll(wrapText(answer, wrap-2), "\n", "\n  ")
}

// measure returns the natural height of answer i.
func (f *FAQ) measure(i int) int {
	return lipgloss.Height(f.answers[i])
}

// Len returns the number of entries.
func (f *FAQ) Len() int {
	return len(f.entries)
}

// Open returns the open entry, or -1.
func (f *FAQ) Open() int {
	return f.open
}

// Selected returns the entry with keyboard focus.
func (f *FAQ) Selected() int {
	return f.selected
}

// MoveSelection moves keyboard focus between questions.
func (f *FAQ) MoveSelection(delta int) {
	if len(f.entries) == 0 {
		return
	}
	f.selected = (f.selected + delta + len(f.entries)) % len(f.entries)
}

// ToggleSelected toggles the focused entry.
func (f *FAQ) ToggleSelected() bool {
	return f.Toggle(f.selected)
}

// Toggle opens entry i, closing any other, or closes it when already open.
// It reports whether frames are needed to animate the change.
func (f *FAQ) Toggle(i int) bool {
	if i < 0 || i >= len(f.entries) {
		return false
	}
	f.selected = i

	if i == f.open {
		f.startClosing(i)
		f.open = -1
		f.auto = false
		return f.Animating()
	}

	from := 0.0
	if i == f.closing {
		// Reopening an entry that is still closing continues from where it is.
		from = f.closeOut.Value()
		f.closeOut.Cancel()
		f.closing = -1
	}
	if f.open >= 0 {
		f.startClosing(f.open)
	}
	f.open = i
	f.auto = false
	f.opening.Animate(from, float64(f.measure(i)))
	if !f.opening.Active() {
		f.auto = true
	}
	return f.Animating()
}

func (f *FAQ) startClosing(i int) {
	f.closing = i
	f.closeOut.Animate(float64(f.Height(i)), 0)
	if !f.closeOut.Active() {
		f.closing = -1
	}
}

// Height returns the number of answer lines currently shown for entry i.
func (f *FAQ) Height(i int) int {
	switch {
	case i == f.open && f.auto:
		return f.measure(i)
	case i == f.open:
		return f.opening.Rows()
	case i == f.closing:
		return f.closeOut.Rows()
	}
	return 0
}

// Animating reports whether a height transition is in progress.
func (f *FAQ) Animating() bool {
	return f.opening.Active() || f.closeOut.Active()
}

// Step advances the transitions by one frame. When the opening transition
// finishes the open entry switches to its natural height.
func (f *FAQ) Step() {
	if f.opening.Active() && f.opening.Step() && f.open >= 0 {
		f.auto = true
	}
	if f.closeOut.Active() && f.closeOut.Step() {
		f.closing = -1
	}
}

// QuestionAt returns the entry whose question is on row y of the last view.
func (f *FAQ) QuestionAt(y int) (int, bool) {
	for i, row := range f.rows {
		if row == y {
			return i, true
		}
	}
	return 0, false
}

// View renders the accordion.
func (f *FAQ) View() string {
	f.rows = f.rows[:0]
	var lines []string
	for i, e := range f.entries {
		icon := collapsedIcon
		if i == f.open {
			icon = expandedIcon
		}
		style := questionStyle
		if i == f.selected {
			style = selectedQuestionStyle
		}
		f.rows = append(f.rows, len(lines))
		lines = append(lines, style.Render(icon+wrapQuestion(e.Question, f.width-2)))

		if h := f.Height(i); h > 0 {
			answer := strings.Split(f.answers[i], "\n")
			if h < len(answer) {
				answer = answer[:h]
			}
			lines = append(lines, answer...)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// wrapQuestion keeps questions on one row so hit testing stays simple.
func wrapQuestion(q string, width int) string {
	if width <= 0 || lipgloss.Width(q) <= width {
		return q
	}
	return strings.SplitN(wrapText(q, width-1), "\n", 2)[0] + "…"
}
