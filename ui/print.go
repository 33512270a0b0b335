package ui

import (
	"fmt"
	"io"

	"commandsite/browser"
)

// WriteList prints the visible cards grouped by category, for non-interactive
// output.
func WriteList(w io.Writer, m *browser.Model, width int) error {
	if !m.Loaded() {
		return nil
	}
	if m.NoResults() {
		_, err := fmt.Fprintln(w, noResultsText)
		return err
	}

	var r CardRenderer
	r.SetWidth(width)
	for _, group := range m.VisibleCategories() {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", group.Name, len(group.Commands)); err != nil {
			return err
		}
		for _, cmd := range group.Commands {
			if _, err := fmt.Fprintln(w, r.Render(cmd.Card, false, false)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
