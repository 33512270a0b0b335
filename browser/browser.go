// Package browser holds the state of the commands page: the selected category
// and the search term. Renderers read the visible commands and the category
// button states from a Model and never keep UI state of their own.
package browser

import (
	"errors"
	"fmt"
	"strings"

	"commandsite/catalog"
)

// All selects every category.
const All = "All"

var (
	// ErrUnknownCategory is returned when selecting a name that is not a category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrCategoryEmpty is returned when selecting a category with nothing visible.
	ErrCategoryEmpty = errors.New("category has no visible commands")
)

// Button is the render state of one category selector.
type Button struct {
	Name     string
	Count    int
	Selected bool
	// Disabled buttons have no visible commands and cannot be selected.
	Disabled bool
}

// Model is the view model of the commands page.
type Model struct {
	index    *catalog.Index
	category string
	term     string
	// matches caches the search result per index position
	matches []bool
}

// New creates a model showing every command. A nil index behaves as an empty
// one, which is what the page shows after a failed load.
func New(index *catalog.Index) *Model {
	m := &Model{
		index:    index,
		category: All,
	}
	m.recompute()
	return m
}

// Index returns the index the model reads from.
func (m *Model) Index() *catalog.Index {
	return m.index
}

// Loaded reports whether there is an index to show.
func (m *Model) Loaded() bool {
	return m.index != nil
}

// Category returns the selected category.
func (m *Model) Category() string {
	return m.category
}

// Term returns the normalised search term.
func (m *Model) Term() string {
	return m.term
}

// NormalizeTerm lower-cases and trims a search term.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Matches reports whether a command matches a normalised term: the term is a
// substring of the qualified name or the description, ignoring case. The empty
// term matches everything.
func Matches(cmd catalog.IndexedCommand, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(cmd.QualifiedName), term) ||
		strings.Contains(strings.ToLower(cmd.Descriptor.Description), term)
}

// ApplyFilter sets the search term. Typing, pressing enter and pressing the
// search button all call this with the input's value.
func (m *Model) ApplyFilter(term string) {
	m.term = NormalizeTerm(term)
	m.recompute()
}

// SelectCategory switches the category. Selecting All always succeeds.
func (m *Model) SelectCategory(name string) error {
	if name == All {
		m.category = All
		return nil
	}
	if _, ok := m.index.Category(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	if m.Count(name) == 0 {
		return fmt.Errorf("%w: %q", ErrCategoryEmpty, name)
	}
	m.category = name
	return nil
}

func (m *Model) recompute() {
	n := m.index.Len()
	if cap(m.matches) < n {
		m.matches = make([]bool, n)
	}
	m.matches = m.matches[:n]
	for i, cmd := range m.commands() {
		m.matches[i] = Matches(cmd, m.term)
	}
}

func (m *Model) commands() []catalog.IndexedCommand {
	if m.index == nil {
		return nil
	}
	return m.index.Commands
}

func (m *Model) inCategory(cmd catalog.IndexedCommand, category string) bool {
	return category == All || cmd.CategoryName == category
}

// Visible returns the commands in the selected category that match the
// search term, in index order.
func (m *Model) Visible() []catalog.IndexedCommand {
	var visible []catalog.IndexedCommand
	for i, cmd := range m.commands() {
		if m.matches[i] && m.inCategory(cmd, m.category) {
			visible = append(visible, cmd)
		}
	}
	return visible
}

// VisibleCategories groups Visible by category, dropping categories with
// nothing to show.
func (m *Model) VisibleCategories() []catalog.Category {
	if m.index == nil {
		return nil
	}
	var groups []catalog.Category
	offset := 0
	for _, cat := range m.index.Categories {
		group := catalog.Category{Name: cat.Name}
		for j, cmd := range cat.Commands {
			if m.matches[offset+j] && m.inCategory(cmd, m.category) {
				group.Commands = append(group.Commands, cmd)
			}
		}
		offset += len(cat.Commands)
		if len(group.Commands) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// Count returns how many commands of a category match the search term. Count
// of All is the total across categories.
func (m *Model) Count(category string) int {
	count := 0
	for i, cmd := range m.commands() {
		if m.matches[i] && m.inCategory(cmd, category) {
			count++
		}
	}
	return count
}

// Buttons returns the All button followed by one button per category, with
// live counts.
func (m *Model) Buttons() []Button {
	buttons := []Button{{
		Name:     All,
		Count:    m.Count(All),
		Selected: m.category == All,
	}}
	for _, name := range m.index.CategoryNames() {
		count := m.Count(name)
		buttons = append(buttons, Button{
			Name:     name,
			Count:    count,
			Selected: m.category == name,
			Disabled: count == 0,
		})
	}
	return buttons
}

// NoResults reports whether the "no results" placeholder replaces the grid.
// Nothing is shown at all when no index was loaded.
func (m *Model) NoResults() bool {
	return m.Loaded() && len(m.Visible()) == 0
}

// CycleCategory moves the selection by step through the enabled buttons,
// wrapping around. It returns the newly selected category.
func (m *Model) CycleCategory(step int) string {
	buttons := m.Buttons()
	current := 0
	for i, b := range buttons {
		if b.Selected {
			current = i
			break
		}
	}
	n := len(buttons)
	for i := 1; i <= n; i++ {
		next := buttons[((current+step*i)%n+n)%n]
		if next.Name == All || !next.Disabled {
			m.category = next.Name
			break
		}
	}
	return m.category
}
