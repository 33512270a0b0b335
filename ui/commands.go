package ui

import (
	"fmt"
	"strings"

	"commandsite/anim"
	"commandsite/browser"
	"commandsite/catalog"
	"commandsite/log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const noResultsText = "No results found"
const scrollTopLabel = "↑ Top"

// DefaultScrollTopThreshold is the offset, in lines, past which the
// scroll-to-top button appears.
const DefaultScrollTopThreshold = 20

type cardSpan struct {
	top, height int
	name        string
}

// CommandsPane is the commands reference: search box, category bar and a
// scrolling grid of cards grouped by category.
type CommandsPane struct {
	model     *browser.Model
	search    *SearchBox
	bar       *CategoryBar
	renderer  CardRenderer
	viewport  viewport.Model
	spinner   spinner.Model
	copies    *CopyTracker
	clipboard Clipboard

	loading   bool
	selected  int
	threshold int
	scroll    anim.Transition

	width, height int

	// Layout of the last render, for mouse hit testing.
	searchTop, barTop, viewportTop int
	scrollTopStart, scrollTopEnd   int
	spans                          []cardSpan
}

// NewCommandsPane creates an empty pane waiting for its index.
func NewCommandsPane(cb Clipboard, threshold, fps int) *CommandsPane {
	if cb == nil {
		cb = SystemClipboard
	}
	if threshold <= 0 {
		threshold = DefaultScrollTopThreshold
	}
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return &CommandsPane{
		model:     browser.New(nil),
		search:    NewSearchBox(),
		bar:       NewCategoryBar(),
		viewport:  vp,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		copies:    NewCopyTracker(),
		clipboard: cb,
		loading:   true,
		threshold: threshold,
		scroll:    anim.NewTransition(fps),
	}
}

// Init starts the loading spinner.
func (p *CommandsPane) Init() tea.Cmd {
	return p.spinner.Tick
}

// Model exposes the view model.
func (p *CommandsPane) Model() *browser.Model {
	return p.model
}

// SetIndex installs a freshly loaded index. A nil index means the load
// failed and nothing is shown.
func (p *CommandsPane) SetIndex(ix *catalog.Index) {
	p.loading = false
	p.model = browser.New(ix)
	p.model.ApplyFilter(p.search.Value())
	p.selected = 0
	p.refresh()
}

// Loading reports whether the index has not arrived yet.
func (p *CommandsPane) Loading() bool {
	return p.loading
}

// SetSize sets the pane's size.
func (p *CommandsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.search.SetWidth(width)
	p.bar.SetWidth(width)
	p.renderer.SetWidth(width - 2)
	p.viewport.Width = width
	p.refresh()
}

func (p *CommandsPane) headerView() string {
	title := mainTitle.Render(" Commands ")
	if !p.ShowScrollTop() {
		p.scrollTopStart, p.scrollTopEnd = 0, 0
		return title
	}
	button := scrollTopStyle.Render(scrollTopLabel)
	left := lipgloss.Place(p.width-lipgloss.Width(button), 1, lipgloss.Left, lipgloss.Bottom, title)
	p.scrollTopStart = lipgloss.Width(left)
	p.scrollTopEnd = p.scrollTopStart + lipgloss.Width(button)
	return left + button
}

// refresh re-renders the card content and fits the viewport to what is left
// below the header.
func (p *CommandsPane) refresh() {
	searchView := p.search.View()
	barView := p.bar.View(p.model.Buttons())

	p.searchTop = 2
	p.barTop = p.searchTop + lipgloss.Height(searchView)
	p.viewportTop = p.barTop + lipgloss.Height(barView) + 1

	h := p.height - p.viewportTop
	if h < 1 {
		h = 1
	}
	p.viewport.Height = h
	p.viewport.SetContent(p.content())
	p.clampSelection()
}

func (p *CommandsPane) content() string {
	p.spans = p.spans[:0]

	if p.loading {
		return placeholderStyle.Render(p.spinner.View() + " Loading commands...")
	}
	if p.model.NoResults() {
		return placeholderStyle.Render(noResultsText)
	}

	var b strings.Builder
	line := 0
	visibleIdx := 0
	groups := p.model.VisibleCategories()
	for gi, group := range groups {
		heading := categoryHeadingStyle.Render(fmt.Sprintf("%s%s (%d)", expandedIcon, group.Name, len(group.Commands)))
		b.WriteString(heading)
		b.WriteString("\n")
		line++

		for _, cmd := range group.Commands {
			card := p.renderer.Render(cmd.Card, visibleIdx == p.selected, p.copies.Copied(cmd.QualifiedName))
			h := lipgloss.Height(card)
			p.spans = append(p.spans, cardSpan{top: line, height: h, name: cmd.QualifiedName})
			b.WriteString(card)
			b.WriteString("\n")
			line += h
			visibleIdx++
		}
		if gi != len(groups)-1 {
			b.WriteString("\n")
			line++
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (p *CommandsPane) clampSelection() {
	n := len(p.spans)
	if p.selected >= n {
		p.selected = n - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// ApplyFilter recomputes the visible set from term.
func (p *CommandsPane) ApplyFilter(term string) {
	p.model.ApplyFilter(term)
	p.selected = 0
	p.refresh()
}

// SelectCategory switches category. Disabled and unknown categories are
// rejected.
func (p *CommandsPane) SelectCategory(name string) error {
	if err := p.model.SelectCategory(name); err != nil {
		return err
	}
	p.selected = 0
	p.viewport.GotoTop()
	p.refresh()
	return nil
}

// CycleCategory moves to the next enabled category button.
func (p *CommandsPane) CycleCategory(step int) {
	before := p.model.Category()
	if p.model.CycleCategory(step) != before {
		p.selected = 0
		p.viewport.GotoTop()
	}
	p.refresh()
}

// Selected returns the qualified name of the selected card.
func (p *CommandsPane) Selected() (string, bool) {
	if p.selected < 0 || p.selected >= len(p.spans) {
		return "", false
	}
	return p.spans[p.selected].name, true
}

// MoveSelection moves the selection and keeps the card in view.
func (p *CommandsPane) MoveSelection(delta int) {
	if len(p.spans) == 0 {
		return
	}
	p.selected += delta
	p.clampSelection()
	p.scroll.Cancel()
	p.viewport.SetContent(p.content())

	span := p.spans[p.selected]
	if span.top < p.viewport.YOffset {
		p.viewport.SetYOffset(span.top)
	} else if bottom := span.top + span.height; bottom > p.viewport.YOffset+p.viewport.Height {
		p.viewport.SetYOffset(bottom - p.viewport.Height)
	}
	// Keep the category heading of the first card visible.
	if p.selected == 0 {
		p.viewport.GotoTop()
	}
}

// CopySelected copies the selected card's qualified name.
func (p *CommandsPane) CopySelected() tea.Cmd {
	name, ok := p.Selected()
	if !ok {
		return nil
	}
	return CopyName(p.clipboard, name)
}

// FocusSearch moves keyboard focus to the search input.
func (p *CommandsPane) FocusSearch() tea.Cmd {
	p.bar.Blur()
	cmd := p.search.Focus()
	p.refresh()
	return cmd
}

// SearchFocused reports whether the search box has keyboard focus.
func (p *CommandsPane) SearchFocused() bool {
	return p.search.Focused()
}

// HandleSearchKey routes a key press to the focused search box.
func (p *CommandsPane) HandleSearchKey(msg tea.KeyMsg) tea.Cmd {
	action, cmd := p.search.HandleKeyPress(msg)
	if action == SearchApply {
		p.ApplyFilter(p.search.Value())
	} else {
		p.refresh()
	}
	return cmd
}

// ShowScrollTop reports whether the scroll-to-top button is visible.
func (p *CommandsPane) ShowScrollTop() bool {
	return p.viewport.YOffset > p.threshold
}

// ScrollToTop starts a smooth scroll to the top. It reports whether frames
// are needed to finish it.
func (p *CommandsPane) ScrollToTop() bool {
	if p.viewport.YOffset == 0 {
		return false
	}
	p.scroll.Animate(float64(p.viewport.YOffset), 0)
	return p.scroll.Active()
}

// Animating reports whether a scroll is in progress.
func (p *CommandsPane) Animating() bool {
	return p.scroll.Active()
}

// Step advances the scroll animation by one frame.
func (p *CommandsPane) Step() {
	if !p.scroll.Active() {
		return
	}
	p.scroll.Step()
	p.viewport.SetYOffset(p.scroll.Rows())
}

// ScrollBy scrolls the card grid by n lines, cancelling a smooth scroll.
func (p *CommandsPane) ScrollBy(n int) {
	p.scroll.Cancel()
	p.viewport.SetYOffset(p.viewport.YOffset + n)
}

// YOffset returns the card grid's vertical offset.
func (p *CommandsPane) YOffset() int {
	return p.viewport.YOffset
}

// HandleClick handles a left click at pane-relative cell (x, y).
func (p *CommandsPane) HandleClick(x, y int) tea.Cmd {
	switch {
	case y == 0 && p.ShowScrollTop() && x >= p.scrollTopStart && x < p.scrollTopEnd:
		p.ScrollToTop()
		return nil
	case y >= p.searchTop && y < p.barTop:
		if p.search.ButtonAt(x, y-p.searchTop) {
			p.ApplyFilter(p.search.Value())
			return nil
		}
		return p.FocusSearch()
	case y >= p.barTop && y < p.viewportTop:
		if name, ok := p.bar.ButtonAt(x, y-p.barTop); ok {
			if err := p.SelectCategory(name); err != nil {
				log.WarningLog.Printf("category %q not selectable: %v", name, err)
			}
		}
		return nil
	case y >= p.viewportTop:
		line := p.viewport.YOffset + y - p.viewportTop
		for i, span := range p.spans {
			if line < span.top || line >= span.top+span.height {
				continue
			}
			p.selected = i
			p.viewport.SetContent(p.content())
			// The copy icon sits at the right end of the card's title row.
			if line == span.top+1 && x >= p.renderer.Width()-4 {
				return p.CopySelected()
			}
			return nil
		}
	}
	return nil
}

// Update handles spinner, clipboard and viewport messages.
func (p *CommandsPane) Update(msg tea.Msg) tea.Cmd {
	if ok, cmd := p.copies.Update(msg); ok {
		p.viewport.SetContent(p.content())
		return cmd
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.loading {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		p.viewport.SetContent(p.content())
		return cmd
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			p.scroll.Cancel()
		}
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return cmd
	default:
		if p.search.Focused() {
			return p.search.Update(msg)
		}
	}
	return nil
}

// View renders the pane.
func (p *CommandsPane) View() string {
	var b strings.Builder
	b.WriteString(p.headerView())
	b.WriteString("\n\n")
	b.WriteString(p.search.View())
	b.WriteString("\n")
	b.WriteString(p.bar.View(p.model.Buttons()))
	b.WriteString("\n\n")
	b.WriteString(p.viewport.View())
	return lipgloss.Place(p.width, p.height, lipgloss.Left, lipgloss.Top, b.String())
}
