package ui

import (
	"context"
	"strings"
	"testing"

	"commandsite/browser"
	"commandsite/catalog"
	"commandsite/faq"
	view "commandsite/ui"

	tea "github.com/charmbracelet/bubbletea"
	mansi "github.com/muesli/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

func sampleIndex(t *testing.T) *catalog.Index {
	t.Helper()
	ix, err := catalog.Load(context.Background(), nil, "")
	require.NoError(t, err)
	return ix
}

func TestCardRendering(t *testing.T) {
	ix := sampleIndex(t)
	cmd, ok := ix.Lookup("warn add")
	require.True(t, ok)

	var r view.CardRenderer
	r.SetWidth(40)
	card := ViewFunc(func() string { return r.Render(cmd.Card, false, false) })

	renderer := NewTestRenderer().
		SetSnapshotPath(t.TempDir()).
		DisableColors()

	// The first call writes the snapshot, the second must match it.
	renderer.CompareComponentWithSnapshot(t, card, "warn_add_card.txt")
	renderer.CompareComponentWithSnapshot(t, card, "warn_add_card.txt")

	output, err := renderer.RenderComponent(card)
	require.NoError(t, err)
	assert.Contains(t, output, "warn add")
	assert.Contains(t, output, "Arguments: member*, reason*")
	assert.Contains(t, output, "Permissions:")
	for _, line := range strings.Split(output, "\n") {
		assert.LessOrEqual(t, mansi.PrintableRuneWidth(line), 40, "line %q", line)
	}
}

func TestCategoryBarRendering(t *testing.T) {
	m := browser.New(sampleIndex(t))
	m.ApplyFilter("kick")

	bar := view.NewCategoryBar()
	bar.SetWidth(80)
	renderer := NewTestRenderer().DisableColors()

	output, err := renderer.RenderComponent(ViewFunc(func() string { return bar.View(m.Buttons()) }))
	require.NoError(t, err)
	assert.Contains(t, output, "All (1)")
	assert.Contains(t, output, "Moderation (1)")
	assert.Contains(t, output, "Basic (0)")
}

func TestFAQRendering(t *testing.T) {
	accordion := view.NewFAQ(faq.Default(), 1000, true)
	accordion.SetWidth(60)

	renderer := NewTestRenderer().
		SetSnapshotPath(t.TempDir()).
		DisableColors()

	output, err := renderer.RenderComponent(accordion)
	require.NoError(t, err)
	assert.Contains(t, output, "► How do I invite the bot to my server?")
	assert.NotContains(t, output, "▼")

	renderer.CompareComponentWithSnapshot(t, accordion, "faq_closed.txt")
	renderer.CompareComponentWithSnapshot(t, accordion, "faq_closed.txt")
}

func TestSearchBoxTyping(t *testing.T) {
	box := view.NewSearchBox()
	box.SetWidth(60)
	box.Focus()

	term := NewMockTerminal()
	for _, r := range "ban" {
		term.SimulateKeyPress(box, string(r))
	}
	assert.Equal(t, "ban", box.Value())

	renderer := NewTestRenderer().DisableColors()
	output, err := renderer.RenderComponent(box)
	require.NoError(t, err)
	assert.Contains(t, output, "ban")
	assert.Contains(t, output, "Search")
}

func TestCommandsPaneThroughTerminal(t *testing.T) {
	pane := view.NewCommandsPane(nopClipboard{}, 5, 1000)
	term := NewMockTerminal().SetSize(90, 20)
	pane.SetSize(term.Width, term.Height)
	pane.SetIndex(sampleIndex(t))

	renderer := NewTestRenderer().DisableColors()
	output, err := renderer.RenderComponent(pane)
	require.NoError(t, err)
	assert.Contains(t, output, "Commands")
	assert.Contains(t, output, "ping")

	// Wheel events scroll the card grid.
	for i := 0; i < 5; i++ {
		pane.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	assert.Greater(t, pane.YOffset(), 0)

	pane.ApplyFilter("zzz")
	output, err = renderer.RenderComponent(pane)
	require.NoError(t, err)
	assert.Contains(t, output, "No results found")
}
