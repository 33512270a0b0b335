package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"commandsite/anim"
	"commandsite/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	written []string
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.written = append(f.written, text)
	return nil
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.UI.FrameRate = 1000
	return cfg
}

// newTestHome builds a sized home with the embedded sample loaded.
func newTestHome(t *testing.T, cfg *config.Config, systemDark bool) (*home, *fakeClipboard) {
	t.Helper()
	cb := &fakeClipboard{}
	m := newHome(context.Background(), cfg, systemDark, cb)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(m.loadIndex()())
	return m, cb
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runFrames feeds frame messages back into the model until the loop stops.
func runFrames(t *testing.T, m *home, cmd tea.Cmd) int {
	t.Helper()
	n := 0
	for cmd != nil {
		require.Less(t, n, 5000, "animation never settled")
		msg := cmd()
		if _, ok := msg.(anim.FrameMsg); !ok {
			return n
		}
		_, cmd = m.Update(msg)
		n++
	}
	return n
}

func TestLoadPopulatesCommands(t *testing.T) {
	m, _ := newTestHome(t, testConfig(), true)

	assert.False(t, m.commands.Loading())
	assert.True(t, m.commands.Model().Loaded())
	assert.NotEmpty(t, m.commands.Model().Visible())

	m.Update(runes("2"))
	assert.Equal(t, pageCommands, m.page)
	view := m.View()
	assert.Contains(t, view, "Commands")
	assert.Contains(t, view, "ping")
}

func TestLoadFailureShowsNoCommands(t *testing.T) {
	cfg := testConfig()
	cfg.DataSource = filepath.Join(t.TempDir(), "missing.json")
	m, _ := newTestHome(t, cfg, true)

	assert.False(t, m.commands.Loading())
	assert.False(t, m.commands.Model().Loaded())
	assert.Empty(t, m.commands.Model().Visible())

	// The landing page keeps working.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, m.faq.Open())
	runFrames(t, m, cmd)
	assert.False(t, m.loop.Running())
}

func TestSearchShortcutsFocusSearch(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("/"), {Type: tea.KeyCtrlK}} {
		m, _ := newTestHome(t, testConfig(), true)
		assert.Equal(t, pageLanding, m.page)

		m.Update(key)
		assert.Equal(t, pageCommands, m.page, key.String())
		assert.True(t, m.commands.SearchFocused(), key.String())
	}
}

func TestTypingFiltersAndQuitIsNotTyped(t *testing.T) {
	m, _ := newTestHome(t, testConfig(), true)
	m.Update(runes("/"))

	for _, r := range "kick" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, "kick", m.commands.Model().Term())
	m.Update(runes("q"))
	assert.Equal(t, "kickq", m.commands.Model().Term(), "q is typed into the search box")
	assert.True(t, m.commands.Model().NoResults())
	assert.Contains(t, m.View(), "No results found")

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.commands.SearchFocused())

	var visible []string
	for _, c := range m.commands.Model().Visible() {
		visible = append(visible, c.QualifiedName)
	}
	assert.Equal(t, []string{"kick"}, visible)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCategoryCyclingAndCopy(t *testing.T) {
	m, cb := newTestHome(t, testConfig(), true)
	m.Update(runes("2"))

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Basic", m.commands.Model().Category())
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "All", m.commands.Model().Category())

	m.Update(runes("j"))
	_, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	_, revert := m.Update(msg)
	assert.NotNil(t, revert)
	assert.Equal(t, []string{"help"}, cb.written)
	assert.Contains(t, m.View(), "✓")
}

func TestPointerMotionDrivesFollower(t *testing.T) {
	m, _ := newTestHome(t, testConfig(), true)

	_, cmd := m.Update(tea.MouseMsg{X: 30, Y: 4, Action: tea.MouseActionMotion})
	require.NotNil(t, cmd)
	assert.True(t, m.loop.Running())

	frames := runFrames(t, m, cmd)
	assert.Greater(t, frames, 1)
	assert.False(t, m.loop.Running(), "the loop stops once the follower settles")

	pos := m.canvas.Follower().Position()
	assert.InDelta(t, 30, pos.X, 0.01)
	assert.InDelta(t, 3, pos.Y, 0.01)
}

func TestPointerMotionIgnoredWhenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.UI.CursorFollower = false
	m, _ := newTestHome(t, cfg, true)

	_, cmd := m.Update(tea.MouseMsg{X: 30, Y: 4, Action: tea.MouseActionMotion})
	assert.Nil(t, cmd)
	assert.False(t, m.loop.Running())
}

func TestThemeToggleOverridesSystem(t *testing.T) {
	m, _ := newTestHome(t, testConfig(), true)
	assert.True(t, m.theme.Dark())

	m.Update(themePreferenceMsg{pref: config.ThemeLight})
	assert.False(t, m.theme.Dark(), "system changes apply before a toggle")

	m.Update(runes("t"))
	assert.True(t, m.theme.Dark())

	m.Update(themePreferenceMsg{pref: config.ThemeLight})
	assert.True(t, m.theme.Dark(), "explicit toggle wins for the session")
}

func TestThemeChangesFromWatcherChannel(t *testing.T) {
	m, _ := newTestHome(t, testConfig(), false)
	assert.Nil(t, m.waitForThemeChange())

	ch := make(chan config.ThemePreference, 1)
	m.themeChanges = ch
	ch <- config.ThemeDark
	msg := m.waitForThemeChange()()
	assert.Equal(t, themePreferenceMsg{pref: config.ThemeDark}, msg)

	_, next := m.Update(msg)
	assert.True(t, m.theme.Dark())
	require.NotNil(t, next)

	close(ch)
	assert.Nil(t, next())
}

func TestHelpScreen(t *testing.T) {
	m, _ := newTestHome(t, testConfig(), true)

	m.Update(runes("?"))
	assert.Equal(t, stateHelp, m.state)
	view := m.View()
	for _, want := range []string{"Pages:", "Commands:", "Navigation:", "Other:", "ctrl+k"} {
		assert.Contains(t, view, want)
	}

	m.Update(runes("x"))
	assert.Equal(t, stateDefault, m.state)

	m.Update(runes("2"))
	m.Update(runes("?"))
	assert.Contains(t, m.View(), "name*")
}

func TestMouseClicks(t *testing.T) {
	m, _ := newTestHome(t, testConfig(), true)
	m.View()

	// Tabs in the header switch pages.
	commandsTab := m.tabs[1]
	m.Update(tea.MouseMsg{X: commandsTab.start, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, pageCommands, m.page)

	homeTab := m.tabs[0]
	m.Update(tea.MouseMsg{X: homeTab.start, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, pageLanding, m.page)

	// The theme label toggles.
	m.View()
	m.Update(tea.MouseMsg{X: m.themeStart + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.theme.Overridden())

	// Clicking a question opens it.
	m.View()
	_, cmd := m.Update(tea.MouseMsg{X: 2, Y: m.faqTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 0, m.faq.Open())
	runFrames(t, m, cmd)
	assert.True(t, strings.Contains(m.View(), "▼"))
}

func TestScrollToTopKey(t *testing.T) {
	m, _ := newTestHome(t, testConfig(), true)
	m.Update(runes("2"))

	for i := 0; i < 3; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	}
	require.Greater(t, m.commands.YOffset(), 0)

	_, cmd := m.Update(runes("g"))
	require.NotNil(t, cmd)
	runFrames(t, m, cmd)
	assert.Equal(t, 0, m.commands.YOffset())
	assert.False(t, m.loop.Running())
}
