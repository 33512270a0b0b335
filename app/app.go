package app

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"commandsite/anim"
	"commandsite/catalog"
	"commandsite/config"
	"commandsite/faq"
	"commandsite/keys"
	"commandsite/log"
	"commandsite/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	h := newHome(ctx, cfg, ui.DetectDark(), ui.SystemClipboard)

	if w := startWatcher(ctx, cfg); w != nil {
		defer func() {
			if err := w.Close(); err != nil {
				log.WarningLog.Printf("failed to close config watcher: %v", err)
			}
		}()
		h.themeChanges = w.Changes()
	}

	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer motion drives the cursor follower
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// startWatcher watches the config file, or where it would be, for theme
// preference changes. The TUI works without it.
func startWatcher(ctx context.Context, cfg *config.Config) *config.Watcher {
	path := cfg.Path()
	if path == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			log.WarningLog.Printf("not watching config: %v", err)
			return nil
		}
		path = filepath.Join(dir, config.ConfigFileTOML)
	}
	w, err := config.NewWatcher(path, cfg.UI.Theme)
	if err != nil {
		log.WarningLog.Printf("not watching config: %v", err)
		return nil
	}
	w.Start(ctx)
	return w
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when a help screen is displayed.
	stateHelp
)

type page int

const (
	pageLanding page = iota
	pageCommands
)

// indexLoadedMsg carries the result of the one document load.
type indexLoadedMsg struct {
	index *catalog.Index
	err   error
}

// themePreferenceMsg is a preference change read from the config watcher.
type themePreferenceMsg struct {
	pref config.ThemePreference
}

type home struct {
	ctx context.Context
	cfg *config.Config

	// client fetches remote command documents
	client *http.Client

	// -- State --

	state state
	page  page
	// helpContent is the help screen shown in stateHelp
	helpContent string

	width, height int
	// systemDark is the terminal's own background as detected at startup
	systemDark bool
	// themeChanges delivers preference edits from the config file; nil when
	// the file is not watched
	themeChanges <-chan config.ThemePreference

	// -- UI Components --

	theme    *ui.Theme
	canvas   *ui.CursorCanvas
	faq      *ui.FAQ
	commands *ui.CommandsPane
	// loop drives every animation; it only runs while something moves
	loop *anim.Loop

	// Layout of the last render, for mouse hit testing.
	tabs       []tabHit
	themeStart int
	faqTop     int

	frameLog *log.Every
}

type tabHit struct {
	page       page
	start, end int
}

func newHome(ctx context.Context, cfg *config.Config, systemDark bool, cb ui.Clipboard) *home {
	entries, err := faq.Load(cfg.FAQSource)
	if err != nil {
		log.ErrorLog.Printf("failed to load faq, using defaults: %v", err)
		entries = faq.Default()
	}

	theme := ui.NewTheme(cfg.UI.Theme, systemDark)
	fps := cfg.UI.FrameRate

	return &home{
		ctx:        ctx,
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.FetchTimeout.Duration},
		state:      stateDefault,
		page:       pageLanding,
		systemDark: systemDark,
		theme:      theme,
		canvas: ui.NewCursorCanvas(
			"C O M M A N D S",
			"",
			"Everything the bot can do, in one place.",
		),
		faq:      ui.NewFAQ(entries, fps, theme.Dark()),
		commands: ui.NewCommandsPane(cb, cfg.UI.ScrollTopThreshold, fps),
		loop:     anim.NewLoop(fps),
		frameLog: log.NewEvery(5 * time.Second),
	}
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	// The hero canvas takes a third of the landing page, within bounds.
	canvasHeight := msg.Height / 3
	if canvasHeight < 5 {
		canvasHeight = 5
	}
	if canvasHeight > 11 {
		canvasHeight = 11
	}
	m.canvas.SetSize(msg.Width, canvasHeight)
	m.faq.SetWidth(msg.Width)
	m.commands.SetSize(msg.Width, msg.Height-1)
}

func (m *home) Init() tea.Cmd {
	return tea.Batch(
		m.commands.Init(),
		m.loadIndex(),
		m.waitForThemeChange(),
	)
}

// loadIndex fetches and indexes the document once. There is no retry.
func (m *home) loadIndex() tea.Cmd {
	ctx, source, client := m.ctx, m.cfg.DataSource, m.client
	timeout := m.cfg.FetchTimeout.Duration
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		ix, err := catalog.Load(ctx, client, source)
		return indexLoadedMsg{index: ix, err: err}
	}
}

func (m *home) waitForThemeChange() tea.Cmd {
	ch := m.themeChanges
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		pref, ok := <-ch
		if !ok {
			return nil
		}
		return themePreferenceMsg{pref: pref}
	}
}

// animate starts the frame loop if it is not already running.
func (m *home) animate() tea.Cmd {
	if m.loop.Running() {
		return nil
	}
	return m.loop.Start()
}

func (m *home) animating() bool {
	return m.canvas.Animating() || m.faq.Animating() || m.commands.Animating()
}

func (m *home) step() {
	if m.cfg.UI.CursorFollower {
		m.canvas.Step()
	}
	m.faq.Step()
	m.commands.Step()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, next := m.loop.Update(msg); handled {
		m.step()
		if !m.animating() {
			m.loop.Stop()
			return m, nil
		}
		return m, next
	}

	switch msg := msg.(type) {
	case indexLoadedMsg:
		if msg.err != nil {
			log.ErrorLog.Printf("failed to load commands: %v", msg.err)
			m.commands.SetIndex(nil)
			return m, nil
		}
		log.InfoLog.Printf("loaded %d commands in %d categories", msg.index.Len(), len(msg.index.Categories))
		m.commands.SetIndex(msg.index)
		return m, nil
	case themePreferenceMsg:
		m.cfg.UI.Theme = msg.pref
		if m.theme.SystemChanged(msg.pref, m.systemDark) {
			log.InfoLog.Printf("theme preference changed to %s", msg.pref)
			m.themeChanged()
		}
		return m, m.waitForThemeChange()
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	}
	return m, m.commands.Update(msg)
}

// themeChanged re-renders what caches theme-dependent output.
func (m *home) themeChanged() {
	m.faq.SetDark(m.theme.Dark())
	m.commands.SetSize(m.width, m.height-1)
}

func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state == stateHelp {
		return nil
	}

	if msg.Action == tea.MouseActionMotion && m.page == pageLanding {
		if !m.cfg.UI.CursorFollower {
			return nil
		}
		m.canvas.MoveTo(msg.X, msg.Y-1)
		if m.frameLog.ShouldLog() {
			log.InfoLog.Printf("pointer at %d,%d", msg.X, msg.Y)
		}
		return m.animate()
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if m.page == pageCommands {
			return m.commands.Update(msg)
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if msg.Y == 0 {
		for _, tab := range m.tabs {
			if msg.X >= tab.start && msg.X < tab.end {
				m.page = tab.page
				return nil
			}
		}
		if m.themeStart > 0 && msg.X >= m.themeStart {
			m.toggleTheme()
		}
		return nil
	}

	switch m.page {
	case pageLanding:
		if i, ok := m.faq.QuestionAt(msg.Y - m.faqTop); ok && m.faq.Toggle(i) {
			return m.animate()
		}
	case pageCommands:
		cmd := m.commands.HandleClick(msg.X, msg.Y-1)
		if m.commands.Animating() {
			return tea.Batch(cmd, m.animate())
		}
		return cmd
	}
	return nil
}

func (m *home) toggleTheme() {
	m.theme.Toggle()
	log.InfoLog.Printf("theme toggled, dark=%t", m.theme.Dark())
	m.themeChanged()
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.loop.Stop()
	return m, tea.Quit
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	if m.state == stateHelp {
		return m.handleHelpState(msg)
	}

	// The search box takes every key while focused. Don't handle q because
	// the user might want to type that.
	if m.page == pageCommands && m.commands.SearchFocused() {
		if msg.String() == "ctrl+c" {
			return m.handleQuit()
		}
		return m, m.commands.HandleSearchKey(msg)
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyHelp:
		if m.page == pageCommands {
			return m.showHelpScreen(helpTypeCommands{})
		}
		return m.showHelpScreen(helpTypeGeneral{})
	case keys.KeyLanding:
		m.page = pageLanding
		return m, nil
	case keys.KeyCommands:
		m.page = pageCommands
		return m, nil
	case keys.KeyTheme:
		m.toggleTheme()
		return m, nil
	case keys.KeySearch:
		m.page = pageCommands
		return m, m.commands.FocusSearch()
	}

	if m.page == pageLanding {
		return m, m.handleLandingKey(name)
	}
	return m, m.handleCommandsKey(name)
}

func (m *home) handleLandingKey(name keys.KeyName) tea.Cmd {
	switch name {
	case keys.KeyUp:
		m.faq.MoveSelection(-1)
	case keys.KeyDown:
		m.faq.MoveSelection(1)
	case keys.KeyEnter:
		if m.faq.ToggleSelected() {
			return m.animate()
		}
	}
	return nil
}

func (m *home) handleCommandsKey(name keys.KeyName) tea.Cmd {
	page := m.height - 8
	if page < 1 {
		page = 1
	}

	switch name {
	case keys.KeyUp:
		m.commands.MoveSelection(-1)
	case keys.KeyDown:
		m.commands.MoveSelection(1)
	case keys.KeyPageUp:
		m.commands.ScrollBy(-page)
	case keys.KeyPageDown:
		m.commands.ScrollBy(page)
	case keys.KeyTop:
		if m.commands.ScrollToTop() {
			return m.animate()
		}
	case keys.KeyEnter, keys.KeyCopy:
		return m.commands.CopySelected()
	case keys.KeyNextCategory:
		m.commands.CycleCategory(1)
	case keys.KeyPrevCategory:
		m.commands.CycleCategory(-1)
	}
	return nil
}

func (m *home) headerView() string {
	m.tabs = m.tabs[:0]

	var b strings.Builder
	col := 0
	for _, t := range []struct {
		page  page
		label string
	}{
		{pageLanding, "1 Home"},
		{pageCommands, "2 Commands"},
	} {
		style := tabStyle
		if t.page == m.page {
			style = activeTabStyle
		}
		rendered := style.Render(t.label)
		w := lipgloss.Width(rendered)
		m.tabs = append(m.tabs, tabHit{page: t.page, start: col, end: col + w})
		b.WriteString(rendered)
		col += w
	}

	toggle := themeToggleStyle.Render(m.theme.Label())
	gap := m.width - col - lipgloss.Width(toggle)
	if gap < 1 {
		m.themeStart = 0
		return b.String()
	}
	m.themeStart = col + gap
	return b.String() + strings.Repeat(" ", gap) + toggle
}

func (m *home) landingView() string {
	canvas := m.canvas.View()
	title := faqTitleStyle.Render("Frequently asked questions")

	// header, canvas, blank, title, blank
	m.faqTop = 1 + m.canvas.Height() + 3
	body := lipgloss.JoinVertical(lipgloss.Left, canvas, "", title, "", m.faq.View())
	return body
}

func (m *home) View() string {
	header := m.headerView()

	if m.state == stateHelp {
		box := helpBoxStyle.Render(m.helpContent)
		return lipgloss.JoinVertical(lipgloss.Left, header,
			lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box))
	}

	var body string
	switch m.page {
	case pageLanding:
		body = m.landingView()
	case pageCommands:
		body = m.commands.View()
	}

	// Clip to the window so the header never scrolls away.
	lines := strings.Split(body, "\n")
	if limit := m.height - 1; limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	return header + "\n" + strings.Join(lines, "\n")
}

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	activeTabStyle = tabStyle.
			Bold(true).
			Underline(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#7D56F4"})
	themeToggleStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})
	faqTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#000080", Dark: "#87CEFA"})
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)
