// Package ui holds snapshot helpers for rendering terminal components outside
// a running program.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

// TestRenderer captures the rendered output of UI components and compares it
// with snapshot files.
type TestRenderer struct {
	// Path where snapshots will be stored
	SnapshotPath string
	// Whether to overwrite existing snapshots
	UpdateSnapshots bool
	// Whether to strip ANSI escape codes from output
	StripColors bool
}

// NewTestRenderer creates a TestRenderer. UPDATE_SNAPSHOTS=true rewrites
// snapshots instead of comparing.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{
		SnapshotPath:    "snapshots",
		UpdateSnapshots: os.Getenv("UPDATE_SNAPSHOTS") == "true",
	}
}

// SetSnapshotPath sets the path where snapshots will be stored
func (r *TestRenderer) SetSnapshotPath(path string) *TestRenderer {
	r.SnapshotPath = path
	return r
}

// DisableColors strips ANSI escape codes from output
func (r *TestRenderer) DisableColors() *TestRenderer {
	r.StripColors = true
	return r
}

// ViewFunc adapts a render call that takes arguments, like a card or the
// category bar, to a component.
type ViewFunc func() string

func (f ViewFunc) View() string { return f() }

// RenderComponent renders anything with a View() or String() method.
func (r *TestRenderer) RenderComponent(component interface{}) (string, error) {
	var output string
	switch c := component.(type) {
	case interface{ View() string }:
		output = c.View()
	case fmt.Stringer:
		output = c.String()
	default:
		return "", fmt.Errorf("component does not implement View() or String()")
	}

	if r.StripColors {
		output = ansi.Strip(output)
	}
	return output, nil
}

// CompareComponentWithSnapshot compares a rendered component with a saved
// snapshot. A missing snapshot is written and the test passes.
func (r *TestRenderer) CompareComponentWithSnapshot(t *testing.T, component interface{}, filename string) {
	t.Helper()

	output, err := r.RenderComponent(component)
	if err != nil {
		t.Fatalf("Failed to render component: %v", err)
	}

	snapshotPath := filepath.Join(r.SnapshotPath, filename)
	expected, err := os.ReadFile(snapshotPath)
	if r.UpdateSnapshots || os.IsNotExist(err) {
		if err := os.MkdirAll(r.SnapshotPath, 0755); err != nil {
			t.Fatalf("Failed to create snapshot directory: %v", err)
		}
		if err := os.WriteFile(snapshotPath, []byte(output), 0644); err != nil {
			t.Fatalf("Failed to write snapshot: %v", err)
		}
		t.Logf("Wrote snapshot: %s", filename)
		return
	}
	if err != nil {
		t.Fatalf("Failed to read snapshot: %v", err)
	}

	if diff := cmp.Diff(string(expected), output); diff != "" {
		t.Errorf("Rendered output does not match snapshot %s (-want +got):\n%s", filename, diff)
	}
}

// Updater is a component driven by messages, like the commands pane.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// MockTerminal sends terminal events to a component.
type MockTerminal struct {
	Width  int
	Height int
}

// NewMockTerminal creates a new MockTerminal with default dimensions
func NewMockTerminal() *MockTerminal {
	return &MockTerminal{
		Width:  80,
		Height: 24,
	}
}

// SetSize sets the terminal dimensions
func (m *MockTerminal) SetSize(width, height int) *MockTerminal {
	m.Width = width
	m.Height = height
	return m
}

// KeyMsg builds the key message for a key name like "enter" or a typed string.
func KeyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc", "escape":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backtab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// SimulateKeyPress sends one key to a component.
func (m *MockTerminal) SimulateKeyPress(component Updater, key string) tea.Cmd {
	return component.Update(KeyMsg(key))
}

// SimulateClick sends a left click at x, y.
func (m *MockTerminal) SimulateClick(component Updater, x, y int) tea.Cmd {
	return component.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// SimulateWindowResize sends the terminal size to a component.
func (m *MockTerminal) SimulateWindowResize(component Updater) tea.Cmd {
	return component.Update(tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
}
