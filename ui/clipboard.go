package ui

import (
	"time"

	"commandsite/log"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// CopyConfirmDuration is how long a card shows the check mark after a copy.
const CopyConfirmDuration = 2 * time.Second

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard is the platform clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// CopiedMsg reports a successful copy of a qualified command name.
type CopiedMsg struct {
	Name string
}

type copyResetMsg struct {
	name string
	seq  int
}

// CopyName returns a command that copies name to cb. Failures are logged and
// produce no message.
func CopyName(cb Clipboard, name string) tea.Cmd {
	return func() tea.Msg {
		if err := cb.WriteAll(name); err != nil {
			log.ErrorLog.Printf("failed to copy %q to clipboard: %v", name, err)
			return nil
		}
		return CopiedMsg{Name: name}
	}
}

// CopyTracker remembers which cards show the copied confirmation. Copying the
// same card again restarts its timer.
type CopyTracker struct {
	active map[string]int
	seq    int
}

// NewCopyTracker creates an empty tracker.
func NewCopyTracker() *CopyTracker {
	return &CopyTracker{active: make(map[string]int)}
}

// Copied reports whether name currently shows the confirmation.
func (c *CopyTracker) Copied(name string) bool {
	_, ok := c.active[name]
	return ok
}

// Update handles copy messages. The bool reports whether msg was consumed.
func (c *CopyTracker) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case CopiedMsg:
		c.seq++
		seq := c.seq
		c.active[msg.Name] = seq
		return true, tea.Tick(CopyConfirmDuration, func(time.Time) tea.Msg {
			return copyResetMsg{name: msg.Name, seq: seq}
		})
	case copyResetMsg:
		if c.active[msg.name] == msg.seq {
			delete(c.active, msg.name)
		}
		return true, nil
	}
	return false, nil
}
