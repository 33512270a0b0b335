package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyEnter // Toggle the focused FAQ entry or copy the selected command
	KeyCopy
	KeyQuit
	KeyHelp
	KeyEsc

	KeyPageUp
	KeyPageDown
	KeyTop // Smooth scroll back to the top

	KeySearch      // Focus the search box
	KeyNextCategory
	KeyPrevCategory

	KeyLanding  // Switch to the landing page
	KeyCommands // Switch to the commands page
	KeyTheme    // Toggle light/dark
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":        KeyUp,
	"k":         KeyUp,
	"down":      KeyDown,
	"j":         KeyDown,
	"pgup":      KeyPageUp,
	"ctrl+u":    KeyPageUp,
	"pgdown":    KeyPageDown,
	"ctrl+d":    KeyPageDown,
	"g":         KeyTop,
	"home":      KeyTop,
	"enter":     KeyEnter,
	" ":         KeyEnter,
	"c":         KeyCopy,
	"y":         KeyCopy,
	"/":         KeySearch,
	"ctrl+k":    KeySearch,
	"tab":       KeyNextCategory,
	"l":         KeyNextCategory,
	"shift+tab": KeyPrevCategory,
	"h":         KeyPrevCategory,
	"1":         KeyLanding,
	"2":         KeyCommands,
	"t":         KeyTheme,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
	"esc":       KeyEsc,
}

// GlobalkeyBindings is a global, immutable map of KeyName tot keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyPageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup/^u", "page up"),
	),
	KeyPageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn/^d", "page down"),
	),
	KeyTop: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("↵", "open/copy"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("/", "ctrl+k"),
		key.WithHelp("/", "search"),
	),
	KeyNextCategory: key.NewBinding(
		key.WithKeys("tab", "l"),
		key.WithHelp("tab", "next category"),
	),
	KeyPrevCategory: key.NewBinding(
		key.WithKeys("shift+tab", "h"),
		key.WithHelp("⇧tab", "prev category"),
	),
	KeyLanding: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "home"),
	),
	KeyCommands: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "commands"),
	),
	KeyTheme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),

	// General keybinding
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// Lookup resolves a key string such as "ctrl+k" to its binding name.
func Lookup(s string) (KeyName, bool) {
	name, ok := GlobalKeyStringsMap[s]
	return name, ok
}
