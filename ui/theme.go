package ui

import (
	"commandsite/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DetectDark asks the terminal whether its background is dark.
func DetectDark() bool {
	return termenv.HasDarkBackground()
}

// Theme tracks light/dark mode. It follows the system preference until the
// user toggles it, after which system changes are ignored for the session.
// Nothing is persisted.
type Theme struct {
	dark       bool
	overridden bool
}

// NewTheme resolves the initial mode and applies it.
func NewTheme(pref config.ThemePreference, systemDark bool) *Theme {
	t := &Theme{dark: resolveDark(pref, systemDark)}
	t.apply()
	return t
}

func resolveDark(pref config.ThemePreference, systemDark bool) bool {
	switch pref {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return systemDark
	}
}

// SystemChanged re-applies the system preference unless the user has
// toggled. It reports whether the mode changed.
func (t *Theme) SystemChanged(pref config.ThemePreference, systemDark bool) bool {
	if t.overridden {
		return false
	}
	dark := resolveDark(pref, systemDark)
	if dark == t.dark {
		return false
	}
	t.dark = dark
	t.apply()
	return true
}

// Toggle inverts the mode and stops following the system preference.
func (t *Theme) Toggle() {
	t.dark = !t.dark
	t.overridden = true
	t.apply()
}

// Dark reports whether dark mode is active.
func (t *Theme) Dark() bool {
	return t.dark
}

// Overridden reports whether the user has toggled this session.
func (t *Theme) Overridden() bool {
	return t.overridden
}

// Label names the mode the toggle would switch to.
func (t *Theme) Label() string {
	if t.dark {
		return "☀ light"
	}
	return "☾ dark"
}

func (t *Theme) apply() {
	lipgloss.SetHasDarkBackground(t.dark)
}
