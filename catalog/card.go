package catalog

import (
	"strings"
)

// None is shown for any empty or missing field.
const None = "None"

// Card is the display form of one command. It holds text only; the terminal
// and HTTP renderers decide how it looks.
type Card struct {
	Name        string
	Description string
	Arguments   string
	Permissions string
}

// NewCard builds the card for a command. It is pure: the same descriptor
// always yields the same card.
func NewCard(name string, d Descriptor) Card {
	desc := d.Description
	if strings.TrimSpace(desc) == "" {
		desc = None
	}
	return Card{
		Name:        name,
		Description: desc,
		Arguments:   FormatArguments(d.Arguments),
		Permissions: FormatPermissions(d.Permissions),
	}
}

// FormatArguments joins arguments with ", " in order. Required arguments are
// marked with "*" and defaults appended as "=value".
func FormatArguments(args []Argument) string {
	if len(args) == 0 {
		return None
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		var b strings.Builder
		b.WriteString(arg.Name)
		if arg.Required {
			b.WriteString("*")
		}
		if arg.Default != "" {
			b.WriteString("=")
			b.WriteString(arg.Default)
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

// FormatPermissions joins permissions with ", " in order.
func FormatPermissions(perms []string) string {
	if len(perms) == 0 {
		return None
	}
	return strings.Join(perms, ", ")
}
