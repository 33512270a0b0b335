// Package catalog turns a commands document into the index the commands page
// is rendered from.
//
// A document maps category name to command name to descriptor. Key order in the
// document is display order, so decoding keeps it.
package catalog

// Argument describes one argument of a command.
type Argument struct {
	Name     string
	Required bool
	// Default is empty when the command has no default for the argument.
	Default string
}

// Descriptor is the static help record for one command.
type Descriptor struct {
	Description string
	Arguments   []Argument
	Permissions []string
	// Subcommands are only read one level deep.
	Subcommands []Subcommand
}

// Subcommand is a named descriptor nested under a top-level command.
type Subcommand struct {
	Name       string
	Descriptor Descriptor
}

// IndexedCommand is one entry of the flattened index.
type IndexedCommand struct {
	// QualifiedName is "parent sub" for subcommands.
	QualifiedName string
	Descriptor    Descriptor
	CategoryName  string
	// Parent is the top-level command name for subcommands, empty otherwise.
	Parent string
	Card   Card
}

// IsSubcommand reports whether the entry came from a subcommands mapping.
func (c IndexedCommand) IsSubcommand() bool {
	return c.Parent != ""
}

// Category is a named group of commands in document order.
type Category struct {
	Name     string
	Commands []IndexedCommand
}

// Index is built once per load and never changes afterwards.
type Index struct {
	Categories []Category
	// Commands is every entry of every category, in display order.
	Commands []IndexedCommand
	// Source is the document the index was built from.
	Source []byte
}

// Len returns the number of indexed commands, subcommands included.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.Commands)
}

// CategoryNames returns the category names in document order.
func (ix *Index) CategoryNames() []string {
	if ix == nil {
		return nil
	}
	names := make([]string, len(ix.Categories))
	for i, c := range ix.Categories {
		names[i] = c.Name
	}
	return names
}

// Category looks a category up by name.
func (ix *Index) Category(name string) (Category, bool) {
	if ix == nil {
		return Category{}, false
	}
	for _, c := range ix.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Lookup finds the first entry with the given qualified name.
func (ix *Index) Lookup(qualifiedName string) (IndexedCommand, bool) {
	if ix == nil {
		return IndexedCommand{}, false
	}
	for _, c := range ix.Commands {
		if c.QualifiedName == qualifiedName {
			return c, true
		}
	}
	return IndexedCommand{}, false
}
