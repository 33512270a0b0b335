package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"commandsite/log"
)

// Build parses a commands document and flattens it into an Index. Every
// top-level command is followed directly by its subcommands.
//
// Only unparseable JSON is an error. A document of the wrong shape builds an
// index with whatever could be read, so the page degrades instead of failing.
func Build(data []byte) (*Index, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("failed to parse commands document: invalid JSON")
	}

	ix := &Index{Source: data}
	categories, err := decodeObject(data)
	if err != nil {
		if errors.Is(err, ErrNotObject) {
			log.WarningLog.Printf("commands document is not an object, showing no commands")
			return ix, nil
		}
		return nil, fmt.Errorf("failed to parse commands document: %w", err)
	}

	for _, cat := range categories {
		category := Category{Name: cat.Key}
		commands, err := decodeObject(cat.Value)
		if err != nil {
			log.WarningLog.Printf("category %q is not an object, showing it empty", cat.Key)
		}
		for _, cmd := range commands {
			d := decodeDescriptor(cmd.Value, false)
			category.Commands = append(category.Commands, newIndexed(cmd.Key, "", d, cat.Key))
			for _, sub := range d.Subcommands {
				name := cmd.Key + " " + sub.Name
				category.Commands = append(category.Commands, newIndexed(name, cmd.Key, sub.Descriptor, cat.Key))
			}
		}
		ix.Categories = append(ix.Categories, category)
		ix.Commands = append(ix.Commands, category.Commands...)
	}
	return ix, nil
}

func newIndexed(name, parent string, d Descriptor, category string) IndexedCommand {
	return IndexedCommand{
		QualifiedName: name,
		Descriptor:    d,
		CategoryName:  category,
		Parent:        parent,
		Card:          NewCard(name, d),
	}
}
