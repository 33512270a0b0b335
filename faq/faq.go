// Package faq holds the landing page's questions and answers.
package faq

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed faq.json
var defaultEntries []byte

// ErrEmpty is returned for a document with no usable entries.
var ErrEmpty = errors.New("faq document has no entries")

// Entry is one question with a markdown answer.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Default returns the compiled-in entries.
func Default() []Entry {
	entries, err := Parse(defaultEntries)
	if err != nil {
		panic(fmt.Sprintf("embedded faq is invalid: %v", err))
	}
	return entries
}

// Load reads entries from path, or returns the defaults when path is empty.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read faq: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of entries. Entries without a question are
// dropped.
func Parse(data []byte) ([]Entry, error) {
	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse faq: %w", err)
	}
	entries := make([]Entry, 0, len(raw))
	for _, e := range raw {
		e.Question = strings.TrimSpace(e.Question)
		if e.Question == "" {
			continue
		}
		e.Answer = strings.TrimSpace(e.Answer)
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	return entries, nil
}
