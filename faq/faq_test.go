package faq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEntries(t *testing.T) {
	entries := Default()
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e.Question)
		assert.NotEmpty(t, e.Answer)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	doc := `[
		{"question": "  First?  ", "answer": "One."},
		{"question": "", "answer": "dropped"},
		{"question": "Second?"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	entries, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Question: "First?", Answer: "One."},
		{Question: "Second?"},
	}, entries)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	entries, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), entries)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"question": "not an array"}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[]`))
	assert.ErrorIs(t, err, ErrEmpty)
}
