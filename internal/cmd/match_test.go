package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPantryNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pantry.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Tomato", "quantity": 3},
		{"name": "flour", "quantity": 500, "unit": "g"},
		{"name": ""}
	]`), 0o644))

	names, err := pantryNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"flour", "tomato"}, names)
}

func TestPantryNamesBadFile(t *testing.T) {
	_, err := pantryNames(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
