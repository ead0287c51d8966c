package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	m := Messages{
		"title": "Nearby Facilities",
		"nav": map[string]any{
			"home":   "Home",
			"submit": "Submit",
		},
		"count":   float64(3),
		"enabled": true,
	}

	flat := Flatten(m)

	assert.Equal(t, "Nearby Facilities", flat["title"])
	assert.Equal(t, "Home", flat["nav.home"])
	assert.Equal(t, "Submit", flat["nav.submit"])
	assert.Equal(t, "3", flat["count"])
	assert.Equal(t, "true", flat["enabled"])
	assert.Len(t, flat, 5)
}

func TestDiff(t *testing.T) {
	canonical := Messages{
		"a": "1",
		"b": map[string]any{"c": "2"},
	}
	locale := Messages{
		"a":      "x",
		"legacy": "old",
	}

	missing, extra := Diff(canonical, locale)

	assert.Equal(t, []string{"b.c"}, missing)
	assert.Equal(t, []string{"legacy"}, extra)
}

func TestDiffComplete(t *testing.T) {
	canonical := Messages{"a": "1", "b": map[string]any{"c": "2"}}
	locale := Messages{"a": "un", "b": map[string]any{"c": "deux"}}

	missing, extra := Diff(canonical, locale)
	assert.Empty(t, missing)
	assert.Empty(t, extra)
}

func TestFill(t *testing.T) {
	canonical := Messages{
		"a": "1",
		"b": map[string]any{"c": "2"},
	}
	locale := Messages{"a": "x"}

	filled := Fill(canonical, locale)

	assert.Equal(t, []string{"b.c"}, filled)
	assert.Equal(t, "x", locale["a"], "existing translations are untouched")
	b, ok := locale["b"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2", b["c"], "missing keys get the canonical text")
}

func TestFillIdempotent(t *testing.T) {
	canonical := Messages{
		"a": "1",
		"b": map[string]any{"c": "2", "d": map[string]any{"e": "3"}},
	}
	locale := Messages{}

	first := Fill(canonical, locale)
	assert.Equal(t, []string{"a", "b.c", "b.d.e"}, first)

	second := Fill(canonical, locale)
	assert.Empty(t, second)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fr.json")

	m := Messages{"a": "x", "b": map[string]any{"c": "y"}}
	require.NoError(t, Save(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n', "file ends with a newline")
	assert.Contains(t, string(data), "  \"a\": \"x\"", "two-space indentation")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
