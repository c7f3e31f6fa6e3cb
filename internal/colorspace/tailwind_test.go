package colorspace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestTailwind_ExactEntries(t *testing.T) {
	// Palette entries resolve to themselves at distance zero.
	tests := []struct {
		hex  string
		want string
	}{
		{"#ef4444", "red-500"},
		{"#3b82f6", "blue-500"},
		{"#22c55e", "green-500"},
		{"#0f172a", "slate-900"},
		{"#fdf2f8", "pink-50"},
	}
	for _, tt := range tests {
		name, hex := NearestTailwind(mustHex(t, tt.hex))
		assert.Equal(t, tt.want, name)
		assert.Equal(t, tt.hex, hex)
	}
}

func TestNearestTailwind_OffPaletteColors(t *testing.T) {
	// Pure red is nearest one of the red shades.
	name, hex := NearestTailwind(mustHex(t, "#ff0000"))
	assert.True(t, strings.HasPrefix(name, "red-"), "got %s", name)
	require.NotEmpty(t, hex)

	// Any input yields some swatch; the search never comes back empty.
	for _, in := range []string{"#000000", "#ffffff", "#123456", "#c0ffee"} {
		name, hex := NearestTailwind(mustHex(t, in))
		assert.NotEmpty(t, name)
		assert.NotEmpty(t, hex)
	}
}

func TestTailwindPalette_WellFormed(t *testing.T) {
	seen := make(map[string]bool, len(tailwindPalette))
	for _, sw := range tailwindPalette {
		assert.False(t, seen[sw.Name], "duplicate swatch name %s", sw.Name)
		seen[sw.Name] = true

		_, err := parseHex(sw.Hex)
		require.NoError(t, err, "swatch %s has malformed hex %q", sw.Name, sw.Hex)
	}
	assert.Len(t, tailwindPalette, 220)
}
