package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedColor_Lookup(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"black", "#000000"},
		{"white", "#ffffff"},
		{"red", "#ff0000"},
		{"rebeccapurple", "#663399"},
		{"coral", "#ff7f50"},
		{"dodgerblue", "#1e90ff"},
		{"papayawhip", "#ffefd5"},
	}
	for _, tt := range tests {
		c, ok := NamedColor(tt.name)
		require.True(t, ok, "expected %q in the named-color table", tt.name)
		assert.Equal(t, tt.hex, c.Hex())
	}

	_, ok := NamedColor("notacolor")
	assert.False(t, ok)
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf(mustHex(t, "#ff0000"))
	require.True(t, ok)
	assert.Equal(t, "red", name)

	// Shared hexes resolve deterministically to the alphabetically first
	// keyword.
	name, ok = NameOf(mustHex(t, "#00ffff"))
	require.True(t, ok)
	assert.Equal(t, "aqua", name)

	_, ok = NameOf(mustHex(t, "#123457"))
	assert.False(t, ok)
}

func TestNamedColorTable_Size(t *testing.T) {
	// CSS Color Level 4 defines 148 named colors.
	assert.Len(t, namedColors, 148)
}

func TestIsValid(t *testing.T) {
	valid := []string{"#ff8040", "rgb(1, 2, 3)", "hsl(0, 100%, 50%)", "coral", "cmyk(0%, 0%, 0%, 100%)"}
	for _, in := range valid {
		assert.True(t, IsValid(in), "expected %q to be valid", in)
	}

	invalid := []string{"", "not-a-color", "rgb(999, 0, 0)", "hsl(0, 100, 50)", "#ggg"}
	for _, in := range invalid {
		assert.False(t, IsValid(in), "expected %q to be invalid", in)
	}
}
