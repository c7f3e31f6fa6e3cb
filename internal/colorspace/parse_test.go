package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Notations(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHex    string
		wantFormat Format
	}{
		{"6-digit hex", "#ff8040", "#ff8040", FormatHex},
		{"6-digit hex uppercase", "#FF8040", "#ff8040", FormatHex},
		{"hex without hash", "ff8040", "#ff8040", FormatHex},
		{"3-digit hex", "#f80", "#ff8800", FormatHex},
		{"4-digit hex", "#f808", "#ff8800", FormatHex},
		{"8-digit hex", "#ff804080", "#ff8040", FormatHex},
		{"rgb", "rgb(255, 128, 64)", "#ff8040", FormatRGB},
		{"rgb no spaces", "rgb(255,128,64)", "#ff8040", FormatRGB},
		{"rgb extra whitespace", "rgb(  255 ,	128 , 64  )", "#ff8040", FormatRGB},
		{"rgba", "rgba(255, 128, 64, 0.5)", "#ff8040", FormatRGBA},
		{"uppercase keyword", "RGB(255, 0, 0)", "#ff0000", FormatRGB},
		{"hsl red", "hsl(0, 100%, 50%)", "#ff0000", FormatHSL},
		{"hsla", "hsla(0, 100%, 50%, 1)", "#ff0000", FormatHSLA},
		{"hsl green", "hsl(120, 100%, 50%)", "#00ff00", FormatHSL},
		{"hsv", "hsv(0, 100%, 100%)", "#ff0000", FormatHSV},
		{"hsva", "hsva(240, 100%, 100%, 0.25)", "#0000ff", FormatHSVA},
		{"hwb pure hue", "hwb(0, 0%, 0%)", "#ff0000", FormatHWB},
		{"hwb gray", "hwb(120, 100%, 100%)", "#808080", FormatHWB},
		{"cmyk red", "cmyk(0%, 100%, 100%, 0%)", "#ff0000", FormatCMYK},
		{"cmyk black", "cmyk(0%, 0%, 0%, 100%)", "#000000", FormatCMYK},
		{"lab white", "lab(100, 0, 0)", "#ffffff", FormatLab},
		{"xyz black", "xyz(0, 0, 0)", "#000000", FormatXYZ},
		{"lch white", "lch(100, 0, 0)", "#ffffff", FormatLCh},
		{"named", "red", "#ff0000", FormatNamed},
		{"named mixed case", "RebeccaPurple", "#663399", FormatNamed},
		{"named with spaces", "  coral  ", "#ff7f50", FormatNamed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, f, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, c.Hex())
			assert.Equal(t, tt.wantFormat, f)
		})
	}
}

func TestParse_AlphaDefaults(t *testing.T) {
	c, _, err := Parse("rgb(10, 20, 30)")
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.A)

	c, _, err = Parse("rgba(10, 20, 30, 0.5)")
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.A)

	c, _, err = Parse("#ff804080")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255.0, c.A, 1e-9)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"garbage", "not-a-color"},
		{"5-digit hex", "#ff804"},
		{"hex bad digit", "#ff80gg"},
		{"rgb out of range", "rgb(300, 0, 0)"},
		{"rgb negative", "rgb(-5, 0, 0)"},
		{"rgb too few args", "rgb(255, 0)"},
		{"rgb garbage channel", "rgb(a, b, c)"},
		{"hue above 360", "hsl(400, 100%, 50%)"},
		{"missing percent sign", "hsl(0, 100, 50)"},
		{"negative saturation", "hsl(0, -10%, 50%)"},
		{"percent above 100", "hsv(0, 120%, 100%)"},
		{"alpha above 1", "rgba(0, 0, 0, 1.5)"},
		{"cmyk missing percent", "cmyk(0, 100%, 100%, 0%)"},
		{"lab lightness above 100", "lab(120, 0, 0)"},
		{"xyz negative", "xyz(-10, 0, 0)"},
		{"lch negative chroma", "lch(50, -10, 0)"},
		{"unknown function", "yuv(0, 0, 0)"},
		{"unknown name", "notarealcolor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			assert.ErrorAs(t, err, &perr, "want *ParseError, got %T: %v", err, err)
		})
	}
}

// Detection runs hex first: a bare string of hex digits parses as hex even
// when it could be mistaken for something else.
func TestParse_HexPrecedence(t *testing.T) {
	c, f, err := Parse("abc")
	require.NoError(t, err)
	assert.Equal(t, FormatHex, f)
	assert.Equal(t, "#aabbcc", c.Hex())
}

// A functional keyword that matches structurally but carries bad values must
// fail rather than fall through to later notations.
func TestParse_NoFallthroughAfterKeywordMatch(t *testing.T) {
	_, _, err := Parse("rgb(white, white, white)")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseHex_AlphaForms(t *testing.T) {
	// 8-digit hex is RRGGBBAA: alpha rides in the trailing byte.
	c, err := parseHex("#ff804080")
	require.NoError(t, err)
	assert.Equal(t, "#ff8040", c.Hex())
	assert.InDelta(t, 128.0/255.0, c.A, 1e-9)

	// 4-digit shorthand doubles each digit, alpha included.
	c, err = parseHex("#f008")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.Hex())
	assert.InDelta(t, 136.0/255.0, c.A, 1e-9)
}
