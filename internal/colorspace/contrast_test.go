package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastRatio_Extremes(t *testing.T) {
	black := mustHex(t, "#000000")
	white := mustHex(t, "#ffffff")

	assert.InDelta(t, 21.0, ContrastRatio(black, white), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(white, black), 1e-9, "ratio is symmetric")
}

func TestContrastRatio_SelfIsOne(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#ff8040", "#123456", "#808080"} {
		c := mustHex(t, hex)
		assert.Equal(t, 1.0, ContrastRatio(c, c), "self-contrast of %s", hex)
	}
}

func TestContrastRatio_Range(t *testing.T) {
	pairs := [][2]string{
		{"#ff0000", "#00ff00"}, {"#123456", "#654321"}, {"#ffffff", "#fffffe"},
	}
	for _, p := range pairs {
		r := ContrastRatio(mustHex(t, p[0]), mustHex(t, p[1]))
		assert.GreaterOrEqual(t, r, 1.0)
		assert.LessOrEqual(t, r, 21.0)
	}
}

func TestWCAGThresholds(t *testing.T) {
	assert.False(t, MeetsWCAGAA(4.49))
	assert.True(t, MeetsWCAGAA(4.5))
	assert.False(t, MeetsWCAGAAA(6.99))
	assert.True(t, MeetsWCAGAAA(7.0))

	// Black on white clears both.
	r := ContrastRatio(mustHex(t, "#000000"), mustHex(t, "#ffffff"))
	assert.True(t, MeetsWCAGAA(r))
	assert.True(t, MeetsWCAGAAA(r))

	// Mid-gray on white clears neither.
	r = ContrastRatio(mustHex(t, "#999999"), mustHex(t, "#ffffff"))
	assert.False(t, MeetsWCAGAA(r))
	assert.False(t, MeetsWCAGAAA(r))
}

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeLuminance(mustHex(t, "#000000")), 1e-9)
	assert.InDelta(t, 1.0, RelativeLuminance(mustHex(t, "#ffffff")), 1e-9)
	// Green dominates the weighting.
	assert.Greater(t,
		RelativeLuminance(mustHex(t, "#00ff00")),
		RelativeLuminance(mustHex(t, "#ff0000")))
}

func TestBrightness_LegacyWeights(t *testing.T) {
	assert.Equal(t, 0.0, Brightness(mustHex(t, "#000000")))
	assert.Equal(t, 255.0, Brightness(mustHex(t, "#ffffff")))
	// 0.299*255 for pure red.
	assert.InDelta(t, 76.245, Brightness(mustHex(t, "#ff0000")), 1e-9)
	// Distinct from the WCAG luminance weighting: brightness is linear in
	// the raw channels, no gamma decompanding.
	assert.InDelta(t, 149.685, Brightness(mustHex(t, "#00ff00")), 1e-9)
}

func TestOverlayTextColor(t *testing.T) {
	assert.Equal(t, "#ffffff", OverlayTextColor(mustHex(t, "#000000")).Hex())
	assert.Equal(t, "#000000", OverlayTextColor(mustHex(t, "#ffffff")).Hex())
	assert.Equal(t, "#000000", OverlayTextColor(mustHex(t, "#ffff00")).Hex())
}

func TestClassifyTemperature(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		want Temperature
	}{
		{"red", 0, TemperatureWarm},
		{"orange", 30, TemperatureWarm},
		{"yellow", 60, TemperatureWarm},
		{"yellow-green", 100, TemperatureNeutral},
		{"green", 120, TemperatureNeutral},
		{"teal", 160, TemperatureCool},
		{"cyan", 180, TemperatureCool},
		{"blue", 240, TemperatureCool},
		{"magenta-red", 330, TemperatureWarm},
		{"violet-red boundary", 300, TemperatureWarm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromHSL(tt.hue, 100, 50, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ClassifyTemperature(c))
		})
	}
}
