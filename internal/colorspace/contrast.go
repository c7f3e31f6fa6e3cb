package colorspace

import "math"

// WCAG contrast thresholds for normal text.
const (
	WCAGAAThreshold  = 4.5
	WCAGAAAThreshold = 7.0
)

// Temperature is the coarse warm/neutral/cool classification of a hue.
type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureNeutral Temperature = "neutral"
	TemperatureCool    Temperature = "cool"
)

// RelativeLuminance computes the WCAG relative luminance: the 0.2126 /
// 0.7152 / 0.0722 weighted sum over gamma-decompanded channels. White is 1,
// black is 0.
func RelativeLuminance(c Color) float64 {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio computes the WCAG contrast ratio between two colors:
// (Lmax + 0.05) / (Lmin + 0.05), in [1, 21]. It is symmetric; a color
// against itself is exactly 1, black against white exactly 21.
func ContrastRatio(a, b Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// MeetsWCAGAA reports whether the ratio clears the AA threshold (4.5) for
// normal text.
func MeetsWCAGAA(ratio float64) bool {
	return ratio >= WCAGAAThreshold
}

// MeetsWCAGAAA reports whether the ratio clears the AAA threshold (7.0) for
// normal text.
func MeetsWCAGAAA(ratio float64) bool {
	return ratio >= WCAGAAAThreshold
}

// Brightness computes the legacy perceived brightness 0.299R + 0.587G +
// 0.114B on the raw 0-255 channels. This is the old YIQ weighting used for
// picking overlay text color; it is not the WCAG luminance and carries no
// accessibility meaning.
func Brightness(c Color) float64 {
	return (299*float64(c.R) + 587*float64(c.G) + 114*float64(c.B)) / 1000
}

// OverlayTextColor picks black or white text for use on top of the color,
// using the legacy brightness midpoint.
func OverlayTextColor(c Color) Color {
	if Brightness(c) >= 128 {
		return Color{R: 0, G: 0, B: 0, A: 1}
	}
	return Color{R: 255, G: 255, B: 255, A: 1}
}

// ClassifyTemperature buckets the color's hue: red through yellow
// ([0,90) and [300,360)) is warm, the green band [90,150) neutral, and cyan
// through violet [150,300) cool.
func ClassifyTemperature(c Color) Temperature {
	h := math.Mod(c.HSL().H, 360)
	switch {
	case h < 90 || h >= 300:
		return TemperatureWarm
	case h < 150:
		return TemperatureNeutral
	default:
		return TemperatureCool
	}
}
