package colorspace

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is the canonical color value: 8-bit sRGB channels plus an alpha
// fraction. It is an immutable value type; every derived color space is a
// pure function of these four fields, so two Colors with equal fields are
// interchangeable everywhere.
type Color struct {
	R uint8   `json:"r"` // Red component (0-255)
	G uint8   `json:"g"` // Green component (0-255)
	B uint8   `json:"b"` // Blue component (0-255)
	A float64 `json:"a"` // Alpha/opacity (0.0-1.0)
}

// HSL holds hue (0-360), saturation (0-100) and lightness (0-100).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSV holds hue (0-360), saturation (0-100) and value (0-100).
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HWB holds hue (0-360), whiteness (0-100) and blackness (0-100).
type HWB struct {
	H float64 `json:"h"`
	W float64 `json:"w"`
	B float64 `json:"b"`
}

// CMYK holds cyan/magenta/yellow/key, each 0-100.
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// XYZ holds CIE XYZ tristimulus values on the 0-100 scale (D65 white is
// roughly X=95.047, Y=100, Z=108.883).
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Lab holds CIE L*a*b* referenced to D65: L 0-100, a/b unbounded around 0.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// LCh is the polar form of Lab: L 0-100, chroma >= 0, hue 0-360.
type LCh struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// OKLab holds OKLab coordinates: L 0-1, a/b roughly within ±0.4.
type OKLab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// OKLCh is the polar form of OKLab: L 0-1, chroma roughly 0-0.37, hue 0-360.
type OKLCh struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// FromRGB builds a Color from integer channels and an alpha fraction.
func FromRGB(r, g, b int, a float64) (Color, error) {
	if r < 0 || r > 255 {
		return Color{}, rangeError("red", float64(r), 0, 255)
	}
	if g < 0 || g > 255 {
		return Color{}, rangeError("green", float64(g), 0, 255)
	}
	if b < 0 || b > 255 {
		return Color{}, rangeError("blue", float64(b), 0, 255)
	}
	if a < 0 || a > 1 {
		return Color{}, rangeError("alpha", a, 0, 1)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: a}, nil
}

// FromHex builds a Color from a 3/4/6/8-digit hex literal, with or without a
// leading '#'. Shorthand digits are doubled; 4- and 8-digit forms carry alpha
// in the trailing byte.
func FromHex(s string) (Color, error) {
	return parseHex(s)
}

// FromHSL builds a Color from hue (0-360), saturation and lightness (0-100)
// plus alpha.
func FromHSL(h, s, l, a float64) (Color, error) {
	if err := checkHue("hue", h); err != nil {
		return Color{}, err
	}
	if err := checkPercent("saturation", s); err != nil {
		return Color{}, err
	}
	if err := checkPercent("lightness", l); err != nil {
		return Color{}, err
	}
	if a < 0 || a > 1 {
		return Color{}, rangeError("alpha", a, 0, 1)
	}
	return fromColorful(colorful.Hsl(normalizeHue(h), s/100, l/100), a), nil
}

// FromHSV builds a Color from hue (0-360), saturation and value (0-100) plus
// alpha.
func FromHSV(h, s, v, a float64) (Color, error) {
	if err := checkHue("hue", h); err != nil {
		return Color{}, err
	}
	if err := checkPercent("saturation", s); err != nil {
		return Color{}, err
	}
	if err := checkPercent("value", v); err != nil {
		return Color{}, err
	}
	if a < 0 || a > 1 {
		return Color{}, rangeError("alpha", a, 0, 1)
	}
	return fromColorful(colorful.Hsv(normalizeHue(h), s/100, v/100), a), nil
}

// FromHWB builds a Color from hue (0-360) plus whiteness and blackness
// percentages. Whiteness and blackness summing past 100 desaturate to gray,
// per the HWB model.
func FromHWB(h, w, b, a float64) (Color, error) {
	if err := checkHue("hue", h); err != nil {
		return Color{}, err
	}
	if err := checkPercent("whiteness", w); err != nil {
		return Color{}, err
	}
	if err := checkPercent("blackness", b); err != nil {
		return Color{}, err
	}
	if a < 0 || a > 1 {
		return Color{}, rangeError("alpha", a, 0, 1)
	}
	pure := colorful.Hsl(normalizeHue(h), 1, 0.5)
	r, g, bl := hwbToRGB(pure.R, pure.G, pure.B, w/100, b/100)
	return fromColorful(colorful.Color{R: r, G: g, B: bl}, a), nil
}

// FromCMYK builds a Color from cyan/magenta/yellow/key percentages plus
// alpha.
func FromCMYK(c, m, y, k, a float64) (Color, error) {
	for _, ch := range []struct {
		name string
		v    float64
	}{{"cyan", c}, {"magenta", m}, {"yellow", y}, {"key", k}} {
		if err := checkPercent(ch.name, ch.v); err != nil {
			return Color{}, err
		}
	}
	if a < 0 || a > 1 {
		return Color{}, rangeError("alpha", a, 0, 1)
	}
	r, g, b := cmykToRGB(c/100, m/100, y/100, k/100)
	return fromColorful(colorful.Color{R: r, G: g, B: b}, a), nil
}

// FromXYZ builds a Color from CIE XYZ tristimulus values on the 0-100 scale.
// Out-of-gamut values clamp at the RGB boundary; this is documented lossy
// behavior, not an error.
func FromXYZ(x, y, z, a float64) (Color, error) {
	for _, ch := range []struct {
		name string
		v    float64
	}{{"x", x}, {"y", y}, {"z", z}} {
		if ch.v < 0 {
			return Color{}, rangeError(ch.name, ch.v, 0, math.Inf(1))
		}
	}
	if a < 0 || a > 1 {
		return Color{}, rangeError("alpha", a, 0, 1)
	}
	return fromColorful(colorful.Xyz(x/100, y/100, z/100), a), nil
}

// FromLab builds a Color from CIE L*a*b* (D65). L must be 0-100; a and b are
// unbounded. Out-of-gamut values clamp at the RGB boundary.
func FromLab(l, aa, bb, alpha float64) (Color, error) {
	if l < 0 || l > 100 {
		return Color{}, rangeError("lightness", l, 0, 100)
	}
	if alpha < 0 || alpha > 1 {
		return Color{}, rangeError("alpha", alpha, 0, 1)
	}
	return fromColorful(colorful.Lab(l/100, aa/100, bb/100), alpha), nil
}

// FromLCh builds a Color from the polar form of Lab: L 0-100, chroma >= 0,
// hue 0-360. Out-of-gamut values clamp at the RGB boundary.
func FromLCh(l, c, h, alpha float64) (Color, error) {
	if l < 0 || l > 100 {
		return Color{}, rangeError("lightness", l, 0, 100)
	}
	if c < 0 {
		return Color{}, rangeError("chroma", c, 0, math.Inf(1))
	}
	if err := checkHue("hue", h); err != nil {
		return Color{}, err
	}
	if alpha < 0 || alpha > 1 {
		return Color{}, rangeError("alpha", alpha, 0, 1)
	}
	return fromColorful(colorful.Hcl(normalizeHue(h), c/100, l/100), alpha), nil
}

// FromOKLab builds a Color from OKLab coordinates (L 0-1). Out-of-gamut
// values clamp at the RGB boundary.
func FromOKLab(l, aa, bb, alpha float64) (Color, error) {
	if l < 0 || l > 1 {
		return Color{}, rangeError("lightness", l, 0, 1)
	}
	if alpha < 0 || alpha > 1 {
		return Color{}, rangeError("alpha", alpha, 0, 1)
	}
	lr, lg, lb := oklabToLinearRGB(l, aa, bb)
	return fromColorful(colorful.Color{
		R: linearToSRGB(clamp01(lr)),
		G: linearToSRGB(clamp01(lg)),
		B: linearToSRGB(clamp01(lb)),
	}, alpha), nil
}

// FromOKLCh builds a Color from the polar form of OKLab: L 0-1, chroma >= 0,
// hue 0-360. Out-of-gamut values clamp at the RGB boundary.
func FromOKLCh(l, c, h, alpha float64) (Color, error) {
	if l < 0 || l > 1 {
		return Color{}, rangeError("lightness", l, 0, 1)
	}
	if c < 0 {
		return Color{}, rangeError("chroma", c, 0, math.Inf(1))
	}
	if err := checkHue("hue", h); err != nil {
		return Color{}, err
	}
	aa, bb := labCartesian(c, normalizeHue(h))
	return FromOKLab(l, aa, bb, alpha)
}

// Hex returns the canonical lowercase 6-digit hex rendering, alpha excluded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL returns the hue/saturation/lightness decomposition.
func (c Color) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: normalizeHue(h), S: clampDomain(s*100, 0, 100), L: clampDomain(l*100, 0, 100)}
}

// HSV returns the hue/saturation/value decomposition.
func (c Color) HSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: normalizeHue(h), S: clampDomain(s*100, 0, 100), V: clampDomain(v*100, 0, 100)}
}

// HWB returns the hue/whiteness/blackness decomposition.
func (c Color) HWB() HWB {
	cf := c.colorful()
	hue, _, _ := cf.Hsl()
	h, w, b := rgbToHWB(cf.R, cf.G, cf.B, normalizeHue(hue))
	return HWB{H: h, W: w * 100, B: b * 100}
}

// CMYK returns the cyan/magenta/yellow/key decomposition.
func (c Color) CMYK() CMYK {
	cf := c.colorful()
	cc, m, y, k := rgbToCMYK(cf.R, cf.G, cf.B)
	return CMYK{C: cc * 100, M: m * 100, Y: y * 100, K: k * 100}
}

// XYZ returns the CIE XYZ tristimulus values on the 0-100 scale.
func (c Color) XYZ() XYZ {
	x, y, z := c.colorful().Xyz()
	return XYZ{
		X: clampDomain(x*100, 0, math.Inf(1)),
		Y: clampDomain(y*100, 0, math.Inf(1)),
		Z: clampDomain(z*100, 0, math.Inf(1)),
	}
}

// Lab returns the CIE L*a*b* coordinates referenced to D65.
func (c Color) Lab() Lab {
	l, a, b := c.colorful().Lab()
	return Lab{L: clampDomain(l*100, 0, 100), A: a * 100, B: b * 100}
}

// LCh returns the polar form of Lab.
func (c Color) LCh() LCh {
	h, ch, l := c.colorful().Hcl()
	return LCh{L: clampDomain(l*100, 0, 100), C: clampDomain(ch*100, 0, math.Inf(1)), H: normalizeHue(h)}
}

// OKLab returns the OKLab coordinates.
func (c Color) OKLab() OKLab {
	cf := c.colorful()
	l, a, b := linearRGBToOKLab(srgbToLinear(cf.R), srgbToLinear(cf.G), srgbToLinear(cf.B))
	return OKLab{L: clampDomain(l, 0, 1), A: a, B: b}
}

// OKLCh returns the polar form of OKLab.
func (c Color) OKLCh() OKLCh {
	ok := c.OKLab()
	chroma, hue := labPolar(ok.A, ok.B)
	return OKLCh{L: ok.L, C: chroma, H: hue}
}

// colorful converts the canonical channels into a go-colorful value with
// normalized 0-1 channels. Alpha does not participate in space conversions.
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// fromColorful rounds a go-colorful value back onto the canonical 8-bit
// channels, clamping out-of-gamut results to [0,255].
func fromColorful(cf colorful.Color, alpha float64) Color {
	cf = cf.Clamped()
	return Color{
		R: uint8(math.Round(cf.R * 255)),
		G: uint8(math.Round(cf.G * 255)),
		B: uint8(math.Round(cf.B * 255)),
		A: alpha,
	}
}

func checkHue(name string, h float64) error {
	if h < 0 || h > 360 {
		return rangeError(name, h, 0, 360)
	}
	return nil
}

func checkPercent(name string, v float64) error {
	if v < 0 || v > 100 {
		return rangeError(name, v, 0, 100)
	}
	return nil
}
