package colorspace

import (
	"fmt"
	"math"
	"strconv"
)

// Format enumerates the supported output formats and platform snippets. The
// zero value is not a valid format.
type Format int

const (
	FormatHex Format = iota + 1
	FormatRGB
	FormatRGBA
	FormatHSL
	FormatHSLA
	FormatHSV
	FormatHSVA
	FormatHWB
	FormatCMYK
	FormatLab
	FormatXYZ
	FormatLCh
	FormatOKLab
	FormatOKLCh
	FormatCSSVar
	FormatSCSSVar
	FormatSwift
	FormatAndroid
	FormatFlutter
	FormatTailwind
	FormatNamed
)

var formatTags = map[Format]string{
	FormatHex:      "hex",
	FormatRGB:      "rgb",
	FormatRGBA:     "rgba",
	FormatHSL:      "hsl",
	FormatHSLA:     "hsla",
	FormatHSV:      "hsv",
	FormatHSVA:     "hsva",
	FormatHWB:      "hwb",
	FormatCMYK:     "cmyk",
	FormatLab:      "lab",
	FormatXYZ:      "xyz",
	FormatLCh:      "lch",
	FormatOKLab:    "oklab",
	FormatOKLCh:    "oklch",
	FormatCSSVar:   "css-var",
	FormatSCSSVar:  "scss-var",
	FormatSwift:    "swift",
	FormatAndroid:  "android",
	FormatFlutter:  "flutter",
	FormatTailwind: "tailwind",
	FormatNamed:    "named",
}

func (f Format) String() string {
	if tag, ok := formatTags[f]; ok {
		return tag
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// tagFormats is the reverse lookup of formatTags.
var tagFormats = func() map[string]Format {
	rev := make(map[string]Format, len(formatTags))
	for f, t := range formatTags {
		rev[t] = f
	}
	return rev
}()

// ParseFormat maps a format tag (e.g. "hex", "oklch", "css-var") onto its
// Format value. Unknown tags fail with *UnsupportedFormatError.
func ParseFormat(tag string) (Format, error) {
	f, ok := tagFormats[tag]
	if !ok {
		return 0, &UnsupportedFormatError{Tag: tag}
	}
	return f, nil
}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	out := make([]Format, 0, len(formatTags))
	for f := FormatHex; f <= FormatNamed; f++ {
		out = append(out, f)
	}
	return out
}

// Format renders the color in the requested format. Numeric tokens carry
// exactly precision decimal digits; precision 0 omits the decimal point.
// FormatNamed fails with ErrNoNamedColor when the color has no exact CSS
// keyword; the fallback rendering is the caller's choice.
func (c Color) Format(f Format, precision int) (string, error) {
	if precision < 0 {
		precision = 0
	}
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	pct := func(v float64) string {
		return num(v) + "%"
	}

	switch f {
	case FormatHex:
		return c.Hex(), nil
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B), nil
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, num(c.A)), nil
	case FormatHSL:
		h := c.HSL()
		return fmt.Sprintf("hsl(%s, %s, %s)", num(h.H), pct(h.S), pct(h.L)), nil
	case FormatHSLA:
		h := c.HSL()
		return fmt.Sprintf("hsla(%s, %s, %s, %s)", num(h.H), pct(h.S), pct(h.L), num(c.A)), nil
	case FormatHSV:
		h := c.HSV()
		return fmt.Sprintf("hsv(%s, %s, %s)", num(h.H), pct(h.S), pct(h.V)), nil
	case FormatHSVA:
		h := c.HSV()
		return fmt.Sprintf("hsva(%s, %s, %s, %s)", num(h.H), pct(h.S), pct(h.V), num(c.A)), nil
	case FormatHWB:
		h := c.HWB()
		return fmt.Sprintf("hwb(%s, %s, %s)", num(h.H), pct(h.W), pct(h.B)), nil
	case FormatCMYK:
		k := c.CMYK()
		return fmt.Sprintf("cmyk(%s, %s, %s, %s)", pct(k.C), pct(k.M), pct(k.Y), pct(k.K)), nil
	case FormatLab:
		l := c.Lab()
		return fmt.Sprintf("lab(%s, %s, %s)", num(l.L), num(l.A), num(l.B)), nil
	case FormatXYZ:
		x := c.XYZ()
		return fmt.Sprintf("xyz(%s, %s, %s)", num(x.X), num(x.Y), num(x.Z)), nil
	case FormatLCh:
		l := c.LCh()
		return fmt.Sprintf("lch(%s, %s, %s)", num(l.L), num(l.C), num(l.H)), nil
	case FormatOKLab:
		o := c.OKLab()
		return fmt.Sprintf("oklab(%s, %s, %s)", num(o.L), num(o.A), num(o.B)), nil
	case FormatOKLCh:
		o := c.OKLCh()
		return fmt.Sprintf("oklch(%s, %s, %s)", num(o.L), num(o.C), num(o.H)), nil
	case FormatCSSVar:
		return c.CSSVariable(""), nil
	case FormatSCSSVar:
		return c.SCSSVariable(""), nil
	case FormatSwift:
		return fmt.Sprintf("UIColor(red: %s, green: %s, blue: %s, alpha: %s)",
			num(float64(c.R)/255), num(float64(c.G)/255), num(float64(c.B)/255), num(c.A)), nil
	case FormatAndroid:
		return fmt.Sprintf("Color.parseColor(\"#%s\")", c.argbHex()), nil
	case FormatFlutter:
		return fmt.Sprintf("Color(0x%s)", c.argbHex()), nil
	case FormatTailwind:
		name, _ := NearestTailwind(c)
		return name, nil
	case FormatNamed:
		name, ok := NameOf(c)
		if !ok {
			return "", ErrNoNamedColor
		}
		return name, nil
	default:
		return "", &UnsupportedFormatError{Tag: f.String()}
	}
}

// CSSVariable renders the color as a CSS custom-property declaration. An
// empty name defaults to "color".
func (c Color) CSSVariable(name string) string {
	if name == "" {
		name = "color"
	}
	return fmt.Sprintf("--%s: %s;", name, c.Hex())
}

// SCSSVariable renders the color as an SCSS variable declaration. An empty
// name defaults to "color".
func (c Color) SCSSVariable(name string) string {
	if name == "" {
		name = "color"
	}
	return fmt.Sprintf("$%s: %s;", name, c.Hex())
}

// argbHex renders the alpha-first byte order used by Android and Flutter
// color literals, always 8 uppercase digits.
func (c Color) argbHex() string {
	a := uint8(math.Round(c.A * 255))
	return fmt.Sprintf("%02X%02X%02X%02X", a, c.R, c.G, c.B)
}
