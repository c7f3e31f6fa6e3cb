package colorspace

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern  = regexp.MustCompile(`^#?[0-9a-fA-F]+$`)
	funcPattern = regexp.MustCompile(`^([a-zA-Z]+)\s*\(\s*(.*?)\s*\)$`)
)

// Parse detects the notation of a raw color literal and extracts its
// channels. Detection runs in a fixed precedence order: hex pattern first,
// then each functional-notation keyword, then the named-color table; the
// first structural match wins. A structural match whose values are out of
// domain (hue above 360, percentage missing its % sign) is a *ParseError,
// never a silent clamp.
//
// Accepted notations, case-insensitive with arbitrary internal whitespace:
// 3/4/6/8-digit hex, rgb()/rgba(), hsl()/hsla(), hsv()/hsva(), hwb(),
// cmyk(), lab(), xyz(), lch(), and the CSS3 extended named colors.
func Parse(input string) (Color, Format, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Color{}, 0, parseErrorf(input, "empty input")
	}

	if hexPattern.MatchString(trimmed) {
		c, err := parseHex(trimmed)
		if err != nil {
			return Color{}, 0, err
		}
		return c, FormatHex, nil
	}

	if m := funcPattern.FindStringSubmatch(trimmed); m != nil {
		keyword := strings.ToLower(m[1])
		args := splitArgs(m[2])
		c, f, err := parseFunctional(trimmed, keyword, args)
		if err != nil {
			return Color{}, 0, err
		}
		return c, f, nil
	}

	if hex, ok := namedColors[strings.ToLower(trimmed)]; ok {
		c, err := parseHex(hex)
		if err != nil {
			return Color{}, 0, err
		}
		return c, FormatNamed, nil
	}

	return Color{}, 0, parseErrorf(input, "unrecognized color notation")
}

// parseHex decodes a 3/4/6/8-digit hex literal, '#' optional. Shorthand
// digits double; 4- and 8-digit forms carry alpha in the trailing byte.
func parseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexPattern.MatchString(digits) {
		return Color{}, parseErrorf(s, "not a hex literal")
	}

	switch len(digits) {
	case 3, 4:
		doubled := make([]byte, 0, 2*len(digits))
		for i := 0; i < len(digits); i++ {
			doubled = append(doubled, digits[i], digits[i])
		}
		digits = string(doubled)
	case 6, 8:
	default:
		return Color{}, parseErrorf(s, "hex literal must have 3, 4, 6 or 8 digits, got %d", len(digits))
	}

	bytes := make([]uint8, len(digits)/2)
	for i := range bytes {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, parseErrorf(s, "invalid hex digits")
		}
		bytes[i] = uint8(v)
	}

	c := Color{R: bytes[0], G: bytes[1], B: bytes[2], A: 1}
	if len(bytes) == 4 {
		c.A = float64(bytes[3]) / 255
	}
	return c, nil
}

func parseFunctional(input, keyword string, args []string) (Color, Format, error) {
	switch keyword {
	case "rgb", "rgba":
		f := FormatRGB
		if keyword == "rgba" {
			f = FormatRGBA
		}
		c, err := parseRGBArgs(input, args)
		return c, f, err
	case "hsl", "hsla":
		f := FormatHSL
		if keyword == "hsla" {
			f = FormatHSLA
		}
		c, err := parseHuePercentArgs(input, keyword, args, FromHSL)
		return c, f, err
	case "hsv", "hsva":
		f := FormatHSV
		if keyword == "hsva" {
			f = FormatHSVA
		}
		c, err := parseHuePercentArgs(input, keyword, args, FromHSV)
		return c, f, err
	case "hwb":
		c, err := parseHuePercentArgs(input, keyword, args, FromHWB)
		return c, FormatHWB, err
	case "cmyk":
		c, err := parseCMYKArgs(input, args)
		return c, FormatCMYK, err
	case "lab":
		c, err := parseTripleArgs(input, keyword, args, FromLab)
		return c, FormatLab, err
	case "xyz":
		c, err := parseTripleArgs(input, keyword, args, FromXYZ)
		return c, FormatXYZ, err
	case "lch":
		c, err := parseTripleArgs(input, keyword, args, FromLCh)
		return c, FormatLCh, err
	default:
		return Color{}, 0, parseErrorf(input, "unknown color function %q", keyword)
	}
}

func parseRGBArgs(input string, args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, parseErrorf(input, "rgb takes 3 or 4 arguments, got %d", len(args))
	}
	var ch [3]float64
	for i, name := range []string{"red", "green", "blue"} {
		v, err := parseNumber(input, name, args[i])
		if err != nil {
			return Color{}, err
		}
		ch[i] = v
	}
	alpha, err := parseAlphaArg(input, args, 3)
	if err != nil {
		return Color{}, err
	}
	c, err := FromRGB(int(math.Round(ch[0])), int(math.Round(ch[1])), int(math.Round(ch[2])), alpha)
	if err != nil {
		return Color{}, parseErrorf(input, "%v", err)
	}
	return c, nil
}

// parseHuePercentArgs handles the hue-plus-two-percentages family: hsl, hsv,
// hwb. The percentage channels must carry an explicit % sign.
func parseHuePercentArgs(input, keyword string, args []string, ctor func(h, p1, p2, a float64) (Color, error)) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, parseErrorf(input, "%s takes 3 or 4 arguments, got %d", keyword, len(args))
	}
	h, err := parseNumber(input, "hue", args[0])
	if err != nil {
		return Color{}, err
	}
	p1, err := parsePercent(input, args[1])
	if err != nil {
		return Color{}, err
	}
	p2, err := parsePercent(input, args[2])
	if err != nil {
		return Color{}, err
	}
	alpha, err := parseAlphaArg(input, args, 3)
	if err != nil {
		return Color{}, err
	}
	c, err := ctor(h, p1, p2, alpha)
	if err != nil {
		return Color{}, parseErrorf(input, "%v", err)
	}
	return c, nil
}

func parseCMYKArgs(input string, args []string) (Color, error) {
	if len(args) != 4 && len(args) != 5 {
		return Color{}, parseErrorf(input, "cmyk takes 4 or 5 arguments, got %d", len(args))
	}
	var ch [4]float64
	for i := range ch {
		v, err := parsePercent(input, args[i])
		if err != nil {
			return Color{}, err
		}
		ch[i] = v
	}
	alpha, err := parseAlphaArg(input, args, 4)
	if err != nil {
		return Color{}, err
	}
	c, err := FromCMYK(ch[0], ch[1], ch[2], ch[3], alpha)
	if err != nil {
		return Color{}, parseErrorf(input, "%v", err)
	}
	return c, nil
}

// parseTripleArgs handles the plain-number triples: lab, xyz, lch.
func parseTripleArgs(input, keyword string, args []string, ctor func(a, b, c, alpha float64) (Color, error)) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, parseErrorf(input, "%s takes 3 or 4 arguments, got %d", keyword, len(args))
	}
	var ch [3]float64
	for i := range ch {
		v, err := parseNumber(input, keyword, args[i])
		if err != nil {
			return Color{}, err
		}
		ch[i] = v
	}
	alpha, err := parseAlphaArg(input, args, 3)
	if err != nil {
		return Color{}, err
	}
	c, err := ctor(ch[0], ch[1], ch[2], alpha)
	if err != nil {
		return Color{}, parseErrorf(input, "%v", err)
	}
	return c, nil
}

func parseAlphaArg(input string, args []string, idx int) (float64, error) {
	if len(args) <= idx {
		return 1, nil
	}
	a, err := parseNumber(input, "alpha", args[idx])
	if err != nil {
		return 0, err
	}
	if a < 0 || a > 1 {
		return 0, parseErrorf(input, "alpha %g outside range [0, 1]", a)
	}
	return a, nil
}

func parseNumber(input, name, tok string) (float64, error) {
	if strings.HasSuffix(tok, "%") {
		return 0, parseErrorf(input, "%s must be a plain number, got %q", name, tok)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, parseErrorf(input, "invalid %s value %q", name, tok)
	}
	return v, nil
}

func parsePercent(input, tok string) (float64, error) {
	if !strings.HasSuffix(tok, "%") {
		return 0, parseErrorf(input, "percentage %q missing %% sign", tok)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(tok, "%")), 64)
	if err != nil {
		return 0, parseErrorf(input, "invalid percentage %q", tok)
	}
	return v, nil
}

// splitArgs splits a functional-notation argument list on commas, trimming
// whitespace around each token.
func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
