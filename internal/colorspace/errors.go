package colorspace

import (
	"errors"
	"fmt"
)

// ParseError indicates a color literal that is unrecognized or structurally
// malformed, including a structural match whose numeric values fall outside
// their domain (hue above 360, a percentage missing its % sign, and so on).
type ParseError struct {
	Input  string // the literal that failed to parse
	Reason string // human-readable explanation
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a color: %s", e.Input, e.Reason)
}

// RangeError indicates a numeric channel passed to a constructor that lies
// outside its domain (e.g. negative saturation, red above 255).
type RangeError struct {
	Channel string
	Value   float64
	Min     float64
	Max     float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s channel %g outside range [%g, %g]", e.Channel, e.Value, e.Min, e.Max)
}

// UnsupportedFormatError indicates an unknown output-format tag.
type UnsupportedFormatError struct {
	Tag string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported color format: %q", e.Tag)
}

// ErrNoNamedColor is returned by the named output format when the color has
// no exact CSS keyword. Choosing a fallback rendering is the caller's
// concern.
var ErrNoNamedColor = errors.New("color has no exact CSS name")

func parseErrorf(input, format string, args ...interface{}) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

func rangeError(channel string, value, min, max float64) *RangeError {
	return &RangeError{Channel: channel, Value: value, Min: min, Max: max}
}
