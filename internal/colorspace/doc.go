// Package colorspace implements the unified color model and conversion
// engine behind the MCP server.
//
// The canonical value is Color: 8-bit sRGB channels plus an alpha fraction.
// Every other representation (HSL, HSV, HWB, CMYK, XYZ, Lab, LCh, OKLab,
// OKLCh) is a pure function of the canonical value, computed on demand and
// never stored, so equal Colors always yield equal derived values.
//
// # Parsing
//
// Parse accepts a dozen textual notations (hex, the CSS functional
// notations, named colors) and detects them in a fixed precedence order; the
// first structural match wins, and a match with out-of-domain values fails
// rather than clamping. Constructors (FromRGB, FromHSL, ...) take numeric
// channels directly and validate their domains.
//
// # Gamut policy
//
// Converting from a perceptually unbounded space (Lab, XYZ, LCh, OKLab,
// OKLCh) back to RGB clamps each channel to [0,255]. This is documented
// lossy behavior, not an error: hex and the bounded spaces round-trip
// (sub-unit for the float spaces), but Lab/XYZ/OK* round-trips are only
// approximate once a value leaves the sRGB gamut.
//
// # Errors
//
// Failures are synchronous typed errors: *ParseError for malformed or
// unrecognized literals, *RangeError for out-of-domain constructor channels,
// *UnsupportedFormatError for unknown output-format tags. The engine never
// logs, retries, or returns partial results.
//
// # Concurrency
//
// Everything in this package is a pure transform over immutable inputs with
// no shared state; all functions are safe to call concurrently without
// synchronization.
package colorspace
