package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "convert_color", "check_contrast").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Parses color literals through the colorspace engine
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "convert_color":
		return s.handleConvertColor(args)
	case "color_info":
		return s.handleColorInfo(args)
	case "check_contrast":
		return s.handleCheckContrast(args)
	case "validate_color":
		return s.handleValidateColor(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === convert_color ===

type convertColorArgs struct {
	Input     string `json:"input"`
	Format    string `json:"format"`
	Precision *int   `json:"precision,omitempty"`
	Name      string `json:"name,omitempty"`
}

// ConvertColorResult is the convert_color tool output.
type ConvertColorResult struct {
	Input          string `json:"input"`
	DetectedFormat string `json:"detected_format"`
	Format         string `json:"format"`
	Value          string `json:"value"`
}

func (s *Server) handleConvertColor(args json.RawMessage) (interface{}, error) {
	var a convertColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	precision := 2
	if a.Precision != nil {
		precision = *a.Precision
	}

	c, detected, err := colorspace.Parse(a.Input)
	if err != nil {
		return nil, err
	}
	target, err := colorspace.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}

	var value string
	switch {
	case target == colorspace.FormatCSSVar && a.Name != "":
		value = c.CSSVariable(a.Name)
	case target == colorspace.FormatSCSSVar && a.Name != "":
		value = c.SCSSVariable(a.Name)
	default:
		value, err = c.Format(target, precision)
		if errors.Is(err, colorspace.ErrNoNamedColor) {
			// No exact CSS keyword; fall back to hex at this layer.
			value, err = c.Hex(), nil
		}
		if err != nil {
			return nil, err
		}
	}

	return &ConvertColorResult{
		Input:          a.Input,
		DetectedFormat: detected.String(),
		Format:         target.String(),
		Value:          value,
	}, nil
}

// === color_info ===

type colorInfoArgs struct {
	Input     string `json:"input"`
	Precision *int   `json:"precision,omitempty"`
}

// TailwindMatch names the nearest Tailwind swatch.
type TailwindMatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ContrastInfo is the contrast of the color against a reference color.
type ContrastInfo struct {
	Ratio   float64 `json:"ratio"`
	WCAGAA  bool    `json:"wcag_aa"`
	WCAGAAA bool    `json:"wcag_aaa"`
}

// ColorInfoResult is the color_info tool output.
type ColorInfoResult struct {
	Input          string            `json:"input"`
	DetectedFormat string            `json:"detected_format"`
	Hex            string            `json:"hex"`
	Formats        map[string]string `json:"formats"`
	Luminance      float64           `json:"luminance"`
	Brightness     float64           `json:"brightness"`
	Temperature    string            `json:"temperature"`
	OverlayText    string            `json:"overlay_text"`
	ContrastWhite  ContrastInfo      `json:"contrast_vs_white"`
	ContrastBlack  ContrastInfo      `json:"contrast_vs_black"`
	Named          string            `json:"named,omitempty"`
	Tailwind       TailwindMatch     `json:"tailwind"`
}

func (s *Server) handleColorInfo(args json.RawMessage) (interface{}, error) {
	var a colorInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	precision := 2
	if a.Precision != nil {
		precision = *a.Precision
	}

	c, detected, err := colorspace.Parse(a.Input)
	if err != nil {
		return nil, err
	}

	formats := make(map[string]string)
	for _, f := range []colorspace.Format{
		colorspace.FormatRGB, colorspace.FormatRGBA,
		colorspace.FormatHSL, colorspace.FormatHSV, colorspace.FormatHWB,
		colorspace.FormatCMYK, colorspace.FormatLab, colorspace.FormatXYZ,
		colorspace.FormatLCh, colorspace.FormatOKLab, colorspace.FormatOKLCh,
	} {
		v, err := c.Format(f, precision)
		if err != nil {
			return nil, err
		}
		formats[f.String()] = v
	}

	white := colorspace.Color{R: 255, G: 255, B: 255, A: 1}
	black := colorspace.Color{R: 0, G: 0, B: 0, A: 1}
	vsWhite := colorspace.ContrastRatio(c, white)
	vsBlack := colorspace.ContrastRatio(c, black)

	name, _ := colorspace.NameOf(c)
	twName, twHex := colorspace.NearestTailwind(c)

	return &ColorInfoResult{
		Input:          a.Input,
		DetectedFormat: detected.String(),
		Hex:            c.Hex(),
		Formats:        formats,
		Luminance:      colorspace.RelativeLuminance(c),
		Brightness:     colorspace.Brightness(c),
		Temperature:    string(colorspace.ClassifyTemperature(c)),
		OverlayText:    colorspace.OverlayTextColor(c).Hex(),
		ContrastWhite: ContrastInfo{
			Ratio:   vsWhite,
			WCAGAA:  colorspace.MeetsWCAGAA(vsWhite),
			WCAGAAA: colorspace.MeetsWCAGAAA(vsWhite),
		},
		ContrastBlack: ContrastInfo{
			Ratio:   vsBlack,
			WCAGAA:  colorspace.MeetsWCAGAA(vsBlack),
			WCAGAAA: colorspace.MeetsWCAGAAA(vsBlack),
		},
		Named:    name,
		Tailwind: TailwindMatch{Name: twName, Hex: twHex},
	}, nil
}

// === check_contrast ===

type checkContrastArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// CheckContrastResult is the check_contrast tool output.
type CheckContrastResult struct {
	Foreground      string  `json:"foreground"`
	Background      string  `json:"background"`
	Ratio           float64 `json:"ratio"`
	WCAGAA          bool    `json:"wcag_aa"`
	WCAGAAA         bool    `json:"wcag_aaa"`
	RecommendedText string  `json:"recommended_text"`
}

func (s *Server) handleCheckContrast(args json.RawMessage) (interface{}, error) {
	var a checkContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	fg, _, err := colorspace.Parse(a.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, _, err := colorspace.Parse(a.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	ratio := colorspace.ContrastRatio(fg, bg)
	return &CheckContrastResult{
		Foreground:      fg.Hex(),
		Background:      bg.Hex(),
		Ratio:           ratio,
		WCAGAA:          colorspace.MeetsWCAGAA(ratio),
		WCAGAAA:         colorspace.MeetsWCAGAAA(ratio),
		RecommendedText: colorspace.OverlayTextColor(bg).Hex(),
	}, nil
}

// === validate_color ===

type validateColorArgs struct {
	Input string `json:"input"`
}

// ValidateColorResult is the validate_color tool output.
type ValidateColorResult struct {
	Input          string `json:"input"`
	Valid          bool   `json:"valid"`
	DetectedFormat string `json:"detected_format,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

func (s *Server) handleValidateColor(args json.RawMessage) (interface{}, error) {
	var a validateColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	_, detected, err := colorspace.Parse(a.Input)
	if err != nil {
		// Invalid input is a result here, not a tool failure.
		return &ValidateColorResult{Input: a.Input, Valid: false, Reason: err.Error()}, nil
	}
	return &ValidateColorResult{Input: a.Input, Valid: true, DetectedFormat: detected.String()}, nil
}
