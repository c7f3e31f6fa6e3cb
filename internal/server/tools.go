package server

import "github.com/ironsheep/color-tools-mcp/internal/colorspace"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// formatEnum lists every output-format tag for the tool schemas.
var formatEnum = func() []string {
	formats := colorspace.Formats()
	tags := make([]string, len(formats))
	for i, f := range formats {
		tags[i] = f.String()
	}
	return tags
}()

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "convert_color",
			Description: "Convert a color from any supported notation (hex, rgb, hsl, hsv, hwb, cmyk, lab, xyz, lch, named) into a chosen output format or platform snippet.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": map[string]interface{}{
						"type":        "string",
						"description": "Color literal, e.g. '#ff8040', 'rgb(255, 128, 64)', 'hsl(20, 100%, 63%)', 'coral'",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        formatEnum,
						"description": "Target output format",
					},
					"precision": map[string]interface{}{
						"type":        "integer",
						"description": "Decimal places for numeric channels (default 2, 0 omits the decimal point)",
						"default":     2,
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Identifier for css-var/scss-var output (default 'color')",
					},
				},
				"required": []string{"input", "format"},
			},
		},
		{
			Name:        "color_info",
			Description: "Return a full breakdown of a color: every color-space rendering plus luminance, brightness, temperature, WCAG contrast against black and white, the exact CSS name if any, and the nearest Tailwind swatch.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": map[string]interface{}{
						"type":        "string",
						"description": "Color literal in any supported notation",
					},
					"precision": map[string]interface{}{
						"type":        "integer",
						"description": "Decimal places for numeric channels (default 2)",
						"default":     2,
					},
				},
				"required": []string{"input"},
			},
		},
		{
			Name:        "check_contrast",
			Description: "Compute the WCAG contrast ratio between two colors and whether it meets the AA (4.5) and AAA (7.0) thresholds for normal text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Foreground (text) color literal",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color literal",
					},
				},
				"required": []string{"foreground", "background"},
			},
		},
		{
			Name:        "validate_color",
			Description: "Check whether a string parses as a color in any supported notation, and report the detected notation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": map[string]interface{}{
						"type":        "string",
						"description": "Candidate color literal",
					},
				},
				"required": []string{"input"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
