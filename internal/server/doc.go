// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color
// conversion engine through the MCP protocol. It's designed to work with
// Claude and other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - convert_color: Convert a color literal into any supported output
//     format or platform snippet (hex, rgb, hsl, ..., swift, android,
//     flutter, tailwind, named)
//   - color_info: Full breakdown of a color across every space, plus
//     luminance, brightness, temperature, WCAG contrast and naming
//   - check_contrast: WCAG contrast ratio and AA/AAA compliance for a
//     foreground/background pair
//   - validate_color: Check whether a string parses as a color
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// An unparseable literal fails convert_color, color_info and check_contrast;
// validate_color instead reports it as an ordinary invalid result.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
