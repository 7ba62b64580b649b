// Package server implements the MCP (Model Context Protocol) server for color conversion tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorconv library
// through the MCP protocol, so that AI clients can parse, validate and render CSS
// style colors without guessing at rounding or channel order.
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
// Conversion:
//   - color_parse: Parse any supported grammar and describe the color
//   - color_convert: Render a color in one named output format
//   - color_validate: Report which grammar, if any, an input matches
//   - color_from_channels: Build a color from integer channels
//
// Preview:
//   - color_swatch: Render a solid PNG swatch, inline or to a file
//
// Palette:
//   - palette_save: Store a color under a name
//   - palette_get: Describe a saved color
//   - palette_list: List saved colors
//   - palette_delete: Remove a saved color
//   - palette_clear: Remove every saved color
//
// Any tool argument named "input" accepts either a color string or the name
// of a saved palette entry.
//
// # Palette
//
// Saved colors live in memory for the lifetime of the server process. Names
// are case-insensitive.
package server
