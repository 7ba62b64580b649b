package server

import "github.com/ironsheep/color-tools-mcp/colorconv"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorInputProperty is the schema shared by every "input" argument.
var colorInputProperty = map[string]interface{}{
	"type":        "string",
	"description": "Color as #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(...), rgba(...), rr/gg/bb/aa, or a saved palette name",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_parse",
			Description: "Parse a color string and return its channels and every supported textual representation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": colorInputProperty,
				},
				"required": []string{"input"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a color string to one specific textual representation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": colorInputProperty,
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        colorconv.FormatNames(),
						"description": "Output format. Defaults to the server's configured format (hex8 unless changed)",
					},
				},
				"required": []string{"input"},
			},
		},
		{
			Name:        "color_validate",
			Description: "Report which grammar a string matches (hex, rgb, rgba, xrgba) without failing on invalid input.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": map[string]interface{}{
						"type":        "string",
						"description": "String to classify",
					},
				},
				"required": []string{"input"},
			},
		},
		{
			Name:        "color_from_channels",
			Description: "Build a color from explicit 0-255 channel values and return every representation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"red":   map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
					"green": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
					"blue":  map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
					"alpha": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"maximum":     255,
						"description": "Optional alpha. Default 255 (opaque)",
						"default":     255,
					},
				},
				"required": []string{"red", "green", "blue"},
			},
		},

		// Preview
		{
			Name:        "color_swatch",
			Description: "Render a solid PNG swatch of a color and return it as base64. Optionally also write it to a file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": colorInputProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels. Defaults to the configured size",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels. Defaults to the configured size",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the PNG to, relative to the server's swatch root (COLOR_MCP_SWATCH_ROOT). Rejected when no root is configured or the path escapes it",
					},
				},
				"required": []string{"input"},
			},
		},

		// Palette
		{
			Name:        "palette_save",
			Description: "Save a color under a name so later calls can refer to it by that name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Case-insensitive palette name",
					},
					"input": colorInputProperty,
				},
				"required": []string{"name", "input"},
			},
		},
		{
			Name:        "palette_get",
			Description: "Return a saved palette color with every representation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{"type": "string"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "palette_list",
			Description: "List all saved palette colors sorted by name.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_delete",
			Description: "Remove a saved palette color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{"type": "string"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "palette_clear",
			Description: "Remove every saved palette color.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
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
