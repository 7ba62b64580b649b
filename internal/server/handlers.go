package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/colorconv"
	"github.com/ironsheep/color-tools-mcp/internal/palette"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
	"github.com/samber/mo"
	"github.com/spf13/afero"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "color_convert").
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
		s.log.WithField("tool", params.Name).WithError(err).Warn("Tool execution failed")
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
//  3. Resolves color inputs through the palette
//  4. Calls the appropriate colorconv/swatch/palette function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "color_parse":
		return s.handleColorParse(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_validate":
		return s.handleColorValidate(args)
	case "color_from_channels":
		return s.handleColorFromChannels(args)

	// Preview
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Palette
	case "palette_save":
		return s.handlePaletteSave(args)
	case "palette_get":
		return s.handlePaletteGet(args)
	case "palette_list":
		return s.handlePaletteList(args)
	case "palette_delete":
		return s.handlePaletteDelete(args)
	case "palette_clear":
		return s.handlePaletteClear(args)

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

// unmarshalArgs decodes tool arguments. A missing arguments object is treated
// as empty so that tools without required arguments can be called bare.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Conversion Handlers ===

type colorInputArgs struct {
	Input string `json:"input"`
}

// resolveInput accepts a palette name or any color grammar.
func (s *Server) resolveInput(input string) (colorconv.Color, error) {
	if strings.TrimSpace(input) == "" {
		return colorconv.Color{}, fmt.Errorf("input is required")
	}
	c, err := s.palette.Resolve(input)
	if err != nil {
		return colorconv.Color{}, fmt.Errorf("failed to parse color: %w", err)
	}
	return c, nil
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorInputArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := s.resolveInput(a.Input)
	if err != nil {
		return nil, err
	}
	d := describe(c)
	d.Input = a.Input
	d.Grammar = "palette"
	if g := colorconv.Classify(strings.TrimSpace(a.Input)); g != colorconv.GrammarUnsupported {
		d.Grammar = g.String()
	}
	return d, nil
}

type colorConvertArgs struct {
	Input  string `json:"input"`
	Format string `json:"format"`
}

// ConvertResult is the result of color_convert.
type ConvertResult struct {
	Input  string `json:"input"`
	Format string `json:"format"`
	Output string `json:"output"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	format := s.convertFormat
	if a.Format != "" {
		f, err := colorconv.ParseFormat(a.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}
	c, err := s.resolveInput(a.Input)
	if err != nil {
		return nil, err
	}
	return &ConvertResult{
		Input:  a.Input,
		Format: format.String(),
		Output: c.Format(format),
	}, nil
}

// ValidateResult is the result of color_validate.
type ValidateResult struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	Grammar string `json:"grammar"`
	HexKind string `json:"hex_kind,omitempty"` // hex3, hex4, hex6 or hex8 for hex input
}

func (s *Server) handleColorValidate(args json.RawMessage) (interface{}, error) {
	var a colorInputArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	// Trimmed like palette.Resolve.
	input := strings.TrimSpace(a.Input)
	g := colorconv.Classify(input)
	result := &ValidateResult{
		Input:   a.Input,
		Valid:   g != colorconv.GrammarUnsupported,
		Grammar: g.String(),
	}
	if g == colorconv.GrammarHex {
		result.HexKind = colorconv.CheckHex(input).String()
	}
	return result, nil
}

type colorFromChannelsArgs struct {
	Red   int            `json:"red"`
	Green int            `json:"green"`
	Blue  int            `json:"blue"`
	Alpha mo.Option[int] `json:"alpha"`
}

func (s *Server) handleColorFromChannels(args json.RawMessage) (interface{}, error) {
	var a colorFromChannelsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	alpha := a.Alpha.OrElse(255)

	channels := []struct {
		name  string
		value int
	}{
		{"red", a.Red}, {"green", a.Green}, {"blue", a.Blue}, {"alpha", alpha},
	}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > 255 {
			return nil, fmt.Errorf("%s must be between 0 and 255, got %d", ch.name, ch.value)
		}
	}

	return describe(colorconv.New(uint8(a.Red), uint8(a.Green), uint8(a.Blue), uint8(alpha))), nil
}

// === Preview Handlers ===

type colorSwatchArgs struct {
	Input      string `json:"input"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.swatchWidth
	}
	if a.Height == 0 {
		a.Height = s.swatchHeight
	}
	c, err := s.resolveInput(a.Input)
	if err != nil {
		return nil, err
	}
	if a.OutputPath != "" {
		if s.swatchRoot == "" {
			return nil, fmt.Errorf("output_path is disabled: no swatch root configured")
		}
		root := afero.NewBasePathFs(s.fs, s.swatchRoot)
		return swatch.WriteFile(root, a.OutputPath, c, a.Width, a.Height)
	}
	return swatch.Encode(c, a.Width, a.Height)
}

// === Palette Handlers ===

type paletteNameArgs struct {
	Name string `json:"name"`
}

type paletteSaveArgs struct {
	Name  string `json:"name"`
	Input string `json:"input"`
}

// PaletteEntryResult is returned by palette_save and palette_get.
type PaletteEntryResult struct {
	Name  string       `json:"name"`
	Color *Description `json:"color"`
}

// PaletteListResult is the result of palette_list.
type PaletteListResult struct {
	Count   int             `json:"count"`
	Entries []palette.Entry `json:"entries"`
}

// PaletteClearResult is the result of palette_clear.
type PaletteClearResult struct {
	Cleared int `json:"cleared"`
}

// PaletteDeleteResult is the result of palette_delete.
type PaletteDeleteResult struct {
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

func (s *Server) handlePaletteSave(args json.RawMessage) (interface{}, error) {
	var a paletteSaveArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := s.resolveInput(a.Input)
	if err != nil {
		return nil, err
	}
	if err := s.palette.Save(a.Name, c); err != nil {
		return nil, err
	}
	return &PaletteEntryResult{Name: a.Name, Color: describe(c)}, nil
}

func (s *Server) handlePaletteGet(args json.RawMessage) (interface{}, error) {
	var a paletteNameArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := s.palette.Load(a.Name)
	if err != nil {
		return nil, err
	}
	return &PaletteEntryResult{Name: a.Name, Color: describe(c)}, nil
}

func (s *Server) handlePaletteList(args json.RawMessage) (interface{}, error) {
	var a struct{}
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	entries := s.palette.Entries()
	return &PaletteListResult{Count: len(entries), Entries: entries}, nil
}

func (s *Server) handlePaletteDelete(args json.RawMessage) (interface{}, error) {
	var a paletteNameArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return &PaletteDeleteResult{Name: a.Name, Deleted: s.palette.Evict(a.Name)}, nil
}

func (s *Server) handlePaletteClear(args json.RawMessage) (interface{}, error) {
	var a struct{}
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	n := s.palette.Len()
	s.palette.Clear()
	return &PaletteClearResult{Cleared: n}, nil
}
