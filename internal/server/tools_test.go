package server

import (
	"testing"

	"github.com/ironsheep/color-tools-mcp/colorconv"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"color_parse",
		"color_convert",
		"color_validate",
		"color_from_channels",
		"color_swatch",
		"palette_save",
		"palette_get",
		"palette_list",
		"palette_delete",
		"palette_clear",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("missing tool: %s", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_HaveSchemas(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("empty description")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("schema type: got %v, want object", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("schema has no properties")
			}
		})
	}
}

func TestToolDefinitions_ConvertFormatEnum(t *testing.T) {
	var convert Tool
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "color_convert" {
			convert = tool
		}
	}

	props := convert.InputSchema["properties"].(map[string]interface{})
	format := props["format"].(map[string]interface{})
	enum, ok := format["enum"].([]string)
	if !ok {
		t.Fatalf("format enum has type %T", format["enum"])
	}
	if len(enum) != len(colorconv.Formats()) {
		t.Errorf("enum has %d names, want %d", len(enum), len(colorconv.Formats()))
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	result := resp.Result.(map[string]interface{})
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools has type %T", result["tools"])
	}
	if len(tools) != len(GetToolDefinitions()) {
		t.Errorf("got %d tools", len(tools))
	}
}
