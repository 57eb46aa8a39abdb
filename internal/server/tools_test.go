package server

import (
	"testing"
)

func toolsByName() map[string]Tool {
	m := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		m[tool.Name] = tool
	}
	return m
}

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"edge_laplace",
		"edge_sobel",
		"edge_prewitt",
		"edge_canny",
		"edge_overlay",
	}

	tools := GetToolDefinitions()
	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := toolsByName()
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
				}
			}
			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_MaskEnum(t *testing.T) {
	for _, name := range []string{"edge_laplace", "edge_overlay"} {
		t.Run(name, func(t *testing.T) {
			props := toolsByName()[name].InputSchema["properties"].(map[string]interface{})
			mask, ok := props["mask"].(map[string]interface{})
			if !ok {
				t.Fatal("mask property missing")
			}
			enum, ok := mask["enum"].([]int)
			if !ok || len(enum) != 2 || enum[0] != 1 || enum[1] != 2 {
				t.Errorf("mask enum: got %v, want [1 2]", mask["enum"])
			}
		})
	}
}

func TestToolDefinitions_RegionAndScale(t *testing.T) {
	for _, name := range []string{"edge_laplace", "edge_sobel", "edge_prewitt", "edge_overlay"} {
		t.Run(name, func(t *testing.T) {
			props := toolsByName()[name].InputSchema["properties"].(map[string]interface{})
			region, ok := props["region"].(map[string]interface{})
			if !ok {
				t.Fatal("region property missing")
			}
			if req, _ := region["required"].([]string); len(req) != 4 {
				t.Errorf("region should require x1, y1, x2, y2; got %v", region["required"])
			}
			if _, ok := props["scale"]; !ok {
				t.Error("scale property missing")
			}
		})
	}

	props := toolsByName()["edge_canny"].InputSchema["properties"].(map[string]interface{})
	if len(props) != 1 {
		t.Errorf("edge_canny should only take path, got %d properties", len(props))
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	toolDefaults := map[string]map[string]interface{}{
		"edge_laplace": {"mask": 2, "scale": 1.0},
		"edge_sobel":   {"scale": 1.0},
		"edge_overlay": {"operator": "sobel", "mask": 2, "color": "#FF0000", "threshold": 64},
	}

	toolMap := toolsByName()
	for toolName, expectedDefaults := range toolDefaults {
		props := toolMap[toolName].InputSchema["properties"].(map[string]interface{})

		for paramName, want := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found", toolName, paramName)
				continue
			}
			if got := param["default"]; got != want {
				t.Errorf("%s.%s: default got %v (%T), want %v (%T)", toolName, paramName, got, got, want, want)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1})

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
