package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"edge_kernels",
		"edge_detect_canny",
		"edge_detect_gradient",
		"edge_detect_grid",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

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
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := []struct {
		tool     string
		required string
	}{
		{"image_load", "path"},
		{"image_dimensions", "path"},
		{"edge_detect_canny", "path"},
		{"edge_detect_gradient", "path"},
		{"edge_detect_grid", "grid"},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			required, ok := toolMap[tt.tool].InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			found := false
			for _, r := range required {
				if r == tt.required {
					found = true
				}
			}
			if !found {
				t.Errorf("tool should require %q, got %v", tt.required, required)
			}
		})
	}
}

func TestToolDefinitions_DetectionProperties(t *testing.T) {
	tests := []struct {
		tool  string
		props []string
	}{
		{"edge_detect_canny", []string{"region", "scale", "grayscale", "output_path", "kernel", "norm", "blur", "blur_size", "border", "threshold_low", "threshold_high", "min_edge_size"}},
		{"edge_detect_gradient", []string{"region", "kernel", "threshold", "border"}},
		{"edge_detect_grid", []string{"grid", "mode", "threshold", "threshold_low", "threshold_high", "kernel"}},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			props := toolMap[tt.tool].InputSchema["properties"].(map[string]interface{})
			for _, p := range tt.props {
				if _, ok := props[p]; !ok {
					t.Errorf("missing property %q", p)
				}
			}
		})
	}
}

func TestToolDefinitions_KernelEnum(t *testing.T) {
	var tool Tool
	for _, tt := range GetToolDefinitions() {
		if tt.Name == "edge_detect_gradient" {
			tool = tt
		}
	}

	props := tool.InputSchema["properties"].(map[string]interface{})
	kernel, ok := props["kernel"].(map[string]interface{})
	if !ok {
		t.Fatal("kernel property should be a map")
	}
	enum, ok := kernel["enum"].([]string)
	if !ok {
		t.Fatal("kernel should have a string enum")
	}

	want := map[string]bool{"sobel": true, "prewitt": true, "roberts": true}
	for _, e := range enum {
		delete(want, e)
	}
	for missing := range want {
		t.Errorf("kernel enum missing %s", missing)
	}
}
