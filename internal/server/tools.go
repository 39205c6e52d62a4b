package server

import "github.com/ironsheep/edge-detect-mcp/internal/edge"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it is already grayscale. The image stays cached for later edge detection calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Edge Detection
		{
			Name:        "edge_kernels",
			Description: "List the built-in gradient kernel sets (sobel, prewitt, roberts) with their X and Y coefficients.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "edge_detect_canny",
			Description: "Run Canny edge detection (smoothing, gradient, non-maximum suppression, hysteresis) on an image or a region of it. Returns a PNG with edges in white plus pipeline statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(imageProperties(), cannyProperties(), pipelineProperties()),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "edge_detect_gradient",
			Description: "Run a single-threshold gradient edge detector (Sobel, Prewitt or Roberts Cross). Pixels whose gradient magnitude reaches the threshold are edges; no thinning or tracing is applied.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(imageProperties(), thresholdProperties(), pipelineProperties()),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "edge_detect_grid",
			Description: "Run edge detection on an inline grid of integer intensities instead of an image file. Returns the edge mask as rows of '0' and '1'.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(
					map[string]interface{}{
						"grid": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type":  "array",
								"items": map[string]interface{}{"type": "integer"},
							},
							"description": "Rectangular grid of intensities, one array per row",
						},
						"mode": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"canny", "threshold"},
							"description": "Detection mode (default canny)",
							"default":     "canny",
						},
					},
					cannyProperties(), thresholdProperties(), pipelineProperties(),
				),
				"required": []string{"grid"},
			},
		},
	}
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// withProperties merges schema property maps; later maps win on key clashes.
func withProperties(groups ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, g := range groups {
		for k, v := range g {
			out[k] = v
		}
	}
	return out
}

func imageProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"region": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
			"required":    []string{"x1", "y1", "x2", "y2"},
			"description": "Optional region to analyse; x2 and y2 are exclusive",
		},
		"scale": map[string]interface{}{
			"type":        "number",
			"description": "Optional scale factor applied after cropping. Default 1.0",
			"default":     1.0,
		},
		"grayscale": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"average", "luma"},
			"description": "How color pixels become intensities (default average)",
			"default":     "average",
		},
		"output_path": map[string]interface{}{
			"type":        "string",
			"description": "Optional path to also write the edge image as PNG",
		},
	}
}

func cannyProperties() map[string]interface{} {
	return map[string]interface{}{
		"threshold_low": map[string]interface{}{
			"type":        "number",
			"description": "Low hysteresis threshold (default 50)",
			"default":     edge.DefaultLowThreshold,
		},
		"threshold_high": map[string]interface{}{
			"type":        "number",
			"description": "High hysteresis threshold (default 150)",
			"default":     edge.DefaultHighThreshold,
		},
		"min_edge_size": map[string]interface{}{
			"type":        "integer",
			"description": "Drop connected edges with fewer pixels than this (default 1)",
			"default":     edge.DefaultMinEdgeSize,
		},
	}
}

func thresholdProperties() map[string]interface{} {
	return map[string]interface{}{
		"threshold": map[string]interface{}{
			"type":        "number",
			"description": "Magnitude threshold for the single-threshold detector (default 100)",
			"default":     edge.DefaultThreshold,
		},
	}
}

func pipelineProperties() map[string]interface{} {
	return map[string]interface{}{
		"kernel": map[string]interface{}{
			"type":        "string",
			"enum":        edge.KernelNames(),
			"description": "Gradient kernel set (default sobel)",
			"default":     edge.KernelSobel,
		},
		"norm": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"l1", "l2"},
			"description": "Gradient magnitude norm (default l2)",
			"default":     "l2",
		},
		"blur": map[string]interface{}{
			"type":        "boolean",
			"description": "Apply Gaussian smoothing before the gradient (default true)",
			"default":     true,
		},
		"blur_size": map[string]interface{}{
			"type":        "integer",
			"enum":        []int{3, 5, 7},
			"description": "Gaussian kernel size (default 5)",
			"default":     edge.DefaultBlurSize,
		},
		"border": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"zero", "clamp"},
			"description": "How samples outside the grid are treated (default zero)",
			"default":     "zero",
		},
		"workers": map[string]interface{}{
			"type":        "integer",
			"description": "Goroutines used for row-parallel stages (default 1)",
			"default":     1,
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
