package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
		},
		"required":    []string{"x1", "y1", "x2", "y2"},
		"description": "Optional region to process. If omitted, processes the entire image.",
	}
}

func scaleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor applied after cropping (e.g., 0.5 to halve). Default 1.0",
		"default":     1.0,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and color model. Reports whether the image must be converted to 8-bit grayscale before edge detection.",
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

		// Edge Operators
		{
			Name:        "edge_laplace",
			Description: "Second-derivative (Laplace) response of the grayscale image. Highlights isolated intensity changes such as dots and thin lines. Returns a grayscale PNG with responses clamped to 0-255.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"mask": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{1, 2},
						"description": "1 = 4-neighbour cross mask, 2 = 8-neighbour box mask (default 2)",
						"default":     2,
					},
					"region": regionProperty(),
					"scale":  scaleProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_sobel",
			Description: "Sobel gradient magnitude (|Gx| + |Gy|) of the grayscale image. Good general-purpose edge map for finding boxes and lines.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
					"scale":  scaleProperty(),
					"accelerated": map[string]interface{}{
						"type":        "boolean",
						"description": "Allow the registered accelerator to compute the result. Output is identical either way.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_prewitt",
			Description: "Prewitt gradient magnitude of the grayscale image. Like Sobel without centre weighting; slightly more sensitive to diagonal noise.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
					"scale":  scaleProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_canny",
			Description: "Canny edge detection. Not implemented yet: always fails with a 'not implemented' error. Use edge_sobel instead.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_overlay",
			Description: "Run an edge operator and return the original image with strong responses tinted in a highlight color. Useful for checking which structures an operator picks up.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"operator": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"laplace", "sobel", "prewitt"},
						"description": "Operator to run (default sobel)",
						"default":     "sobel",
					},
					"mask": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{1, 2},
						"description": "Laplace mask when operator is laplace (default 2)",
						"default":     2,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Highlight color as hex (default #FF0000)",
						"default":     "#FF0000",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Responses above this value (0-255) are tinted (default 64)",
						"default":     64,
					},
					"accelerated": map[string]interface{}{
						"type":        "boolean",
						"description": "Allow the registered accelerator when operator is sobel",
					},
					"region": regionProperty(),
					"scale":  scaleProperty(),
				},
				"required": []string{"path"},
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
