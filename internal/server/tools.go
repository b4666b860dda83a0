package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// imageSourceProperties returns the schema shared by tools that read an
// image. Exactly one of the two properties must be supplied.
func imageSourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file. Mutually exclusive with image_base64.",
		},
		"image_base64": map[string]interface{}{
			"type":        "string",
			"description": "Base64-encoded image bytes, optionally as a data URL. Mutually exclusive with path.",
		},
	}
}

// extractionProperties adds the palette extraction parameters to props.
func extractionProperties(props map[string]interface{}) map[string]interface{} {
	props["n_colors"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of palette colors to extract (at least 1)",
		"minimum":     1,
	}
	props["precision"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of k-means refinement rounds. Default 12",
		"default":     12,
		"minimum":     0,
	}
	props["sample_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Maximum width/height the image is downsampled to before clustering. Default 100",
		"default":     100,
		"minimum":     1,
	}
	props["algorithm"] = map[string]interface{}{
		"type":        "string",
		"description": "Extraction algorithm: kmeans (deterministic, default) or dominantcolor",
		"enum":        []string{"kmeans", "dominantcolor"},
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	swatchProps := extractionProperties(imageSourceProperties())
	swatchProps["tile_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Edge length of each color tile in pixels. Default 64",
		"default":     64,
	}

	loadProps := imageSourceProperties()
	delete(loadProps, "image_base64")
	loadProps["sample_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Sampling bound used to report the sampled size. Default 100",
		"default":     100,
	}

	dominantProps := imageSourceProperties()
	dominantProps["count"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of most frequent colors to return. Default 5",
		"default":     5,
	}

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and the size it is sampled at for palette extraction. The decoded image is cached for subsequent calls.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": loadProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "extract_palette",
			Description: "Extract an n-color palette from an image using seeded k-means++ clustering in CIE Lab space. The same image and parameters always yield the same palette.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractionProperties(imageSourceProperties()),
				"required":   []string{"n_colors"},
			},
		},
		{
			Name:        "add_matching_tint",
			Description: "Derive one color that harmonizes with a palette: the palette's average hue, saturation and lightness are blended halfway toward a base HSL color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_hue": map[string]interface{}{
						"type":        "number",
						"description": "Base hue in degrees; wrapped into [0, 360)",
					},
					"base_saturation": map[string]interface{}{
						"type":        "number",
						"description": "Base saturation in [0, 1]",
					},
					"base_lightness": map[string]interface{}{
						"type":        "number",
						"description": "Base lightness in [0, 1]",
					},
					"palette": map[string]interface{}{
						"type":        "array",
						"description": "Flat list of RGB bytes (r, g, b, r, g, b, ...); length must be a multiple of 3",
						"items": map[string]interface{}{
							"type":    "integer",
							"minimum": 0,
							"maximum": 255,
						},
					},
					"hue_average": map[string]interface{}{
						"type":        "string",
						"description": "How hues are averaged: circular (default) or arithmetic",
						"enum":        []string{"circular", "arithmetic"},
					},
				},
				"required": []string{"base_hue", "base_saturation", "base_lightness", "palette"},
			},
		},
		{
			Name:        "get_dominant_color",
			Description: "Count exact pixel colors over the whole image and return the most frequent ones with their counts and percentages.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": dominantProps,
			},
		},
		{
			Name:        "palette_swatch",
			Description: "Extract a palette and render it as a strip of color tiles, returned as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": swatchProps,
				"required":   []string{"n_colors"},
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
