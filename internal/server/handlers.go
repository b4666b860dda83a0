package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "extract_palette").
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
// Invalid arguments return -32602; every other failure returns -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		if errors.Is(err, palette.ErrInvalidArgument) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	s.logger.Debug("tool call", "tool", name)

	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "extract_palette":
		return s.handleExtractPalette(args)
	case "add_matching_tint":
		return s.handleAddMatchingTint(args)
	case "get_dominant_color":
		return s.handleGetDominantColor(args)
	case "palette_swatch":
		return s.handlePaletteSwatch(args)
	default:
		return nil, fmt.Errorf("%w: unknown tool: %s", palette.ErrInvalidArgument, name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments. Malformed JSON is an invalid
// argument. Absent arguments decode as an empty object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", palette.ErrInvalidArgument, err)
	}
	return nil
}

// === Result Types ===

// ColorResult is a palette colour as returned to clients.
type ColorResult struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

func newColorResult(c palette.Color) ColorResult {
	return ColorResult{R: c.R, G: c.G, B: c.B, Hex: c.Hex()}
}

func newColorResults(colors []palette.Color) []ColorResult {
	out := make([]ColorResult, len(colors))
	for i, c := range colors {
		out[i] = newColorResult(c)
	}
	return out
}

// PaletteResult is returned by extract_palette.
type PaletteResult struct {
	Count  int           `json:"count"`
	Colors []ColorResult `json:"colors"`
}

// TintResult is returned by add_matching_tint. RGB holds the raw channel
// values so callers can append them to a palette byte list.
type TintResult struct {
	RGB   []int       `json:"rgb"`
	Color ColorResult `json:"color"`
}

// ColorFrequency is one entry of the dominant colour histogram.
type ColorFrequency struct {
	ColorResult
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // Percentage of pixels with this color (0-100)
}

// DominantResult is returned by get_dominant_color.
type DominantResult struct {
	TotalPixels int              `json:"total_pixels"`
	Colors      []ColorFrequency `json:"colors"`
}

// SwatchResult is returned by palette_swatch.
type SwatchResult struct {
	*imaging.SwatchResult
	Palette []ColorResult `json:"palette"`
}

// === Image Source ===

// imageSource selects where a tool reads its image from.
type imageSource struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
}

// loadImage returns the image named by src. Paths go through the cache;
// inline images are decoded per call.
func (s *Server) loadImage(src imageSource) (image.Image, error) {
	switch {
	case src.Path != "" && src.ImageBase64 != "":
		return nil, fmt.Errorf("%w: path and image_base64 are mutually exclusive", palette.ErrInvalidArgument)
	case src.Path != "":
		return s.cache.Load(src.Path)
	case src.ImageBase64 != "":
		return imaging.DecodeBase64(src.ImageBase64)
	default:
		return nil, fmt.Errorf("%w: one of path or image_base64 is required", palette.ErrInvalidArgument)
	}
}

// === Image Information ===

type imageLoadArgs struct {
	Path       string `json:"path"`
	SampleSize int    `json:"sample_size"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", palette.ErrInvalidArgument)
	}
	if a.SampleSize == 0 {
		a.SampleSize = s.cfg.SampleSize
	}
	return imaging.LoadImageInfo(s.cache, a.Path, a.SampleSize)
}

// === Palette Handlers ===

type extractionArgs struct {
	imageSource
	NColors    int    `json:"n_colors"`
	Precision  *int   `json:"precision,omitempty"`
	SampleSize *int   `json:"sample_size,omitempty"`
	Algorithm  string `json:"algorithm,omitempty"`
}

// extractor builds an extractor from the server configuration with the
// per-call overrides in a applied.
func (s *Server) extractor(a extractionArgs) (*palette.Extractor, error) {
	cfg, err := s.cfg.Palette()
	if err != nil {
		return nil, err
	}
	if a.Precision != nil {
		cfg.Precision = *a.Precision
	}
	if a.SampleSize != nil {
		cfg.SampleSize = *a.SampleSize
	}
	if a.Algorithm != "" {
		if cfg.Algorithm, err = palette.ParseAlgorithm(a.Algorithm); err != nil {
			return nil, err
		}
	}
	return palette.NewExtractor(cfg, s.logger.Named("palette"))
}

func (s *Server) extract(a extractionArgs) ([]palette.Color, error) {
	if a.NColors < 1 {
		return nil, fmt.Errorf("%w: n_colors must be at least 1, got %d", palette.ErrInvalidArgument, a.NColors)
	}
	e, err := s.extractor(a)
	if err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.imageSource)
	if err != nil {
		return nil, err
	}
	return e.Extract(img, a.NColors)
}

func (s *Server) handleExtractPalette(args json.RawMessage) (interface{}, error) {
	var a extractionArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	colors, err := s.extract(a)
	if err != nil {
		return nil, err
	}
	return &PaletteResult{Count: len(colors), Colors: newColorResults(colors)}, nil
}

type addMatchingTintArgs struct {
	BaseHue        *float64 `json:"base_hue"`
	BaseSaturation *float64 `json:"base_saturation"`
	BaseLightness  *float64 `json:"base_lightness"`
	Palette        []int    `json:"palette"`
	HueAverage     string   `json:"hue_average,omitempty"`
}

func (s *Server) handleAddMatchingTint(args json.RawMessage) (interface{}, error) {
	var a addMatchingTintArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.BaseHue == nil || a.BaseSaturation == nil || a.BaseLightness == nil {
		return nil, fmt.Errorf("%w: base_hue, base_saturation and base_lightness are required", palette.ErrInvalidArgument)
	}

	data := make([]byte, len(a.Palette))
	for i, v := range a.Palette {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: palette[%d] = %d is not a byte", palette.ErrInvalidArgument, i, v)
		}
		data[i] = byte(v)
	}

	mode := s.cfg.HueMode()
	if a.HueAverage != "" {
		var err error
		if mode, err = palette.ParseHueAverage(a.HueAverage); err != nil {
			return nil, err
		}
	}

	base := palette.HSL{H: *a.BaseHue, S: *a.BaseSaturation, L: *a.BaseLightness}
	tint, err := palette.MatchingTint(base, data, mode)
	if err != nil {
		return nil, err
	}
	return &TintResult{
		RGB:   []int{int(tint.R), int(tint.G), int(tint.B)},
		Color: newColorResult(tint),
	}, nil
}

type getDominantColorArgs struct {
	imageSource
	Count int `json:"count"`
}

func (s *Server) handleGetDominantColor(args json.RawMessage) (interface{}, error) {
	var a getDominantColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = palette.DefaultDominantCount
	}
	if a.Count < 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", palette.ErrInvalidArgument, a.Count)
	}
	img, err := s.loadImage(a.imageSource)
	if err != nil {
		return nil, err
	}

	total := img.Bounds().Dx() * img.Bounds().Dy()
	counts := palette.Dominant(img, a.Count)
	colors := make([]ColorFrequency, len(counts))
	for i, cc := range counts {
		colors[i] = ColorFrequency{
			ColorResult: newColorResult(cc.Color),
			Count:       cc.Count,
			Percentage:  palette.Percentage(cc.Count, total),
		}
	}
	return &DominantResult{TotalPixels: total, Colors: colors}, nil
}

type paletteSwatchArgs struct {
	extractionArgs
	TileSize int `json:"tile_size"`
}

func (s *Server) handlePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a paletteSwatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.TileSize < 0 {
		return nil, fmt.Errorf("%w: tile_size must be positive, got %d", palette.ErrInvalidArgument, a.TileSize)
	}
	colors, err := s.extract(a.extractionArgs)
	if err != nil {
		return nil, err
	}
	swatch, err := imaging.EncodeSwatch(palette.StdColors(colors), a.TileSize)
	if err != nil {
		return nil, err
	}
	return &SwatchResult{SwatchResult: swatch, Palette: newColorResults(colors)}, nil
}
