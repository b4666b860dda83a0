package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// Output formats shared by the palette commands.
const (
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatJSON = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatHex, formatRGB, formatJSON:
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q (valid formats: hex, rgb, json)", palette.ErrInvalidArgument, format)
	}
}

type colorJSON struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

func toColorJSON(c palette.Color) colorJSON {
	return colorJSON{R: c.R, G: c.G, B: c.B, Hex: c.Hex()}
}

func formatColor(c palette.Color, format string) string {
	if format == formatRGB {
		return c.String()
	}
	return c.Hex()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeColors prints one color per line, or a JSON array.
func writeColors(w io.Writer, colors []palette.Color, format string) error {
	if format == formatJSON {
		out := make([]colorJSON, len(colors))
		for i, c := range colors {
			out[i] = toColorJSON(c)
		}
		return writeJSON(w, out)
	}
	for _, c := range colors {
		if _, err := fmt.Fprintln(w, formatColor(c, format)); err != nil {
			return err
		}
	}
	return nil
}
