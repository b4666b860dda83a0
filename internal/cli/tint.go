package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

type tintOptions struct {
	hue        float64
	saturation float64
	lightness  float64
	format     string
}

func newTintCmd(a *app) *cobra.Command {
	opts := &tintOptions{}

	cmd := &cobra.Command{
		Use:   "tint <color>...",
		Short: "Derive a tint that matches a palette",
		Long: `Blend a palette's average hue, saturation and lightness halfway toward a
base HSL color and print the result.

Palette colors are hex values (#rgb, #rrggbb or #rrggbbaa; alpha is ignored).

Examples:
  # A tint between a warm palette and pure blue
  palette-mcp tint --hue 240 --saturation 1 --lightness 0.5 '#e07a5f' '#f2cc8f'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTint(cmd, args, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.hue, "hue", 0, "base hue in degrees")
	cmd.Flags().Float64Var(&opts.saturation, "saturation", 0.5, "base saturation in [0, 1]")
	cmd.Flags().Float64Var(&opts.lightness, "lightness", 0.5, "base lightness in [0, 1]")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHex, "output format (hex, rgb, json)")
	return cmd
}

func (a *app) runTint(cmd *cobra.Command, args []string, opts *tintOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	colors := make([]palette.Color, 0, len(args))
	for _, arg := range args {
		c, err := palette.ParseHex(arg)
		if err != nil {
			return err
		}
		colors = append(colors, c)
	}

	base := palette.HSL{H: opts.hue, S: opts.saturation, L: opts.lightness}
	tint, err := palette.MatchingTint(base, palette.Bytes(colors), a.cfg.HueMode())
	if err != nil {
		return err
	}
	a.logger.Debug("derived tint", "base", base, "palette", len(colors), "tint", tint.Hex())

	if opts.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), toColorJSON(tint))
	}
	return writeColors(cmd.OutOrStdout(), []palette.Color{tint}, opts.format)
}
