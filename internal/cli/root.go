// Package cli provides the command-line interface for palette-tools-mcp.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/config"
	"github.com/ironsheep/palette-tools-mcp/internal/logging"
	"github.com/ironsheep/palette-tools-mcp/internal/version"
)

// app carries state resolved before any command runs.
type app struct {
	configFile string
	cfg        *config.Config
	logger     hclog.Logger
}

// NewRootCmd builds the command tree. Without a subcommand the root command
// serves MCP over stdio.
func NewRootCmd() *cobra.Command {
	a := &app{}
	def := config.Default()

	root := &cobra.Command{
		Use:   "palette-mcp",
		Short: "MCP server and CLI for image color palettes",
		Long: `palette-mcp extracts deterministic color palettes from images.

Run without a subcommand it serves the Model Context Protocol over
stdin/stdout, for use from an MCP client. The extract, dominant and tint
subcommands expose the same operations on the command line.

Configuration is read from --config (default ~/.config/palette-mcp/config.yaml
if present), then PALETTE_MCP_* environment variables, then flags.`,
		Version:      version.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: a.runServe,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default "+config.DefaultConfigPath+")")
	pf.Int(config.FlagName(config.KeyPrecision), def.Precision, "k-means refinement rounds")
	pf.Int(config.FlagName(config.KeySampleSize), def.SampleSize, "maximum width/height sampled for extraction")
	pf.Int64(config.FlagName(config.KeySeed), def.Seed, "seed for k-means++ initialisation")
	pf.Bool(config.FlagName(config.KeyReseedEmpty), def.ReseedEmpty, "move empty clusters onto the farthest color")
	pf.String(config.FlagName(config.KeyHueAverage), def.HueAverage, "hue averaging for tints (circular, arithmetic)")
	pf.String(config.FlagName(config.KeyAlgorithm), def.Algorithm, "extraction algorithm (kmeans, dominantcolor)")
	pf.String(config.FlagName(config.KeyLogLevel), def.LogLevel, "log level (trace, debug, info, warn, error, off)")
	pf.Bool(config.FlagName(config.KeyLogJSON), def.LogJSON, "write logs as JSON")

	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(
		newServeCmd(a),
		newExtractCmd(a),
		newDominantCmd(a),
		newTintCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := cfg.LoggingOptions()
	opts.Output = cmd.ErrOrStderr()
	a.logger = logging.New(opts)
	if cfg.File != "" {
		a.logger.Debug("loaded config", "file", cfg.File)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build time, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
