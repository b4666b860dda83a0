package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/server"
	"github.com/ironsheep/palette-tools-mcp/internal/version"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdin/stdout",
		Long: `Serve the Model Context Protocol over stdin/stdout.

Logs go to stderr because stdout carries the protocol. This is also what
palette-mcp does when run without a subcommand.`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	a.logger.Debug("starting", "version", version.Version, "commit", version.GitCommit, "built", version.BuildTime)
	srv := server.New(a.cfg, a.logger.Named("server"))
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
