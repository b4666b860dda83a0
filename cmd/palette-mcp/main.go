// palette-mcp serves palette extraction tools over MCP and exposes them on
// the command line.
package main

import (
	"os"

	"github.com/ironsheep/palette-tools-mcp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
