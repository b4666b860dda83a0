// Package logging builds the hclog loggers used across the server and CLI.
//
// Output defaults to stderr because stdout carries the MCP protocol stream.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when no level, or an unknown one, is configured.
const DefaultLevel = "info"

// Options controls logger construction.
type Options struct {
	// Name is the root logger name. Empty selects "palette-mcp".
	Name string

	// Level is an hclog level name: trace, debug, info, warn, error or off.
	Level string

	// JSON switches to JSON-formatted lines.
	JSON bool

	// Output receives log lines. Nil selects os.Stderr.
	Output io.Writer
}

// New creates a logger from opts.
func New(opts Options) hclog.Logger {
	name := opts.Name
	if name == "" {
		name = "palette-mcp"
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      ParseLevel(opts.Level),
		Output:     out,
		JSONFormat: opts.JSON,
	})
}

// ParseLevel maps a level name to an hclog level, falling back to info.
func ParseLevel(level string) hclog.Level {
	level = strings.TrimSpace(level)
	if level == "" {
		return hclog.Info
	}
	l := hclog.LevelFromString(level)
	if l == hclog.NoLevel {
		return hclog.Info
	}
	return l
}
