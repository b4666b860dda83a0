// Package version holds build information injected with ldflags, e.g.
//
//	-ldflags "-X github.com/ironsheep/palette-tools-mcp/internal/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release version.
	Version = "dev"

	// BuildTime is the build timestamp.
	BuildTime = "unknown"

	// GitCommit is the source commit hash.
	GitCommit = "unknown"
)

// Name is the program name reported to MCP clients and on the CLI.
const Name = "palette-tools-mcp"

// Info is the build information in structured form.
type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the build information over several lines.
func String() string {
	info := Get()
	return fmt.Sprintf("%s %s\n  Build time: %s\n  Git commit: %s\n  Go: %s (%s)",
		Name, info.Version, info.BuildTime, info.GitCommit, info.GoVersion, info.Platform)
}
