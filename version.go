package sessionfile

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the sessionfile module.
const Version = "0.1.0"

// BuildInfo describes the running binary, for the tools' -version flag.
type BuildInfo struct {
	Version   string
	GitCommit string
	GoVersion string
}

// String formats the build info as a single line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, %s)", b.Version, b.GitCommit, b.GoVersion)
}

// gitCommit can be set at build time:
//
//	go build -ldflags="-X github.com/simonhull/sessionfile.gitCommit=$(git rev-parse --short HEAD)"
var gitCommit = ""

// GetBuildInfo returns version information. The commit falls back to the VCS
// revision stamped by the Go toolchain, then to "unknown".
func GetBuildInfo() BuildInfo {
	commit := gitCommit
	if commit == "" {
		commit = "unknown"
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					commit = s.Value
				}
			}
		}
	}

	return BuildInfo{
		Version:   Version,
		GitCommit: commit,
		GoVersion: runtime.Version(),
	}
}
