package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build-time variables injected via ldflags
var (
	// Version is the semantic version, injected at build time
	Version = "dev"

	// GitCommit is the git commit hash, injected at build time
	GitCommit = "unknown"

	// BuildDate is the build date, injected at build time
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// Info returns the short version string
func Info() string {
	return Version
}

// Full returns the version with the commit hash appended when known
func Full() string {
	info := Info()
	if GitCommit != "" && GitCommit != "unknown" && !strings.Contains(info, GitCommit[:7]) {
		info += fmt.Sprintf(" (%s)", GitCommit[:7])
	}
	return info
}

// BuildInfo holds structured build information
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// GetBuildInfo returns structured build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Info(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
	}
}

// UserAgent returns a user agent string for HTTP clients
func UserAgent() string {
	return fmt.Sprintf("shelf/%s", Info())
}
