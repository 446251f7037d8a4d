// Package version provides build version information embedding.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/scorepipe/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get returns the embedded version information.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
	}
	return info
}

// String returns a one-line human-readable version.
func (i Info) String() string {
	if i.GitCommit != "" {
		return fmt.Sprintf("%s (%s)", i.Version, i.GitCommit)
	}
	return i.Version
}
