// Package version reports build information extracted from the Go build
// system: version, VCS commit, build date, and platform details.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is the release version, overridden at build time via -ldflags.
var Version = "v0.3.0"

type BuildInfo struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit"`
	GitTag     string `json:"git_tag"`
	BuildDate  string `json:"build_date"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	Compiler   string `json:"compiler"`
	IsModified bool   `json:"is_modified"`
	ModulePath string `json:"module_path"`
	ModuleSum  string `json:"module_sum"`
}

// GetBuildInfo collects build metadata from the embedded module info.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   GetVersion(),
		GitCommit: "unknown",
		GitTag:    "unknown",
		BuildDate: "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Compiler:  runtime.Compiler,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.ModulePath = bi.Main.Path
	info.ModuleSum = bi.Main.Sum
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.BuildDate = s.Value
		case "vcs.modified":
			info.IsModified = s.Value == "true"
		}
	}
	return info
}

func GetVersion() string {
	return Version
}

func GetShortVersion() string {
	return strings.TrimPrefix(Version, "v")
}

func GetVersionWithCommit() string {
	info := GetBuildInfo()
	commit := info.GitCommit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (%s)", info.Version, commit)
}

func GetJSONVersion() string {
	b, err := json.MarshalIndent(GetBuildInfo(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func GetDetailedVersion() string {
	info := GetBuildInfo()
	return fmt.Sprintf("chatdown %s\ncommit:   %s\nbuilt:    %s\ngo:       %s\nplatform: %s",
		info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
}

// IsDevelopment reports whether this binary was built outside a release:
// no VCS stamp, or a locally modified tree.
func IsDevelopment() bool {
	info := GetBuildInfo()
	return info.GitCommit == "unknown" || info.IsModified
}

func IsRelease() bool {
	return !IsDevelopment()
}
