package node

import (
	"fmt"
	"runtime"
)

const emptyValue = "unknown"

// set with ldflags
var (
	buildTime       string
	lastCommit      string
	semanticVersion string

	systemVersion = fmt.Sprintf("%s/%s", runtime.GOARCH, runtime.GOOS)
	golangVersion = runtime.Version()
)

// BuildInfo stores all necessary information for the current build.
type BuildInfo struct {
	BuildTime       string `json:"build_time"`
	LastCommit      string `json:"last_commit"`
	SemanticVersion string `json:"semantic_version"`
	SystemVersion   string `json:"system_version"`
	GolangVersion   string `json:"golang_version"`
}

// GetBuildInfo returns the information of the running binary.
func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		BuildTime:       buildTime,
		LastCommit:      lastCommit,
		SemanticVersion: semanticVersion,
		SystemVersion:   systemVersion,
		GolangVersion:   golangVersion,
	}
}

// CommitShortSha returns the first 7 characters of the last commit.
func (b *BuildInfo) CommitShortSha() string {
	if b.LastCommit == "" {
		return emptyValue
	}
	if len(b.LastCommit) < 7 {
		return b.LastCommit
	}
	return b.LastCommit[:7]
}

// GetSemanticVersion returns the semantic version with a "v" prefix.
func (b *BuildInfo) GetSemanticVersion() string {
	if b.SemanticVersion == "" {
		return emptyValue
	}
	return fmt.Sprintf("v%s", b.SemanticVersion)
}
