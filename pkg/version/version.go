/*
version reports the build of the binary. GitTag and GitBranch are set
with -ldflags at build time; otherwise the vcs settings recorded by the
go toolchain are used.
*/
package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Build describes the running binary
type Build struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Compiler  string `json:"compiler"`
	Tag       string `json:"tag,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Source    string `json:"source,omitempty"`
	Hash      string `json:"hash,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Platform  string `json:"platform,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	GitTag    string
	GitBranch string
)

const (
	shortHash = 12
	dev       = "dev"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or short commit hash, or "dev"
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if hash := setting("vcs.revision"); len(hash) >= shortHash {
		return hash[:shortHash]
	}
	return dev
}

// Get returns the build description for the named executable
func Get(execName string) Build {
	build := Build{
		Name:      execName,
		Version:   Version(),
		Compiler:  runtime.Version(),
		Tag:       GitTag,
		Branch:    GitBranch,
		Hash:      setting("vcs.revision"),
		BuildTime: setting("vcs.time"),
		Modified:  setting("vcs.modified") == "true",
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		build.Source = info.Main.Path
	}
	if goos, goarch := setting("GOOS"), setting("GOARCH"); goos != "" && goarch != "" {
		build.Platform = goos + "/" + goarch
	}
	return build
}

func (b Build) String() string {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func setting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
