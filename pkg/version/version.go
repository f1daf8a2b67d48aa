// Package version exposes build metadata injected with -ldflags.
package version

import "runtime/debug"

// Set at build time:
//
//	-ldflags "-X github.com/carbonwise/carbonwise/pkg/version.version=v1.2.3
//	          -X github.com/carbonwise/carbonwise/pkg/version.commit=abc1234"
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version = "dev"
	commit  = ""
)

// GetVersion returns the release version, falling back to the module
// version recorded by `go install` and finally "dev".
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// GetCommit returns the short commit hash, or "" when unknown.
func GetCommit() string {
	return commit
}

// String returns the version with its commit, e.g. "v1.2.3 (abc1234)".
func String() string {
	if c := GetCommit(); c != "" {
		return GetVersion() + " (" + c + ")"
	}
	return GetVersion()
}
