// Package version reports the build version of the binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version and Commit are set at build time:
//
//	go build -ldflags "-X .../internal/shared/version.Version=1.4.0 -X .../internal/shared/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semver without a prerelease suffix.
func IsRelease(v string) bool {
	v = Normalize(v)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// String renders the build version for logs and --version.
func String() string {
	v := Version
	if semver.IsValid(Normalize(v)) {
		v = semver.Canonical(Normalize(v))
	}
	if Commit != "" {
		return v + " (" + Commit + ")"
	}
	return v
}
