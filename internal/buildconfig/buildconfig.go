package buildconfig

import "fmt"

// Injected via ldflags, e.g.
//   -X .../internal/buildconfig.version=v0.2.0
//   -X .../internal/buildconfig.commit=$(git rev-parse --short HEAD)
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version.
func Version() string {
	return version
}

// Commit returns the git commit hash.
func Commit() string {
	return commit
}

// String returns a one-line "version (commit)" description.
func String() string {
	return fmt.Sprintf("%s (%s)", version, commit)
}
