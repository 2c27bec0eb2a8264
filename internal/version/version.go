// Package version holds build metadata stamped in with -ldflags -X by the
// magefile.
package version

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata for the version subcommand.
func String() string {
	return fmt.Sprintf("nfo %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
