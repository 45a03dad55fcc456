// FILE: reqtap/src/internal/version/version.go
package version

import "fmt"

// Populated by the build via -ldflags; untouched builds report "dev".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns the full version line including commit and build time.
func String() string {
	if Version == "dev" {
		return fmt.Sprintf("dev (commit: %s, built: %s)", GitCommit, BuildTime)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}

// Short returns only the version tag.
func Short() string {
	return Version
}
