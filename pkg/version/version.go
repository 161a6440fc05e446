package version

import "fmt"

// Build information, overridden with -ldflags "-X" at release time
var (
	// Version is the current version of sha2sum
	Version = "dev"
	// BuildDate is the date the binary was built
	BuildDate = "unknown"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// UserAgent returns the User-Agent sent when fetching URL sources
func UserAgent() string {
	return "sha2sum/" + Version
}

// String returns a one-line summary of the build
func String() string {
	return fmt.Sprintf("sha2sum v%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
