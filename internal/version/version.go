package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func Short() string {
	return Version
}

func Detailed() string {
	return fmt.Sprintf("colfmt %s (commit %s, built %s)", Version, Commit, Date)
}
