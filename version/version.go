package version

import "fmt"

// values are set via ldflags on release builds
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "local"
)

var FullVersion = computeFullVersion()

func computeFullVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s by %s)", Version, Commit, Date, BuiltBy)
}
