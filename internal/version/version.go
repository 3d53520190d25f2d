package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/pathmaster/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/pathmaster/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/pathmaster/internal/version.Date={{.Date}}
)

// Info renders the build information printed by `pathmaster version`
func Info() string {
	return fmt.Sprintf("pathmaster version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
