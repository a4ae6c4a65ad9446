// Package version reports build metadata stamped in at link time
package version

// BuildInfo holds version information about a binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for the named binary.
// Set via -ldflags "-X 'housepricing/internal/core/version.version=v0.1.0'
// -X 'housepricing/internal/core/version.commit=abcd' -X 'housepricing/internal/core/version.date=2025-01-01'"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// UserAgent is the outbound User-Agent for the given binary
func UserAgent(service string) string {
	return service + "/" + version
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
