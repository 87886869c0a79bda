// Package version provides information about the build version of the binaries.
package version

import "fmt"

// BuildInfo holds version information about a build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for the API service. The version, commit, and date
// variables are set at build time using -ldflags.
func Info() BuildInfo { return For("dollarwords-api") }

// For returns the build information under the given service name
func For(service string) BuildInfo {
	// Set via -ldflags "-X 'dollarwords/internal/core/version.version=v0.0.1'
	// -X 'dollarwords/internal/core/version.commit=abcd' -X 'dollarwords/internal/core/version.date=2025-09-02'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String renders the info on one line for --version output
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", b.Service, b.Version, b.Commit, b.Date)
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
