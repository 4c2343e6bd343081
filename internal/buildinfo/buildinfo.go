// Package buildinfo carries the identifiers stamped in at link time, e.g.
//
//	go build -ldflags "-X galaxyplot/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	}
	return "dev"
}

// String is the long form printed by the version command.
func String() string {
	return fmt.Sprintf("galaxyplot %s (commit %s, built %s)", Version, Commit, Date)
}
