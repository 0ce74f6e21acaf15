// Package version exposes build metadata set via -ldflags.
package version

var (
	Version = "dev"
	Commit  = "none"
)
