// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Castgrab is the canonical application identifier used for filesystem paths and CLI branding.
	Castgrab = "castgrab"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent identifies castgrab to feed hosts and media servers.
	UserAgent = Castgrab + "/" + Version
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
