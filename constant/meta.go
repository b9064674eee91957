// Package constant defines immutable application-level identifiers.
package constant

const (
	// Stackcalc is the canonical application identifier used for filesystem paths, environment variables and CLI branding.
	Stackcalc = "stackcalc"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
