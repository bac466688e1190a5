// Package gnsyn contains version information and the top-level interfaces
// of the synonymy document builder.
package gnsyn

var (
	// Version of gnsyn, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
