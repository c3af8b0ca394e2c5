package gngenes

var (
	// Version is set by the build's ldflags.
	Version = "v0.1.0"

	// Build is a timestamp set by the build's ldflags.
	Build = "n/a"
)
