// internal/version/version.go
package version

// Version is overridden at build time with -ldflags "-X kmervec/internal/version.Version=...".
var Version = "0.3.0-dev"
