// Package version exposes the rinkctl build version.
package version

// Version is the rinkctl version string. It is overridden at build time via
// -ldflags "-X github.com/breakaway-dev/rinkctl/pkg/version.Version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "dev"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
