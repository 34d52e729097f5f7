// Package version reports build information for binaries.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/zipkit/version.Version=1.0.0"
package version
