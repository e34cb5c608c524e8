// Package version holds the build version, overridable at link time:
//
//	go build -ldflags "-X motifmark/internal/version.Version=v1.2.0" ./cmd/motifmark
package version

var Version = "dev"
