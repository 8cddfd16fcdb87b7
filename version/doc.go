// Package version carries the library release version and the User-Agent
// string sent with every request to the catering service.
//
// Version, git commit and build time can be overridden at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/crousapi/version.Version=1.2.0"
package version
