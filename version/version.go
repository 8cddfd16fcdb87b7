package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const (
	// Product is the product token of the User-Agent header.
	Product = "CrousApi"
	// RepositoryURL is the project home advertised in the User-Agent header.
	RepositoryURL = "https://github.com/ThibaultMINNEBOO/crous-api"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "1.0.0"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Product   string `json:"product"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

// UserAgent returns the header value identifying this library:
// "<product>/<version> <repository-url>".
func UserAgent() string {
	return fmt.Sprintf("%s/%s %s", Product, Version, RepositoryURL)
}

// GetVersionInfo returns version information, completed from the embedded
// build info when ldflags did not provide it.
func GetVersionInfo() *Info {
	info := &Info{
		Product:   Product,
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	return info
}
