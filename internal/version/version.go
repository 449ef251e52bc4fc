// Package version holds the build version, set with:
// go build -ldflags "-X github.com/effective-security/csrgen/internal/version.Build=v1.2.3 -X github.com/effective-security/csrgen/internal/version.Commit=abcdef"
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Build is the semver of the build
	Build = "v0.0.0"
	// Commit is the git commit
	Commit = ""
)

// Info describes the version
type Info struct {
	Build   string `json:"build"`
	Commit  string `json:"commit,omitempty"`
	Runtime string `json:"runtime"`
}

// Current returns the current version
func Current() Info {
	return Info{
		Build:   strings.TrimPrefix(Build, "v"),
		Commit:  Commit,
		Runtime: runtime.Version(),
	}
}

func (v Info) String() string {
	if v.Commit != "" {
		return fmt.Sprintf("%s-%s", v.Build, v.Commit)
	}
	return v.Build
}
