// Package build describes the running splitview binary.
package build

import "strings"

const (
	repoURL    = "https://github.com/bnema/splitview"
	devVersion = "dev"
)

// Info holds values injected at link time with -ldflags -X.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// DisplayVersion returns the version with any leading "v" removed, or "dev"
// for builds without ldflags.
func (i Info) DisplayVersion() string {
	v := strings.TrimPrefix(strings.TrimSpace(i.Version), "v")
	if v == "" {
		return devVersion
	}
	return v
}

// ShortCommit returns the first seven characters of the commit hash.
func (i Info) ShortCommit() string {
	const shortLen = 7
	if len(i.Commit) > shortLen {
		return i.Commit[:shortLen]
	}
	return i.Commit
}

// Contributors lists the project authors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the source repository URL.
func RepoURL() string {
	return repoURL
}
