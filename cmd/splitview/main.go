// Command splitview opens two URLs in browser windows sharing the screen.
package main

import (
	"runtime"

	"github.com/bnema/splitview/internal/cli/cmd"
	"github.com/bnema/splitview/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
