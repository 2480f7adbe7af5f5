package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show version and build information",
	Args:        cobra.NoArgs,
	Annotations: noDB(),
	RunE:        runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderVersion(a.Theme, a.BuildInfo))
	return nil
}

func renderVersion(t *styles.Theme, info build.Info) string {
	version := info.DisplayVersion()

	rows := [][2]string{
		{"commit", info.ShortCommit()},
		{"built", info.BuildDate},
		{"go", info.GoVersion},
		{"repo", build.RepoURL()},
		{"authors", strings.Join(build.Contributors(), ", ")},
	}

	lines := []string{fmt.Sprintf("%s %s", t.Title.Render(styles.IconColumns+" splitview"), t.Highlight.Render(version))}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s %s", t.Subtle.Render(styles.PadRight(r[0], 8)), t.Normal.Render(r[1])))
	}
	return strings.Join(lines, "\n")
}
