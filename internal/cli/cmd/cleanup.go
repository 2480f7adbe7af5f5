package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/styles"
)

var cleanupMaxAgeDays int

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove old recorded sessions",
	Long: `Delete recorded splits older than the configured age (session.max_age_days,
7 days by default). This also runs on every start when session.auto_cleanup
is enabled.`,
	Args: cobra.NoArgs,
	RunE: runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
	cleanupCmd.Flags().IntVar(&cleanupMaxAgeDays, "max-age-days", 0, "override session.max_age_days")
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	maxAge := sessionMaxAge(a)
	if cmd.Flags().Changed("max-age-days") {
		if cleanupMaxAgeDays < 1 {
			return fmt.Errorf("--max-age-days must be >= 1, got %d", cleanupMaxAgeDays)
		}
		maxAge = time.Duration(cleanupMaxAgeDays) * 24 * time.Hour
	}

	out, err := a.CleanupUC.Execute(a.Ctx(), usecase.CleanupSessionsInput{MaxAge: maxAge})
	if err != nil {
		return err
	}

	t := a.Theme
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		t.SuccessStyle.Render(styles.IconTrash),
		t.Normal.Render(fmt.Sprintf("Removed %d session(s)", out.Deleted)),
		t.Subtle.Render("recorded before "+out.Cutoff.Format(time.DateTime)))
	return nil
}
