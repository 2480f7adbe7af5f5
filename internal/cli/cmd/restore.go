package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/logging"
)

var (
	restoreFlags layoutFlags
	restoreShow  bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Reopen the last split",
	Long: `Reopen the most recent split if it was opened less than an hour ago.

The layout is computed again for the current screen. Use --mode to reopen
it in a different mode, or --show to only print what would be restored.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreFlags.registerMode(restoreCmd)
	restoreCmd.Flags().BoolVar(&restoreShow, "show", false, "print the pending session without opening it")
}

func runRestore(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(a.Ctx(), "restore")
	w := cmd.OutOrStdout()
	t := a.Theme
	now := time.Now()

	if restoreShow {
		session, err := a.RestoreUseCase(nil).Pending(ctx, now)
		if err != nil {
			return err
		}
		if session == nil {
			fmt.Fprintln(w, t.Subtle.Render("Nothing to restore"))
			return nil
		}
		fmt.Fprintf(w, "%s %s %s\n", t.Highlight.Render(styles.IconRestore), t.Mode(session.Mode.String()),
			t.Subtle.Render(styles.IconClock+" "+styles.RelativeTime(session.CreatedAt, now)))
		fmt.Fprintf(w, "  %s\n  %s\n", session.PrimaryURL, session.SecondaryURL)
		return nil
	}

	input := usecase.RestoreInput{Now: now}
	mode, set, err := restoreFlags.parseMode(cmd)
	if err != nil {
		return err
	}
	if set {
		input.Mode = &mode
	}

	wm, err := a.WindowManager(false)
	if err != nil {
		return err
	}
	out, err := a.RestoreUseCase(wm).Restore(ctx, input)
	if errors.Is(err, usecase.ErrNoPendingSession) {
		fmt.Fprintln(w, t.Subtle.Render("Nothing to restore"))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, styles.NewSplitRenderer(t).RenderOutcome(out.Outcome))
	if !out.Outcome.OK() {
		return fmt.Errorf("restore %s: %w", out.Outcome.Status, out.Outcome.Err)
	}
	return nil
}
