package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

var (
	splitFlags  layoutFlags
	splitDryRun bool
)

var splitCmd = &cobra.Command{
	Use:   "split <left-url> <right-url>",
	Short: "Open two URLs side by side",
	Long: `Open two URLs in browser windows that share the screen.

The first URL opens focused in the primary area, the second one next to it.
Bare hosts get https:// added; only http and https are accepted.

Without --mode the remembered layout is used when remember_layout is on,
otherwise the layout from the config file.

Examples:
  splitview split github.com docs.google.com
  splitview split --mode focus https://claude.ai https://chat.openai.com
  splitview split --edge-to-edge=false --dry-run example.com example.org`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitFlags.register(splitCmd)
	splitCmd.Flags().BoolVar(&splitDryRun, "dry-run", false, "print the layout without opening windows")
}

func runSplit(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(a.Ctx(), "split")

	prefs := loadPreferences(ctx, a)
	input, err := splitFlags.input(cmd, args[0], args[1], defaultLayout(a.Config.Layout, prefs))
	if err != nil {
		return err
	}

	return openSplit(ctx, cmd, a, prefs, input, splitDryRun)
}

// openSplit runs a split and reports it. A complete split is remembered as
// the preferred layout when remember_layout is on.
func openSplit(ctx context.Context, cmd *cobra.Command, a *cli.App, prefs entity.Preferences, input usecase.SplitInput, dryRun bool) error {
	wm, err := a.WindowManager(dryRun)
	if err != nil {
		return err
	}

	uc := a.SplitUseCase(wm)
	if dryRun {
		uc = a.PreviewUseCase(wm, a.Screens())
	}

	out, err := uc.Execute(ctx, input)
	if err != nil {
		return err
	}

	renderer := styles.NewSplitRenderer(a.Theme)
	w := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(w, renderer.RenderPlan(planView(out)))
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, renderer.RenderOutcome(out.Outcome))

	if !out.Outcome.OK() {
		return fmt.Errorf("split %s: %w", out.Outcome.Status, out.Outcome.Err)
	}

	if !dryRun && prefs.RememberLayout {
		rememberLayout(ctx, a, prefs, out.Plan)
	}
	return nil
}

func rememberLayout(ctx context.Context, a *cli.App, prefs entity.Preferences, plan entity.LayoutPlan) {
	prefs.Mode = plan.Mode
	prefs.EdgeToEdge = plan.EdgeToEdge
	if err := a.SettingsUC.SetPreferences(ctx, prefs); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to remember layout")
	}
}

// loadPreferences reads stored preferences, falling back to defaults.
func loadPreferences(ctx context.Context, a *cli.App) entity.Preferences {
	prefs, err := a.SettingsUC.Preferences(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("using default preferences")
	}
	return prefs
}

func planView(out *usecase.SplitOutput) styles.PlanView {
	return styles.PlanView{
		Screen:       out.Screen,
		ScreenFound:  out.ScreenFound,
		Plan:         out.Plan,
		PrimaryURL:   out.PrimaryURL,
		SecondaryURL: out.SecondaryURL,
	}
}
