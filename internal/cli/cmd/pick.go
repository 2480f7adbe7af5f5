package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/cli/model"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/infrastructure/config"
	"github.com/bnema/splitview/internal/logging"
)

var (
	pickFlags  layoutFlags
	pickDryRun bool
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a preset interactively",
	Long: `Open the interactive preset picker.

Pick a preset with enter to open it as a split. Press n to create a custom
preset and e to edit one; edits are saved automatically once both URLs are
set. Press m to cycle the split mode.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickFlags.register(pickCmd)
	pickCmd.Flags().BoolVar(&pickDryRun, "dry-run", false, "print the layout without opening windows")
}

func runPick(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(a.Ctx(), "picker")
	log := logging.FromContext(ctx)

	session, err := a.NewPopupSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(ctx); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to save pending preset edit")
		}
	}()

	prefs := loadPreferences(ctx, a)
	base := defaultLayout(a.Config.Layout, prefs)
	mode, set, err := pickFlags.parseMode(cmd)
	if err != nil {
		return err
	}
	if set {
		base.Mode = mode
	}

	p := tea.NewProgram(model.NewPickerModel(ctx, a.Theme, session, base.Mode), tea.WithAltScreen())
	if a.ConfigMgr != nil {
		a.ConfigMgr.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ThemeChangedMsg{Theme: styles.NewTheme(cfg)})
		})
		if err := a.ConfigMgr.Watch(ctx); err != nil {
			log.Debug().Err(err).Msg("config watch unavailable")
		}
	}

	final, err := p.Run()
	if err != nil {
		return err
	}

	if err := session.Flush(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to save pending preset edit")
	}

	picker := final.(model.PickerModel)
	chosen := picker.Chosen()
	if chosen == nil {
		return nil
	}

	input, err := pickFlags.input(cmd, chosen.LeftURL, chosen.RightURL, base)
	if err != nil {
		return err
	}
	input.Mode = picker.Mode()
	return openSplit(logging.WithPresetID(ctx, string(chosen.ID)), cmd, a, prefs, input, pickDryRun)
}
