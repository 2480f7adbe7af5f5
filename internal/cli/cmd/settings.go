package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change stored preferences",
	Long: `Stored preferences live in the database, next to presets.

Keys:
  remember_layout  reuse the mode of the last split (true/false)
  auto_detect      detect the screen size (true/false)
  first_time       first run marker (true/false)
  split_mode       side-by-side, top-bottom or focus
  edge_to_edge     fill the screen without margins (true/false)`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print stored preferences",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key=value>...",
	Short: "Change stored preferences",
	Long: `Change one or more stored preferences.

Examples:
  splitview settings set remember_layout=false
  splitview settings set split_mode=focus edge_to_edge=false`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSettingsSet,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	prefs, err := a.SettingsUC.Preferences(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderPreferences(a.Theme, prefs))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	prefs, err := a.SettingsUC.Preferences(a.Ctx())
	if err != nil {
		return err
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", arg)
		}
		if err := applySetting(&prefs, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}

	if err := a.SettingsUC.SetPreferences(a.Ctx(), prefs); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderPreferences(a.Theme, prefs))
	return nil
}

// applySetting parses value for key into prefs.
func applySetting(prefs *entity.Preferences, key, value string) error {
	if key == entity.SettingSplitMode {
		mode, ok := entity.LookupSplitMode(value)
		if !ok {
			return fmt.Errorf("%s: unknown mode %q", key, value)
		}
		prefs.Mode = mode
		return nil
	}

	var target *bool
	switch key {
	case entity.SettingRememberLayout:
		target = &prefs.RememberLayout
	case entity.SettingAutoDetect:
		target = &prefs.AutoDetect
	case entity.SettingFirstTime:
		target = &prefs.FirstTime
	case entity.SettingEdgeToEdge:
		target = &prefs.EdgeToEdge
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s: expected true or false, got %q", key, value)
	}
	*target = b
	return nil
}

func renderPreferences(t *styles.Theme, prefs entity.Preferences) string {
	rows := []struct {
		key   string
		value string
	}{
		{entity.SettingRememberLayout, strconv.FormatBool(prefs.RememberLayout)},
		{entity.SettingAutoDetect, strconv.FormatBool(prefs.AutoDetect)},
		{entity.SettingFirstTime, strconv.FormatBool(prefs.FirstTime)},
		{entity.SettingSplitMode, prefs.Mode.String()},
		{entity.SettingEdgeToEdge, strconv.FormatBool(prefs.EdgeToEdge)},
	}

	lines := []string{t.Title.Render(styles.IconDatabase + " Settings")}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %s %s", t.Subtle.Render(styles.PadRight(r.key, 16)), t.Normal.Render(r.value)))
	}
	return strings.Join(lines, "\n")
}
