package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

const presetFilePerm = 0o644

var (
	presetsOpenFlags  layoutFlags
	presetsOpenDryRun bool
	presetsResetYes   bool
)

var presetsCmd = &cobra.Command{
	Use:     "presets",
	Aliases: []string{"preset"},
	Short:   "Manage URL pair presets",
	Long: `List, create and remove presets.

Presets 1 to 4 are built in and cannot be changed. Custom presets are named
custom-N; numbers are never reused after a delete.

Run without a subcommand to list presets.`,
	Args: cobra.NoArgs,
	RunE: runPresetsList,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetsList,
}

var presetsAddCmd = &cobra.Command{
	Use:   "add <left-url> <right-url>",
	Short: "Create a custom preset",
	Args:  cobra.ExactArgs(2),
	RunE:  runPresetsAdd,
}

var presetsRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a custom preset",
	Args:    cobra.ExactArgs(1),
	RunE:    runPresetsRm,
}

var presetsOpenCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a preset as a split",
	Long: `Open both URLs of a preset as a split.

Examples:
  splitview presets open 1
  splitview presets open custom-5 --mode top-bottom`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetsOpen,
}

var presetsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write custom presets to a TOML file (- for stdout)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsExport,
}

var presetsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add presets from a TOML file (- for stdin)",
	Long: `Add every complete preset from a TOML file as a new custom preset.

Imported presets get fresh custom numbers. Entries with a missing or invalid
URL are skipped and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetsImport,
}

var presetsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all custom presets, stored sessions and settings",
	Args:  cobra.NoArgs,
	RunE:  runPresetsReset,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsAddCmd)
	presetsCmd.AddCommand(presetsRmCmd)
	presetsCmd.AddCommand(presetsOpenCmd)
	presetsCmd.AddCommand(presetsExportCmd)
	presetsCmd.AddCommand(presetsImportCmd)
	presetsCmd.AddCommand(presetsResetCmd)

	presetsOpenFlags.register(presetsOpenCmd)
	presetsOpenCmd.Flags().BoolVar(&presetsOpenDryRun, "dry-run", false, "print the layout without opening windows")
	presetsResetCmd.Flags().BoolVarP(&presetsResetYes, "yes", "y", false, "skip confirmation prompt")
}

func runPresetsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	presets, err := a.PresetsUC.List(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewPresetsRenderer(a.Theme).RenderList(presets))
	return nil
}

func runPresetsAdd(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	preset, err := a.PresetsUC.Create(a.Ctx(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewPresetsRenderer(a.Theme).RenderSaved(preset))
	return nil
}

func runPresetsRm(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	id := entity.PresetID(args[0])
	if _, err := a.PresetsUC.Get(a.Ctx(), id); err != nil {
		return err
	}
	if err := a.PresetsUC.Delete(a.Ctx(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Theme.SuccessStyle.Render(styles.IconTrash), a.Theme.Normal.Render("Deleted "+string(id)))
	return nil
}

func runPresetsOpen(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithPresetID(logging.WithComponent(a.Ctx(), "presets"), args[0])

	preset, err := a.PresetsUC.Get(ctx, entity.PresetID(args[0]))
	if err != nil {
		return err
	}

	prefs := loadPreferences(ctx, a)
	input, err := presetsOpenFlags.input(cmd, preset.LeftURL, preset.RightURL, defaultLayout(a.Config.Layout, prefs))
	if err != nil {
		return err
	}
	return openSplit(ctx, cmd, a, prefs, input, presetsOpenDryRun)
}

// presetFile is the export format.
type presetFile struct {
	Presets []*entity.Preset `toml:"presets"`
}

func encodePresets(presets []*entity.Preset) ([]byte, error) {
	data, err := toml.Marshal(presetFile{Presets: presets})
	if err != nil {
		return nil, fmt.Errorf("encode presets: %w", err)
	}
	return data, nil
}

func decodePresets(data []byte) ([]*entity.Preset, error) {
	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return file.Presets, nil
}

func runPresetsExport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	custom, err := a.Presets.GetAll(a.Ctx())
	if err != nil {
		return fmt.Errorf("list custom presets: %w", err)
	}
	data, err := encodePresets(custom)
	if err != nil {
		return err
	}

	if args[0] == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, presetFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Theme.SuccessStyle.Render(styles.IconCheck),
		a.Theme.Normal.Render(fmt.Sprintf("Exported %d preset(s) to %s", len(custom), args[0])))
	return nil
}

func runPresetsImport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	presets, err := decodePresets(data)
	if err != nil {
		return err
	}

	imported, skipped, err := a.PresetsUC.Import(a.Ctx(), presets)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewPresetsRenderer(a.Theme).RenderImport(imported, skipped))
	return err
}

func runPresetsReset(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if !presetsResetYes {
		ok, err := askConfirm(a.Theme, "Delete all custom presets, sessions and settings?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("Canceled"))
			return nil
		}
	}

	if err := a.PresetsUC.Reset(a.Ctx()); err != nil {
		return err
	}
	if _, err := a.SettingsUC.InitializeDefaults(a.Ctx()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Theme.SuccessStyle.Render(styles.IconCheck), a.Theme.Normal.Render("Reset complete"))
	return nil
}
