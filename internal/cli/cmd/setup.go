package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/infrastructure/desktop"
)

// newDesktop is replaced in tests.
var newDesktop = func() port.DesktopIntegration { return desktop.New() }

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Setup desktop integration",
	Long: `Manage the splitview launcher entry in the application menu.

Subcommands:
  install  - Install splitview.desktop to ~/.local/share/applications/
  remove   - Remove the desktop file
  status   - Show whether the desktop file is installed`,
	Annotations: noDB(),
}

var setupInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install desktop file",
	Long: `Install splitview.desktop to the user's applications directory.

The entry opens 'splitview pick' in a terminal and offers a
"Restore last split" action.

Location: $XDG_DATA_HOME/applications/splitview.desktop

This command is idempotent - safe to run multiple times.`,
	Args: cobra.NoArgs,
	RunE: runSetupInstall,
}

var setupRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove desktop file",
	Args:  cobra.NoArgs,
	RunE:  runSetupRemove,
}

var setupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show desktop file status",
	Args:  cobra.NoArgs,
	RunE:  runSetupStatus,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.AddCommand(setupInstallCmd, setupRemoveCmd, setupStatusCmd)
}

func runSetupInstall(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	t := a.Theme
	out := cmd.OutOrStdout()

	result, err := usecase.NewInstallDesktopUseCase(newDesktop()).Execute(a.Ctx())
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", t.ErrorStyle.Render("✗"), err.Error())
		return err
	}

	verb := "installed to"
	if result.WasExisting {
		verb = "updated at"
	}
	fmt.Fprintf(out, "%s Desktop file %s %s\n",
		t.SuccessStyle.Render("✓"), verb, t.Highlight.Render(result.Path))
	return nil
}

func runSetupRemove(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	t := a.Theme
	out := cmd.OutOrStdout()

	result, err := usecase.NewRemoveDesktopUseCase(newDesktop()).Execute(a.Ctx())
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", t.ErrorStyle.Render("✗"), err.Error())
		return err
	}

	if !result.WasInstalled {
		fmt.Fprintln(out, t.Subtle.Render("Desktop file was not installed"))
		return nil
	}
	fmt.Fprintf(out, "%s Removed %s\n",
		t.SuccessStyle.Render("✓"), t.Highlight.Render(result.RemovedPath))
	return nil
}

func runSetupStatus(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	t := a.Theme

	status, err := newDesktop().Status(a.Ctx())
	if err != nil {
		return err
	}

	state := t.ErrorStyle.Render("not installed")
	if status.Installed {
		state = t.SuccessStyle.Render("installed")
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", t.Normal.Render("Desktop file:"), state)
	fmt.Fprintf(out, "%s %s\n", t.Normal.Render("Path:"), t.Highlight.Render(status.Path))
	if status.ExecutablePath != "" {
		fmt.Fprintf(out, "%s %s\n", t.Normal.Render("Executable:"), t.Subtle.Render(status.ExecutablePath))
	}
	return nil
}
