// Package cmd provides Cobra CLI commands for splitview.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli"
	"github.com/bnema/splitview/internal/domain/build"
	"github.com/bnema/splitview/internal/logging"
)

// annotationNoDB marks commands that never read stored presets, sessions or
// settings. Startup skips database initialization for them.
const annotationNoDB = "splitview/no-db"

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "splitview",
		Short: "Open two web pages side by side",
		Long: `splitview opens two URLs in browser windows that share the screen.

Modes:
  - side-by-side  two windows of equal width
  - top-bottom    two windows of equal height
  - focus         the primary window takes 65% of the width

Use 'splitview split <left> <right>' to open a pair directly, 'splitview pick'
to choose a preset interactively, or 'splitview restore' to reopen the last
split within the hour.`,
		SilenceUsage:      true,
		PersistentPreRunE: initApp,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func initApp(cmd *cobra.Command, _ []string) error {
	// Skip initialization for commands that don't need app context
	switch cmd.Name() {
	case "help", "completion", "__complete":
		return nil
	}

	var err error
	app, err = cli.NewApp()
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	// Set build info from main.go
	app.BuildInfo = buildInfo

	if skipsDatabase(cmd) {
		return nil
	}
	return prepareDatabase(app)
}

// skipsDatabase reports whether cmd or one of its parents is marked no-db.
func skipsDatabase(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoDB]; ok {
			return true
		}
	}
	return false
}

// prepareDatabase writes missing default settings and prunes expired sessions.
func prepareDatabase(a *cli.App) error {
	ctx := a.Ctx()
	log := logging.FromContext(ctx)

	if _, err := a.SettingsUC.InitializeDefaults(ctx); err != nil {
		return fmt.Errorf("initialize settings: %w", err)
	}

	if !a.Config.Session.AutoCleanup {
		return nil
	}
	out, err := a.CleanupUC.Execute(ctx, usecase.CleanupSessionsInput{
		MaxAge: sessionMaxAge(a),
	})
	if err != nil {
		log.Warn().Err(err).Msg("session cleanup failed")
		return nil
	}
	if out.Deleted > 0 {
		log.Debug().Int64("deleted", out.Deleted).Msg("expired sessions removed")
	}
	return nil
}

func sessionMaxAge(a *cli.App) time.Duration {
	return time.Duration(a.Config.Session.MaxAgeDays) * 24 * time.Hour
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

func noDB() map[string]string {
	return map[string]string{annotationNoDB: "true"}
}
