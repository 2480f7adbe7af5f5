package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/splitview/internal/infrastructure/screen"
)

const (
	doctorCategoryConfig   = "config"
	doctorCategoryScreen   = "screen"
	doctorCategoryLauncher = "launcher"
	doctorCategoryDatabase = "database"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check screen detection, browser and database",
	Long: `Doctor checks what splitview needs on this machine:

- the config file loads and validates
- a screen backend reports the usable area (hyprctl, swaymsg or static)
- the configured browser is an executable on PATH
- the database opens and its schema is current

Screen backends that are not available only warn, since the default
1920x1040 area is used when none answers.`,
	Args:        cobra.NoArgs,
	Annotations: noDB(),
	RunE:        runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	wm, wmErr := a.WindowManager(false)
	report := collectDoctorReport(a.Ctx(), doctorProbes{
		configErr: a.ConfigErr,
		screens:   a.Screens(),
		timeout:   time.Duration(a.Config.Screen.TimeoutMs) * time.Millisecond,
		launcher:  wm,
		launchErr: wmErr,
		db:        a.DB(),
	})

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(a.Theme).Render(report))
	if !report.OK() {
		return fmt.Errorf("requirements not met")
	}
	return nil
}

// doctorProbes are the adapters doctor inspects.
type doctorProbes struct {
	configErr error
	screens   *screen.Resolver
	timeout   time.Duration
	launcher  port.WindowManager
	launchErr error
	db        port.DatabaseProvider
}

// collectDoctorReport runs every probe concurrently. Results keep a stable
// order: config, screen detectors by priority, launcher, database.
func collectDoctorReport(ctx context.Context, p doctorProbes) styles.DoctorReport {
	detectors := p.screens.Detectors()
	checks := make([]styles.DoctorCheck, 3+len(detectors))

	checks[0] = configCheck(p.configErr)

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range detectors {
		g.Go(func() error {
			checks[1+i] = screenCheck(gctx, d, p.timeout)
			return nil
		})
	}
	g.Go(func() error {
		checks[1+len(detectors)] = launcherCheck(gctx, p.launcher, p.launchErr)
		return nil
	})
	g.Go(func() error {
		checks[2+len(detectors)] = databaseCheck(gctx, p.db)
		return nil
	})
	_ = g.Wait()

	return styles.DoctorReport{Checks: append(checks, screenFallbackCheck(checks[1:1+len(detectors)]))}
}

func configCheck(loadErr error) styles.DoctorCheck {
	c := styles.DoctorCheck{Category: doctorCategoryConfig, Name: "config file", OK: loadErr == nil, Detail: "loaded"}
	if loadErr != nil {
		c.Detail = loadErr.Error() + " (using defaults)"
	}
	return c
}

func screenCheck(ctx context.Context, d screen.Detector, timeout time.Duration) styles.DoctorCheck {
	c := styles.DoctorCheck{Category: doctorCategoryScreen, Name: d.Name(), Optional: true}
	if !d.Available() {
		c.Detail = "not available"
		return c
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	info, err := d.Detect(ctx)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	c.OK = true
	c.Detail = fmt.Sprintf("%dx%d+%d+%d", info.Width, info.Height, info.Left, info.Top)
	return c
}

// screenFallbackCheck warns when no detector answered.
func screenFallbackCheck(screens []styles.DoctorCheck) styles.DoctorCheck {
	for _, c := range screens {
		if c.OK {
			return styles.DoctorCheck{Category: doctorCategoryScreen, Name: "usable area", OK: true, Detail: "from " + c.Name}
		}
	}
	def := entity.DefaultScreenInfo()
	return styles.DoctorCheck{
		Category: doctorCategoryScreen,
		Name:     "usable area",
		Optional: true,
		Detail:   fmt.Sprintf("no backend answered, using %dx%d", def.Width, def.Height),
	}
}

func launcherCheck(ctx context.Context, wm port.WindowManager, buildErr error) styles.DoctorCheck {
	c := styles.DoctorCheck{Category: doctorCategoryLauncher, Name: "browser"}
	if buildErr != nil {
		c.Detail = buildErr.Error()
		return c
	}

	hc, ok := wm.(port.HealthChecker)
	if !ok {
		c.OK = true
		c.Detail = "no check available"
		return c
	}
	c.Name = hc.Name()
	if err := hc.Check(ctx); err != nil {
		c.Detail = err.Error()
		return c
	}
	c.OK = true
	c.Detail = "ready"
	return c
}

func databaseCheck(ctx context.Context, provider port.DatabaseProvider) styles.DoctorCheck {
	c := styles.DoctorCheck{Category: doctorCategoryDatabase, Name: "sqlite"}
	db, err := provider.DB(ctx)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	version, err := sqlite.SchemaVersion(ctx, db)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	c.OK = true
	c.Detail = fmt.Sprintf("schema version %d", version)
	c.Detail += " at " + provider.Path()
	return c
}
