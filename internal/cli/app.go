// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"time"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/build"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/infrastructure/autosave"
	"github.com/bnema/splitview/internal/infrastructure/config"
	"github.com/bnema/splitview/internal/infrastructure/launcher"
	"github.com/bnema/splitview/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/splitview/internal/infrastructure/screen"
	"github.com/bnema/splitview/internal/logging"
)

// App holds CLI dependencies. The database is opened on first use, so
// commands that only compute layouts never touch it.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	// ConfigErr is the load error when defaults were used instead of the file.
	ConfigErr error
	Theme     *styles.Theme
	BuildInfo build.Info

	db       *sqlite.LazyDB
	Presets  repository.PresetRepository
	Sessions repository.LastSessionRepository
	Settings port.SettingsStore

	// Use cases
	SettingsUC *usecase.ManageSettingsUseCase
	PresetsUC  *usecase.ManagePresetsUseCase
	CleanupUC  *usecase.CleanupSessionsUseCase

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and creates the CLI application.
// An unreadable or invalid config file falls back to defaults with a warning.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	loadErr := mgr.Load()
	if loadErr == nil {
		cfg = mgr.Get()
	} else if dbPath, pathErr := config.GetDatabaseFile(); pathErr == nil {
		cfg.Database.Path = dbPath
	}

	app := NewAppFromConfig(cfg)
	app.ConfigMgr = mgr
	app.ConfigErr = loadErr
	if loadErr != nil {
		// Without a config the SPLITVIEW_LOG_* variables still apply.
		app.ctx = logging.WithContext(app.ctx, logging.NewFromEnv())
		logging.FromContext(app.ctx).Warn().Err(loadErr).Msg("using default configuration")
	}
	return app, nil
}

// NewAppFromConfig creates the application from an already loaded config.
func NewAppFromConfig(cfg *config.Config) *App {
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	presetRepo := sqlite.NewLazyPresetRepository(db)
	sessionRepo := sqlite.NewLazyLastSessionRepository(db)
	settingsStore := sqlite.NewLazySettingsStore(db)

	settingsUC := usecase.NewManageSettingsUseCase(settingsStore)

	return &App{
		Config:     cfg,
		Theme:      styles.NewTheme(cfg),
		db:         db,
		Presets:    presetRepo,
		Sessions:   sessionRepo,
		Settings:   settingsStore,
		SettingsUC: settingsUC,
		PresetsUC:  usecase.NewManagePresetsUseCase(presetRepo, sessionRepo, settingsUC),
		CleanupUC:  usecase.NewCleanupSessionsUseCase(sessionRepo),
		ctx:        ctx,
	}
}

// Screens returns the screen resolver selected by the config.
func (a *App) Screens() *screen.Resolver {
	sc := a.Config.Screen
	return screen.NewResolver(screen.Options{
		Backend: screen.Backend(sc.Backend),
		Static: entity.ScreenInfo{
			Width:  sc.Width,
			Height: sc.Height,
			Left:   sc.Left,
			Top:    sc.Top,
		},
		Timeout: time.Duration(sc.TimeoutMs) * time.Millisecond,
	})
}

// WindowManager returns the configured launcher, or the recording launcher
// when dryRun is set.
func (a *App) WindowManager(dryRun bool) (port.WindowManager, error) {
	lc := a.Config.Launcher
	backend := launcher.Backend(lc.Backend)
	if dryRun {
		backend = launcher.BackendDryRun
	}
	return launcher.New(launcher.Options{
		Backend: backend,
		Browser: lc.Browser,
		Args:    lc.Args,
	})
}

// LayoutDefaults returns the configured layout spacing.
func (a *App) LayoutDefaults() usecase.LayoutDefaults {
	l := a.Config.Layout
	return usecase.LayoutDefaults{
		EdgeToEdge: l.EdgeToEdge,
		Gap:        l.Gap,
		InsetGap:   l.InsetGap,
		Margin:     l.Margin,
	}
}

// SplitUseCase wires a split use case on top of wm.
func (a *App) SplitUseCase(wm port.WindowManager) *usecase.SplitViewUseCase {
	return usecase.NewSplitViewUseCase(
		usecase.NewWindowOrchestrator(wm),
		a.Screens(),
		a.Sessions,
		a.Settings,
		a.LayoutDefaults(),
	)
}

// PreviewUseCase returns a split use case that never records a session.
// wm may be nil when only Plan is called.
func (a *App) PreviewUseCase(wm port.WindowManager, screens port.ScreenInfoProvider) *usecase.SplitViewUseCase {
	var orchestrator *usecase.WindowOrchestrator
	if wm != nil {
		orchestrator = usecase.NewWindowOrchestrator(wm)
	}
	return usecase.NewSplitViewUseCase(orchestrator, screens, nil, nil, a.LayoutDefaults())
}

// RestoreUseCase wires a restore use case on top of wm.
func (a *App) RestoreUseCase(wm port.WindowManager) *usecase.RestoreSessionUseCase {
	return usecase.NewRestoreSessionUseCase(a.Sessions, a.SplitUseCase(wm))
}

// NewPopupSession starts a picker session with debounced autosave.
func (a *App) NewPopupSession(ctx context.Context) (*usecase.PopupSession, error) {
	saver := autosave.NewService(ctx, a.Config.Popup.AutosaveDelayMs)
	session, err := usecase.NewPopupSession(ctx, a.PresetsUC, saver)
	if err != nil {
		_ = saver.Stop(ctx)
		return nil, err
	}
	return session, nil
}

// DB returns the lazily opened database provider.
func (a *App) DB() *sqlite.LazyDB {
	return a.db
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
