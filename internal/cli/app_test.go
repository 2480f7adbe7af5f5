package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/config"
	"github.com/bnema/splitview/internal/infrastructure/launcher"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return newTestAppAt(t, filepath.Join(t.TempDir(), "splitview.db"))
}

func newTestAppAt(t *testing.T, dbPath string) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.Path = dbPath
	cfg.Screen.Backend = config.ScreenBackendStatic
	cfg.Screen.Width = 1000
	cfg.Screen.Height = 600
	cfg.Logging.Level = "error"

	app := NewAppFromConfig(cfg)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewAppFromConfig_DoesNotOpenDatabase(t *testing.T) {
	app := newTestApp(t)

	assert.False(t, app.DB().IsInitialized())
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.Ctx())
}

func TestApp_WindowManagerDryRun(t *testing.T) {
	app := newTestApp(t)

	wm, err := app.WindowManager(true)
	require.NoError(t, err)
	assert.IsType(t, &launcher.Recorder{}, wm)
}

func TestApp_PreviewRecordsNothing(t *testing.T) {
	app := newTestApp(t)
	rec := launcher.NewRecorder()

	out, err := app.PreviewUseCase(rec, app.Screens()).Execute(app.Ctx(), usecase.SplitInput{
		PrimaryURL:   "https://a.example",
		SecondaryURL: "https://b.example",
	})
	require.NoError(t, err)
	assert.True(t, out.Outcome.OK())
	assert.False(t, out.SessionSaved)
	assert.Len(t, rec.Requests(), 2)
	assert.False(t, app.DB().IsInitialized())
}

func TestApp_PlanUsesStaticScreen(t *testing.T) {
	app := newTestApp(t)

	out, err := app.PreviewUseCase(nil, app.Screens()).Plan(app.Ctx(), usecase.SplitInput{
		PrimaryURL:   "https://a.example",
		SecondaryURL: "https://b.example",
		Mode:         entity.SplitModeSideBySide,
	})
	require.NoError(t, err)

	assert.True(t, out.ScreenFound)
	assert.Equal(t, 1000, out.Screen.Width)
	assert.False(t, app.DB().IsInitialized())
}

func TestApp_SplitRecordsSession(t *testing.T) {
	app := newTestApp(t)

	out, err := app.SplitUseCase(launcher.NewRecorder()).Execute(app.Ctx(), usecase.SplitInput{
		PrimaryURL:   "https://a.example",
		SecondaryURL: "https://b.example",
		Mode:         entity.SplitModeTopBottom,
	})
	require.NoError(t, err)
	assert.True(t, out.Outcome.OK())
	assert.True(t, out.SessionSaved)

	latest, err := app.Sessions.GetLatest(app.Ctx())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, entity.SplitModeTopBottom, latest.Mode)
}

func TestApp_NewPopupSession(t *testing.T) {
	app := newTestApp(t)

	session, err := app.NewPopupSession(app.Ctx())
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close(app.Ctx()) })

	assert.Equal(t, entity.BuiltinPresetCount, session.Counter())
	assert.True(t, app.DB().IsInitialized())
}

func TestApp_ConcurrentPopupSessionsGetDistinctNumbers(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "splitview.db")
	first := newTestAppAt(t, dbPath)
	second := newTestAppAt(t, dbPath)

	s1, err := first.NewPopupSession(first.Ctx())
	require.NoError(t, err)
	s2, err := second.NewPopupSession(second.Ctx())
	require.NoError(t, err)

	p1, err := s1.NewCustom(first.Ctx())
	require.NoError(t, err)
	p2, err := s2.NewCustom(second.Ctx())
	require.NoError(t, err)
	assert.Equal(t, entity.PresetID("custom-5"), p1.ID)
	assert.Equal(t, entity.PresetID("custom-6"), p2.ID)

	require.NoError(t, s1.Edit(first.Ctx(), "github.com", "wikipedia.org"))
	require.NoError(t, s2.Edit(second.Ctx(), "claude.ai", "example.org"))
	require.NoError(t, s1.Close(first.Ctx()))
	require.NoError(t, s2.Close(second.Ctx()))

	presets, err := first.PresetsUC.List(first.Ctx())
	require.NoError(t, err)
	var custom []entity.PresetID
	for _, p := range presets {
		if p.ID.IsCustom() {
			custom = append(custom, p.ID)
		}
	}
	assert.Equal(t, []entity.PresetID{"custom-5", "custom-6"}, custom)

	// A preset created after both sessions continues the shared sequence.
	created, err := second.PresetsUC.Create(second.Ctx(), "a.example", "b.example")
	require.NoError(t, err)
	assert.Equal(t, entity.PresetID("custom-7"), created.ID)
}
