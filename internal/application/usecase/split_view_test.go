package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/splitview/internal/application/port/mocks"
	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/layout"
	repomocks "github.com/bnema/splitview/internal/domain/repository/mocks"
	domainurl "github.com/bnema/splitview/internal/domain/url"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type splitFixture struct {
	windows  *portmocks.MockWindowManager
	screens  *portmocks.MockScreenInfoProvider
	settings *portmocks.MockSettingsStore
	sessions *repomocks.MockLastSessionRepository
	uc       *usecase.SplitViewUseCase
}

func newSplitFixture(t *testing.T) *splitFixture {
	t.Helper()
	f := &splitFixture{
		windows:  portmocks.NewMockWindowManager(t),
		screens:  portmocks.NewMockScreenInfoProvider(t),
		settings: portmocks.NewMockSettingsStore(t),
		sessions: repomocks.NewMockLastSessionRepository(t),
	}
	f.uc = usecase.NewSplitViewUseCase(
		usecase.NewWindowOrchestrator(f.windows),
		f.screens,
		f.sessions,
		f.settings,
		usecase.DefaultLayoutDefaults(),
	)
	return f
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestSplitViewUseCase_Execute_SideBySideEdgeToEdge(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	f.screens.EXPECT().ScreenInfo(mock.Anything).Return(entity.ScreenInfo{Width: 1920, Height: 1040}, nil)
	f.windows.EXPECT().
		CreateWindow(mock.Anything, "https://a.com", entity.Rect{Width: 959, Height: 1040}, true).
		Return(entity.WindowHandle{ID: "1"}, nil)
	f.windows.EXPECT().
		CreateWindow(mock.Anything, "https://b.com", entity.Rect{Width: 959, Height: 1040, Left: 961}, false).
		Return(entity.WindowHandle{ID: "2"}, nil)
	f.settings.EXPECT().
		Get(mock.Anything, []string{entity.SettingRememberLayout}).
		Return(map[string]string{}, nil)

	var saved *entity.LastSession
	f.sessions.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.LastSession")).
		RunAndReturn(func(_ context.Context, s *entity.LastSession) error {
			saved = s
			return nil
		})

	out, err := f.uc.Execute(ctx, usecase.SplitInput{
		PrimaryURL:   "a.com",
		SecondaryURL: "https://b.com",
		Mode:         entity.SplitModeSideBySide,
	})

	require.NoError(t, err)
	assert.True(t, out.ScreenFound)
	assert.True(t, out.Outcome.OK())
	assert.True(t, out.SessionSaved)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "https://a.com", saved.PrimaryURL)
	assert.Equal(t, "https://b.com", saved.SecondaryURL)
	assert.Equal(t, entity.SplitModeSideBySide, saved.Mode)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestSplitViewUseCase_Execute_InvalidURLOpensNothing(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	_, err := f.uc.Execute(ctx, usecase.SplitInput{
		PrimaryURL:   "https://a.com",
		SecondaryURL: "ftp://b.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainurl.ErrInvalidURL)
	assert.Contains(t, err.Error(), "secondary url")
	f.windows.AssertNotCalled(t, "CreateWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSplitViewUseCase_Execute_EmptyPrimaryRejected(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	_, err := f.uc.Execute(ctx, usecase.SplitInput{PrimaryURL: "   ", SecondaryURL: "b.com"})

	assert.ErrorIs(t, err, domainurl.ErrInvalidURL)
	assert.Contains(t, err.Error(), "primary url")
}

func TestSplitViewUseCase_Execute_ScreenFailureFallsBackToDefault(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	f.screens.EXPECT().ScreenInfo(mock.Anything).Return(entity.ScreenInfo{}, errors.New("no compositor"))
	f.windows.EXPECT().
		CreateWindow(mock.Anything, "https://a.com", entity.Rect{Width: 1248, Height: 1040}, true).
		Return(entity.WindowHandle{ID: "1"}, nil)
	f.windows.EXPECT().
		CreateWindow(mock.Anything, "https://b.com", entity.Rect{Width: 670, Height: 1040, Left: 1250}, false).
		Return(entity.WindowHandle{ID: "2"}, nil)
	f.settings.EXPECT().
		Get(mock.Anything, mock.Anything).
		Return(map[string]string{entity.SettingRememberLayout: "false"}, nil)

	out, err := f.uc.Execute(ctx, usecase.SplitInput{
		PrimaryURL:   "a.com",
		SecondaryURL: "b.com",
		Mode:         entity.SplitModeFocus,
	})

	require.NoError(t, err)
	assert.False(t, out.ScreenFound)
	assert.Equal(t, entity.DefaultScreenInfo(), out.Screen)
	assert.True(t, out.Outcome.OK())
	assert.False(t, out.SessionSaved)
}

func TestSplitViewUseCase_Execute_EmptyScreenFallsBackToDefault(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	f.screens.EXPECT().ScreenInfo(mock.Anything).Return(entity.ScreenInfo{Width: 0, Height: 900}, nil)

	out, err := f.uc.Plan(ctx, usecase.SplitInput{PrimaryURL: "a.com", SecondaryURL: "b.com"})

	require.NoError(t, err)
	assert.False(t, out.ScreenFound)
	assert.Equal(t, entity.DefaultScreenInfo(), out.Screen)
}

func TestSplitViewUseCase_Execute_PartialFailureSkipsSession(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	f.screens.EXPECT().ScreenInfo(mock.Anything).Return(entity.ScreenInfo{Width: 1920, Height: 1040}, nil)
	f.windows.EXPECT().
		CreateWindow(mock.Anything, mock.Anything, mock.Anything, true).
		Return(entity.WindowHandle{ID: "1"}, nil)
	f.windows.EXPECT().
		CreateWindow(mock.Anything, mock.Anything, mock.Anything, false).
		Return(entity.WindowHandle{}, errors.New("boom"))

	out, err := f.uc.Execute(ctx, usecase.SplitInput{PrimaryURL: "a.com", SecondaryURL: "b.com"})

	require.NoError(t, err)
	assert.Equal(t, entity.SplitStatusPartial, out.Outcome.Status)
	assert.ErrorIs(t, out.Outcome.Err, entity.ErrWindowCreationFailed)
	assert.False(t, out.SessionSaved)
}

func TestSplitViewUseCase_Plan_InsetOverrides(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	f.screens.EXPECT().ScreenInfo(mock.Anything).Return(entity.ScreenInfo{Width: 1920, Height: 1040}, nil)

	out, err := f.uc.Plan(ctx, usecase.SplitInput{
		PrimaryURL:   "a.com",
		SecondaryURL: "b.com",
		Mode:         entity.SplitModeSideBySide,
		EdgeToEdge:   boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, out.Plan.EdgeToEdge)
	assert.Equal(t, entity.Rect{Width: 935, Height: 1000, Left: 20, Top: 20}, out.Plan.Primary)
	assert.Equal(t, entity.Rect{Width: 935, Height: 1000, Left: 965, Top: 20}, out.Plan.Secondary)
}

func TestSplitViewUseCase_Plan_GapOverride(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	f.screens.EXPECT().ScreenInfo(mock.Anything).Return(entity.ScreenInfo{Width: 1000, Height: 800}, nil)

	out, err := f.uc.Plan(ctx, usecase.SplitInput{PrimaryURL: "a.com", SecondaryURL: "b.com", Gap: intPtr(0)})

	require.NoError(t, err)
	assert.Equal(t, 500, out.Plan.Primary.Width)
	assert.Equal(t, 500, out.Plan.Secondary.Left)
}

func TestSplitViewUseCase_Plan_NegativeGapRejected(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	f.screens.EXPECT().ScreenInfo(mock.Anything).Return(entity.ScreenInfo{Width: 1000, Height: 800}, nil)

	_, err := f.uc.Plan(ctx, usecase.SplitInput{PrimaryURL: "a.com", SecondaryURL: "b.com", Gap: intPtr(-1)})

	assert.ErrorIs(t, err, layout.ErrInvalidInput)
}

func TestSplitViewUseCase_Execute_SessionSaveFailureIsNotFatal(t *testing.T) {
	ctx := testContext()
	f := newSplitFixture(t)

	f.screens.EXPECT().ScreenInfo(mock.Anything).Return(entity.ScreenInfo{Width: 1920, Height: 1040}, nil)
	f.windows.EXPECT().
		CreateWindow(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(entity.WindowHandle{ID: "x"}, nil).
		Times(2)
	f.settings.EXPECT().Get(mock.Anything, mock.Anything).Return(map[string]string{entity.SettingRememberLayout: "true"}, nil)
	f.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	out, err := f.uc.Execute(ctx, usecase.SplitInput{PrimaryURL: "a.com", SecondaryURL: "b.com"})

	require.NoError(t, err)
	assert.True(t, out.Outcome.OK())
	assert.False(t, out.SessionSaved)
}

func TestSplitViewUseCase_NilCollaborators(t *testing.T) {
	ctx := testContext()
	windows := portmocks.NewMockWindowManager(t)
	windows.EXPECT().
		CreateWindow(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(entity.WindowHandle{ID: "x"}, nil).
		Times(2)

	uc := usecase.NewSplitViewUseCase(usecase.NewWindowOrchestrator(windows), nil, nil, nil, usecase.DefaultLayoutDefaults())
	out, err := uc.Execute(ctx, usecase.SplitInput{PrimaryURL: "about:blank", SecondaryURL: "chrome://settings"})

	require.NoError(t, err)
	assert.Equal(t, "about:blank", out.PrimaryURL)
	assert.Equal(t, "chrome://settings", out.SecondaryURL)
	assert.False(t, out.SessionSaved)
}
