package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/splitview/internal/application/port/mocks"
	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPlan() entity.LayoutPlan {
	return entity.LayoutPlan{
		Mode:       entity.SplitModeSideBySide,
		EdgeToEdge: true,
		Gap:        2,
		Primary:    entity.Rect{Width: 959, Height: 1040},
		Secondary:  entity.Rect{Width: 959, Height: 1040, Left: 961},
	}
}

func TestWindowOrchestrator_Open_CreatesPrimaryThenSecondary(t *testing.T) {
	ctx := testContext()
	plan := testPlan()

	windows := portmocks.NewMockWindowManager(t)
	var order []string
	windows.EXPECT().
		CreateWindow(mock.Anything, "https://a.com", plan.Primary, true).
		Run(func(_ context.Context, url string, _ entity.Rect, _ bool) { order = append(order, url) }).
		Return(entity.WindowHandle{ID: "w1"}, nil).
		Once()
	windows.EXPECT().
		CreateWindow(mock.Anything, "https://b.com", plan.Secondary, false).
		Run(func(_ context.Context, url string, _ entity.Rect, _ bool) { order = append(order, url) }).
		Return(entity.WindowHandle{ID: "w2"}, nil).
		Once()

	outcome := usecase.NewWindowOrchestrator(windows).Open(ctx, "https://a.com", "https://b.com", plan)

	assert.True(t, outcome.OK())
	assert.Equal(t, entity.SplitStatusComplete, outcome.Status)
	require.NotNil(t, outcome.Primary)
	require.NotNil(t, outcome.Secondary)
	assert.Equal(t, "w1", outcome.Primary.ID)
	assert.Equal(t, "w2", outcome.Secondary.ID)
	assert.NoError(t, outcome.Err)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, order)
}

func TestWindowOrchestrator_Open_PrimaryFailureSkipsSecondary(t *testing.T) {
	ctx := testContext()
	plan := testPlan()
	hostErr := errors.New("browser not found")

	windows := portmocks.NewMockWindowManager(t)
	windows.EXPECT().
		CreateWindow(mock.Anything, "https://a.com", plan.Primary, true).
		Return(entity.WindowHandle{}, hostErr).
		Once()

	outcome := usecase.NewWindowOrchestrator(windows).Open(ctx, "https://a.com", "https://b.com", plan)

	assert.Equal(t, entity.SplitStatusFailed, outcome.Status)
	assert.Nil(t, outcome.Primary)
	assert.Nil(t, outcome.Secondary)
	assert.ErrorIs(t, outcome.Err, entity.ErrWindowCreationFailed)
	assert.ErrorIs(t, outcome.Err, hostErr)

	var wce *entity.WindowCreationError
	require.ErrorAs(t, outcome.Err, &wce)
	assert.Equal(t, entity.WindowSidePrimary, wce.Side)
}

func TestWindowOrchestrator_Open_SecondaryFailureKeepsPrimary(t *testing.T) {
	ctx := testContext()
	plan := testPlan()

	windows := portmocks.NewMockWindowManager(t)
	windows.EXPECT().
		CreateWindow(mock.Anything, "https://a.com", plan.Primary, true).
		Return(entity.WindowHandle{ID: "w1", PID: 42}, nil).
		Once()
	windows.EXPECT().
		CreateWindow(mock.Anything, "https://b.com", plan.Secondary, false).
		Return(entity.WindowHandle{}, errors.New("spawn failed")).
		Once()

	outcome := usecase.NewWindowOrchestrator(windows).Open(ctx, "https://a.com", "https://b.com", plan)

	assert.Equal(t, entity.SplitStatusPartial, outcome.Status)
	require.NotNil(t, outcome.Primary)
	assert.Equal(t, 42, outcome.Primary.PID)
	assert.Nil(t, outcome.Secondary)

	var wce *entity.WindowCreationError
	require.ErrorAs(t, outcome.Err, &wce)
	assert.Equal(t, entity.WindowSideSecondary, wce.Side)
}

func TestWindowOrchestrator_Open_CanceledAfterPrimary(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	plan := testPlan()

	windows := portmocks.NewMockWindowManager(t)
	windows.EXPECT().
		CreateWindow(mock.Anything, "https://a.com", plan.Primary, true).
		Run(func(context.Context, string, entity.Rect, bool) { cancel() }).
		Return(entity.WindowHandle{ID: "w1"}, nil).
		Once()

	outcome := usecase.NewWindowOrchestrator(windows).Open(ctx, "https://a.com", "https://b.com", plan)

	assert.Equal(t, entity.SplitStatusPartial, outcome.Status)
	assert.ErrorIs(t, outcome.Err, context.Canceled)
	assert.ErrorIs(t, outcome.Err, entity.ErrWindowCreationFailed)
}
