package model

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	repomocks "github.com/bnema/splitview/internal/domain/repository/mocks"
)

// pendingSaver keeps the latest scheduled save until Flush.
type pendingSaver struct {
	mu      sync.Mutex
	pending func(context.Context) error
}

func (s *pendingSaver) Schedule(save func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = save
}

func (s *pendingSaver) Flush(ctx context.Context) error {
	s.mu.Lock()
	save := s.pending
	s.pending = nil
	s.mu.Unlock()
	if save == nil {
		return nil
	}
	return save(ctx)
}

func (s *pendingSaver) Stop(ctx context.Context) error {
	return s.Flush(ctx)
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func newTestPicker(t *testing.T, custom []*entity.Preset) (PickerModel, *repomocks.MockPresetRepository) {
	t.Helper()
	ctx := context.Background()

	repo := repomocks.NewMockPresetRepository(t)
	repo.EXPECT().MaxCustomNumber(mock.Anything).Return(4, nil).Once()
	repo.EXPECT().GetAll(mock.Anything).Return(custom, nil).Maybe()

	presets := usecase.NewManagePresetsUseCase(repo, nil, nil)
	session, err := usecase.NewPopupSession(ctx, presets, &pendingSaver{})
	require.NoError(t, err)

	m := NewPickerModel(ctx, styles.NewTheme(nil), session, entity.SplitModeSideBySide)
	loaded, _ := m.Update(m.Init()())
	return loaded.(PickerModel), repo
}

func press(t *testing.T, m PickerModel, keys ...string) (PickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var next tea.Model = m
	for _, k := range keys {
		next, cmd = next.(PickerModel).Update(keyPress(k))
	}
	return next.(PickerModel), cmd
}

func TestPickerModel_LoadsBuiltinsAndCustom(t *testing.T) {
	custom := []*entity.Preset{{ID: "custom-5", LeftURL: "https://a.example", RightURL: "https://b.example"}}
	m, _ := newTestPicker(t, custom)

	require.Len(t, m.presets, entity.BuiltinPresetCount+1)
	assert.Equal(t, entity.PresetID("custom-5"), m.presets[4].ID)
	assert.Contains(t, m.View(), "splitview")
}

func TestPickerModel_NavigateAndOpen(t *testing.T) {
	m, _ := newTestPicker(t, nil)

	m, _ = press(t, m, "j", "j", "k")
	assert.Equal(t, 1, m.selectedIdx)

	m, cmd := press(t, m, "enter")
	require.NotNil(t, m.Chosen())
	assert.Equal(t, entity.PresetID("2"), m.Chosen().ID)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPickerModel_NavigationStaysInBounds(t *testing.T) {
	m, _ := newTestPicker(t, nil)

	m, _ = press(t, m, "k")
	assert.Equal(t, 0, m.selectedIdx)

	m, _ = press(t, m, "j", "j", "j", "j", "j", "j")
	assert.Equal(t, entity.BuiltinPresetCount-1, m.selectedIdx)
}

func TestPickerModel_QuitWithoutChoice(t *testing.T) {
	m, _ := newTestPicker(t, nil)

	m, cmd := press(t, m, "q")
	assert.Nil(t, m.Chosen())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPickerModel_CycleMode(t *testing.T) {
	m, _ := newTestPicker(t, nil)

	m, _ = press(t, m, "m")
	assert.Equal(t, entity.SplitModeTopBottom, m.Mode())

	m, _ = press(t, m, "m", "m")
	assert.Equal(t, entity.SplitModeSideBySide, m.Mode())
}

func TestPickerModel_BuiltinCannotBeEdited(t *testing.T) {
	m, _ := newTestPicker(t, nil)

	m, _ = press(t, m, "e")
	assert.False(t, m.editing)
	assert.Contains(t, m.status, "built-in")

	m, _ = press(t, m, "x")
	assert.Nil(t, m.confirm)
}

func TestPickerModel_NewCustomPresetIsSavedWhenComplete(t *testing.T) {
	m, repo := newTestPicker(t, nil)

	repo.EXPECT().ReserveCustomNumber(mock.Anything, entity.BuiltinPresetCount).Return(5, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *entity.Preset) bool {
		return p.ID == "custom-5" && p.LeftURL != "" && p.RightURL != ""
	})).Return(nil).Once()

	m, _ = press(t, m, "n")
	require.True(t, m.editing)
	assert.Equal(t, entity.PresetID("custom-5"), m.editingID)

	m, _ = press(t, m, "https://a.example", "enter", "https://b.example")
	assert.Equal(t, inputRight, m.focus)

	m, cmd := press(t, m, "esc")
	assert.False(t, m.editing)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, editFinishedMsg{}, msg)
	assert.NoError(t, msg.(editFinishedMsg).err)

	next, reload := m.Update(msg)
	m = next.(PickerModel)
	assert.Equal(t, "Saved custom-5", m.status)
	assert.NotNil(t, reload)
}

func TestPickerModel_IncompleteCustomPresetIsNotSaved(t *testing.T) {
	m, repo := newTestPicker(t, nil)
	repo.EXPECT().ReserveCustomNumber(mock.Anything, entity.BuiltinPresetCount).Return(5, nil).Once()

	m, cmd := press(t, m, "n", "https://a.example", "esc")
	require.False(t, m.editing)
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(PickerModel)
	assert.Contains(t, m.status, "needs both urls")
}

func TestPickerModel_NewCustomReportsReserveError(t *testing.T) {
	m, repo := newTestPicker(t, nil)
	repo.EXPECT().ReserveCustomNumber(mock.Anything, entity.BuiltinPresetCount).
		Return(0, errors.New("database is locked")).Once()

	m, _ = press(t, m, "n")

	assert.False(t, m.editing)
	assert.Contains(t, m.status, "database is locked")
}

func TestPickerModel_DeleteCustomPresetAfterConfirm(t *testing.T) {
	custom := &entity.Preset{ID: "custom-5", LeftURL: "https://a.example", RightURL: "https://b.example"}
	m, repo := newTestPicker(t, []*entity.Preset{custom})

	repo.EXPECT().FindByID(mock.Anything, entity.PresetID("custom-5")).Return(custom, nil).Once()
	repo.EXPECT().Delete(mock.Anything, entity.PresetID("custom-5")).Return(nil).Once()

	m, _ = press(t, m, "j", "j", "j", "j", "x")
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "custom-5")

	m, cmd := press(t, m, "y")
	assert.Nil(t, m.confirm)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, presetDeletedMsg{}, msg)
	assert.NoError(t, msg.(presetDeletedMsg).err)

	next, _ := m.Update(msg)
	assert.Equal(t, "Deleted custom-5", next.(PickerModel).status)
}

func TestPickerModel_DeleteCanceled(t *testing.T) {
	custom := &entity.Preset{ID: "custom-5", LeftURL: "https://a.example", RightURL: "https://b.example"}
	m, _ := newTestPicker(t, []*entity.Preset{custom})

	m, _ = press(t, m, "j", "j", "j", "j", "x", "n")
	assert.Nil(t, m.confirm)
	assert.Empty(t, m.status)
}

func TestPickerModel_ThemeChanged(t *testing.T) {
	m, _ := newTestPicker(t, nil)
	theme := styles.NewTheme(nil)

	next, cmd := m.Update(ThemeChangedMsg{Theme: theme})
	assert.Nil(t, cmd)
	assert.Same(t, theme, next.(PickerModel).theme)
}
