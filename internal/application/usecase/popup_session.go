package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

// ErrNoPresetSelected is returned when editing without a current preset.
var ErrNoPresetSelected = errors.New("no preset selected")

// PopupSession holds the state of one interactive preset picker: the preset
// being edited and the custom preset counter. Edits are persisted through the
// autosaver, so a burst of keystrokes results in one write.
type PopupSession struct {
	presets *ManagePresetsUseCase
	saver   port.Autosaver

	mu      sync.Mutex
	editing *entity.Preset
	counter int
}

// NewPopupSession loads the custom preset counter and returns a session with
// no preset selected.
func NewPopupSession(ctx context.Context, presets *ManagePresetsUseCase, saver port.Autosaver) (*PopupSession, error) {
	next, err := presets.NextCustomNumber(ctx)
	if err != nil {
		return nil, err
	}
	return &PopupSession{
		presets: presets,
		saver:   saver,
		counter: next - 1,
	}, nil
}

// Presets lists every preset available in the picker.
func (s *PopupSession) Presets(ctx context.Context) ([]*entity.Preset, error) {
	return s.presets.List(ctx)
}

// Editing returns a copy of the current preset, or nil.
func (s *PopupSession) Editing() *entity.Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		return nil
	}
	p := *s.editing
	return &p
}

// Counter returns the number of the last custom preset handed out.
func (s *PopupSession) Counter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// Select makes the preset with id the current one.
func (s *PopupSession) Select(ctx context.Context, id entity.PresetID) (*entity.Preset, error) {
	p, err := s.presets.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.editing = &cp
	return p, nil
}

// NewCustom starts a new empty custom preset under a reserved number.
// Numbers only move forward and are shared by every session on the same
// database, so two pickers never hand out the same custom-N.
func (s *PopupSession) NewCustom(ctx context.Context) (*entity.Preset, error) {
	id, err := s.presets.ReserveCustomID(ctx)
	if err != nil {
		return nil, err
	}
	n, _ := id.CustomNumber()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter = max(s.counter, n)
	s.editing = &entity.Preset{ID: id}

	logging.FromContext(ctx).Debug().Str("preset_id", string(id)).Msg("new custom preset")
	p := *s.editing
	return &p, nil
}

// Edit updates the URLs of the current custom preset and schedules a save.
func (s *PopupSession) Edit(ctx context.Context, leftURL, rightURL string) error {
	s.mu.Lock()
	if s.editing == nil {
		s.mu.Unlock()
		return ErrNoPresetSelected
	}
	if s.editing.IsBuiltin() {
		id := s.editing.ID
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", entity.ErrBuiltinPreset, id)
	}

	s.editing.LeftURL = strings.TrimSpace(leftURL)
	s.editing.RightURL = strings.TrimSpace(rightURL)
	s.editing.LeftLabel = ""
	s.editing.RightLabel = ""
	snapshot := *s.editing
	s.mu.Unlock()

	s.saver.Schedule(func(saveCtx context.Context) error {
		return s.save(saveCtx, &snapshot)
	})
	logging.FromContext(ctx).Debug().Str("preset_id", string(snapshot.ID)).Msg("preset edit scheduled")
	return nil
}

// DeleteCurrent deletes the current custom preset and clears the selection.
func (s *PopupSession) DeleteCurrent(ctx context.Context) error {
	s.mu.Lock()
	if s.editing == nil {
		s.mu.Unlock()
		return ErrNoPresetSelected
	}
	id := s.editing.ID
	s.mu.Unlock()

	if err := s.saver.Flush(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("pending preset save failed before delete")
	}
	if err := s.presets.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if s.editing != nil && s.editing.ID == id {
		s.editing = nil
	}
	s.mu.Unlock()
	return nil
}

// Flush writes any pending edit immediately.
func (s *PopupSession) Flush(ctx context.Context) error {
	return s.saver.Flush(ctx)
}

// Close flushes pending edits and stops the autosaver.
func (s *PopupSession) Close(ctx context.Context) error {
	return s.saver.Stop(ctx)
}

func (s *PopupSession) save(ctx context.Context, p *entity.Preset) error {
	if !p.Complete() {
		logging.FromContext(ctx).Debug().Str("preset_id", string(p.ID)).Msg("skipping save of incomplete preset")
		return nil
	}
	saved, err := s.presets.Save(ctx, p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.editing != nil && s.editing.ID == saved.ID &&
		s.editing.LeftURL == p.LeftURL && s.editing.RightURL == p.RightURL {
		cp := *saved
		s.editing = &cp
	}
	s.mu.Unlock()
	return nil
}
