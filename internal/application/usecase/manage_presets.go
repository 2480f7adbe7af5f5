package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	domainurl "github.com/bnema/splitview/internal/domain/url"
	"github.com/bnema/splitview/internal/logging"
)

// ErrIncompletePreset is returned when a preset is saved without both URLs.
var ErrIncompletePreset = errors.New("preset requires both urls")

// ManagePresetsUseCase handles built-in and custom presets.
type ManagePresetsUseCase struct {
	presetRepo  repository.PresetRepository
	sessionRepo repository.LastSessionRepository
	settings    *ManageSettingsUseCase
}

// NewManagePresetsUseCase creates a new ManagePresetsUseCase.
// sessionRepo and settings are only used by Reset and may be nil.
func NewManagePresetsUseCase(
	presetRepo repository.PresetRepository,
	sessionRepo repository.LastSessionRepository,
	settings *ManageSettingsUseCase,
) *ManagePresetsUseCase {
	return &ManagePresetsUseCase{
		presetRepo:  presetRepo,
		sessionRepo: sessionRepo,
		settings:    settings,
	}
}

// List returns the built-in presets followed by custom presets ordered by number.
func (uc *ManagePresetsUseCase) List(ctx context.Context) ([]*entity.Preset, error) {
	custom, err := uc.presetRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom presets: %w", err)
	}

	presets := entity.BuiltinPresets()
	return append(presets, custom...), nil
}

// Get returns the preset with the given ID.
func (uc *ManagePresetsUseCase) Get(ctx context.Context, id entity.PresetID) (*entity.Preset, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if p, ok := entity.FindBuiltinPreset(id); ok {
		return p, nil
	}

	p, err := uc.presetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find preset %s: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrPresetNotFound, id)
	}
	return p, nil
}

// Save validates and stores a custom preset. URLs are stored in normalized
// form and empty labels are derived from the site.
func (uc *ManagePresetsUseCase) Save(ctx context.Context, preset *entity.Preset) (*entity.Preset, error) {
	if preset == nil {
		return nil, ErrIncompletePreset
	}
	if preset.IsBuiltin() {
		return nil, fmt.Errorf("%w: %s", entity.ErrBuiltinPreset, preset.ID)
	}
	if !preset.ID.IsCustom() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidPresetID, string(preset.ID))
	}

	saved, err := normalizePreset(preset)
	if err != nil {
		return nil, err
	}
	if err := uc.store(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (uc *ManagePresetsUseCase) store(ctx context.Context, saved *entity.Preset) error {
	if err := uc.presetRepo.Save(ctx, saved); err != nil {
		return fmt.Errorf("save preset %s: %w", saved.ID, err)
	}

	logging.FromContext(ctx).Debug().
		Str("preset_id", string(saved.ID)).
		Str("left", saved.LeftURL).
		Str("right", saved.RightURL).
		Msg("preset saved")
	return nil
}

// normalizePreset returns a copy of preset with normalized URLs and derived
// labels. The ID is carried over unchecked.
func normalizePreset(preset *entity.Preset) (*entity.Preset, error) {
	if !preset.Complete() {
		return nil, fmt.Errorf("%w: %s", ErrIncompletePreset, preset.ID)
	}

	left, err := domainurl.NormalizeAndValidate(preset.LeftURL)
	if err != nil {
		return nil, fmt.Errorf("left url: %w", err)
	}
	right, err := domainurl.NormalizeAndValidate(preset.RightURL)
	if err != nil {
		return nil, fmt.Errorf("right url: %w", err)
	}

	return &entity.Preset{
		ID:         preset.ID,
		LeftURL:    left,
		RightURL:   right,
		LeftLabel:  labelOrSite(preset.LeftLabel, left),
		RightLabel: labelOrSite(preset.RightLabel, right),
	}, nil
}

// Create validates the URLs, then stores them under a freshly reserved
// custom number.
func (uc *ManagePresetsUseCase) Create(ctx context.Context, leftURL, rightURL string) (*entity.Preset, error) {
	saved, err := normalizePreset(&entity.Preset{LeftURL: leftURL, RightURL: rightURL})
	if err != nil {
		return nil, err
	}
	if saved.ID, err = uc.ReserveCustomID(ctx); err != nil {
		return nil, err
	}
	if err := uc.store(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// ReserveCustomID hands out a custom preset ID that no other session or
// process will receive, even if the preset is never saved.
func (uc *ManagePresetsUseCase) ReserveCustomID(ctx context.Context) (entity.PresetID, error) {
	n, err := uc.presetRepo.ReserveCustomNumber(ctx, entity.BuiltinPresetCount)
	if err != nil {
		return "", fmt.Errorf("reserve custom preset number: %w", err)
	}
	return entity.CustomPresetID(n), nil
}

// NextCustomNumber returns the number the next custom preset would get.
// It does not reserve it; use ReserveCustomID before handing one out.
func (uc *ManagePresetsUseCase) NextCustomNumber(ctx context.Context) (int, error) {
	maxN, err := uc.presetRepo.MaxCustomNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("read custom preset counter: %w", err)
	}
	return max(maxN, entity.BuiltinPresetCount) + 1, nil
}

// Delete removes a custom preset.
func (uc *ManagePresetsUseCase) Delete(ctx context.Context, id entity.PresetID) error {
	if id.IsBuiltin() {
		return fmt.Errorf("%w: %s", entity.ErrBuiltinPreset, id)
	}
	if err := id.Validate(); err != nil {
		return err
	}

	if err := uc.presetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete preset %s: %w", id, err)
	}
	logging.FromContext(ctx).Debug().Str("preset_id", string(id)).Msg("preset deleted")
	return nil
}

// Import saves every complete preset under a freshly reserved custom number.
// Incomplete or invalid entries are skipped and reported.
func (uc *ManagePresetsUseCase) Import(ctx context.Context, presets []*entity.Preset) (imported int, skipped []error, err error) {
	log := logging.FromContext(ctx)

	for _, p := range presets {
		if p == nil {
			continue
		}
		saved, normErr := normalizePreset(p)
		if normErr != nil {
			log.Debug().Err(normErr).Str("source_id", string(p.ID)).Msg("skipping imported preset")
			skipped = append(skipped, fmt.Errorf("preset %q: %w", p.ID, normErr))
			continue
		}
		if saved.ID, err = uc.ReserveCustomID(ctx); err != nil {
			return imported, skipped, err
		}
		if err := uc.store(ctx, saved); err != nil {
			return imported, skipped, err
		}
		imported++
	}

	return imported, skipped, nil
}

// Reset removes every custom preset, recorded session and stored setting.
func (uc *ManagePresetsUseCase) Reset(ctx context.Context) error {
	if err := uc.presetRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete presets: %w", err)
	}
	if uc.sessionRepo != nil {
		if err := uc.sessionRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
	}
	if uc.settings != nil {
		if err := uc.settings.Clear(ctx); err != nil {
			return err
		}
	}
	logging.FromContext(ctx).Info().Msg("all presets and settings reset")
	return nil
}

func labelOrSite(label, rawURL string) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	return domainurl.SiteLabel(rawURL)
}
