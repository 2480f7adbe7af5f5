package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

// ManageSettingsUseCase reads and writes the persisted preferences.
type ManageSettingsUseCase struct {
	store port.SettingsStore
}

// NewManageSettingsUseCase creates a new ManageSettingsUseCase.
func NewManageSettingsUseCase(store port.SettingsStore) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{store: store}
}

var preferenceKeys = []string{
	entity.SettingRememberLayout,
	entity.SettingAutoDetect,
	entity.SettingFirstTime,
	entity.SettingSplitMode,
	entity.SettingEdgeToEdge,
}

// InitializeDefaults writes the default value of every preference that is
// not stored yet. Existing values are left untouched.
func (uc *ManageSettingsUseCase) InitializeDefaults(ctx context.Context) (int, error) {
	log := logging.FromContext(ctx)

	stored, err := uc.store.Get(ctx, preferenceKeys...)
	if err != nil {
		return 0, fmt.Errorf("read settings: %w", err)
	}

	missing := make(map[string]string)
	for key, value := range encodePreferences(entity.DefaultPreferences()) {
		if _, ok := stored[key]; !ok {
			missing[key] = value
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	if err := uc.store.Set(ctx, missing); err != nil {
		return 0, fmt.Errorf("write default settings: %w", err)
	}
	log.Info().Int("count", len(missing)).Msg("initialized default settings")
	return len(missing), nil
}

// Preferences returns the stored preferences. Missing or malformed values
// fall back to their defaults.
func (uc *ManageSettingsUseCase) Preferences(ctx context.Context) (entity.Preferences, error) {
	stored, err := uc.store.Get(ctx, preferenceKeys...)
	if err != nil {
		return entity.DefaultPreferences(), fmt.Errorf("read settings: %w", err)
	}
	return decodePreferences(stored), nil
}

// SetPreferences writes the keys whose value differs from what is stored.
func (uc *ManageSettingsUseCase) SetPreferences(ctx context.Context, prefs entity.Preferences) error {
	stored, err := uc.store.Get(ctx, preferenceKeys...)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	changed := make(map[string]string)
	for key, value := range encodePreferences(prefs) {
		if current, ok := stored[key]; !ok || current != value {
			changed[key] = value
		}
	}
	if len(changed) == 0 {
		return nil
	}

	if err := uc.store.Set(ctx, changed); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("changed", len(changed)).Msg("preferences saved")
	return nil
}

// Clear removes every stored setting.
func (uc *ManageSettingsUseCase) Clear(ctx context.Context) error {
	if err := uc.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}

func encodePreferences(p entity.Preferences) map[string]string {
	return map[string]string{
		entity.SettingRememberLayout: strconv.FormatBool(p.RememberLayout),
		entity.SettingAutoDetect:     strconv.FormatBool(p.AutoDetect),
		entity.SettingFirstTime:      strconv.FormatBool(p.FirstTime),
		entity.SettingSplitMode:      p.Mode.String(),
		entity.SettingEdgeToEdge:     strconv.FormatBool(p.EdgeToEdge),
	}
}

func decodePreferences(values map[string]string) entity.Preferences {
	prefs := entity.DefaultPreferences()
	prefs.RememberLayout = parseBoolSetting(values, entity.SettingRememberLayout, prefs.RememberLayout)
	prefs.AutoDetect = parseBoolSetting(values, entity.SettingAutoDetect, prefs.AutoDetect)
	prefs.FirstTime = parseBoolSetting(values, entity.SettingFirstTime, prefs.FirstTime)
	prefs.EdgeToEdge = parseBoolSetting(values, entity.SettingEdgeToEdge, prefs.EdgeToEdge)
	if raw, ok := values[entity.SettingSplitMode]; ok {
		prefs.Mode = entity.ParseSplitMode(raw)
	}
	return prefs
}

func parseBoolSetting(values map[string]string, key string, fallback bool) bool {
	raw, ok := values[key]
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
