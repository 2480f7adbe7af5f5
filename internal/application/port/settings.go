package port

import "context"

// SettingsStore is a durable key/value store for preferences.
// Writes are last-write-wins per key.
type SettingsStore interface {
	// Get returns the stored values for keys. Missing keys are absent from the map.
	Get(ctx context.Context, keys ...string) (map[string]string, error)

	// Set writes every entry of values.
	Set(ctx context.Context, values map[string]string) error

	// Clear removes every stored setting.
	Clear(ctx context.Context) error
}
