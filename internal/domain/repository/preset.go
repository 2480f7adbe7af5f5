// Package repository defines persistence boundaries for split view data.
package repository

import (
	"context"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
)

// PresetRepository defines operations for custom preset persistence.
// Built-in presets are never stored.
type PresetRepository interface {
	// Save creates or updates a custom preset.
	Save(ctx context.Context, preset *entity.Preset) error

	// FindByID retrieves a preset by its ID. Returns nil, nil when missing.
	FindByID(ctx context.Context, id entity.PresetID) (*entity.Preset, error)

	// GetAll retrieves all custom presets ordered by their custom number.
	GetAll(ctx context.Context) ([]*entity.Preset, error)

	// MaxCustomNumber returns the highest N ever stored as custom-N, or 0.
	MaxCustomNumber(ctx context.Context) (int, error)

	// ReserveCustomNumber atomically hands out the next custom number above
	// floor and records it, so concurrent callers never get the same N.
	ReserveCustomNumber(ctx context.Context, floor int) (int, error)

	// Delete removes a preset by ID.
	Delete(ctx context.Context, id entity.PresetID) error

	// DeleteAll removes every custom preset.
	DeleteAll(ctx context.Context) error
}

// LastSessionRepository stores the inputs of recent splits.
type LastSessionRepository interface {
	// Save records a split.
	Save(ctx context.Context, session *entity.LastSession) error

	// GetLatest returns the most recent split, or nil, nil when none exists.
	GetLatest(ctx context.Context) (*entity.LastSession, error)

	// DeleteOlderThan removes splits created before cutoff and returns the count.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteAll removes every recorded split.
	DeleteAll(ctx context.Context) error
}
