package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithSplitID creates a child logger with a split_id field
func WithSplitID(ctx context.Context, splitID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("split_id", splitID).Logger()
	return WithContext(ctx, childLogger)
}

// WithPresetID creates a child logger with a preset_id field
func WithPresetID(ctx context.Context, presetID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("preset_id", presetID).Logger()
	return WithContext(ctx, childLogger)
}
