// Package port defines the host capabilities the use cases depend on.
package port

import (
	"context"

	"github.com/bnema/splitview/internal/domain/entity"
)

// WindowManager creates browser windows at a given geometry.
type WindowManager interface {
	// CreateWindow opens url in a new window placed at rect.
	// Only the first window of a split is created focused.
	CreateWindow(ctx context.Context, url string, rect entity.Rect, focused bool) (entity.WindowHandle, error)
}

// ScreenInfoProvider reports the usable screen area.
// Callers fall back to entity.DefaultScreenInfo on any error.
type ScreenInfoProvider interface {
	ScreenInfo(ctx context.Context) (entity.ScreenInfo, error)
}

// HealthChecker is implemented by adapters that can verify their host
// dependencies before use.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
