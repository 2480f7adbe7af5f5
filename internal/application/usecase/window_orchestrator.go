package usecase

import (
	"context"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

// WindowOrchestrator opens the two windows of a split in order.
type WindowOrchestrator struct {
	windows port.WindowManager
}

// NewWindowOrchestrator creates a new WindowOrchestrator.
func NewWindowOrchestrator(windows port.WindowManager) *WindowOrchestrator {
	return &WindowOrchestrator{windows: windows}
}

// Open creates the primary window focused, waits for it, then creates the
// secondary window unfocused. Nothing is retried and a primary window that
// opened before a secondary failure is left in place.
func (o *WindowOrchestrator) Open(ctx context.Context, primaryURL, secondaryURL string, plan entity.LayoutPlan) entity.SplitOutcome {
	log := logging.FromContext(ctx)

	primary, err := o.windows.CreateWindow(ctx, primaryURL, plan.Primary, true)
	if err != nil {
		log.Warn().Err(err).Str("url", primaryURL).Msg("primary window creation failed")
		return entity.SplitOutcome{
			Status: entity.SplitStatusFailed,
			Err:    &entity.WindowCreationError{Side: entity.WindowSidePrimary, Err: err},
		}
	}
	log.Debug().
		Str("window_id", primary.ID).
		Str("rect", plan.Primary.String()).
		Msg("primary window created")

	if err := ctx.Err(); err != nil {
		return entity.SplitOutcome{
			Status:  entity.SplitStatusPartial,
			Primary: &primary,
			Err:     &entity.WindowCreationError{Side: entity.WindowSideSecondary, Err: err},
		}
	}

	secondary, err := o.windows.CreateWindow(ctx, secondaryURL, plan.Secondary, false)
	if err != nil {
		log.Warn().Err(err).Str("url", secondaryURL).Msg("secondary window creation failed")
		return entity.SplitOutcome{
			Status:  entity.SplitStatusPartial,
			Primary: &primary,
			Err:     &entity.WindowCreationError{Side: entity.WindowSideSecondary, Err: err},
		}
	}
	log.Debug().
		Str("window_id", secondary.ID).
		Str("rect", plan.Secondary.String()).
		Msg("secondary window created")

	return entity.SplitOutcome{
		Status:    entity.SplitStatusComplete,
		Primary:   &primary,
		Secondary: &secondary,
	}
}
