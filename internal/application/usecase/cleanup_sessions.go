package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/logging"
)

// CleanupSessionsUseCase prunes old recorded splits.
type CleanupSessionsUseCase struct {
	sessionRepo repository.LastSessionRepository
}

// NewCleanupSessionsUseCase creates a new CleanupSessionsUseCase.
func NewCleanupSessionsUseCase(sessionRepo repository.LastSessionRepository) *CleanupSessionsUseCase {
	return &CleanupSessionsUseCase{
		sessionRepo: sessionRepo,
	}
}

// CleanupSessionsInput contains the cleanup configuration.
type CleanupSessionsInput struct {
	// Now is the reference time. Zero means time.Now.
	Now time.Time

	// MaxAge is the age after which a session is deleted.
	// Zero uses entity.LastSessionMaxAge.
	MaxAge time.Duration
}

// CleanupSessionsOutput contains the cleanup results.
type CleanupSessionsOutput struct {
	Cutoff  time.Time
	Deleted int64
}

// Execute deletes every session recorded before Now minus MaxAge.
func (uc *CleanupSessionsUseCase) Execute(ctx context.Context, input CleanupSessionsInput) (CleanupSessionsOutput, error) {
	log := logging.FromContext(ctx)

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	maxAge := input.MaxAge
	if maxAge <= 0 {
		maxAge = entity.LastSessionMaxAge
	}

	output := CleanupSessionsOutput{Cutoff: now.Add(-maxAge)}
	deleted, err := uc.sessionRepo.DeleteOlderThan(ctx, output.Cutoff)
	if err != nil {
		return output, fmt.Errorf("delete old sessions: %w", err)
	}
	output.Deleted = deleted

	if deleted > 0 {
		log.Info().
			Int64("deleted", deleted).
			Dur("max_age", maxAge).
			Msg("cleaned up old sessions")
	}

	return output, nil
}
