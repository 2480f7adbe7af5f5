package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/logging"
)

// ErrNoPendingSession is returned when there is no recent split to restore.
var ErrNoPendingSession = errors.New("no pending session to restore")

// RestoreSessionUseCase replays the most recent split.
type RestoreSessionUseCase struct {
	sessionRepo repository.LastSessionRepository
	split       *SplitViewUseCase
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(
	sessionRepo repository.LastSessionRepository,
	split *SplitViewUseCase,
) *RestoreSessionUseCase {
	return &RestoreSessionUseCase{
		sessionRepo: sessionRepo,
		split:       split,
	}
}

// Pending returns the last session when it was recorded less than an hour
// before now, or nil.
func (uc *RestoreSessionUseCase) Pending(ctx context.Context, now time.Time) (*entity.LastSession, error) {
	session, err := uc.sessionRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("get last session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	if err := session.Validate(); err != nil {
		logging.FromContext(ctx).Warn().Str("session_id", session.ID).Msg("ignoring incomplete last session")
		return nil, nil
	}
	if !session.Pending(now) {
		return nil, nil
	}
	return session, nil
}

// RestoreInput contains the parameters for restoring the last split.
type RestoreInput struct {
	Now time.Time
	// Mode overrides the recorded mode when set.
	Mode *entity.SplitMode
}

// Restore opens the pending last session again. The layout is recomputed for
// the current screen.
func (uc *RestoreSessionUseCase) Restore(ctx context.Context, input RestoreInput) (*SplitOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	session, err := uc.Pending(ctx, now)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoPendingSession
	}

	mode := session.Mode
	if input.Mode != nil {
		mode = *input.Mode
	}

	logging.FromContext(ctx).Info().
		Str("session_id", session.ID).
		Time("created_at", session.CreatedAt).
		Msg("restoring last session")

	return uc.split.Execute(ctx, SplitInput{
		PrimaryURL:   session.PrimaryURL,
		SecondaryURL: session.SecondaryURL,
		Mode:         mode,
	})
}
