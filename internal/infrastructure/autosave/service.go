// Package autosave debounces preset edits into a single deferred write.
package autosave

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/logging"
)

const (
	defaultDelay      = time.Second
	defaultRetries    = 2
	defaultRetryDelay = 50 * time.Millisecond
)

// ErrStopped is returned when scheduling on a stopped service.
var ErrStopped = errors.New("autosave service stopped")

var _ port.Autosaver = (*Service)(nil)

// Service runs the most recently scheduled save once the delay has elapsed
// without a newer schedule.
type Service struct {
	delay      time.Duration
	retries    int
	retryDelay time.Duration

	// runMu is held while a save executes, so Flush waits for an in-flight
	// timer save before returning. Always taken before mu.
	runMu sync.Mutex

	mu      sync.Mutex
	timer   *time.Timer
	pending func(ctx context.Context) error
	ctx     context.Context
	stopped bool
}

// NewService creates a new autosave service.
func NewService(ctx context.Context, delayMs int) *Service {
	delay := defaultDelay
	if delayMs > 0 {
		delay = time.Duration(delayMs) * time.Millisecond
	}
	logging.FromContext(ctx).Debug().Dur("delay", delay).Msg("autosave service started")
	return &Service{
		delay:      delay,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
		ctx:        ctx,
	}
}

// Schedule replaces the pending save and restarts the delay.
func (s *Service) Schedule(save func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		logging.FromContext(s.ctx).Warn().Err(ErrStopped).Msg("dropping scheduled save")
		return
	}

	s.pending = save
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		if err := s.Flush(s.ctx); err != nil {
			logging.FromContext(s.ctx).Error().Err(err).Msg("autosave failed")
		}
	})
}

// Pending reports whether a save is waiting to run.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Flush runs the pending save now. It returns once no save is running.
func (s *Service) Flush(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	save := s.pending
	s.pending = nil
	s.mu.Unlock()

	if save == nil {
		return nil
	}
	return s.run(ctx, save)
}

// Stop flushes the pending save and rejects later schedules.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	return s.Flush(ctx)
}

func (s *Service) run(ctx context.Context, save func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.retryDelay):
			}
			logging.FromContext(ctx).Debug().Int("attempt", attempt).Err(err).Msg("retrying autosave")
		}
		err = save(ctx)
		if err == nil || !isBusyError(err) {
			return err
		}
	}
	return err
}

// isBusyError matches transient sqlite lock contention.
func isBusyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy")
}
