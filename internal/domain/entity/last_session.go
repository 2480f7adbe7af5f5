package entity

import (
	"errors"
	"time"
)

// Restore windows for the last split.
const (
	PendingRestoreWindow = time.Hour
	LastSessionMaxAge    = 7 * 24 * time.Hour
)

// ErrInvalidLastSession is returned when a last session record is incomplete.
var ErrInvalidLastSession = errors.New("invalid last session")

// LastSession records the inputs of the most recent split so it can be replayed.
// The layout itself is recomputed on restore.
type LastSession struct {
	ID           string
	PrimaryURL   string
	SecondaryURL string
	Mode         SplitMode
	CreatedAt    time.Time
}

// Validate checks required fields.
func (s *LastSession) Validate() error {
	if s == nil || s.ID == "" || s.PrimaryURL == "" || s.SecondaryURL == "" || s.CreatedAt.IsZero() {
		return ErrInvalidLastSession
	}
	return nil
}

// Pending reports whether the session is recent enough to offer a restore.
func (s *LastSession) Pending(now time.Time) bool {
	return s != nil && now.Sub(s.CreatedAt) < PendingRestoreWindow
}

// Expired reports whether the session should be pruned.
func (s *LastSession) Expired(now time.Time) bool {
	return s != nil && now.Sub(s.CreatedAt) > LastSessionMaxAge
}
