package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	a := Rect{Width: 100, Height: 100, Left: 0, Top: 0}

	assert.True(t, a.Overlaps(Rect{Width: 10, Height: 10, Left: 99, Top: 99}))
	assert.False(t, a.Overlaps(Rect{Width: 10, Height: 10, Left: 100, Top: 0}))
	assert.False(t, a.Overlaps(Rect{Width: 10, Height: 10, Left: 0, Top: 100}))
	assert.Equal(t, "100x100+0+0", a.String())
}

func TestDefaultScreenInfo(t *testing.T) {
	s := DefaultScreenInfo()
	assert.True(t, s.Valid())
	assert.Equal(t, 1920, s.Width)
	assert.Equal(t, 1040, s.Height)
}

func TestWindowCreationError_Is(t *testing.T) {
	cause := errors.New("browser missing")
	err := error(&WindowCreationError{Side: WindowSideSecondary, Err: cause})

	assert.ErrorIs(t, err, ErrWindowCreationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "secondary")

	var wce *WindowCreationError
	assert.True(t, errors.As(err, &wce))
	assert.Equal(t, WindowSideSecondary, wce.Side)
}

func TestLastSession_Windows(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &LastSession{ID: "a", PrimaryURL: "https://a", SecondaryURL: "https://b", CreatedAt: now.Add(-30 * time.Minute)}

	assert.NoError(t, s.Validate())
	assert.True(t, s.Pending(now))
	assert.False(t, s.Expired(now))

	s.CreatedAt = now.Add(-2 * time.Hour)
	assert.False(t, s.Pending(now))

	s.CreatedAt = now.Add(-8 * 24 * time.Hour)
	assert.True(t, s.Expired(now))

	assert.ErrorIs(t, (&LastSession{}).Validate(), ErrInvalidLastSession)
}
