package screen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/domain/entity"
)

type fakeDetector struct {
	name      string
	priority  int
	available bool
	info      entity.ScreenInfo
	err       error
	calls     int
}

func (f *fakeDetector) Name() string    { return f.name }
func (f *fakeDetector) Priority() int   { return f.priority }
func (f *fakeDetector) Available() bool { return f.available }
func (f *fakeDetector) Detect(ctx context.Context) (entity.ScreenInfo, error) {
	f.calls++
	if f.err != nil {
		return entity.ScreenInfo{}, f.err
	}
	return f.info, ctx.Err()
}

func emptyResolver() *Resolver {
	return &Resolver{timeout: time.Second}
}

func TestResolver_PriorityOrder(t *testing.T) {
	low := &fakeDetector{name: "low", priority: 1, available: true, info: entity.ScreenInfo{Width: 800, Height: 600}}
	high := &fakeDetector{name: "high", priority: 50, available: true, info: entity.ScreenInfo{Width: 2560, Height: 1400}}

	r := emptyResolver()
	r.Register(low)
	r.Register(high)

	info, err := r.ScreenInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2560, info.Width)
	assert.Equal(t, 0, low.calls)
}

func TestResolver_SkipsUnavailableAndFailing(t *testing.T) {
	unavailable := &fakeDetector{name: "a", priority: 100}
	failing := &fakeDetector{name: "b", priority: 90, available: true, err: errors.New("no socket")}
	invalid := &fakeDetector{name: "c", priority: 80, available: true, info: entity.ScreenInfo{Width: 0, Height: 900}}
	good := &fakeDetector{name: "d", priority: 10, available: true, info: entity.ScreenInfo{Width: 1280, Height: 720}}

	r := emptyResolver()
	for _, d := range []Detector{good, invalid, failing, unavailable} {
		r.Register(d)
	}

	info, err := r.ScreenInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenInfo{Width: 1280, Height: 720}, info)
	assert.Equal(t, 0, unavailable.calls)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, invalid.calls)
}

func TestResolver_AllFail(t *testing.T) {
	r := emptyResolver()
	r.Register(&fakeDetector{name: "b", priority: 90, available: true, err: errors.New("no socket")})

	_, err := r.ScreenInfo(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDisplay)
	assert.Contains(t, err.Error(), "no socket")
}

func TestResolver_NothingAvailable(t *testing.T) {
	r := emptyResolver()
	r.Register(&fakeDetector{name: "a", priority: 1})

	_, err := r.ScreenInfo(context.Background())
	assert.ErrorIs(t, err, ErrNoDisplay)
}

func TestResolver_CancelledContext(t *testing.T) {
	r := emptyResolver()
	r.Register(&fakeDetector{name: "a", priority: 1, available: true, info: entity.ScreenInfo{Width: 10, Height: 10}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ScreenInfo(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewResolver_Backends(t *testing.T) {
	static := entity.ScreenInfo{Width: 1600, Height: 900}

	names := func(r *Resolver) []string {
		var out []string
		for _, d := range r.Detectors() {
			out = append(out, d.Name())
		}
		return out
	}

	assert.Equal(t, []string{"hyprland", "sway", "static"}, names(NewResolver(Options{Backend: BackendAuto, Static: static})))
	assert.Equal(t, []string{"hyprland", "sway"}, names(NewResolver(Options{})))
	assert.Equal(t, []string{"sway"}, names(NewResolver(Options{Backend: BackendSway})))
	assert.Equal(t, []string{"static"}, names(NewResolver(Options{Backend: BackendStatic, Static: static})))

	r := NewResolver(Options{Backend: BackendStatic, Static: static})
	info, err := r.ScreenInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, static, info)
	assert.Equal(t, defaultDetectTimeout, r.timeout)
}

func TestStaticDetector(t *testing.T) {
	d := NewStaticDetector(entity.ScreenInfo{})
	assert.False(t, d.Available())
	_, err := d.Detect(context.Background())
	assert.ErrorIs(t, err, ErrInvalidDisplay)
}
