package screen

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

const defaultDetectTimeout = 2 * time.Second

var (
	// ErrNoDisplay is returned when no detector could report a display.
	ErrNoDisplay = errors.New("no display detected")
	// ErrInvalidDisplay is returned for a display with a non-positive size
	// or a negative origin.
	ErrInvalidDisplay = errors.New("invalid display geometry")
)

// Detector reports the usable area of one kind of host.
type Detector interface {
	// Name returns a short identifier used in logs and diagnostics.
	Name() string
	// Priority orders detectors; higher values are tried first.
	Priority() int
	// Available reports whether the host looks like it supports this detector.
	Available() bool
	// Detect queries the host.
	Detect(ctx context.Context) (entity.ScreenInfo, error)
}

// Backend names a detector selection.
type Backend string

const (
	BackendAuto     Backend = "auto"
	BackendHyprland Backend = "hyprland"
	BackendSway     Backend = "sway"
	BackendStatic   Backend = "static"
)

// Options configures NewResolver.
type Options struct {
	Backend Backend
	// Static is the configured area. In auto mode it is the last resort
	// before the caller's own fallback.
	Static  entity.ScreenInfo
	Timeout time.Duration
	Runner  CommandRunner
}

// Resolver implements port.ScreenInfoProvider over a set of detectors.
type Resolver struct {
	mu        sync.RWMutex
	detectors []Detector
	timeout   time.Duration
}

// NewResolver creates a resolver with the detectors selected by opts.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{timeout: opts.Timeout}
	if r.timeout <= 0 {
		r.timeout = defaultDetectTimeout
	}

	switch opts.Backend {
	case BackendHyprland:
		r.Register(NewHyprlandDetector(opts.Runner))
	case BackendSway:
		r.Register(NewSwayDetector(opts.Runner))
	case BackendStatic:
		r.Register(NewStaticDetector(opts.Static))
	default:
		r.Register(NewHyprlandDetector(opts.Runner))
		r.Register(NewSwayDetector(opts.Runner))
		if opts.Static.Valid() {
			r.Register(NewStaticDetector(opts.Static))
		}
	}
	return r
}

// Register adds a detector.
func (r *Resolver) Register(d Detector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, d)
}

// Detectors returns the registered detectors, highest priority first.
func (r *Resolver) Detectors() []Detector {
	r.mu.RLock()
	sorted := make([]Detector, len(r.detectors))
	copy(sorted, r.detectors)
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return sorted
}

// ScreenInfo implements port.ScreenInfoProvider. It returns the first valid
// answer from the available detectors.
func (r *Resolver) ScreenInfo(ctx context.Context) (entity.ScreenInfo, error) {
	log := logging.FromContext(ctx)

	var errs []error
	for _, d := range r.Detectors() {
		if !d.Available() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return entity.ScreenInfo{}, err
		}

		info, err := r.detect(ctx, d)
		if err != nil {
			log.Debug().Err(err).Str("detector", d.Name()).Msg("screen detection failed")
			errs = append(errs, fmt.Errorf("%s: %w", d.Name(), err))
			continue
		}
		log.Debug().
			Str("detector", d.Name()).
			Int("width", info.Width).
			Int("height", info.Height).
			Int("left", info.Left).
			Int("top", info.Top).
			Msg("screen detected")
		return info, nil
	}

	if len(errs) == 0 {
		return entity.ScreenInfo{}, ErrNoDisplay
	}
	return entity.ScreenInfo{}, errors.Join(append([]error{ErrNoDisplay}, errs...)...)
}

func (r *Resolver) detect(ctx context.Context, d Detector) (entity.ScreenInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	info, err := d.Detect(ctx)
	if err != nil {
		return entity.ScreenInfo{}, err
	}
	if !info.Valid() {
		return entity.ScreenInfo{}, ErrInvalidDisplay
	}
	return info, nil
}
