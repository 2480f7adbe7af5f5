// Package layout computes window geometry for the supported split modes.
package layout

import (
	"errors"
	"fmt"

	"github.com/bnema/splitview/internal/domain/entity"
)

// Default gaps and margins.
const (
	DefaultEdgeToEdgeGap = 2
	DefaultInsetGap      = 10
	DefaultInsetMargin   = 20

	focusPrimaryPercent   = 65
	focusSecondaryPercent = 35
	minExtent             = 1
)

// ErrInvalidInput is returned for non-positive screen sizes or negative spacing.
var ErrInvalidInput = errors.New("invalid layout input")

// Options selects between the edge-to-edge and inset layouts.
type Options struct {
	// EdgeToEdge starts the windows at the screen origin with no outer margin.
	EdgeToEdge bool
	// Gap is the space between the two windows.
	Gap int
	// Margin is the outer margin on every side. Ignored when EdgeToEdge is set.
	Margin int
}

// DefaultOptions returns the gap and margin defaults for the chosen style.
func DefaultOptions(edgeToEdge bool) Options {
	if edgeToEdge {
		return Options{EdgeToEdge: true, Gap: DefaultEdgeToEdgeGap}
	}
	return Options{Gap: DefaultInsetGap, Margin: DefaultInsetMargin}
}

// Compute returns the primary and secondary rectangles for mode on screen.
// Unknown modes resolve to side-by-side. Degenerate screens produce 1px
// extents instead of an error.
func Compute(screen entity.ScreenInfo, mode entity.SplitMode, opts Options) (entity.LayoutPlan, error) {
	if screen.Width <= 0 || screen.Height <= 0 {
		return entity.LayoutPlan{}, fmt.Errorf("%w: screen %dx%d", ErrInvalidInput, screen.Width, screen.Height)
	}
	if screen.Left < 0 || screen.Top < 0 {
		return entity.LayoutPlan{}, fmt.Errorf("%w: screen origin %d,%d", ErrInvalidInput, screen.Left, screen.Top)
	}
	if opts.Gap < 0 {
		return entity.LayoutPlan{}, fmt.Errorf("%w: gap %d", ErrInvalidInput, opts.Gap)
	}
	if opts.Margin < 0 {
		return entity.LayoutPlan{}, fmt.Errorf("%w: margin %d", ErrInvalidInput, opts.Margin)
	}

	mode = mode.Resolve()
	ox, w := usableSpan(screen.Left, screen.Width, opts)
	oy, h := usableSpan(screen.Top, screen.Height, opts)
	g := opts.Gap

	var primary, secondary entity.Rect
	switch mode {
	case entity.SplitModeTopBottom:
		half := atLeast((h - g) / 2)
		primary = entity.Rect{Width: w, Height: half, Left: ox, Top: oy}
		secondary = entity.Rect{Width: w, Height: half, Left: ox, Top: oy + primary.Height + g}
	case entity.SplitModeFocus:
		primary = entity.Rect{Width: atLeast(w * focusPrimaryPercent / 100), Height: h, Left: ox, Top: oy}
		secondary = entity.Rect{
			Width:  atLeast(w*focusSecondaryPercent/100 - g),
			Height: h,
			Left:   ox + primary.Width + g,
			Top:    oy,
		}
	default:
		half := atLeast((w - g) / 2)
		primary = entity.Rect{Width: half, Height: h, Left: ox, Top: oy}
		secondary = entity.Rect{Width: half, Height: h, Left: ox + primary.Width + g, Top: oy}
	}

	return entity.LayoutPlan{
		Mode:       mode,
		EdgeToEdge: opts.EdgeToEdge,
		Gap:        g,
		Primary:    primary,
		Secondary:  secondary,
	}, nil
}

// usableSpan returns the origin and extent of one axis after the outer margin.
// A margin that would consume the whole axis is dropped for that axis.
func usableSpan(origin, extent int, opts Options) (int, int) {
	if opts.EdgeToEdge || opts.Margin == 0 {
		return origin, extent
	}
	if extent-2*opts.Margin < minExtent {
		return origin, extent
	}
	return origin + opts.Margin, extent - 2*opts.Margin
}

func atLeast(v int) int {
	if v < minExtent {
		return minExtent
	}
	return v
}
