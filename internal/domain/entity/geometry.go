// Package entity defines domain entities for split views.
package entity

import "fmt"

// Fallback usable area when the host cannot report a display: a 1920x1080
// screen minus a 40px taskbar.
const (
	DefaultScreenWidth        = 1920
	DefaultUsableScreenHeight = 1040
)

// Rect is a window rectangle in device-independent pixels.
type Rect struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
	Left   int `json:"left" toml:"left"`
	Top    int `json:"top" toml:"top"`
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Valid reports whether the rectangle has a positive size and a non-negative origin.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0 && r.Left >= 0 && r.Top >= 0
}

// Overlaps reports whether two rectangles share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.Left, r.Top)
}

// ScreenInfo describes the usable screen area, already excluding OS chrome
// such as taskbars when the provider can tell.
// Left and Top are the work-area origin; both are zero on single-display setups.
type ScreenInfo struct {
	Width  int
	Height int
	Left   int
	Top    int
}

// DefaultScreenInfo is the fallback used when no provider can report a display.
func DefaultScreenInfo() ScreenInfo {
	return ScreenInfo{Width: DefaultScreenWidth, Height: DefaultUsableScreenHeight}
}

// Valid reports whether both dimensions are positive.
func (s ScreenInfo) Valid() bool {
	return s.Width > 0 && s.Height > 0 && s.Left >= 0 && s.Top >= 0
}

// LayoutPlan is the ordered pair of window rectangles for one split request.
// It is computed fresh for every request and never persisted.
type LayoutPlan struct {
	Mode       SplitMode
	EdgeToEdge bool
	Gap        int
	Primary    Rect
	Secondary  Rect
}
