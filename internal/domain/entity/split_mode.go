package entity

import "strings"

// SplitMode selects how the two windows share the screen.
type SplitMode int

const (
	// SplitModeSideBySide places the windows left and right at equal width.
	SplitModeSideBySide SplitMode = iota
	// SplitModeTopBottom stacks the windows vertically at equal height.
	SplitModeTopBottom
	// SplitModeFocus gives the primary window 65% of the width.
	SplitModeFocus
)

// DefaultSplitMode is used for empty or unknown mode names.
const DefaultSplitMode = SplitModeSideBySide

// SplitModes lists every supported mode in display order.
func SplitModes() []SplitMode {
	return []SplitMode{SplitModeSideBySide, SplitModeTopBottom, SplitModeFocus}
}

// ParseSplitMode converts a mode name to a SplitMode.
// Unknown names resolve to DefaultSplitMode.
func ParseSplitMode(name string) SplitMode {
	mode, ok := LookupSplitMode(name)
	if !ok {
		return DefaultSplitMode
	}
	return mode
}

// LookupSplitMode converts a mode name and reports whether it was recognized.
func LookupSplitMode(name string) (SplitMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "side-by-side", "side_by_side", "sidebyside":
		return SplitModeSideBySide, true
	case "top-bottom", "top_bottom", "topbottom":
		return SplitModeTopBottom, true
	case "focus":
		return SplitModeFocus, true
	default:
		return DefaultSplitMode, false
	}
}

// Known reports whether m is one of the supported modes.
func (m SplitMode) Known() bool {
	return m >= SplitModeSideBySide && m <= SplitModeFocus
}

// Resolve returns m, or DefaultSplitMode when m is outside the supported set.
func (m SplitMode) Resolve() SplitMode {
	if !m.Known() {
		return DefaultSplitMode
	}
	return m
}

func (m SplitMode) String() string {
	switch m {
	case SplitModeSideBySide:
		return "side-by-side"
	case SplitModeTopBottom:
		return "top-bottom"
	case SplitModeFocus:
		return "focus"
	default:
		return "unknown"
	}
}
