package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSplitMode(t *testing.T) {
	tests := []struct {
		input string
		want  SplitMode
		known bool
	}{
		{"side-by-side", SplitModeSideBySide, true},
		{"Top-Bottom", SplitModeTopBottom, true},
		{"top_bottom", SplitModeTopBottom, true},
		{" focus ", SplitModeFocus, true},
		{"", SplitModeSideBySide, false},
		{"diagonal", SplitModeSideBySide, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSplitMode(tt.input))
			_, ok := LookupSplitMode(tt.input)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestSplitMode_StringRoundTrip(t *testing.T) {
	for _, m := range SplitModes() {
		assert.Equal(t, m, ParseSplitMode(m.String()))
	}
	assert.Equal(t, "unknown", SplitMode(9).String())
}

func TestSplitMode_Resolve(t *testing.T) {
	assert.Equal(t, SplitModeFocus, SplitModeFocus.Resolve())
	assert.Equal(t, SplitModeSideBySide, SplitMode(9).Resolve())
	assert.Equal(t, SplitModeSideBySide, SplitMode(-3).Resolve())
}
