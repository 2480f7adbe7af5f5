package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/domain/entity"
)

func screen(w, h int) entity.ScreenInfo {
	return entity.ScreenInfo{Width: w, Height: h}
}

func TestCompute_SideBySideEdgeToEdge(t *testing.T) {
	plan, err := Compute(screen(1920, 1080), entity.SplitModeSideBySide, Options{EdgeToEdge: true, Gap: 2})
	require.NoError(t, err)

	assert.Equal(t, entity.Rect{Width: 959, Height: 1080, Left: 0, Top: 0}, plan.Primary)
	assert.Equal(t, entity.Rect{Width: 959, Height: 1080, Left: 961, Top: 0}, plan.Secondary)
	assert.Equal(t, plan.Primary.Left+961, plan.Secondary.Left)
	assert.Equal(t, entity.SplitModeSideBySide, plan.Mode)
	assert.True(t, plan.EdgeToEdge)
	assert.Equal(t, 2, plan.Gap)
}

func TestCompute_FocusEdgeToEdge(t *testing.T) {
	plan, err := Compute(screen(1920, 1080), entity.SplitModeFocus, Options{EdgeToEdge: true, Gap: 10})
	require.NoError(t, err)

	assert.Equal(t, 1248, plan.Primary.Width)
	assert.Equal(t, 662, plan.Secondary.Width)
	assert.Equal(t, 1258, plan.Secondary.Left)
	assert.Equal(t, 0, plan.Primary.Left)
	assert.Equal(t, 1080, plan.Secondary.Height)
}

func TestCompute_TopBottomEdgeToEdge(t *testing.T) {
	plan, err := Compute(screen(1920, 1040), entity.SplitModeTopBottom, DefaultOptions(true))
	require.NoError(t, err)

	assert.Equal(t, entity.Rect{Width: 1920, Height: 519, Left: 0, Top: 0}, plan.Primary)
	assert.Equal(t, entity.Rect{Width: 1920, Height: 519, Left: 0, Top: 521}, plan.Secondary)
}

func TestCompute_InsetSideBySide(t *testing.T) {
	plan, err := Compute(screen(1920, 1040), entity.SplitModeSideBySide, DefaultOptions(false))
	require.NoError(t, err)

	// usable 1880x1000 at (20,20), gap 10
	assert.Equal(t, entity.Rect{Width: 935, Height: 1000, Left: 20, Top: 20}, plan.Primary)
	assert.Equal(t, entity.Rect{Width: 935, Height: 1000, Left: 965, Top: 20}, plan.Secondary)
	assert.False(t, plan.EdgeToEdge)
}

func TestCompute_InsetTopBottom(t *testing.T) {
	plan, err := Compute(screen(1920, 1040), entity.SplitModeTopBottom, DefaultOptions(false))
	require.NoError(t, err)

	assert.Equal(t, entity.Rect{Width: 1880, Height: 495, Left: 20, Top: 20}, plan.Primary)
	assert.Equal(t, entity.Rect{Width: 1880, Height: 495, Left: 20, Top: 525}, plan.Secondary)
}

func TestCompute_OddWidthKeepsTruncation(t *testing.T) {
	// (1921-2)/2 = 959 with one pixel left over on the right edge.
	plan, err := Compute(screen(1921, 800), entity.SplitModeSideBySide, Options{EdgeToEdge: true, Gap: 2})
	require.NoError(t, err)

	assert.Equal(t, 959, plan.Primary.Width)
	assert.Equal(t, 959, plan.Secondary.Width)
	assert.Equal(t, 1920, plan.Secondary.Right())
}

func TestCompute_FocusWidthsMayDiffer(t *testing.T) {
	plan, err := Compute(screen(1001, 700), entity.SplitModeFocus, Options{EdgeToEdge: true, Gap: 0})
	require.NoError(t, err)

	assert.Equal(t, 650, plan.Primary.Width)  // 1001*65/100 = 650.65
	assert.Equal(t, 350, plan.Secondary.Width) // 1001*35/100 = 350.35
	assert.Equal(t, 650, plan.Secondary.Left)
}

func TestCompute_ScreenOriginOffsetsEdgeToEdge(t *testing.T) {
	s := entity.ScreenInfo{Width: 2560, Height: 1440, Left: 1920, Top: 30}
	plan, err := Compute(s, entity.SplitModeSideBySide, Options{EdgeToEdge: true, Gap: 0})
	require.NoError(t, err)

	assert.Equal(t, entity.Rect{Width: 1280, Height: 1440, Left: 1920, Top: 30}, plan.Primary)
	assert.Equal(t, entity.Rect{Width: 1280, Height: 1440, Left: 3200, Top: 30}, plan.Secondary)
}

func TestCompute_UnknownModeMatchesSideBySide(t *testing.T) {
	opts := DefaultOptions(true)
	want, err := Compute(screen(1366, 768), entity.SplitModeSideBySide, opts)
	require.NoError(t, err)

	for _, mode := range []entity.SplitMode{entity.SplitMode(42), entity.SplitMode(-1), entity.ParseSplitMode("diagonal")} {
		got, err := Compute(screen(1366, 768), mode, opts)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		screen entity.ScreenInfo
		opts   Options
	}{
		{name: "zero width", screen: screen(0, 1080), opts: DefaultOptions(true)},
		{name: "zero height", screen: screen(1920, 0), opts: DefaultOptions(true)},
		{name: "negative width", screen: screen(-5, 1080), opts: DefaultOptions(true)},
		{name: "negative origin", screen: entity.ScreenInfo{Width: 100, Height: 100, Left: -1}, opts: DefaultOptions(true)},
		{name: "negative gap", screen: screen(1920, 1080), opts: Options{EdgeToEdge: true, Gap: -1}},
		{name: "negative margin", screen: screen(1920, 1080), opts: Options{Gap: 10, Margin: -20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.screen, entity.SplitModeSideBySide, tt.opts)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCompute_NarrowScreenDoesNotFail(t *testing.T) {
	for _, w := range []int{1, 2, 3} {
		for _, mode := range entity.SplitModes() {
			plan, err := Compute(screen(w, 1), mode, Options{EdgeToEdge: true, Gap: 2})
			require.NoError(t, err)
			assert.True(t, plan.Primary.Valid(), "primary %v", plan.Primary)
			assert.True(t, plan.Secondary.Valid(), "secondary %v", plan.Secondary)
		}
	}
}

func TestCompute_InsetMarginDroppedWhenScreenTooSmall(t *testing.T) {
	plan, err := Compute(screen(30, 30), entity.SplitModeSideBySide, Options{Gap: 0, Margin: 20})
	require.NoError(t, err)

	assert.Equal(t, 0, plan.Primary.Left)
	assert.Equal(t, 0, plan.Primary.Top)
	assert.Equal(t, 15, plan.Primary.Width)
}

func TestCompute_NeverOverlaps(t *testing.T) {
	widths := []int{1, 2, 3, 10, 99, 640, 1024, 1280, 1366, 1919, 1920, 2560, 3840}
	heights := []int{1, 2, 3, 11, 480, 768, 1040, 1080, 1440, 2160}
	gaps := []int{0, 1, 2, 10, 25}

	for _, edge := range []bool{true, false} {
		for _, mode := range entity.SplitModes() {
			for _, w := range widths {
				for _, h := range heights {
					for _, g := range gaps {
						opts := DefaultOptions(edge)
						opts.Gap = g

						plan, err := Compute(screen(w, h), mode, opts)
						require.NoError(t, err)

						p, s := plan.Primary, plan.Secondary
						require.Truef(t, p.Valid(), "primary %v for %dx%d gap=%d mode=%v edge=%v", p, w, h, g, mode, edge)
						require.Truef(t, s.Valid(), "secondary %v for %dx%d gap=%d mode=%v edge=%v", s, w, h, g, mode, edge)
						require.Falsef(t, p.Overlaps(s), "overlap %v %v", p, s)

						if mode == entity.SplitModeTopBottom {
							require.LessOrEqual(t, p.Bottom(), s.Top)
						} else {
							require.LessOrEqual(t, p.Right(), s.Left)
						}
					}
				}
			}
		}
	}
}

func TestCompute_FitsScreenWhenRoomy(t *testing.T) {
	for _, edge := range []bool{true, false} {
		for _, mode := range entity.SplitModes() {
			opts := DefaultOptions(edge)
			plan, err := Compute(screen(1920, 1080), mode, opts)
			require.NoError(t, err)

			assert.LessOrEqual(t, plan.Secondary.Right(), 1920)
			assert.LessOrEqual(t, plan.Secondary.Bottom(), 1080)
			assert.LessOrEqual(t, plan.Primary.Right(), 1920)
			assert.LessOrEqual(t, plan.Primary.Bottom(), 1080)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, Options{EdgeToEdge: true, Gap: 2}, DefaultOptions(true))
	assert.Equal(t, Options{Gap: 10, Margin: 20}, DefaultOptions(false))
}
