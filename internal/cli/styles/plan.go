package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/splitview/internal/domain/entity"
)

const (
	previewCols = 48
	previewRows = 12

	primaryCell   = "█"
	secondaryCell = "▒"
	emptyCell     = "·"
)

// PlanView is what SplitRenderer shows for one split.
type PlanView struct {
	Screen       entity.ScreenInfo
	ScreenFound  bool
	Plan         entity.LayoutPlan
	PrimaryURL   string
	SecondaryURL string
}

// SplitRenderer renders layout plans and split outcomes.
type SplitRenderer struct {
	theme *Theme
}

// NewSplitRenderer creates a SplitRenderer.
func NewSplitRenderer(theme *Theme) *SplitRenderer {
	return &SplitRenderer{theme: theme}
}

// RenderPlan renders the screen, both rectangles and a scaled preview.
func (r *SplitRenderer) RenderPlan(v PlanView) string {
	t := r.theme

	style := "inset"
	if v.Plan.EdgeToEdge {
		style = "edge-to-edge"
	}
	source := "detected"
	if !v.ScreenFound {
		source = "fallback"
	}

	lines := []string{
		fmt.Sprintf("%s %s %s",
			t.Highlight.Render(IconColumns), t.Mode(v.Plan.Mode.String()), t.Subtle.Render(fmt.Sprintf("%s, gap %d", style, v.Plan.Gap))),
		fmt.Sprintf("%s %s %s",
			t.Subtle.Render("screen   "),
			t.Normal.Render(fmt.Sprintf("%dx%d+%d+%d", v.Screen.Width, v.Screen.Height, v.Screen.Left, v.Screen.Top)),
			t.Subtle.Render("("+source+")")),
		r.rectLine("primary  ", t.PrimaryFill.Render(primaryCell), v.Plan.Primary, v.PrimaryURL),
		r.rectLine("secondary", t.SecondaryFill.Render(secondaryCell), v.Plan.Secondary, v.SecondaryURL),
		"",
		r.preview(v.Screen, v.Plan),
	}
	return strings.Join(lines, "\n")
}

func (r *SplitRenderer) rectLine(label, swatch string, rect entity.Rect, rawURL string) string {
	line := fmt.Sprintf("%s %s %s", r.theme.Subtle.Render(label), swatch, r.theme.Normal.Render(PadRight(rect.String(), 20)))
	if rawURL != "" {
		line += " " + r.theme.Subtle.Render(Truncate(rawURL, 60))
	}
	return line
}

// preview draws the screen scaled to a fixed grid. Each cell takes the
// window that contains its center.
func (r *SplitRenderer) preview(screen entity.ScreenInfo, plan entity.LayoutPlan) string {
	if !screen.Valid() {
		return ""
	}

	var b strings.Builder
	for row := 0; row < previewRows; row++ {
		y := screen.Top + (2*row+1)*screen.Height/(2*previewRows)
		for col := 0; col < previewCols; col++ {
			x := screen.Left + (2*col+1)*screen.Width/(2*previewCols)
			switch {
			case contains(plan.Primary, x, y):
				b.WriteString(r.theme.PrimaryFill.Render(primaryCell))
			case contains(plan.Secondary, x, y):
				b.WriteString(r.theme.SecondaryFill.Render(secondaryCell))
			default:
				b.WriteString(r.theme.Subtle.Render(emptyCell))
			}
		}
		if row < previewRows-1 {
			b.WriteString("\n")
		}
	}
	return r.theme.Box.Padding(0, 1).Render(b.String())
}

func contains(rect entity.Rect, x, y int) bool {
	return x >= rect.Left && x < rect.Right() && y >= rect.Top && y < rect.Bottom()
}

// RenderOutcome reports which windows were opened.
func (r *SplitRenderer) RenderOutcome(outcome entity.SplitOutcome) string {
	t := r.theme

	var status string
	switch outcome.Status {
	case entity.SplitStatusComplete:
		status = fmt.Sprintf("%s %s", t.SuccessStyle.Render(IconCheck), t.Normal.Render("Opened both windows"))
	case entity.SplitStatusPartial:
		status = fmt.Sprintf("%s %s", t.WarningStyle.Render(IconWarning), t.Normal.Render("Opened the primary window only"))
	default:
		status = fmt.Sprintf("%s %s", t.ErrorStyle.Render(IconX), t.Normal.Render("No window opened"))
	}

	lines := []string{status}
	for _, h := range []*entity.WindowHandle{outcome.Primary, outcome.Secondary} {
		if h != nil {
			lines = append(lines, "  "+t.Subtle.Render(h.ID))
		}
	}
	if outcome.Err != nil {
		lines = append(lines, "  "+t.ErrorStyle.Render(outcome.Err.Error()))
	}
	return strings.Join(lines, "\n")
}
