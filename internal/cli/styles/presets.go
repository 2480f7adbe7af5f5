package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitview/internal/domain/entity"
	domainurl "github.com/bnema/splitview/internal/domain/url"
)

const (
	presetIDWidth    = 10
	presetLabelWidth = 16
	presetURLWidth   = 36
)

// PresetsRenderer renders preset listings for the non-interactive CLI.
type PresetsRenderer struct {
	theme *Theme
}

// NewPresetsRenderer creates a PresetsRenderer.
func NewPresetsRenderer(theme *Theme) *PresetsRenderer {
	return &PresetsRenderer{theme: theme}
}

// RenderList renders one line per preset. Built-in presets carry a star.
func (r *PresetsRenderer) RenderList(presets []*entity.Preset) string {
	if len(presets) == 0 {
		return r.theme.Subtle.Render("No presets.")
	}

	header := r.theme.Title.Render(fmt.Sprintf("%s Presets", r.theme.Highlight.Render(IconColumns)))
	lines := make([]string, 0, len(presets)+2)
	lines = append(lines, header, "")
	for _, p := range presets {
		lines = append(lines, r.RenderRow(p))
	}
	return strings.Join(lines, "\n")
}

// RenderRow renders a single preset.
func (r *PresetsRenderer) RenderRow(p *entity.Preset) string {
	marker := " "
	if p.IsBuiltin() {
		marker = r.theme.Highlight.Render(IconStar)
	}

	id := r.theme.Highlight.Render(PadRight(string(p.ID), presetIDWidth))
	left := r.side(p.LeftLabel, p.LeftURL)
	right := r.side(p.RightLabel, p.RightURL)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		marker, " ", id, " ", left, r.theme.Subtle.Render(" │ "), right)
}

func (r *PresetsRenderer) side(label, rawURL string) string {
	if label == "" && rawURL != "" {
		label = domainurl.SiteLabel(rawURL)
	}
	icon := domainurl.SiteIcon(rawURL)
	name := r.theme.Normal.Render(PadRight(icon+" "+label, presetLabelWidth))
	target := r.theme.Subtle.Render(PadRight(rawURL, presetURLWidth))
	return name + " " + target
}

// RenderSaved confirms a created or imported preset.
func (r *PresetsRenderer) RenderSaved(p *entity.Preset) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render("Saved preset"),
		r.theme.Highlight.Render(string(p.ID)))
}

// RenderImport summarizes an import. Skipped entries are listed with their reason.
func (r *PresetsRenderer) RenderImport(imported int, skipped []error) string {
	lines := []string{fmt.Sprintf("%s Imported %d preset(s)", r.theme.SuccessStyle.Render(IconCheck), imported)}
	for _, err := range skipped {
		lines = append(lines, fmt.Sprintf("  %s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Subtle.Render(err.Error())))
	}
	return strings.Join(lines, "\n")
}
