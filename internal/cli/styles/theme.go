// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/config"
)

// Status colors are fixed; only the base palette is configurable.
const (
	colorError   = lipgloss.Color("#f38ba8")
	colorWarning = lipgloss.Color("#f9e2af")
	colorSuccess = lipgloss.Color("#a6e3a1")
)

// Theme holds the palette colors and the styles built from them.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Confirm dialog choices
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// ModeBadge renders split mode names; Badge renders doctor statuses.
	ModeBadge lipgloss.Style
	Badge     lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Box           lipgloss.Style
	SectionHeader lipgloss.Style

	// Plan preview fills
	PrimaryFill   lipgloss.Style
	SecondaryFill lipgloss.Style
}

// NewTheme creates a Theme from config. A nil config or an empty palette
// uses the default palette.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil || cfg.Appearance.Palette.Background == "" {
		return NewThemeFromPalette(config.DefaultConfig().Appearance.Palette)
	}
	return NewThemeFromPalette(cfg.Appearance.Palette)
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Surface),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	t.WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	t.Button = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)
	t.ButtonActive = t.Button.
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)

	t.ModeBadge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)
	t.Badge = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.InputFocused = t.Input.BorderForeground(t.Accent)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.SectionHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	t.PrimaryFill = lipgloss.NewStyle().Foreground(t.Accent)
	t.SecondaryFill = lipgloss.NewStyle().Foreground(t.Muted)
}

// Mode renders a split mode name as a badge.
func (t *Theme) Mode(name string) string {
	return t.ModeBadge.Render(name)
}

// ModeChoice renders every split mode, highlighting the current one.
func (t *Theme) ModeChoice(current entity.SplitMode) string {
	modes := entity.SplitModes()
	parts := make([]string, 0, len(modes))
	for _, mode := range modes {
		if mode == current {
			parts = append(parts, t.Mode(mode.String()))
		} else {
			parts = append(parts, t.Subtle.Render(" "+mode.String()+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
