package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorCheck is the result of one host probe.
type DoctorCheck struct {
	Category string
	Name     string
	OK       bool
	// Optional checks only warn when they fail.
	Optional bool
	Detail   string
}

// DoctorReport groups every probe result.
type DoctorReport struct {
	Checks []DoctorCheck
}

// OK reports whether every required check passed.
func (r DoctorReport) OK() bool {
	for _, c := range r.Checks {
		if !c.OK && !c.Optional {
			return false
		}
	}
	return true
}

// DoctorRenderer renders a DoctorReport.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a DoctorRenderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// Render groups checks by category, in first-seen order.
func (r *DoctorRenderer) Render(report DoctorReport) string {
	var order []string
	groups := make(map[string][]DoctorCheck)
	for _, c := range report.Checks {
		if _, ok := groups[c.Category]; !ok {
			order = append(order, c.Category)
		}
		groups[c.Category] = append(groups[c.Category], c)
	}

	sections := make([]string, 0, len(order))
	for _, category := range order {
		lines := make([]string, 0, len(groups[category]))
		for _, c := range groups[category] {
			lines = append(lines, r.renderCheck(c))
		}
		header := r.theme.SectionHeader.Render(r.theme.Highlight.Render(categoryIcon(category)) + " " + category)
		sections = append(sections, r.theme.Box.Render(header+"\n"+strings.Join(lines, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report.OK()), "", strings.Join(sections, "\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.Badge.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon, style := IconCheck, r.theme.SuccessStyle
	switch {
	case !c.OK && c.Optional:
		icon, style = IconWarning, r.theme.WarningStyle
	case !c.OK:
		icon, style = IconX, r.theme.ErrorStyle
	}

	line := fmt.Sprintf("%s %s", style.Render(icon), r.theme.Normal.Render(c.Name))
	if c.Detail != "" {
		line += "\n  " + r.theme.Subtle.Render(c.Detail)
	}
	return line
}

func categoryIcon(category string) string {
	switch strings.ToLower(category) {
	case "screen":
		return IconDesktop
	case "database":
		return IconDatabase
	case "config":
		return IconConfig
	default:
		return IconGlobe
	}
}
