package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// maxURLLength bounds what a user can type into a preset URL field.
const maxURLLength = 2048

// NewURLInput creates an input for one side of a preset. label is shown as
// the prompt, e.g. "L" or "R".
func NewURLInput(theme *Theme, label string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "https://"
	ti.Prompt = label + " " + IconArrow + " "
	ti.CharLimit = maxURLLength
	theme.StyleInput(&ti)
	return ti
}

// StyleInput applies the theme colors to ti. Called again after a theme change.
func (t *Theme) StyleInput(ti *textinput.Model) {
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(t.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(t.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(t.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(t.Accent)
}

// InputBox draws the bordered frame around a rendered input.
func (t *Theme) InputBox(input string, focused bool) string {
	if focused {
		return t.InputFocused.Render(input)
	}
	return t.Input.Render(input)
}
