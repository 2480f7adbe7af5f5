package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/splitview/internal/cli/styles"
)

// confirmModel runs a ConfirmModel as a standalone program.
type confirmModel struct {
	confirm styles.ConfirmModel
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmModel) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View() + "\n"
}

// askConfirm shows a yes/no dialog and reports whether the user said yes.
func askConfirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{confirm: styles.NewConfirm(theme, message)}).Run()
	if err != nil {
		return false, err
	}
	return final.(confirmModel).confirm.Result(), nil
}
