// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

const (
	inputLeft = iota
	inputRight
)

// PickerModel is the interactive preset picker. It lists presets, edits
// custom presets in place and returns the preset chosen with enter.
type PickerModel struct {
	// UI components
	help    help.Model
	keys    pickerKeyMap
	inputs  [2]textinput.Model
	focus   int
	confirm *styles.ConfirmModel
	rows    *styles.PresetsRenderer

	// State
	presets     []*entity.Preset
	selectedIdx int
	editing     bool
	editingID   entity.PresetID
	mode        entity.SplitMode
	chosen      *entity.Preset
	status      string
	err         error
	width       int

	// Dependencies
	ctx     context.Context
	session *usecase.PopupSession
	theme   *styles.Theme
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Mode   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.New, k.Edit, k.Mode, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.New, k.Edit, k.Delete},
		{k.Mode, k.Help, k.Quit},
	}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open split"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new preset"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// editKeys are active while a preset is being edited.
var editKeys = struct {
	Next key.Binding
	Done key.Binding
	Quit key.Binding
}{
	Next: key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down")),
	Done: key.NewBinding(key.WithKeys("enter", "esc")),
	Quit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// NewPickerModel creates a picker over session. mode is the initially
// selected split mode.
func NewPickerModel(ctx context.Context, theme *styles.Theme, session *usecase.PopupSession, mode entity.SplitMode) PickerModel {
	left := styles.NewURLInput(theme, "L")
	right := styles.NewURLInput(theme, "R")

	return PickerModel{
		help:    help.New(),
		keys:    defaultPickerKeyMap(),
		inputs:  [2]textinput.Model{left, right},
		rows:    styles.NewPresetsRenderer(theme),
		mode:    mode.Resolve(),
		width:   80,
		ctx:     ctx,
		session: session,
		theme:   theme,
	}
}

// Chosen returns the preset picked with enter, or nil when the picker was
// closed without a choice.
func (m PickerModel) Chosen() *entity.Preset {
	return m.chosen
}

// Mode returns the split mode selected in the picker.
func (m PickerModel) Mode() entity.SplitMode {
	return m.mode
}

// presetsLoadedMsg is sent when presets are (re)loaded.
type presetsLoadedMsg struct {
	presets []*entity.Preset
	err     error
}

// presetDeletedMsg is sent when a custom preset is deleted.
type presetDeletedMsg struct {
	id  entity.PresetID
	err error
}

// editFinishedMsg is sent when pending edits have been written.
type editFinishedMsg struct {
	id  entity.PresetID
	err error
}

// ThemeChangedMsg replaces the picker theme, for example after the config
// file changed on disk.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return m.loadPresets
}

func (m PickerModel) loadPresets() tea.Msg {
	presets, err := m.session.Presets(m.ctx)
	return presetsLoadedMsg{presets: presets, err: err}
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case ThemeChangedMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.rows = styles.NewPresetsRenderer(msg.Theme)
			for i := range m.inputs {
				msg.Theme.StyleInput(&m.inputs[i])
			}
		}
		return m, nil

	case presetsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.presets = msg.presets
			m.selectedIdx = min(m.selectedIdx, max(len(m.presets)-1, 0))
		}
		return m, nil

	case presetDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %s", msg.id)
		return m, m.loadPresets

	case editFinishedMsg:
		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("Error: %v", msg.err)
		case m.session.Editing() != nil && m.session.Editing().Complete():
			m.status = fmt.Sprintf("Saved %s", msg.id)
		default:
			m.status = fmt.Sprintf("%s needs both urls, not saved", msg.id)
		}
		return m, m.loadPresets
	}

	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.presets)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if p := m.selected(); p != nil {
			m.chosen = p
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		p, err := m.session.NewCustom(m.ctx)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		return m.startEditing(p), textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		p := m.selected()
		if p == nil {
			return m, nil
		}
		if p.IsBuiltin() {
			m.status = entity.ErrBuiltinPreset.Error()
			return m, nil
		}
		current, err := m.session.Select(m.ctx, p.ID)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		return m.startEditing(current), textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		p := m.selected()
		if p == nil {
			return m, nil
		}
		if p.IsBuiltin() {
			m.status = entity.ErrBuiltinPreset.Error()
			return m, nil
		}
		confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete preset %s?", p.ID))
		m.confirm = &confirm
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		m.mode = nextMode(m.mode)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m PickerModel) startEditing(p *entity.Preset) PickerModel {
	m.editing = true
	m.editingID = p.ID
	m.focus = inputLeft
	m.inputs[inputLeft].SetValue(p.LeftURL)
	m.inputs[inputRight].SetValue(p.RightURL)
	m.inputs[inputLeft].Focus()
	m.inputs[inputRight].Blur()
	m.status = fmt.Sprintf("Editing %s", p.ID)
	return m
}

func (m PickerModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, editKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, editKeys.Next):
		m.setFocus(1 - m.focus)
		return m, nil

	case key.Matches(msg, editKeys.Done):
		if msg.Type == tea.KeyEnter && m.focus == inputLeft {
			m.setFocus(inputRight)
			return m, nil
		}
		m.editing = false
		m.inputs[inputLeft].Blur()
		m.inputs[inputRight].Blur()
		return m, m.finishEditing(m.editingID)
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() == before {
		return m, cmd
	}

	if err := m.session.Edit(m.ctx, m.inputs[inputLeft].Value(), m.inputs[inputRight].Value()); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
	}
	return m, cmd
}

func (m *PickerModel) setFocus(idx int) {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m PickerModel) finishEditing(id entity.PresetID) tea.Cmd {
	return func() tea.Msg {
		err := m.session.Flush(m.ctx)
		if err != nil {
			logging.FromContext(m.ctx).Warn().Err(err).Str("preset_id", string(id)).Msg("failed to save preset")
		}
		return editFinishedMsg{id: id, err: err}
	}
}

func (m PickerModel) handleConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}

	yes := m.confirm.Result()
	m.confirm = nil
	if !yes {
		return m, nil
	}
	if p := m.selected(); p != nil {
		return m, m.deletePreset(p.ID)
	}
	return m, nil
}

func (m PickerModel) deletePreset(id entity.PresetID) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("preset_id", string(id)).Msg("deleting preset")
		if _, err := m.session.Select(m.ctx, id); err != nil {
			return presetDeletedMsg{id: id, err: err}
		}
		return presetDeletedMsg{id: id, err: m.session.DeleteCurrent(m.ctx)}
	}
}

func (m PickerModel) selected() *entity.Preset {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.presets) {
		return nil
	}
	return m.presets[m.selectedIdx]
}

func nextMode(mode entity.SplitMode) entity.SplitMode {
	modes := entity.SplitModes()
	for i, candidate := range modes {
		if candidate == mode {
			return modes[(i+1)%len(modes)]
		}
	}
	return entity.DefaultSplitMode
}

// View implements tea.Model.
func (m PickerModel) View() string {
	t := m.theme

	if m.confirm != nil {
		return m.confirm.View()
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Title.Render(styles.IconColumns+" splitview"), "  ", t.ModeChoice(m.mode))

	sections := []string{header, ""}

	switch {
	case m.err != nil:
		sections = append(sections, t.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case len(m.presets) == 0:
		sections = append(sections, t.Subtle.Render("Loading presets..."))
	default:
		sections = append(sections, m.renderList())
	}

	if m.editing {
		sections = append(sections, "", m.renderEditor())
	}
	if m.status != "" {
		sections = append(sections, "", t.Subtle.Render(m.status))
	}
	if !m.editing {
		sections = append(sections, "", m.help.View(m.keys))
	}

	return strings.Join(sections, "\n")
}

func (m PickerModel) renderList() string {
	lines := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		row := m.rows.RenderRow(p)
		if i == m.selectedIdx {
			lines = append(lines, m.theme.Highlight.Render(styles.IconCursor)+" "+row)
		} else {
			lines = append(lines, "  "+row)
		}
	}
	return strings.Join(lines, "\n")
}

func (m PickerModel) renderEditor() string {
	t := m.theme
	title := t.Title.Render(fmt.Sprintf("%s %s", styles.IconEdit, m.editingID))
	left := t.InputBox(m.inputs[inputLeft].View(), m.focus == inputLeft)
	right := t.InputBox(m.inputs[inputRight].View(), m.focus == inputRight)
	hint := t.Subtle.Render("tab to switch • enter/esc to finish • changes save automatically")
	return lipgloss.JoinVertical(lipgloss.Left, title, left, right, hint)
}
