package models

import (
	"github.com/PizzaHomicide/lumix/internal/log"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/components"
	kb "github.com/PizzaHomicide/lumix/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	optionCancel = iota
	optionConfirm
)

// ConfirmModel is a two option dialog.  Cancel is selected when it opens so a stray enter never confirms.
type ConfirmModel struct {
	width, height int
	action        string
	title         string
	message       string
	confirmLabel  string
	selected      int
}

func NewConfirmModel(action, title, message, confirmLabel string) *ConfirmModel {
	return &ConfirmModel{
		action:       action,
		title:        title,
		message:      message,
		confirmLabel: confirmLabel,
		selected:     optionCancel,
	}
}

func (m *ConfirmModel) ViewType() View {
	return ViewConfirm
}

func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m *ConfirmModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kb.GetActionByKey(keyMsg, kb.ContextConfirm) {
	case kb.ActionMoveLeft:
		m.selected = optionCancel
	case kb.ActionMoveRight:
		m.selected = optionConfirm
	case kb.ActionSwitchOption:
		m.selected = 1 - m.selected
	case kb.ActionSelect:
		return m, m.answer(m.selected == optionConfirm)
	case kb.ActionConfirmYes:
		return m, m.answer(true)
	case kb.ActionConfirmNo:
		return m, m.answer(false)
	}
	return m, nil
}

func (m *ConfirmModel) answer(confirmed bool) tea.Cmd {
	log.Debug("Confirmation answered", "action", m.action, "confirmed", confirmed)
	action := m.action
	return func() tea.Msg {
		return ConfirmResultMsg{Action: action, Confirmed: confirmed}
	}
}

func (m *ConfirmModel) View() string {
	button := lipgloss.NewStyle().Padding(0, 3).MarginRight(2)
	cancel := button.Render("Cancel")
	confirm := button.Render(m.confirmLabel)
	if m.selected == optionCancel {
		cancel = button.Inherit(styles.Selected).Render("Cancel")
	} else {
		confirm = button.Background(styles.CurrentPalette().Danger).Inherit(styles.Selected).Render(m.confirmLabel)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Title.Render(m.title),
		"",
		styles.Info.Render(m.message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cancel, confirm),
	)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.CurrentPalette().Highlight).
		Padding(1, 4).
		Render(body)

	footer := components.KeyBindingsBar(m.width, []components.KeyBinding{
		{Key: "←/→", Desc: "Choose"},
		{Key: "Enter", Desc: "Select"},
		{Key: "y/n", Desc: "Yes/No"},
	})

	return lipgloss.JoinVertical(lipgloss.Center, styles.CenteredView(m.width, max(m.height-2, 0), dialog), footer)
}

func (m *ConfirmModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
