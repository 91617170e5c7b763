package models

import (
	"fmt"
	"strings"

	kb "github.com/PizzaHomicide/lumix/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// HelpModel displays contextual help with scrolling
type HelpModel struct {
	width, height int
	context       View
	viewport      viewport.Model
}

// NewHelpModel creates a new help model for the given context
func NewHelpModel(context View) *HelpModel {
	return &HelpModel{
		context:  context,
		viewport: viewport.New(0, 0),
	}
}

func (m *HelpModel) ViewType() View {
	return ViewHelp
}

func (m *HelpModel) Init() tea.Cmd {
	if m.width > 0 && m.height > 0 {
		m.updateContent()
	}
	return nil
}

func (m *HelpModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
	case tea.KeyMsg:
		switch kb.GetActionByKey(msg, kb.ContextHelp) {
		case kb.ActionMoveUp, kb.ActionMoveDown, kb.ActionPageUp, kb.ActionPageDown:
			m.viewport, cmd = m.viewport.Update(msg)
		case kb.ActionMoveTop:
			m.viewport.GotoTop()
		case kb.ActionMoveBottom:
			m.viewport.GotoBottom()
		}
	}
	return m, cmd
}

// Resize updates the dimensions
func (m *HelpModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Leave room for the borders, header and footer
	m.viewport.Width = max(width-4, 1)
	m.viewport.Height = max(height-10, 1)

	m.updateContent()
}

func (m *HelpModel) updateContent() {
	m.viewport.SetContent(m.generateHelpContent())
	m.viewport.GotoTop()
}

func (m *HelpModel) View() string {
	header := styles.Header(m.width, "Help: "+m.getContextTitle())

	scrollText := "↑/↓: Scroll • PgUp/PgDn: Page scroll • Home/End: Goto top/bottom • ESC: Return"
	footer := styles.CenteredText(m.width, styles.Info.Render(scrollText))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		styles.ContentBox(m.width-2, m.viewport.View(), 1),
		"",
		footer,
	)
}

func (m *HelpModel) getContextTitle() string {
	switch m.context {
	case ViewProfile:
		return "Profile"
	case ViewRoute:
		return "Page"
	case ViewSignedOut:
		return "Signed Out"
	default:
		return "General"
	}
}

// formatKeybindingSection formats a section of keybindings with aligned colons
func (m *HelpModel) formatKeybindingSection(title string, bindings []kb.Binding, skipActions map[kb.Action]bool) string {
	var keep []kb.Binding
	for _, binding := range bindings {
		if !skipActions[binding.Action] {
			keep = append(keep, binding)
		}
	}
	if len(keep) == 0 {
		return ""
	}

	keyText := func(binding kb.Binding) string {
		if binding.KeyMap.Secondary != "" {
			return binding.KeyMap.Primary + " or " + binding.KeyMap.Secondary
		}
		return binding.KeyMap.Primary
	}

	maxKeyWidth := 0
	for _, binding := range keep {
		maxKeyWidth = max(maxKeyWidth, runewidth.StringWidth(keyText(binding)))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")
	for _, binding := range keep {
		text := keyText(binding)
		padding := strings.Repeat(" ", maxKeyWidth-runewidth.StringWidth(text))
		b.WriteString(fmt.Sprintf("• %s%s : %s\n", lipgloss.NewStyle().Bold(true).Render(text), padding, binding.KeyMap.Help))
	}
	return b.String()
}

func (m *HelpModel) generateHelpContent() string {
	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.CurrentPalette().Primary)

	b.WriteString(titleStyle.Render(m.getContextTitle()))
	b.WriteString("\n\n")
	b.WriteString(m.getContextDescription())
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Keybindings"))
	b.WriteString("\n\n")

	globalBindings := m.formatKeybindingSection("Global commands:", kb.ContextBindings[kb.ContextGlobal], nil)
	b.WriteString(globalBindings)

	// Avoid repeating global actions in the context specific section
	globalActions := make(map[kb.Action]bool)
	for _, binding := range kb.ContextBindings[kb.ContextGlobal] {
		globalActions[binding.Action] = true
	}

	var contextName kb.ContextName
	switch m.context {
	case ViewProfile:
		contextName = kb.ContextProfile
	case ViewRoute:
		contextName = kb.ContextRoute
	case ViewSignedOut:
		contextName = kb.ContextSignedOut
	}

	if section := m.formatKeybindingSection(m.getContextTitle()+" commands:", kb.ContextBindings[contextName], globalActions); section != "" {
		b.WriteString("\n")
		b.WriteString(section)
	}

	if m.context == ViewProfile {
		b.WriteString("\n")
		b.WriteString(m.formatKeybindingSection("When filtering:", kb.ContextBindings[kb.ContextSearchMode], nil))
		b.WriteString("\n")
		b.WriteString(m.formatKeybindingSection("In the sign out dialog:", kb.ContextBindings[kb.ContextConfirm], nil))
	}

	return b.String()
}

func (m *HelpModel) getContextDescription() string {
	switch m.context {
	case ViewProfile:
		return "The profile shows your account, how much you've watched, and your preferences.\n\n" +
			"Quick Access entries open your favorites and watch history. Preference switches take effect straight " +
			"away and are saved in the background. If a save fails the switch goes back to its saved value and " +
			"a message is shown at the bottom of the screen.\n\n" +
			"While the profile is loading only quit and help respond. Other keys, including the preference " +
			"switches, are ignored until it has loaded.\n\n" +
			"Signing out always asks for confirmation first."

	case ViewRoute:
		return "This page isn't available in Lumix yet. Press esc to go back to your profile."

	case ViewSignedOut:
		return "You have been signed out. Your saved token has been removed from the config file."

	default:
		return "Welcome to Lumix, a terminal client for keeping track of the movies you watch."
	}
}
