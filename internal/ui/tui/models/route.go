package models

import (
	"github.com/PizzaHomicide/lumix/internal/log"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/components"
	kb "github.com/PizzaHomicide/lumix/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RouteModel is the page shown for routes opened from the profile
type RouteModel struct {
	width, height int
	path          string
}

func NewRouteModel(path string) *RouteModel {
	return &RouteModel{path: path}
}

func (m *RouteModel) ViewType() View {
	return ViewRoute
}

func (m *RouteModel) Init() tea.Cmd {
	return nil
}

// Update has nothing to do, going back is handled by the app
func (m *RouteModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m *RouteModel) Path() string {
	return m.path
}

func (m *RouteModel) View() string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Info.Bold(true).Render(RouteTitle(m.path)),
		"",
		styles.Muted.Render("This page isn't available yet."),
		styles.Subtle.Render(m.path),
	)

	footer := components.KeyBindingsBar(m.width, []components.KeyBinding{
		{Key: "esc", Desc: "Back"},
		{Key: "ctrl+h", Desc: "Help"},
		{Key: "ctrl+c", Desc: "Quit"},
	})

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Header(m.width, RouteTitle(m.path)),
		styles.CenteredView(m.width, max(m.height-3, 0), body),
		footer,
	)
}

func (m *RouteModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SignedOutModel is shown once the session has been cleared
type SignedOutModel struct {
	width, height int
}

func NewSignedOutModel() *SignedOutModel {
	return &SignedOutModel{}
}

func (m *SignedOutModel) ViewType() View {
	return ViewSignedOut
}

func (m *SignedOutModel) Init() tea.Cmd {
	return nil
}

func (m *SignedOutModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && kb.GetActionByKey(keyMsg, kb.ContextSignedOut) == kb.ActionQuitSignedOut {
		log.Info("Quitting after sign out")
		return m, tea.Quit
	}
	return m, nil
}

func (m *SignedOutModel) View() string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Success.Render("You have been signed out"),
		"",
		styles.Muted.Render("Add a new token to your config to sign in again."),
	)

	footer := components.KeyBindingsBar(m.width, []components.KeyBinding{{Key: "q/enter", Desc: "Quit"}})

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Header(m.width, "Lumix"),
		styles.CenteredView(m.width, max(m.height-3, 0), body),
		footer,
	)
}

func (m *SignedOutModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
