package models

import (
	"github.com/PizzaHomicide/lumix/internal/browser"
	"github.com/PizzaHomicide/lumix/internal/config"
	"github.com/PizzaHomicide/lumix/internal/log"
	kb "github.com/PizzaHomicide/lumix/internal/ui/tui/keybindings"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the main application model that coordinates all child models.  It is the high level wrapper.
type AppModel struct {
	config        *config.Config
	router        *Router
	activeModal   Modal // Track the current active 'modal overlay' if any
	width, height int

	profileModel   *ProfileModel
	helpModel      *HelpModel
	routeModel     *RouteModel
	signedOutModel *SignedOutModel
}

// NewAppModel creates a new instance of the main application model
func NewAppModel(cfg *config.Config, services Services, openURL browser.Opener) AppModel {
	router := NewRouter()
	return AppModel{
		config:         cfg,
		router:         router,
		activeModal:    ModalNone,
		profileModel:   NewProfileModel(cfg, services, router, openURL),
		helpModel:      NewHelpModel(ViewProfile),
		signedOutModel: NewSignedOutModel(),
	}
}

func (m AppModel) Init() tea.Cmd {
	log.Info("Initialising Lumix TUI")
	return m.profileModel.Init()
}

// activeView is derived from the page on top of the route stack
func (m AppModel) activeView() View {
	switch m.router.Current() {
	case profileRoute:
		return ViewProfile
	case loginRoute:
		return ViewSignedOut
	default:
		return ViewRoute
	}
}

// Update handles messages and updates the models as appropriate
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch kb.GetActionByKey(msg, kb.ContextGlobal) {
		case kb.ActionQuit:
			log.Info("Quit command received.  Shutting down...")
			return m, tea.Quit
		case kb.ActionToggleHelp:
			log.Debug("Help requested", "active_view", m.activeView())
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
				return m, nil
			}
			m.openHelp()
			return m, nil
		case kb.ActionBack:
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
				return m, nil
			}
			if m.activeView() == ViewRoute && m.router.Pop() {
				log.Debug("Navigated back", "path", m.router.Current(), "depth", m.router.Depth())
				m.syncRouteModel()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		log.Debug("Window size changed", "old_width", m.width, "new_width", msg.Width, "old_height", m.height, "new_height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height

		// Propagate new window size to all views so they are aware and can render correctly
		m.profileModel.Resize(msg.Width, msg.Height)
		m.helpModel.Resize(msg.Width, msg.Height)
		m.signedOutModel.Resize(msg.Width, msg.Height)
		if m.routeModel != nil {
			m.routeModel.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case NavigateMsg:
		m.router.Apply(msg)
		m.activeModal = ModalNone
		m.syncRouteModel()
		return m, nil

	case ShowHelpMsg:
		m.openHelp()
		return m, nil
	}

	// Key presses go to the modal or page in front, everything else belongs to the profile
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m.updateProfileView(msg)
	}

	if m.activeModal == ModalHelp {
		model, cmd := m.helpModel.Update(keyMsg)
		m.helpModel = model.(*HelpModel)
		return m, cmd
	}

	switch m.activeView() {
	case ViewProfile:
		return m.updateProfileView(keyMsg)
	case ViewSignedOut:
		_, cmd := m.signedOutModel.Update(keyMsg)
		return m, cmd
	case ViewRoute:
		_, cmd := m.routeModel.Update(keyMsg)
		return m, cmd
	}

	return m, nil
}

func (m AppModel) View() string {
	// If there is an active modal it takes precedence
	if m.activeModal == ModalHelp {
		return m.helpModel.View()
	}

	switch m.activeView() {
	case ViewProfile:
		return m.profileModel.View()
	case ViewSignedOut:
		return m.signedOutModel.View()
	case ViewRoute:
		return m.routeModel.View()
	default:
		return "Unknown view\nPress ctrl+c to quit."
	}
}

func (m *AppModel) openHelp() {
	m.helpModel = NewHelpModel(m.activeView())
	m.helpModel.Resize(m.width, m.height)
	m.activeModal = ModalHelp
}

// syncRouteModel rebuilds the route page when the top of the stack is a route
func (m *AppModel) syncRouteModel() {
	if m.activeView() != ViewRoute {
		m.routeModel = nil
		return
	}
	if m.routeModel == nil || m.routeModel.Path() != m.router.Current() {
		m.routeModel = NewRouteModel(m.router.Current())
		m.routeModel.Resize(m.width, m.height)
	}
}

// updateProfileView delegates message processing to the profile model
func (m AppModel) updateProfileView(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.profileModel.Update(msg)
	m.profileModel = model.(*ProfileModel)
	return m, cmd
}
