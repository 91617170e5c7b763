package models

import (
	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
	kb "github.com/PizzaHomicide/lumix/internal/ui/tui/keybindings"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const pageSize = 5

// Update handles messages and updates the model
func (m *ProfileModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case spinner.TickMsg:
		// Dropping ticks outside the loading state stops the spinner
		if m.state == profileLoading {
			_, cmd := m.loading.Update(msg)
			return m, cmd
		}
		return m, nil

	case ProfileLoadedMsg:
		m.handleProfileLoaded(msg)

	case ProfileLoadErrorMsg:
		m.handleProfileLoadError(msg)

	case PreferencesLoadedMsg:
		return m, m.handlePreferencesLoaded(msg)

	case TogglePreferenceMsg:
		return m, m.togglePreference(msg.Key)

	case PreferencesSavedMsg:
		m.handlePreferencesSaved(msg)

	case SignOutRequestedMsg:
		m.openSignOutConfirm()

	case ConfirmResultMsg:
		return m, m.handleConfirmResult(msg)

	case SignedOutMsg:
		log.Info("Signed out, leaving profile")
		m.signingOut = false
		m.setStatus("", false)
		return m, m.nav.Replace(loginRoute)

	case SignOutFailedMsg:
		m.handleSignOutFailed(msg)

	case StatusMsg:
		m.setStatus(msg.Text, msg.IsError)
	}

	return m, nil
}

func (m *ProfileModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// The confirmation dialog takes every key while it is open
	if m.confirm != nil {
		_, cmd := m.confirm.Update(msg)
		return cmd
	}
	if m.signingOut {
		return Handled("sign_out:in_progress")
	}

	switch m.state {
	case profileLoading:
		return nil
	case profileError:
		if kb.GetActionByKey(msg, kb.ContextProfile) == kb.ActionRefreshProfile {
			log.Info("Retrying profile load")
			return m.startProfileLoad()
		}
		return nil
	}

	if m.searchMode {
		return m.handleSearchModeKeyMsg(msg)
	}
	return m.handleKeyPress(msg)
}

func (m *ProfileModel) handleSearchModeKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch kb.GetActionByKey(msg, kb.ContextSearchMode) {
	case kb.ActionBack:
		// Cancels search, clearing the filter
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.setFilter("")
		return Handled("search:exit")
	case kb.ActionSearchComplete:
		m.searchMode = false
		m.searchInput.Blur()
		return Handled("search:apply")
	}

	// Arrow keys keep moving through the matches while typing
	switch msg.Type {
	case tea.KeyUp:
		m.moveCursor(-1)
		return Handled("cursor_move:up")
	case tea.KeyDown:
		m.moveCursor(1)
		return Handled("cursor_move:down")
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.setFilter(m.searchInput.Value())
	return cmd
}

// handleKeyPress processes keyboard inputs in normal mode
func (m *ProfileModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch kb.GetActionByKey(msg, kb.ContextProfile) {
	case kb.ActionMoveUp:
		m.moveCursor(-1)
		return Handled("cursor_move:up")
	case kb.ActionMoveDown:
		m.moveCursor(1)
		return Handled("cursor_move:down")
	case kb.ActionPageUp:
		m.moveCursor(-pageSize)
		return Handled("cursor_move:page_up")
	case kb.ActionPageDown:
		m.moveCursor(pageSize)
		return Handled("cursor_move:page_down")
	case kb.ActionMoveTop:
		m.cursor = 0
		return Handled("cursor_move:top")
	case kb.ActionMoveBottom:
		m.cursor = max(len(m.visibleRows())-1, 0)
		return Handled("cursor_move:bottom")
	case kb.ActionSelect:
		row, ok := m.selectedRow()
		if !ok {
			return Handled("select:none_selected")
		}
		log.Debug("Profile entry selected", "title", row.Entry.Title, "section", row.Section)
		return row.Entry.Activate(m.nav)
	case kb.ActionRefreshProfile:
		log.Info("Refreshing profile")
		return m.startProfileLoad()
	case kb.ActionEditProfile:
		return m.nav.Navigate("/edit-profile")
	case kb.ActionOpenSettings:
		return m.nav.Navigate("/settings")
	case kb.ActionToggleDarkMode:
		return m.togglePreference(domain.PreferenceDarkMode)
	case kb.ActionToggleNotifications:
		return m.togglePreference(domain.PreferenceNotifications)
	case kb.ActionToggleAutoplayTrailers:
		return m.togglePreference(domain.PreferenceAutoplayTrailers)
	case kb.ActionSignOut:
		m.openSignOutConfirm()
		return Handled("sign_out:confirm")
	case kb.ActionEnableSearch:
		m.searchMode = true
		return m.searchInput.Focus()
	}

	// esc outside search mode drops an applied filter
	if kb.GetActionByKey(msg, kb.ContextGlobal) == kb.ActionBack && m.filter != "" {
		m.searchInput.SetValue("")
		m.setFilter("")
		return Handled("search:clear")
	}

	return nil
}

func (m *ProfileModel) moveCursor(delta int) {
	last := len(m.visibleRows()) - 1
	m.cursor = min(max(m.cursor+delta, 0), max(last, 0))
}

func (m *ProfileModel) setFilter(filter string) {
	if filter == m.filter {
		return
	}
	m.filter = filter
	m.cursor = 0
}
