package models

import (
	"github.com/PizzaHomicide/lumix/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileLoadedMsg is sent when the identity and statistics fetch succeeds.  Seq identifies the request so results
// of superseded fetches can be ignored.
type ProfileLoadedMsg struct {
	Seq     uint64
	Profile *domain.Profile
}

// ProfileLoadErrorMsg is sent when the identity and statistics fetch fails
type ProfileLoadErrorMsg struct {
	Seq   uint64
	Error error
}

// PreferencesLoadedMsg carries the stored preferences, or the defaults alongside an error
type PreferencesLoadedMsg struct {
	Preferences domain.Preferences
	Error       error
}

// TogglePreferenceMsg asks the profile to flip a single preference
type TogglePreferenceMsg struct {
	Key domain.PreferenceKey
}

// PreferencesSavedMsg reports the outcome of persisting a preference revision
type PreferencesSavedMsg struct {
	Revision  uint64
	Persisted domain.Preferences
	Error     error
}

// ConfirmResultMsg is sent when a confirmation dialog is answered
type ConfirmResultMsg struct {
	Action    string
	Confirmed bool
}

// SignOutRequestedMsg opens the sign out confirmation
type SignOutRequestedMsg struct{}

// SignedOutMsg is sent once the session has been cleared
type SignedOutMsg struct{}

type SignOutFailedMsg struct {
	Error error
}

// NavigateMsg asks the app to show the page for Path.  Replace discards the existing route stack.
type NavigateMsg struct {
	Path    string
	Replace bool
}

// ShowHelpMsg opens the help modal for the active view
type ShowHelpMsg struct{}

// StatusMsg sets the status line on the profile
type StatusMsg struct {
	Text    string
	IsError bool
}

// HandledMsg marks a key press as consumed without any further work to do
type HandledMsg struct {
	Reason string
}

// Handled returns a command that reports a key press as consumed
func Handled(reason string) tea.Cmd {
	return func() tea.Msg {
		return HandledMsg{Reason: reason}
	}
}
