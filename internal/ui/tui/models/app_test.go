package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	f := newFixture(t)
	app := NewAppModel(testConfig(), f.services, func(string) error { return nil })
	// Starts the first profile fetch, whose command is never run
	app.Init()
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return model.(AppModel)
}

func update(t *testing.T, app AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	next, ok := model.(AppModel)
	require.True(t, ok)
	return next, cmd
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppNavigatesAndGoesBack(t *testing.T) {
	app := newTestApp(t)

	app, _ = update(t, app, NavigateMsg{Path: "/favorites"})
	assert.Equal(t, ViewRoute, app.activeView())
	assert.Contains(t, app.View(), "Favorites")
	assert.Contains(t, app.View(), "This page isn't available yet.")

	app, _ = update(t, app, NavigateMsg{Path: "/somewhere"})
	assert.Contains(t, app.View(), "/somewhere")

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "/favorites", app.router.Current())

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewProfile, app.activeView())
	assert.Nil(t, app.routeModel)
}

func TestAppHelpModal(t *testing.T) {
	app := newTestApp(t)

	app, _ = update(t, app, ShowHelpMsg{})
	require.Equal(t, ModalHelp, app.activeModal)
	assert.Contains(t, app.View(), "Help: Profile")

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModalNone, app.activeModal)

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyCtrlH})
	assert.Equal(t, ModalHelp, app.activeModal)
	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyCtrlH})
	assert.Equal(t, ModalNone, app.activeModal)
}

func TestAppRoutesProfileMessagesWhileOnAnotherPage(t *testing.T) {
	app := newTestApp(t)
	app, _ = update(t, app, NavigateMsg{Path: "/history"})

	app, _ = update(t, app, ProfileLoadedMsg{Seq: app.profileModel.loadSeq + 1, Profile: placeholderProfile()})
	app, _ = update(t, app, ProfileLoadedMsg{Seq: 0, Profile: placeholderProfile()})

	assert.Equal(t, ViewRoute, app.activeView())
	assert.Equal(t, profileLoading, app.profileModel.state, "results for other requests are ignored")
}

func TestAppSignedOutPage(t *testing.T) {
	app := newTestApp(t)

	app, _ = update(t, app, NavigateMsg{Path: loginRoute, Replace: true})
	require.Equal(t, ViewSignedOut, app.activeView())
	assert.Contains(t, app.View(), "You have been signed out")

	// esc can't go back to the profile once the stack is replaced
	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewSignedOut, app.activeView())

	_, cmd := update(t, app, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppEscReachesProfileDialog(t *testing.T) {
	app := newTestApp(t)
	app, _ = update(t, app, ProfileLoadedMsg{Seq: app.profileModel.loadSeq, Profile: placeholderProfile()})

	app, _ = update(t, app, runeKey('o'))
	require.NotNil(t, app.profileModel.confirm)

	_, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, ConfirmResultMsg{Action: confirmSignOut, Confirmed: false}, cmd())
}
