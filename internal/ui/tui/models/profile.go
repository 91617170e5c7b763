package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PizzaHomicide/lumix/internal/browser"
	"github.com/PizzaHomicide/lumix/internal/config"
	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
	"github.com/PizzaHomicide/lumix/internal/service"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
	"github.com/PizzaHomicide/lumix/internal/version"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	defaultProfileTimeout = 10 * time.Second
	preferenceTimeout     = 5 * time.Second
	signOutTimeout        = 5 * time.Second

	confirmSignOut = "sign_out"

	sectionQuickAccess = "Quick Access"
	sectionPreferences = "Preferences"
	sectionSupport     = "Support & About"
	sectionAccount     = "Account"
)

type profileState int

const (
	profileLoading profileState = iota
	profileError
	profileLoaded
)

func (s profileState) String() string {
	switch s {
	case profileLoading:
		return "loading"
	case profileError:
		return "error"
	default:
		return "loaded"
	}
}

// Services groups the collaborators the profile talks to
type Services struct {
	Profiles    *service.ProfileService
	Preferences *service.PreferenceService
	Sessions    *service.SessionService
}

// ProfileModel shows the signed in user's identity, statistics, preferences and account actions
type ProfileModel struct {
	config        *config.Config
	services      Services
	nav           Navigator
	openURL       browser.Opener
	width, height int

	state   profileState
	loadSeq uint64 // Sequence of the newest profile fetch, older results are ignored
	profile *domain.Profile
	loadErr error
	loading *LoadingModel

	prefs        domain.Preferences
	prefRevision uint64 // Bumped on every toggle, zero until the user changes something
	prefsLoaded  bool
	// Keys toggled before the stored preferences arrived.  Their saves wait for the load so untouched stored
	// values aren't overwritten with defaults.
	pendingKeys map[domain.PreferenceKey]bool

	rows        []menuRow
	cursor      int
	searchMode  bool
	searchInput textinput.Model
	filter      string

	confirm       *ConfirmModel
	signingOut    bool
	status        string
	statusIsError bool
}

// NewProfileModel creates the profile view.  Preferences start at the configured defaults until the stored
// values are loaded.
func NewProfileModel(cfg *config.Config, services Services, nav Navigator, openURL browser.Opener) *ProfileModel {
	input := textinput.New()
	input.Placeholder = "Filter entries..."
	input.Width = 30

	if openURL == nil {
		openURL = browser.Open
	}

	m := &ProfileModel{
		config:      cfg,
		services:    services,
		nav:         nav,
		openURL:     openURL,
		state:       profileLoading,
		loading:     NewLoadingModel("Loading profile...").WithTitle("Profile").WithContextInfo("Source: " + cfg.Profile.Source),
		prefs:       services.Preferences.Defaults(),
		pendingKeys: make(map[domain.PreferenceKey]bool),
		searchInput: input,
	}
	m.rows = m.buildRows()
	return m
}

func (m *ProfileModel) ViewType() View {
	return ViewProfile
}

// Init issues the profile fetch and the preference load together.  They update separate state so their order
// doesn't matter.
func (m *ProfileModel) Init() tea.Cmd {
	log.Info("Initialising profile view")
	styles.ApplyPalette(m.prefs.DarkMode)
	return tea.Batch(m.startProfileLoad(), m.loadPreferencesCmd())
}

func (m *ProfileModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.loading.Resize(width, height)
	if m.confirm != nil {
		m.confirm.Resize(width, height)
	}
}

// Preferences returns the preferences currently shown
func (m *ProfileModel) Preferences() domain.Preferences {
	return m.prefs
}

// Profile returns the loaded profile, or nil when none is resolved
func (m *ProfileModel) Profile() *domain.Profile {
	return m.profile
}

func (m *ProfileModel) buildRows() []menuRow {
	rows := []menuRow{
		{Section: sectionQuickAccess, Entry: MenuEntry{Title: "Favorites", Subtitle: "Movies you love", Route: "/favorites"}},
		{Section: sectionQuickAccess, Entry: MenuEntry{Title: "Watch History", Subtitle: "Recently watched", Route: "/history"}},
	}

	for _, key := range domain.PreferenceKeys {
		rows = append(rows, menuRow{
			Section: sectionPreferences,
			Entry:   MenuEntry{Title: key.Label(), Action: togglePreferenceCmd(key)},
			Pref:    key,
		})
	}

	rows = append(rows,
		menuRow{Section: sectionSupport, Entry: MenuEntry{Title: "Help Center", Subtitle: "Keys and how the profile works", Action: showHelpCmd}},
		menuRow{Section: sectionSupport, Entry: MenuEntry{Title: "Privacy Policy", Action: m.openLinkCmd(m.config.Links.PrivacyPolicy)}},
		menuRow{Section: sectionSupport, Entry: MenuEntry{Title: "Terms of Service", Action: m.openLinkCmd(m.config.Links.TermsOfService)}},
		menuRow{Section: sectionSupport, Entry: MenuEntry{Title: "About Lumix", Action: m.aboutCmd()}},
		menuRow{Section: sectionAccount, Entry: MenuEntry{Title: "Sign Out", Action: signOutRequestCmd}},
	)

	for _, row := range rows {
		if err := row.Entry.Validate(); err != nil {
			log.Error("Invalid profile menu entry", "error", err)
		}
	}
	return rows
}

// visibleRows returns the rows matching the current filter
func (m *ProfileModel) visibleRows() []menuRow {
	if m.filter == "" {
		return m.rows
	}
	var matched []menuRow
	for _, row := range m.rows {
		if fuzzy.MatchFold(m.filter, row.Entry.Title) {
			matched = append(matched, row)
		}
	}
	return matched
}

func (m *ProfileModel) selectedRow() (menuRow, bool) {
	rows := m.visibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return menuRow{}, false
	}
	return rows[m.cursor], true
}

func (m *ProfileModel) setStatus(text string, isError bool) {
	m.status = text
	m.statusIsError = isError
}

func (m *ProfileModel) profileTimeout() time.Duration {
	if m.config.Profile.Timeout <= 0 {
		return defaultProfileTimeout
	}
	return m.config.Profile.Timeout
}

// startProfileLoad moves to the loading state and issues a new fetch.  Any identity shown before is dropped.
func (m *ProfileModel) startProfileLoad() tea.Cmd {
	m.loadSeq++
	log.Debug("Loading profile", "seq", m.loadSeq, "previous_state", m.state.String())
	m.state = profileLoading
	m.profile = nil
	m.loadErr = nil
	return tea.Batch(m.loadProfileCmd(m.loadSeq), m.loading.Init())
}

func (m *ProfileModel) loadProfileCmd(seq uint64) tea.Cmd {
	profiles := m.services.Profiles
	timeout := m.profileTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		profile, err := profiles.LoadProfile(ctx)
		if err != nil {
			log.Error("Failed to load profile", "seq", seq, "error", err)
			return ProfileLoadErrorMsg{Seq: seq, Error: err}
		}
		return ProfileLoadedMsg{Seq: seq, Profile: profile}
	}
}

func (m *ProfileModel) loadPreferencesCmd() tea.Cmd {
	prefs := m.services.Preferences
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), preferenceTimeout)
		defer cancel()

		loaded, err := prefs.Load(ctx)
		return PreferencesLoadedMsg{Preferences: loaded, Error: err}
	}
}

func (m *ProfileModel) savePreferencesCmd(revision uint64, next domain.Preferences) tea.Cmd {
	prefs := m.services.Preferences
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), preferenceTimeout)
		defer cancel()

		persisted, err := prefs.Save(ctx, revision, next)
		return PreferencesSavedMsg{Revision: revision, Persisted: persisted, Error: err}
	}
}

func (m *ProfileModel) signOutCmd() tea.Cmd {
	sessions := m.services.Sessions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), signOutTimeout)
		defer cancel()

		if err := sessions.SignOut(ctx); err != nil {
			return SignOutFailedMsg{Error: err}
		}
		return SignedOutMsg{}
	}
}

func (m *ProfileModel) openLinkCmd(url string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		if url == "" {
			return StatusMsg{Text: "No link configured", IsError: true}
		}
		if err := open(url); err != nil {
			log.Warn("Failed to open link", "url", url, "error", err)
			return StatusMsg{Text: "Couldn't open " + url, IsError: true}
		}
		log.Info("Opened link in browser", "url", url)
		return StatusMsg{Text: "Opened " + url + " in your browser"}
	}
}

func togglePreferenceCmd(key domain.PreferenceKey) tea.Cmd {
	return func() tea.Msg {
		return TogglePreferenceMsg{Key: key}
	}
}

func showHelpCmd() tea.Msg {
	return ShowHelpMsg{}
}

func signOutRequestCmd() tea.Msg {
	return SignOutRequestedMsg{}
}

func (m *ProfileModel) aboutCmd() tea.Cmd {
	profiles := m.services.Profiles
	return func() tea.Msg {
		text := version.GetVersionInfo()
		if profile := profiles.GetProfile(); profile != nil {
			text += ", signed in as " + profile.User.Name
		}
		return StatusMsg{Text: text}
	}
}

func (m *ProfileModel) handleProfileLoaded(msg ProfileLoadedMsg) {
	if msg.Seq != m.loadSeq {
		log.Debug("Ignoring superseded profile result", "seq", msg.Seq, "current_seq", m.loadSeq)
		return
	}
	log.Info("Profile loaded", "seq", msg.Seq, "user_id", msg.Profile.User.ID, "elapsed", m.loading.GetElapsedTime())
	m.profile = msg.Profile
	m.loadErr = nil
	m.state = profileLoaded
}

func (m *ProfileModel) handleProfileLoadError(msg ProfileLoadErrorMsg) {
	if msg.Seq != m.loadSeq {
		log.Debug("Ignoring superseded profile error", "seq", msg.Seq, "current_seq", m.loadSeq)
		return
	}
	m.profile = nil
	m.loadErr = msg.Error
	m.state = profileError
}

// handlePreferencesLoaded applies the stored preferences.  Keys the user toggled before the load arrived keep
// their local value and the merged set is then saved.
func (m *ProfileModel) handlePreferencesLoaded(msg PreferencesLoadedMsg) tea.Cmd {
	if m.prefsLoaded {
		log.Debug("Ignoring repeated preference load")
		return nil
	}
	m.prefsLoaded = true

	if msg.Error != nil {
		log.Warn("Failed to load preferences, keeping defaults", "error", msg.Error)
		return m.savePendingPreferences()
	}

	merged := msg.Preferences
	for key := range m.pendingKeys {
		local, _ := m.prefs.Get(key)
		if stored, _ := merged.Get(key); stored != local {
			merged, _ = merged.Toggle(key)
		}
	}
	m.prefs = merged
	styles.ApplyPalette(m.prefs.DarkMode)

	return m.savePendingPreferences()
}

// savePendingPreferences saves toggles that were held back while the stored preferences were loading
func (m *ProfileModel) savePendingPreferences() tea.Cmd {
	if len(m.pendingKeys) == 0 {
		return nil
	}
	log.Info("Saving preferences toggled before load", "keys", len(m.pendingKeys), "revision", m.prefRevision)
	clear(m.pendingKeys)
	return m.savePreferencesCmd(m.prefRevision, m.prefs)
}

// togglePreference flips one flag and shows it straight away.  The full set is persisted in the background once
// the stored preferences have loaded.
func (m *ProfileModel) togglePreference(key domain.PreferenceKey) tea.Cmd {
	next, err := m.prefs.Toggle(key)
	if err != nil {
		log.Error("Cannot toggle preference", "key", key, "error", err)
		return nil
	}

	m.prefs = next
	m.prefRevision++
	if key == domain.PreferenceDarkMode {
		styles.ApplyPalette(next.DarkMode)
	}
	value, _ := next.Get(key)
	log.Info("Preference toggled", "key", key, "value", value, "revision", m.prefRevision)
	m.setStatus("Saving preferences...", false)

	if !m.prefsLoaded {
		m.pendingKeys[key] = true
		return nil
	}
	return m.savePreferencesCmd(m.prefRevision, next)
}

// handlePreferencesSaved rolls back to the persisted values when the newest revision couldn't be saved.  Results
// for older revisions are ignored, a newer save is already on its way.
func (m *ProfileModel) handlePreferencesSaved(msg PreferencesSavedMsg) {
	if errors.Is(msg.Error, service.ErrStaleRevision) || msg.Revision != m.prefRevision {
		log.Debug("Ignoring result for superseded preference revision", "revision", msg.Revision, "current_revision", m.prefRevision)
		return
	}

	if msg.Error != nil {
		log.Error("Preferences could not be saved, rolling back", "revision", msg.Revision, "error", msg.Error)
		m.prefs = msg.Persisted
		styles.ApplyPalette(m.prefs.DarkMode)
		m.setStatus("Couldn't save preferences, changes were undone", true)
		return
	}
	m.setStatus("Preferences saved", false)
}

func (m *ProfileModel) openSignOutConfirm() {
	m.confirm = NewConfirmModel(confirmSignOut, "Sign Out", "Are you sure you want to sign out?", "Sign Out")
	m.confirm.Resize(m.width, m.height)
}

func (m *ProfileModel) handleConfirmResult(msg ConfirmResultMsg) tea.Cmd {
	m.confirm = nil
	if msg.Action != confirmSignOut || !msg.Confirmed {
		log.Debug("Sign out cancelled")
		return nil
	}

	log.Info("Signing out")
	m.signingOut = true
	m.setStatus("Signing out...", false)
	return m.signOutCmd()
}

func (m *ProfileModel) handleSignOutFailed(msg SignOutFailedMsg) {
	log.Error("Sign out failed", "error", msg.Error)
	m.signingOut = false
	m.setStatus(fmt.Sprintf("Couldn't sign out: %v", msg.Error), true)
}
