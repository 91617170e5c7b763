package models

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/PizzaHomicide/lumix/internal/config"
	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/service"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var errBackend = errors.New("backend unavailable")

type fakeProfileRepository struct {
	mu      sync.Mutex
	profile *domain.Profile
	err     error
	calls   int
}

func (r *fakeProfileRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	p := *r.profile
	return &p, nil
}

func (r *fakeProfileRepository) set(profile *domain.Profile, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile
	r.err = err
}

type fakePreferenceRepository struct {
	mu      sync.Mutex
	stored  *domain.Preferences
	loadErr error
	saveErr error
	saves   []domain.Preferences
}

func (r *fakePreferenceRepository) Load(ctx context.Context) (*domain.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.stored, nil
}

func (r *fakePreferenceRepository) Save(ctx context.Context, prefs domain.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves = append(r.saves, prefs)
	return nil
}

type fakeSessionRepository struct {
	err   error
	calls int
}

func (r *fakeSessionRepository) ClearSession(ctx context.Context) error {
	r.calls++
	return r.err
}

type fakeNavigator struct {
	navigated []string
	replaced  []string
}

func (n *fakeNavigator) Navigate(path string) tea.Cmd {
	n.navigated = append(n.navigated, path)
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

func (n *fakeNavigator) Replace(path string) tea.Cmd {
	n.replaced = append(n.replaced, path)
	return func() tea.Msg { return NavigateMsg{Path: path, Replace: true} }
}

// fixture holds a profile model and every collaborator behind it
type fixture struct {
	model    *ProfileModel
	profiles *fakeProfileRepository
	prefs    *fakePreferenceRepository
	sessions *fakeSessionRepository
	nav      *fakeNavigator
	opened   []string
	services Services
}

var defaultPrefs = domain.Preferences{DarkMode: true, Notifications: false, AutoplayTrailers: true}

func placeholderProfile() *domain.Profile {
	return &domain.Profile{
		User: domain.User{
			ID:       "user_123",
			Name:     "User",
			Email:    "user@example.com",
			JoinDate: "January 2024",
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Profile: config.ProfileConfig{Source: "static", Timeout: time.Second},
		Links: config.LinksConfig{
			PrivacyPolicy:  "https://lumix.app/privacy",
			TermsOfService: "https://lumix.app/terms",
		},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Cleanup(func() { styles.ApplyPalette(true) })

	f := &fixture{
		profiles: &fakeProfileRepository{profile: placeholderProfile()},
		prefs:    &fakePreferenceRepository{},
		sessions: &fakeSessionRepository{},
		nav:      &fakeNavigator{},
	}
	f.services = Services{
		Profiles:    service.NewProfileService(f.profiles),
		Preferences: service.NewPreferenceService(f.prefs, defaultPrefs, 1, 0),
		Sessions:    service.NewSessionService(f.sessions),
	}
	opener := func(url string) error {
		f.opened = append(f.opened, url)
		return nil
	}
	f.model = NewProfileModel(testConfig(), f.services, f.nav, opener)
	f.model.Resize(100, 80)
	return f
}

// run executes a command and any batch it produces, returning the resulting messages.  Spinner ticks are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, run(c)...)
		}
		return msgs
	}
	if _, ok := msg.(HandledMsg); ok {
		return nil
	}
	return []tea.Msg{msg}
}

// feed sends messages to the model and returns the commands it produced
func (f *fixture) feed(msgs ...tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		_, cmd := f.model.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// settle executes commands and feeds their messages back until nothing is left
func (f *fixture) settle(cmd tea.Cmd) {
	pending := []tea.Cmd{cmd}
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]
		for _, msg := range run(next) {
			if isTick(msg) {
				f.feed(msg)
				continue
			}
			pending = append(pending, f.feed(msg)...)
		}
	}
}

// isTick reports spinner ticks, whose follow up commands sleep and are never run in tests
func isTick(msg tea.Msg) bool {
	_, ok := msg.(spinner.TickMsg)
	return ok
}

func (f *fixture) press(key tea.KeyMsg) tea.Cmd {
	_, cmd := f.model.Update(key)
	return cmd
}

// loaded returns a fixture whose profile has finished loading
func loaded(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	f.settle(f.model.Init())
	return f
}
