package tui

import (
	"fmt"
	"net/http"

	"github.com/PizzaHomicide/lumix/internal/browser"
	"github.com/PizzaHomicide/lumix/internal/config"
	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
	"github.com/PizzaHomicide/lumix/internal/repository/graphql"
	"github.com/PizzaHomicide/lumix/internal/repository/prefstore"
	"github.com/PizzaHomicide/lumix/internal/repository/session"
	"github.com/PizzaHomicide/lumix/internal/repository/static"
	"github.com/PizzaHomicide/lumix/internal/service"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/models"
	tea "github.com/charmbracelet/bubbletea"
)

func Run(cfg *config.Config) error {
	services, err := NewServices(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(models.NewAppModel(cfg, services, browser.Open), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// NewServices builds the services behind the profile from the config
func NewServices(cfg *config.Config) (models.Services, error) {
	profiles, err := newProfileRepository(cfg)
	if err != nil {
		return models.Services{}, err
	}

	return models.Services{
		Profiles: service.NewProfileService(profiles),
		Preferences: service.NewPreferenceService(
			prefstore.NewFileStore(cfg.Preferences.FilePath),
			cfg.Preferences.DefaultPreferences(),
			cfg.Preferences.SaveAttempts,
			cfg.Preferences.RetryDelay,
		),
		Sessions: service.NewSessionService(session.NewConfigSession(cfg, nil)),
	}, nil
}

func newProfileRepository(cfg *config.Config) (domain.ProfileRepository, error) {
	switch cfg.Profile.Source {
	case "graphql":
		log.Info("Using GraphQL profile source", "endpoint", cfg.Profile.Endpoint)
		client, err := graphql.NewClient(cfg.Profile.Endpoint, cfg.Auth.Token, &http.Client{Timeout: cfg.Profile.Timeout})
		if err != nil {
			return nil, fmt.Errorf("failed to create graphql client: %w", err)
		}
		return graphql.NewProfileRepository(client), nil
	case "static", "":
		log.Info("Using static profile source")
		return static.NewProfileRepository(cfg.Profile.PlaceholderUser()), nil
	default:
		return nil, fmt.Errorf("unknown profile source %q", cfg.Profile.Source)
	}
}
