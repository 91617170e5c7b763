// Package session ends sessions by removing the stored token from the config file.
package session

import (
	"context"
	"fmt"

	"github.com/PizzaHomicide/lumix/internal/config"
	"github.com/PizzaHomicide/lumix/internal/domain"
)

// ConfigUpdater applies a change to the config file on disk
type ConfigUpdater func(updateFn func(*config.Config)) error

type ConfigSession struct {
	cfg    *config.Config
	update ConfigUpdater
}

// NewConfigSession clears tokens through config.UpdateConfig unless another updater is provided
func NewConfigSession(cfg *config.Config, update ConfigUpdater) domain.SessionRepository {
	if update == nil {
		update = config.UpdateConfig
	}
	return &ConfigSession{cfg: cfg, update: update}
}

func (s *ConfigSession) ClearSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.update(func(conf *config.Config) {
		conf.Auth.Token = ""
	})
	if err != nil {
		return fmt.Errorf("unable to remove token from config: %w", err)
	}

	// Only forget the in-memory token once the file no longer has it
	s.cfg.Auth.Token = ""
	return nil
}
