package service

import (
	"context"
	"fmt"

	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
)

type SessionService struct {
	repo domain.SessionRepository
}

func NewSessionService(repo domain.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// SignOut ends the current session
func (s *SessionService) SignOut(ctx context.Context) error {
	log.Info("Signing out")
	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	log.Info("Signed out")
	return nil
}
