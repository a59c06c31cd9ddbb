package services

import (
	"context"
	"fmt"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/ports"
)

// MinPasswordLen matches the backend's minimum.
const MinPasswordLen = 4

// AuthService handles login and password changes. Local validation failures
// block the operation before any request goes out.
type AuthService struct {
	api     ports.InventoryAPI
	session ports.SessionStore
}

// NewAuthService creates an auth service around the backend and session ports
func NewAuthService(api ports.InventoryAPI, session ports.SessionStore) *AuthService {
	return &AuthService{api: api, session: session}
}

// Login authenticates and persists the session record.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("preencha email e senha")
	}

	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.session.Save(*user); err != nil {
		return nil, fmt.Errorf("login ok, but saving the session failed: %w", err)
	}
	return user, nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout() error {
	return s.session.Clear()
}

// CurrentUser returns the persisted identity, or nil when nobody is logged in.
func (s *AuthService) CurrentUser() (*domain.User, error) {
	return s.session.Load()
}

// ChangePassword validates locally, then asks the backend to swap the
// password for the logged-in user.
func (s *AuthService) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if current == "" {
		return fmt.Errorf("digite sua senha atual")
	}
	if len(next) < MinPasswordLen {
		return fmt.Errorf("a nova senha deve ter pelo menos %d caracteres", MinPasswordLen)
	}
	if next != confirm {
		return fmt.Errorf("a confirmação não confere com a nova senha")
	}

	user, err := s.session.Load()
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("nenhum usuário logado")
	}

	return s.api.ChangePassword(ctx, user.ID, current, next)
}
