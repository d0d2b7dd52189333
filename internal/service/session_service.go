package service

import (
	"context"
	"fmt"

	"wedding/guesthub/internal/repository"
	"wedding/guesthub/pkg/crypto"
	jwtpkg "wedding/guesthub/pkg/jwt"
)

const sessionKeyPrefix = "host_session:"

// SessionService exchanges the single shared dashboard password for a signed
// session token. The token's JTI lives in the StateStore for its lifetime, so
// logout revokes it server-side instead of trusting the browser to forget.
type SessionService interface {
	Login(ctx context.Context, password string) (token string, expiresIn int64, err error)
	Logout(ctx context.Context, claims *jwtpkg.Claims) error
	IsLive(ctx context.Context, claims *jwtpkg.Claims) (bool, error)
}

type sessionService struct {
	passwordHash string
	stateStore   repository.StateStore
	jwtManager   *jwtpkg.Manager
}

func NewSessionService(passwordHash string, stateStore repository.StateStore, jwtManager *jwtpkg.Manager) SessionService {
	return &sessionService{
		passwordHash: passwordHash,
		stateStore:   stateStore,
		jwtManager:   jwtManager,
	}
}

func (s *sessionService) Login(ctx context.Context, password string) (string, int64, error) {
	// An unset hash locks the dashboard rather than opening it.
	if s.passwordHash == "" || !crypto.CheckPassword(password, s.passwordHash) {
		return "", 0, ErrInvalidPassword
	}

	token, claims, err := s.jwtManager.GenerateSessionToken()
	if err != nil {
		return "", 0, fmt.Errorf("sign session token: %w", err)
	}
	ttl := s.jwtManager.SessionTTL()
	if err := s.stateStore.Set(ctx, sessionKeyPrefix+claims.ID, []byte("1"), ttl); err != nil {
		return "", 0, fmt.Errorf("store session: %w", err)
	}
	return token, int64(ttl.Seconds()), nil
}

func (s *sessionService) Logout(ctx context.Context, claims *jwtpkg.Claims) error {
	return s.stateStore.Delete(ctx, sessionKeyPrefix+claims.ID)
}

func (s *sessionService) IsLive(ctx context.Context, claims *jwtpkg.Claims) (bool, error) {
	return s.stateStore.Exists(ctx, sessionKeyPrefix+claims.ID)
}
