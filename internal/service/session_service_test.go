package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding/guesthub/internal/repository"
	"wedding/guesthub/pkg/crypto"
	jwtpkg "wedding/guesthub/pkg/jwt"
)

func newSessionService(t *testing.T) (SessionService, *jwtpkg.Manager) {
	t.Helper()
	hash, err := crypto.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	manager := jwtpkg.NewManager("test-signing-key", "guesthub-test", time.Hour)
	return NewSessionService(hash, repository.NewMemoryStateStore(), manager), manager
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newSessionService(t)

	if _, _, err := svc.Login(context.Background(), "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("got %v, want ErrInvalidPassword", err)
	}
}

func TestLogin_UnsetHashLocksDashboard(t *testing.T) {
	manager := jwtpkg.NewManager("test-signing-key", "guesthub-test", time.Hour)
	svc := NewSessionService("", repository.NewMemoryStateStore(), manager)

	if _, _, err := svc.Login(context.Background(), ""); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("got %v, want ErrInvalidPassword", err)
	}
}

func TestLoginLogout_SessionLifecycle(t *testing.T) {
	svc, manager := newSessionService(t)
	ctx := context.Background()

	token, expiresIn, err := svc.Login(ctx, "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if expiresIn != int64(time.Hour.Seconds()) {
		t.Fatalf("expires_in = %d, want %d", expiresIn, int64(time.Hour.Seconds()))
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	live, err := svc.IsLive(ctx, claims)
	if err != nil || !live {
		t.Fatalf("session must be live after login: %v %v", live, err)
	}

	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("logout: %v", err)
	}
	live, err = svc.IsLive(ctx, claims)
	if err != nil {
		t.Fatalf("is live: %v", err)
	}
	if live {
		t.Fatalf("session must be revoked after logout")
	}
}
