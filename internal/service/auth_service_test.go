package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/config"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/persistence"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/repository"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db, err := persistence.OpenSQLite(filepath.Join(t.TempDir(), "survey.db"), 1, 1, time.Minute)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	opts := persistence.BootstrapOptions{
		AdminUsername: "admin", AdminPassword: "admin123",
		AdminFullName: "Administrator", BcryptCost: 4,
	}
	if err := persistence.Bootstrap(context.Background(), db, persistence.DriverSQLite, opts, zap.NewNop()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            4,
	}
	return NewAuthService(cfg, repository.NewUserRepository(db))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, _, err := svc.Login(context.Background(), "admin", "wrong-password")
	if err == nil {
		t.Fatal("expected login to fail")
	}
	if code := util.ToDomainError(err).Code; code != "UNAUTHORIZED" {
		t.Fatalf("code = %q, want UNAUTHORIZED", code)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := newAuthService(t)

	// A missing account must come back as the same unauthorized error as a
	// wrong password, never as a storage failure.
	_, _, _, err := svc.Login(context.Background(), "nobody", "admin123")
	if err == nil {
		t.Fatal("expected login to fail")
	}
	domainErr := util.ToDomainError(err)
	if domainErr.Code != "UNAUTHORIZED" {
		t.Fatalf("code = %q, want UNAUTHORIZED", domainErr.Code)
	}
	if domainErr.HTTPStatus != 401 {
		t.Fatalf("status = %d, want 401", domainErr.HTTPStatus)
	}
}

func TestLoginSeededAdmin(t *testing.T) {
	svc := newAuthService(t)

	user, token, exp, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry %v is not in the future", exp)
	}
	if !user.IsAdmin || user.FullName != "Administrator" {
		t.Fatalf("unexpected profile: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatal("password hash must be cleared on the returned user")
	}

	session, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !session.IsAdmin || session.Username != "admin" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newAuthService(t)

	id, err := svc.Register(context.Background(), "Budi Santoso", "budisantoso", "rahasia1", "rahasia1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == 0 {
		t.Fatal("expected an assigned account id")
	}

	user, _, _, err := svc.Login(context.Background(), "budisantoso", "rahasia1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.IsAdmin {
		t.Fatal("registered accounts must not be admins")
	}
}
