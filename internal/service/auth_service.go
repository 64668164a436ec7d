package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/auth"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/config"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/repository"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/validation"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

// AuthService coordinates login and registration.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates an operator. Bad credentials come back as a single
// unauthorized error, never a storage failure; the response does not reveal
// whether the username or the password was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", time.Time{}, util.NewUnauthorized("invalid username or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, util.NewUnauthorized("invalid username or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, util.NewInternalError(err)
	}
	user.PasswordHash = ""
	return user, token, exp, nil
}

// Register creates a new non-admin account. Username conflicts are detected
// by the store's uniqueness constraint, not a racy pre-check.
func (s *AuthService) Register(ctx context.Context, fullName, username, password, confirm string) (int64, error) {
	if violations := validation.CheckRegistration(fullName, username, password, confirm); len(violations) > 0 {
		return 0, util.NewValidationError(violations)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return 0, util.NewInternalError(err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		CreatedAt:    domain.NowStamp(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, util.NewDuplicateUsername(username)
		}
		return 0, err
	}
	return user.ID, nil
}

// ListUsers returns every account, admin only. Password hashes never leave
// the repository on this path.
func (s *AuthService) ListUsers(ctx context.Context, session domain.Session) ([]domain.User, error) {
	if !session.IsAdmin {
		return nil, util.NewForbidden("only the administrator may list accounts")
	}
	return s.users.List(ctx)
}
