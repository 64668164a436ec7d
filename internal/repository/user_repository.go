package repository

import (
	"context"
	"database/sql"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

// UserRepository defines persistence access for operator accounts.
type UserRepository interface {
	// Create persists the account and fills in its identifier. A
	// uniqueness-constraint rejection surfaces as ErrDuplicateUsername.
	Create(ctx context.Context, user *domain.User) error
	// GetByUsername loads an account including its password hash; only the
	// authentication path may call it.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns all accounts ordered by identifier ascending, without
	// password hashes.
	List(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository returns a database/sql backed implementation.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, password_hash, full_name, is_admin, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	isAdmin := 0
	if user.IsAdmin {
		isAdmin = 1
	}
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.FullName, isAdmin, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return util.NewStorageError("register user", err)
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, full_name, is_admin, created_at
        FROM users WHERE username=$1`

	var user domain.User
	var isAdmin int
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &isAdmin, &user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, util.NewStorageError("get user", err)
	}
	user.IsAdmin = isAdmin == 1
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, username, full_name, is_admin, created_at
        FROM users ORDER BY id`)
	if err != nil {
		return nil, util.NewStorageError("list users", err)
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		var isAdmin int
		if err := rows.Scan(&user.ID, &user.Username, &user.FullName, &isAdmin, &user.CreatedAt); err != nil {
			return nil, util.NewStorageError("list users", err)
		}
		user.IsAdmin = isAdmin == 1
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, util.NewStorageError("list users", err)
	}
	return result, nil
}
