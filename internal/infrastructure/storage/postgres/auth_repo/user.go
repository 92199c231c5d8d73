// Package auth_repo provides PostgreSQL implementations for auth
// repositories.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/auth"
	"eventum/internal/infrastructure/storage/postgres"
)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txManager *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txManager *postgres.TxManager) *UserRepo {
	return &UserRepo{txManager: txManager}
}

const userColumns = `id, email, name, password_hash, role, active,
	failed_logins, locked_until, last_login_at,
	deletion_mark, version, created_at, updated_at`

func scanUser(row pgx.Row) (*auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.Role, &user.Active,
		&user.FailedLogins, &user.LockedUntil, &user.LastLoginAt,
		&user.DeletionMark, &user.Version, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.txManager.GetQuerier(ctx)

	query := `
		INSERT INTO users (
			id, email, name, password_hash, role, active,
			failed_logins, locked_until, last_login_at,
			deletion_mark, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := q.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.Active,
		user.FailedLogins, user.LockedUntil, user.LastLoginAt,
		user.DeletionMark, user.Version, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	q := r.txManager.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deletion_mark = FALSE`

	user, err := scanUser(q.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.txManager.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deletion_mark = FALSE`

	user, err := scanUser(q.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}

// Update updates user data with optimistic locking.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	q := r.txManager.GetQuerier(ctx)

	query := `
		UPDATE users SET
			name = $2,
			role = $3,
			active = $4,
			failed_logins = $5,
			locked_until = $6,
			last_login_at = $7,
			version = version + 1,
			updated_at = now()
		WHERE id = $1 AND deletion_mark = FALSE AND version = $8
	`

	result, err := q.Exec(ctx, query,
		user.ID, user.Name, user.Role, user.Active,
		user.FailedLogins, user.LockedUntil, user.LastLoginAt,
		user.Version,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID.String())
	}

	user.Version++
	return nil
}

// Exists checks if a user with the given email exists.
func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	q := r.txManager.GetQuerier(ctx)

	var exists int
	err := q.QueryRow(ctx,
		`SELECT 1 FROM users WHERE email = $1 AND deletion_mark = FALSE LIMIT 1`,
		email,
	).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}

	return true, nil
}

// List returns all users.
func (r *UserRepo) List(ctx context.Context) ([]*auth.User, error) {
	q := r.txManager.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM users WHERE deletion_mark = FALSE ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*auth.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
