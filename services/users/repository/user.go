package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// userRow is the persistence shape of a user, carrying the password hash
// that never leaves this package
type userRow struct {
	models.User
	PasswordHash string `db:"password_hash"`
}

// UserRepo implements user persistence over PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser inserts a new user row. A duplicate email reports a conflict.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User, passwordHash string) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	row := userRow{User: *user, PasswordHash: passwordHash}

	query := `
		INSERT INTO users (id, name, email, phone, photo, gender, score,
			password_hash, created_at, updated_at
		) VALUES (:id, :name, :email, :phone, :photo, :gender, :score,
			:password_hash, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrDuplicateEntity)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, photo, gender, score, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user and its password hash by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, string, error) {
	query := `
		SELECT id, name, email, phone, photo, gender, score,
			password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var row userRow
	err := r.db.GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	return &row.User, row.PasswordHash, nil
}

// ListUsers returns all users in retrieval order (stable by creation time)
func (r *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, name, email, phone, photo, gender, score, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	var result []models.User
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return result, nil
}

// UpdateUser writes the merged user row back
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			name = :name, email = :email, phone = :phone, photo = :photo,
			gender = :gender, score = :score, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrDuplicateEntity)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", user.ID, apperrors.ErrNotFound)
	}

	return nil
}

// GetPasswordHash returns the stored password hash for a user
func (r *UserRepo) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	var hash string
	err := r.db.GetContext(ctx, &hash, `SELECT password_hash FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return hash, nil
}

// UpdatePassword stores a new password hash
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// DeleteUser removes a user row; an absent id reports not found
func (r *UserRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}
