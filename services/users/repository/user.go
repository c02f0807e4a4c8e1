package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridemate/ridemate/internal/pkg/database"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

// UserRepo implements user data access on postgres
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(client *database.PostgresClient) *UserRepo {
	return &UserRepo{db: client.GetDB()}
}

// CreateUser inserts a new user, assigning its ID and timestamps
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := models.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, password, full_name, phone, role,
			is_blocked, created_at, updated_at
		) VALUES (:id, :email, :password, :full_name, :phone, :role,
			:is_blocked, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by its ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, password, full_name, phone, role, is_blocked, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password, full_name, phone, role, is_blocked, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", email, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// UpdateProfile updates a user's display name and phone number
func (r *UserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	user.UpdatedAt = models.Now()

	query := `
		UPDATE users
		SET full_name = :full_name, phone = :phone, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", user.ID, sql.ErrNoRows)
	}

	return nil
}

// ListUsers returns a page of users ordered by creation time, newest first
func (r *UserRepo) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	query := `
		SELECT id, email, password, full_name, phone, role, is_blocked, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	users := []*models.User{}
	if err := r.db.SelectContext(ctx, &users, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// SetBlocked updates a user's blocked flag
func (r *UserRepo) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	query := `UPDATE users SET is_blocked = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, blocked, models.Now())
	if err != nil {
		return fmt.Errorf("failed to update block status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", id, sql.ErrNoRows)
	}

	return nil
}
