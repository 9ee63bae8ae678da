package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CreateUser inserts a new account and returns its ID. A duplicate email
// maps to ErrEmailTaken.
func (db *DB) CreateUser(ctx context.Context, email, displayName, passwordHash string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO users (email, display_name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		email, displayName, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	return id, nil
}

// GetUserByEmail retrieves an account by email, including the password hash
// for login verification.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := db.Pool.QueryRow(ctx,
		`SELECT id, email, display_name, password_hash, current_weight, created_at
		 FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CurrentWeight, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}
	return &u, nil
}

// GetUserByID retrieves an account by ID.
func (db *DB) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := db.Pool.QueryRow(ctx,
		`SELECT id, email, display_name, password_hash, current_weight, created_at
		 FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CurrentWeight, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}
	return &u, nil
}

// UpdateUserProfile updates the display name and current bodyweight. This
// only touches the users row; bodyweight snapshots on past workouts are
// frozen by design.
func (db *DB) UpdateUserProfile(ctx context.Context, id int, displayName string, currentWeight *float64) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE users SET display_name = $2, current_weight = $3 WHERE id = $1`,
		id, displayName, currentWeight)
	if err != nil {
		return fmt.Errorf("updating user profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
