package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

// User is a stored profile keyed by the auth provider's subject.
type User struct {
	ID         uuid.UUID
	ProviderID string
	Email      string
	Name       string
	Avatar     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Model converts the row into the profile returned by the API. The public ID
// is the provider's subject so it matches what the client already knows.
func (u *User) Model() models.User {
	return models.User{
		ID:     u.ProviderID,
		Email:  u.Email,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}

const userColumns = `id, provider_id, email, name, avatar, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.ProviderID, &user.Email, &user.Name, &user.Avatar, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser stores the profile, refreshing email, name and avatar if the
// provider ID is already known.
func (db *DB) UpsertUser(ctx context.Context, u models.User) (*User, error) {
	return scanUser(db.pool.QueryRow(ctx,
		`INSERT INTO users (provider_id, email, name, avatar)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (provider_id) DO UPDATE
		 SET email = EXCLUDED.email, name = EXCLUDED.name, avatar = EXCLUDED.avatar, updated_at = now()
		 RETURNING `+userColumns,
		u.ID, u.Email, u.Name, u.Avatar,
	))
}

// GetUserByProviderID retrieves a user by the auth provider's subject.
// It returns nil, nil when no user matches.
func (db *DB) GetUserByProviderID(ctx context.Context, providerID string) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE provider_id = $1`,
		providerID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// GetUserByID retrieves a user by their ID.
func (db *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// DeleteUser deletes a user by ID.
func (db *DB) DeleteUser(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	return err
}
