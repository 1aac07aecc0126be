package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"feedbackapp/internal/domain"
)

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT username, password_hash, email, first_name, last_name, created_at FROM users WHERE username = $1",
		username,
	).Scan(&u.Username, &u.PasswordHash, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new user.
func (d *DB) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	created := *u
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (username, password_hash, email, first_name, last_name, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at",
		u.Username, u.PasswordHash, u.Email, u.FirstName, u.LastName, time.Now(),
	).Scan(&created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes the user, all owned feedback and all sessions in one
// transaction. Dependent rows go first so the foreign keys stay satisfied.
func (d *DB) Delete(ctx context.Context, username string) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM feedback WHERE username = $1", username); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE username = $1", username); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM users WHERE username = $1", username); err != nil {
		return err
	}
	return tx.Commit()
}
