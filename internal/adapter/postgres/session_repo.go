package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"feedbackapp/internal/domain"
)

// SessionRepo implements session repository operations on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, username, token string, expiresAt time.Time) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions (token, username, expires_at, created_at) VALUES ($1, $2, $3, $4)",
		token, username, expiresAt, time.Now())
	return err
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT token, username, expires_at, created_at FROM sessions WHERE token = $1",
		token,
	).Scan(&s.Token, &s.Username, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token)
	return err
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < $1", time.Now())
	return err
}
