// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents a registered account. The username is the primary
// identifier and never changes after registration.
type User struct {
	Username     string
	PasswordHash string
	Email        string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// Session represents an active login session.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	// Delete removes the user together with all owned feedback and all
	// sessions, atomically.
	Delete(ctx context.Context, username string) error
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, username, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
