// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"feedbackapp/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password
	// was incorrect. It is deliberately the same for both cases.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrDuplicateUsername indicates that the username is already registered.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrNotFound indicates that the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)

// Registration carries the raw input of the registration form.
type Registration struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// AuthService handles registration, authentication and session management.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register validates the input, creates the user with a bcrypt password hash
// and opens a session for it. The returned token identifies the session.
func (s *AuthService) Register(ctx context.Context, reg Registration) (*domain.User, string, error) {
	if err := validateRegistration(reg); err != nil {
		return nil, "", err
	}

	existing, err := s.users.GetByUsername(ctx, reg.Username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     reg.Username,
		PasswordHash: string(hash),
		Email:        reg.Email,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user and creates a session. An unknown username and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.openSession(ctx, user.Username)
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a session token to its user.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByUsername(ctx, session.Username)
	if err != nil || user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetUser retrieves a user by username.
func (s *AuthService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// DeleteUser removes a user together with all owned feedback and sessions.
func (s *AuthService) DeleteUser(ctx context.Context, username string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.users.Delete(ctx, username)
}

// LoginWithSSO creates a session for an identity already authenticated by the
// identity provider, auto-provisioning the user on first login. SSO users get
// an empty password hash, so password login can never succeed for them.
func (s *AuthService) LoginWithSSO(ctx context.Context, username, email string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = s.users.Create(ctx, &domain.User{
			Username: username,
			Email:    email,
		})
		if err != nil {
			// Creation may lose a race on the unique constraint.
			user, err = s.users.GetByUsername(ctx, username)
			if err != nil {
				return "", err
			}
			if user == nil {
				return "", ErrNotFound
			}
		}
	}
	return s.openSession(ctx, user.Username)
}

func (s *AuthService) openSession(ctx context.Context, username string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, username, token, time.Now().Add(s.sessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
