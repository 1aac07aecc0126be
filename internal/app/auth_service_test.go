package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedbackapp/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	createFn        func(ctx context.Context, u *domain.User) (*domain.User, error)
	deleteFn        func(ctx context.Context, username string) error
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return u, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, username string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, username)
	}
	return nil
}

type mockSessionRepo struct {
	createFn        func(ctx context.Context, username, token string, expiresAt time.Time) error
	getByTokenFn    func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) error
}

func (m *mockSessionRepo) Create(ctx context.Context, username, token string, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, username, token, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

func validRegistration() Registration {
	return Registration{
		Username:  "alice",
		Password:  "pw123",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Doe",
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()

	var stored *domain.User
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if stored != nil && stored.Username == username {
				return stored, nil
			}
			return nil, nil
		},
		createFn: func(ctx context.Context, u *domain.User) (*domain.User, error) {
			stored = u
			return u, nil
		},
	}
	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)

	user, token, err := svc.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username 'alice', got %s", user.Username)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user.PasswordHash == "pw123" || user.PasswordHash == "" {
		t.Error("password must be stored hashed, never in plaintext")
	}

	if _, err := svc.Login(ctx, "alice", "pw123"); err != nil {
		t.Fatalf("login with registered credentials: %v", err)
	}
	if _, err := svc.Login(ctx, "alice", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username}, nil
		},
	}
	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)

	_, _, err := svc.Register(ctx, validRegistration())
	if err != ErrDuplicateUsername {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, time.Hour)

	tests := []struct {
		name   string
		mutate func(*Registration)
		field  string
	}{
		{"missing username", func(r *Registration) { r.Username = "" }, "username"},
		{"missing password", func(r *Registration) { r.Password = "" }, "password"},
		{"missing email", func(r *Registration) { r.Email = "" }, "email"},
		{"missing first name", func(r *Registration) { r.FirstName = "" }, "first_name"},
		{"missing last name", func(r *Registration) { r.LastName = "" }, "last_name"},
		{"malformed email", func(r *Registration) { r.Email = "not-an-email" }, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)

			_, _, err := svc.Register(ctx, reg)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, vErr.Field)
			}
		})
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, time.Hour)

	// The error must not disclose whether the username exists.
	_, err := svc.Login(ctx, "nobody", "pw123")
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: "alice", PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)

	_, err := svc.Login(ctx, "alice", "wrongpass")
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ValidateSession_Valid(t *testing.T) {
	ctx := context.Background()
	token := "validtoken"

	sessions := &mockSessionRepo{
		getByTokenFn: func(ctx context.Context, tok string) (*domain.Session, error) {
			return &domain.Session{
				Token:     token,
				Username:  "alice",
				ExpiresAt: time.Now().Add(1 * time.Hour),
			}, nil
		},
	}
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: "alice"}, nil
		},
	}

	svc := NewAuthService(users, sessions, time.Hour)
	user, err := svc.ValidateSession(ctx, token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username 'alice', got %s", user.Username)
	}
}

func TestAuthService_ValidateSession_Expired(t *testing.T) {
	ctx := context.Background()

	deleted := false
	sessions := &mockSessionRepo{
		getByTokenFn: func(ctx context.Context, tok string) (*domain.Session, error) {
			return &domain.Session{
				Token:     tok,
				Username:  "alice",
				ExpiresAt: time.Now().Add(-1 * time.Hour),
			}, nil
		},
		deleteFn: func(ctx context.Context, tok string) error {
			deleted = true
			return nil
		},
	}

	svc := NewAuthService(&mockUserRepo{}, sessions, time.Hour)
	_, err := svc.ValidateSession(ctx, "expiredtoken")
	if err != ErrSessionExpired {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	if !deleted {
		t.Error("expected expired session to be deleted")
	}
}

func TestAuthService_ValidateSession_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, time.Hour)

	_, err := svc.ValidateSession(ctx, "nosuchtoken")
	if err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthService_DeleteUser_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, time.Hour)

	if err := svc.DeleteUser(ctx, "nobody"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthService_LoginWithSSO_ProvisionsUser(t *testing.T) {
	ctx := context.Background()

	var created *domain.User
	users := &mockUserRepo{
		createFn: func(ctx context.Context, u *domain.User) (*domain.User, error) {
			created = u
			return u, nil
		},
	}
	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)

	token, err := svc.LoginWithSSO(ctx, "sso@example.com", "sso@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if created == nil || created.Username != "sso@example.com" {
		t.Fatalf("expected auto-provisioned user, got %+v", created)
	}
	if created.PasswordHash != "" {
		t.Error("SSO users must not get a usable password hash")
	}
}
