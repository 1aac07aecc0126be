// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"feedbackapp/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	feedback []*domain.Feedback
	sessions map[string]*domain.Session

	feedbackIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.FeedbackRepository = (*FeedbackRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.users {
		if existing.Username == u.Username {
			return nil, errors.New("user already exists")
		}
	}

	created := *u
	created.CreatedAt = time.Now().UTC()
	db.users = append(db.users, &created)
	return &created, nil
}

// Delete removes the user, all owned feedback and all sessions under one
// lock, matching the transactional cascade of the SQL adapter.
func (db *DB) Delete(ctx context.Context, username string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	kept := db.feedback[:0]
	for _, f := range db.feedback {
		if f.Username != username {
			kept = append(kept, f)
		}
	}
	db.feedback = kept

	for token, s := range db.sessions {
		if s.Username == username {
			delete(db.sessions, token)
		}
	}

	for i, u := range db.users {
		if u.Username == username {
			db.users = append(db.users[:i], db.users[i+1:]...)
			break
		}
	}
	return nil
}

// --- FeedbackRepository ---

// FeedbackRepo implements feedback persistence.
type FeedbackRepo struct {
	db *DB
}

// NewFeedbackRepo creates a new feedback repository.
func (db *DB) NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

// Create adds a feedback entry, assigning the next id.
func (r *FeedbackRepo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.feedbackIDCounter++
	created := *f
	created.ID = r.db.feedbackIDCounter
	created.CreatedAt = time.Now().UTC()
	r.db.feedback = append(r.db.feedback, &created)
	return &created, nil
}

// GetByID retrieves a feedback entry by id.
func (r *FeedbackRepo) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, f := range r.db.feedback {
		if f.ID == id {
			ret := *f
			return &ret, nil
		}
	}
	return nil, nil
}

// ListAll returns a copy of every feedback entry.
func (r *FeedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Feedback, 0, len(r.db.feedback))
	for _, f := range r.db.feedback {
		out = append(out, *f)
	}
	return out, nil
}

// ListByOwner returns the entries owned by username.
func (r *FeedbackRepo) ListByOwner(ctx context.Context, username string) ([]domain.Feedback, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []domain.Feedback
	for _, f := range r.db.feedback {
		if f.Username == username {
			out = append(out, *f)
		}
	}
	return out, nil
}

// Update rewrites title and content of an entry.
func (r *FeedbackRepo) Update(ctx context.Context, id int64, title, content string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, f := range r.db.feedback {
		if f.ID == id {
			f.Title = title
			f.Content = content
			return nil
		}
	}
	return nil
}

// Delete removes an entry by id.
func (r *FeedbackRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, f := range r.db.feedback {
		if f.ID == id {
			r.db.feedback = append(r.db.feedback[:i], r.db.feedback[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, username, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		Username:  username,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
