package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"feedbackapp/internal/domain"
)

// FeedbackRepo implements feedback repository operations on DB.
type FeedbackRepo struct {
	db *DB
}

// NewFeedbackRepo wraps a DB as a FeedbackRepository.
func NewFeedbackRepo(db *DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

// Create inserts a feedback entry and returns it with its assigned id.
func (r *FeedbackRepo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	created := *f
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO feedback (title, content, username, created_at) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		f.Title, f.Content, f.Username, time.Now(),
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves a feedback entry by id.
func (r *FeedbackRepo) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	var f domain.Feedback
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, title, content, username, created_at FROM feedback WHERE id = $1",
		id,
	).Scan(&f.ID, &f.Title, &f.Content, &f.Username, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListAll returns every feedback entry, newest first.
func (r *FeedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	return r.list(ctx,
		"SELECT id, title, content, username, created_at FROM feedback ORDER BY created_at DESC")
}

// ListByOwner returns the feedback entries owned by username.
func (r *FeedbackRepo) ListByOwner(ctx context.Context, username string) ([]domain.Feedback, error) {
	return r.list(ctx,
		"SELECT id, title, content, username, created_at FROM feedback WHERE username = $1 ORDER BY created_at DESC",
		username)
}

// Update rewrites title and content of an entry.
func (r *FeedbackRepo) Update(ctx context.Context, id int64, title, content string) error {
	_, err := r.db.sql.ExecContext(ctx,
		"UPDATE feedback SET title = $1, content = $2 WHERE id = $3",
		title, content, id)
	return err
}

// Delete removes an entry by id.
func (r *FeedbackRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM feedback WHERE id = $1", id)
	return err
}

func (r *FeedbackRepo) list(ctx context.Context, query string, args ...any) ([]domain.Feedback, error) {
	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.Title, &f.Content, &f.Username, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
