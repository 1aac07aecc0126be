package domain

import (
	"context"
	"time"
)

// Feedback is a user-submitted entry owned by exactly one user.
type Feedback struct {
	ID        int64
	Title     string
	Content   string
	Username  string
	CreatedAt time.Time
}

// FeedbackRepository defines the port for feedback persistence operations.
// Lookups return (nil, nil) when no row matches.
type FeedbackRepository interface {
	Create(ctx context.Context, f *Feedback) (*Feedback, error)
	GetByID(ctx context.Context, id int64) (*Feedback, error)
	ListAll(ctx context.Context) ([]Feedback, error)
	ListByOwner(ctx context.Context, username string) ([]Feedback, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
}
