package app

import (
	"context"

	"feedbackapp/internal/domain"
)

// FeedbackInput carries the raw input of the feedback form.
type FeedbackInput struct {
	Title   string
	Content string
}

// FeedbackService encapsulates feedback use cases.
type FeedbackService struct {
	repo domain.FeedbackRepository
}

// NewFeedbackService creates a FeedbackService backed by the given repository.
func NewFeedbackService(repo domain.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// Create validates and stores a new feedback entry owned by owner.
func (s *FeedbackService) Create(ctx context.Context, owner string, in FeedbackInput) (*domain.Feedback, error) {
	if err := validateFeedbackInput(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &domain.Feedback{
		Title:    in.Title,
		Content:  in.Content,
		Username: owner,
	})
}

// Get retrieves a feedback entry by id.
func (s *FeedbackService) Get(ctx context.Context, id int64) (*domain.Feedback, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	return f, nil
}

// ListAll returns every feedback entry.
func (s *FeedbackService) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	return s.repo.ListAll(ctx)
}

// ListForUser returns the feedback entries owned by username.
func (s *FeedbackService) ListForUser(ctx context.Context, username string) ([]domain.Feedback, error) {
	return s.repo.ListByOwner(ctx, username)
}

// Update revalidates and rewrites title and content of an existing entry.
func (s *FeedbackService) Update(ctx context.Context, id int64, in FeedbackInput) (*domain.Feedback, error) {
	if err := validateFeedbackInput(in); err != nil {
		return nil, err
	}
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, in.Title, in.Content); err != nil {
		return nil, err
	}
	f.Title = in.Title
	f.Content = in.Content
	return f, nil
}

// Delete removes a feedback entry by id.
func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
