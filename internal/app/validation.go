package app

import (
	"fmt"
	"net/mail"
	"strings"
)

// MaxTitleLen is the upper bound on feedback titles.
const MaxTitleLen = 100

// ValidationError reports a single malformed form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validateRegistration(reg Registration) error {
	required := []struct {
		field, value string
	}{
		{"username", reg.Username},
		{"password", reg.Password},
		{"email", reg.Email},
		{"first_name", reg.FirstName},
		{"last_name", reg.LastName},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Message: "is required"}
		}
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}

func validateFeedbackInput(in FeedbackInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if len(in.Title) > MaxTitleLen {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", MaxTitleLen)}
	}
	if strings.TrimSpace(in.Content) == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	return nil
}
