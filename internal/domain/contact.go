package domain

import (
	"context"
	"encoding/json"
)

// ContactSubmission represents a contact form submission.
// All three fields must pass or the submission is rejected as a whole.
type ContactSubmission struct {
	From    string `json:"from" validate:"required,email"`
	Subject string `json:"subject" validate:"min=2,max=200"`
	Message string `json:"message" validate:"min=2,max=4000"`
}

// NotificationOutcome is the decoded reply of the messaging bot API.
type NotificationOutcome struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result,omitempty"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it to the notifier
	SendContactMessage(ctx context.Context, req *ContactSubmission) error
}

// Notifier delivers a plain text notification to the configured channel.
type Notifier interface {
	SendMessage(ctx context.Context, text string) (*NotificationOutcome, error)
}
