package interfaces

import (
	"context"
	"faepa_workflow/internal/domain/entities"
)

// Message is a single outgoing notification. From overrides the default
// sender for this message only.
type Message struct {
	To      string           `json:"to"`
	Subject string           `json:"subject"`
	Body    string           `json:"body"`
	From    *entities.Sender `json:"from,omitempty"`
}

// INotifier delivers workflow notifications (email relay, message bus, ...).
type INotifier interface {
	Send(ctx context.Context, msg Message) error
}
