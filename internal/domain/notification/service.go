package notification

import "context"

// Service defines the notification service interface
type Service interface {
	Notify(ctx context.Context, n Notification) error
	List(ctx context.Context, workerID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, workerID, notificationID string) error

	// SSE subscription
	Subscribe(workerID string) (<-chan Event, func())
}

// Event is pushed to SSE subscribers when a notification is created.
type Event struct {
	Kind    Kind        `json:"kind"`
	Message string      `json:"message"`
	RefID   string      `json:"ref_id"`
	Payload interface{} `json:"payload,omitempty"`
}
