package notification

import "context"

// Repository - interface for the notifications table
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListForWorker(ctx context.Context, workerID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id, workerID string) error
}
