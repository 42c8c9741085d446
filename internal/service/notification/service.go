package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shiftwise/roster-backend-go/internal/domain/notification"
	"github.com/shiftwise/roster-backend-go/internal/pkg/sse"
)

type Service struct {
	repo notification.Repository
	hub  *sse.Hub
}

func NewNotificationService(repo notification.Repository, hub *sse.Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Notify persists the notification and pushes it to any live SSE
// subscribers of the target worker. Delivery is best effort; callers
// treat failures as non-fatal.
func (s *Service) Notify(ctx context.Context, n notification.Notification) error {
	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.hub.Publish(created.WorkerID, sse.Event{
		WorkerID: created.WorkerID,
		Event:    string(created.Kind),
		Data: notification.Event{
			Kind:    created.Kind,
			Message: created.Message,
			RefID:   created.RefID,
		},
	})
	return nil
}

// NotifyAll fans out to several workers, logging instead of failing on
// individual errors.
func (s *Service) NotifyAll(ctx context.Context, notifications []notification.Notification) {
	for _, n := range notifications {
		if err := s.Notify(ctx, n); err != nil {
			slog.Error("Failed to deliver notification", "worker_id", n.WorkerID, "kind", n.Kind, "error", err)
		}
	}
}

func (s *Service) List(ctx context.Context, workerID string, unreadOnly bool) ([]notification.Notification, error) {
	return s.repo.ListForWorker(ctx, workerID, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, workerID, notificationID string) error {
	return s.repo.MarkRead(ctx, notificationID, workerID)
}

// Subscribe registers an SSE subscriber for the worker.
func (s *Service) Subscribe(workerID string) (<-chan notification.Event, func()) {
	raw, cleanup := s.hub.Subscribe(workerID)

	out := make(chan notification.Event, 10)
	go func() {
		defer close(out)
		for event := range raw {
			if payload, ok := event.Data.(notification.Event); ok {
				out <- payload
			}
		}
	}()

	return out, cleanup
}
