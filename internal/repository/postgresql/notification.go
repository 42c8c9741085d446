package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/shiftwise/roster-backend-go/internal/domain/notification"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	query := `
		INSERT INTO notifications (
			id, org_id, worker_id, kind, message, ref_id, is_read, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, FALSE, NOW()
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID, n.OrgID, n.WorkerID, n.Kind, n.Message, n.RefID,
	).Scan(&n.CreatedAt)
	if err != nil {
		return notification.Notification{}, err
	}
	return n, nil
}

func (r *notificationRepositoryImpl) ListForWorker(ctx context.Context, workerID string, unreadOnly bool) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.org_id, n.worker_id, n.kind, n.message, n.ref_id, n.is_read, n.created_at
		FROM notifications n
		WHERE n.worker_id = $1
	`
	if unreadOnly {
		query += ` AND n.is_read = FALSE`
	}
	query += ` ORDER BY n.created_at DESC LIMIT 100`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(&n.ID, &n.OrgID, &n.WorkerID, &n.Kind, &n.Message, &n.RefID, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id, workerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND worker_id = $2
	`

	commandTag, err := q.Exec(ctx, query, id, workerID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return notification.ErrNotificationNotFound
	}
	return nil
}
