package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	data, err := json.Marshal(orEmpty(n.Data))
	if err != nil {
		return err
	}
	query := `INSERT INTO notifications (user_id, type, title, body, data)
	          VALUES ($1, $2, $3, $4, $5::jsonb)
	          RETURNING id, created_at::text`
	return r.db.QueryRowContext(ctx, query, n.UserID, n.Type, n.Title, n.Body, string(data)).
		Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepository) List(ctx context.Context, userID int64, onlyUnread bool) ([]domain.Notification, error) {
	query := `SELECT id, user_id, type, title, body, data, created_at::text, read_at::text
	          FROM notifications
	          WHERE user_id = $1`
	if onlyUnread {
		query += ` AND read_at IS NULL`
	}
	query += ` ORDER BY created_at DESC LIMIT 100`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		var data []byte
		var readAt sql.NullString
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body, &data, &n.CreatedAt, &readAt); err != nil {
			return nil, err
		}
		if readAt.Valid {
			n.ReadAt = &readAt.String
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &n.Data); err != nil {
				return nil, err
			}
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	query := `UPDATE notifications SET read_at = now() WHERE id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, id, userID)
	return err
}

func (r *notificationRepository) Enqueue(ctx context.Context, ev *domain.OutboxEvent) error {
	data, err := json.Marshal(orEmpty(ev.Data))
	if err != nil {
		return err
	}
	query := `INSERT INTO notification_outbox (id, user_id, event_type, title, body, data)
	          VALUES ($1, $2, $3, $4, $5, $6::jsonb)
	          RETURNING created_at::text`
	return r.db.QueryRowContext(ctx, query, ev.ID, ev.UserID, ev.EventType, ev.Title, ev.Body, string(data)).
		Scan(&ev.CreatedAt)
}

func (r *notificationRepository) ListUndispatched(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	query := `SELECT id, user_id, event_type, title, body, data, attempts, created_at::text
	          FROM notification_outbox
	          WHERE dispatched_at IS NULL
	          ORDER BY created_at ASC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		var ev domain.OutboxEvent
		var data []byte
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.EventType, &ev.Title, &ev.Body, &data, &ev.Attempts, &ev.CreatedAt); err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &ev.Data); err != nil {
				return nil, err
			}
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *notificationRepository) MarkDispatched(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notification_outbox SET dispatched_at = now() WHERE id = $1`, id)
	return err
}

func (r *notificationRepository) RecordAttempt(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notification_outbox SET attempts = attempts + 1 WHERE id = $1`, id)
	return err
}

func (r *notificationRepository) PurgeDispatchedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notification_outbox WHERE dispatched_at IS NOT NULL AND dispatched_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

var _ repository.NotificationRepository = (*notificationRepository)(nil)
